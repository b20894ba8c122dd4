package generator

import (
	"sync"
)

// UniformIntegerGenerator produces integers uniformly distributed over
// [lowerBound, upperBound], inclusive on both ends.
type UniformIntegerGenerator struct {
	*IntegerGeneratorBase
	lowerBound int64
	upperBound int64
}

func NewUniformIntegerGenerator(lowerBound, upperBound int64) *UniformIntegerGenerator {
	if lowerBound > upperBound {
		panic(NewErrorf("uniform generator requires lowerBound <= upperBound, got %d > %d", lowerBound, upperBound))
	}
	return &UniformIntegerGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		lowerBound:           lowerBound,
		upperBound:           upperBound,
	}
}

func (self *UniformIntegerGenerator) NextInt() int64 {
	ret := self.lowerBound + NextInt64(self.upperBound-self.lowerBound+1)
	self.SetLastInt(ret)
	return ret
}

func (self *UniformIntegerGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *UniformIntegerGenerator) Mean() float64 {
	return float64(self.lowerBound+self.upperBound) / 2.0
}

// SequentialGenerator produces start, start+1, ..., end, start, start+1, ...
// NextInt is safe for concurrent use, so one instance can be shared by
// every client goroutine.
type SequentialGenerator struct {
	*IntegerGeneratorBase
	lowerBound int64
	upperBound int64
	lock       sync.Mutex
	current    int64
}

func NewSequentialGenerator(lowerBound, upperBound int64) *SequentialGenerator {
	if lowerBound > upperBound {
		panic(NewErrorf("sequential generator requires lowerBound <= upperBound, got %d > %d", lowerBound, upperBound))
	}
	return &SequentialGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(lowerBound - 1),
		lowerBound:           lowerBound,
		upperBound:           upperBound,
		current:              lowerBound,
	}
}

func (self *SequentialGenerator) NextInt() int64 {
	self.lock.Lock()
	ret := self.current
	if self.current == self.upperBound {
		self.current = self.lowerBound
	} else {
		self.current++
	}
	self.lock.Unlock()
	self.SetLastInt(ret)
	return ret
}

func (self *SequentialGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *SequentialGenerator) Mean() float64 {
	return float64(self.lowerBound+self.upperBound) / 2.0
}
