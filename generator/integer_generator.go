package generator

import (
	"fmt"
	"sync/atomic"
)

// IntegerGenerator is a generator capable of generating integers and strings.
type IntegerGenerator interface {
	Generator
	// NextInt returns the next value as an int. When overriding this method,
	// be sure to call SetLastInt() properly, or the LastString() call
	// won't work.
	NextInt() int64
	LastInt() int64

	Mean() float64
}

// IntegerGeneratorBase is a parent class for all IntegerGenerator subclasses.
type IntegerGeneratorBase struct {
	lastInt int64
}

func NewIntegerGeneratorBase(last int64) *IntegerGeneratorBase {
	return &IntegerGeneratorBase{
		lastInt: last,
	}
}

// SetLastInt sets the last value to be generated. IntegerGenerator subclasses
// must use this call to properly set the last int value, or the
// LastString() and LastInt() calls won't work. Goes through sync/atomic
// because generator instances (e.g. a workload's keyChooser) are shared
// across every client goroutine rather than owned by one.
func (self *IntegerGeneratorBase) SetLastInt(value int64) {
	atomic.StoreInt64(&self.lastInt, value)
}

// IncrLastInt atomically adds delta to the last-generated value and returns
// the new value. Generators whose "next" value is itself just an atomic
// counter (CounterGenerator) can use this instead of keeping a duplicate
// counter field alongside lastInt.
func (self *IntegerGeneratorBase) IncrLastInt(delta int64) int64 {
	return atomic.AddInt64(&self.lastInt, delta)
}

// NextString generates the next string in the distribution.
func (self *IntegerGeneratorBase) NextString(g IntegerGenerator) string {
	return fmt.Sprintf("%d", g.NextInt())
}

func (self *IntegerGeneratorBase) LastInt() int64 {
	return atomic.LoadInt64(&self.lastInt)
}

func (self *IntegerGeneratorBase) LastString() string {
	return fmt.Sprintf("%d", self.LastInt())
}

// ConstantIntegerGenerator is a trivial integer generator that always returns
// the same value.
type ConstantIntegerGenerator struct {
	*IntegerGeneratorBase
	value int64
}

func NewConstantIntegerGenerator(i int64) *ConstantIntegerGenerator {
	return &ConstantIntegerGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(i - 1),
		value:                i,
	}
}

func (self *ConstantIntegerGenerator) NextInt() int64 {
	return self.value
}

func (self *ConstantIntegerGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *ConstantIntegerGenerator) Mean() float64 {
	return float64(self.NextInt())
}
