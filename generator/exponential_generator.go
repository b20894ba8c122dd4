package generator

import (
	"math"
)

const (
	ExponentialPercentileDefault = "95"
	ExponentialFractionDefault   = "0.8571428571" // 6/7
)

type ExponentialGenerator struct {
	*IntegerGeneratorBase
	gamma float64
}

func NewExponentialGeneratorByMean(mean float64) *ExponentialGenerator {
	return &ExponentialGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		gamma:                1.0 / mean,
	}
}

func NewExponentialGenerator(percentile, theRange float64) *ExponentialGenerator {
	return &ExponentialGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		gamma:                -math.Log(1.0-percentile/100.0) / theRange, // 1.0/mean
	}
}

func (self *ExponentialGenerator) NextInt() int64 {
	return self.NextLong()
}

func (self *ExponentialGenerator) NextLong() int64 {
	next := int64(-math.Log(NextFloat64()) / self.gamma)
	self.SetLastInt(next)
	return next
}

func (self *ExponentialGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *ExponentialGenerator) Mean() float64 {
	return 1.0 / self.gamma
}
