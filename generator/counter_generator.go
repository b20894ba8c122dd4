package generator

// CounterGenerator produces start, start+1, start+2, ... It is shared across
// every client goroutine as a workload's keySequence, so NextInt() must be
// safe for concurrent callers; it leans entirely on IntegerGeneratorBase's
// atomic lastInt rather than keeping a second counter field of its own.
type CounterGenerator struct {
	*IntegerGeneratorBase
}

func NewCounterGenerator(startCount int64) *CounterGenerator {
	return &CounterGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(startCount - 1),
	}
}

func (self *CounterGenerator) NextInt() int64 {
	return self.IncrLastInt(1)
}

func (self *CounterGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *CounterGenerator) Mean() float64 {
	panic("unsupported operation")
}
