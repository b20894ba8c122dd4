package generator

// SkewedLatestGenerator favors keys near the current acknowledged counter
// limit, modeling workloads that mostly touch recently inserted records.
// Each draw reads the counter's current LastInt(), subtracts a zipfian
// offset, and clamps to zero so the result always lands within the
// acknowledged range.
//
// Written from the acknowledged-counter and zipfian semantics, without a
// SkewedLatestGenerator.java source to follow.
type SkewedLatestGenerator struct {
	*IntegerGeneratorBase
	counter   *AcknowledgedCounterGenerator
	generator *ZipfianGenerator
}

func NewSkewedLatestGenerator(counter *AcknowledgedCounterGenerator) *SkewedLatestGenerator {
	items := counter.LastInt()
	if items < 1 {
		items = 1
	}
	self := &SkewedLatestGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		counter:              counter,
		generator:            NewZipfianGeneratorByItems(items),
	}
	self.NextInt()
	return self
}

func (self *SkewedLatestGenerator) NextInt() int64 {
	max := self.counter.LastInt()
	if max < 1 {
		self.SetLastInt(0)
		return 0
	}
	offset := self.generator.Next(max)
	ret := max - offset
	if ret < 0 {
		ret = 0
	}
	self.SetLastInt(ret)
	return ret
}

func (self *SkewedLatestGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *SkewedLatestGenerator) Mean() float64 {
	panic("unsupported operation")
}
