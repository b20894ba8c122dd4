package generator

// This file adds the constructors and scrambling variant that
// zipfian_generator.go doesn't itself define: building a ZipfianGenerator
// from just a range (computing zetan itself instead of requiring a
// precomputed value), and a ScrambledZipfianGenerator that decouples key
// popularity from key order by hashing through a large virtual universe,
// the way the original Java ScrambledZipfianGenerator does.

func (self *ZipfianGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

// NewZipfianGeneratorByInterval builds a ZipfianGenerator over [min, max]
// using the default zipfian constant, computing zetan from scratch.
func NewZipfianGeneratorByInterval(min, max int64) *ZipfianGenerator {
	return NewZipfianGeneratorByIntervalWithTheta(min, max, ZipfianConstant)
}

// NewZipfianGeneratorByIntervalWithTheta is NewZipfianGeneratorByInterval
// with an explicit zipfian constant (theta).
func NewZipfianGeneratorByIntervalWithTheta(min, max int64, theta float64) *ZipfianGenerator {
	items := max - min + 1
	zetan := zetaStatic(0, items, theta, 0)
	return NewZipfianGenerator(min, max, theta, zetan)
}

// NewZipfianGeneratorByItems builds a ZipfianGenerator over [0, itemCount).
func NewZipfianGeneratorByItems(itemCount int64) *ZipfianGenerator {
	return NewZipfianGeneratorByInterval(0, itemCount-1)
}

const (
	// scrambledItemCount is a large virtual universe that the scrambled
	// generator always draws from internally, regardless of the actual
	// [lowerBound, upperBound) requested. Keeping it fixed means the popular
	// items (which zeta makes expensive to recompute) don't shift as the
	// real key range grows during a run, and scrambledZetan below can be a
	// constant instead of something computed at startup.
	scrambledItemCount = int64(10000000000)
	// scrambledZetan is zeta(scrambledItemCount, ZipfianConstant),
	// precomputed (as the original does) because summing ten billion terms
	// at startup would make every run pay a multi-second tax up front.
	scrambledZetan = float64(26.46902820178302)
)

// ScrambledZipfianGenerator produces a zipfian-skewed sequence over
// [lowerBound, lowerBound+itemCount-1], inclusive, like ZipfianGenerator, but maps the draw through
// a hash so popular items are scattered across the range rather than
// clustered at the low end. This preserves the skew profile across insert
// growth: item "hotness" depends on a hash of a virtual-universe draw, not
// on the real key's position, so adding new keys never shifts which keys
// are popular.
type ScrambledZipfianGenerator struct {
	*IntegerGeneratorBase
	lowerBound int64
	itemCount  int64
	generator  *ZipfianGenerator
}

// NewScrambledZipfianGenerator builds a scrambled generator over
// [lowerBound, upperBound], inclusive.
func NewScrambledZipfianGenerator(lowerBound, upperBound int64) *ScrambledZipfianGenerator {
	return NewScrambledZipfianGeneratorWithRange(lowerBound, upperBound-lowerBound+1)
}

// NewScrambledZipfianGeneratorByItems builds a scrambled generator over
// [0, itemCount).
func NewScrambledZipfianGeneratorByItems(itemCount int64) *ScrambledZipfianGenerator {
	return NewScrambledZipfianGeneratorWithRange(0, itemCount)
}

func NewScrambledZipfianGeneratorWithRange(lowerBound, itemCount int64) *ScrambledZipfianGenerator {
	return &ScrambledZipfianGenerator{
		IntegerGeneratorBase: NewIntegerGeneratorBase(0),
		lowerBound:           lowerBound,
		itemCount:            itemCount,
		generator:            NewZipfianGenerator(0, scrambledItemCount-1, ZipfianConstant, scrambledZetan),
	}
}

func (self *ScrambledZipfianGenerator) NextInt() int64 {
	draw := self.generator.NextInt()
	ret := self.lowerBound + int64(Hash(draw)%uint64(self.itemCount))
	self.SetLastInt(ret)
	return ret
}

func (self *ScrambledZipfianGenerator) NextString() string {
	return self.IntegerGeneratorBase.NextString(self)
}

func (self *ScrambledZipfianGenerator) Mean() float64 {
	panic("unsupported operation")
}

// ListZipfianGenerator draws a zipfian-skewed index into a fixed list of
// arbitrary string values and returns the value at that index, rather than
// the index itself. Useful for picking among a small closed set of labels
// (table names, field names) with some labels far more likely than others.
type ListZipfianGenerator struct {
	values    []string
	generator *ZipfianGenerator
	lastValue string
}

func NewListZipfianGenerator(values []string, theta float64) *ListZipfianGenerator {
	if len(values) == 0 {
		panic(NewErrorf("list zipfian generator requires a non-empty value list"))
	}
	return &ListZipfianGenerator{
		values:    values,
		generator: NewZipfianGeneratorByIntervalWithTheta(0, int64(len(values)-1), theta),
	}
}

func (self *ListZipfianGenerator) NextString() string {
	index := self.generator.NextInt()
	self.lastValue = self.values[index]
	return self.lastValue
}

func (self *ListZipfianGenerator) LastString() string {
	if self.lastValue == "" {
		return self.NextString()
	}
	return self.lastValue
}
