package generator

import (
	"fmt"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestConstantIntegerGenerator(t *testing.T) {
	value := int64(100)
	var g IntegerGenerator
	g = NewConstantIntegerGenerator(value)
	require.Equal(t, value-1, g.LastInt())
	for i := 0; i < 10; i++ {
		require.Equal(t, value, g.NextInt())
		require.Equal(t, value-1, g.LastInt())
		require.Equal(t, fmt.Sprintf("%d", value), g.NextString())
		require.Equal(t, fmt.Sprintf("%d", value-1), g.LastString())
		require.Equal(t, float64(value), g.Mean())
	}
}

func TestSkewedLatestGenerator(t *testing.T) {
	counter := NewAcknowledgedCounterGenerator(1)
	for i := int64(1); i <= 100; i++ {
		counter.NextInt()
		counter.Acknowledge(i)
	}
	require.Equal(t, int64(100), counter.LastInt())

	g := NewSkewedLatestGenerator(counter)
	for i := 0; i < 50; i++ {
		v := g.NextInt()
		require.True(t, v >= 0 && v <= counter.LastInt())
		require.Equal(t, v, g.LastInt())
	}
}
