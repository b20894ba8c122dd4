package ycsb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistributeOpsEven(t *testing.T) {
	ret := distributeOps(100, 4)
	require.Equal(t, []int64{25, 25, 25, 25}, ret)
}

func TestDistributeOpsRemainder(t *testing.T) {
	ret := distributeOps(10, 3)
	require.Equal(t, []int64{4, 3, 3}, ret)
	var total int64
	for _, n := range ret {
		total += n
	}
	require.Equal(t, int64(10), total)
}

func TestDistributeOpsUnbounded(t *testing.T) {
	ret := distributeOps(0, 5)
	require.Equal(t, []int64{0, 0, 0, 0, 0}, ret)

	ret = distributeOps(-1, 3)
	require.Equal(t, []int64{0, 0, 0}, ret)
}

func TestDistributeOpsSingleThread(t *testing.T) {
	ret := distributeOps(42, 1)
	require.Equal(t, []int64{42}, ret)
}

func TestClientThreadRemainingOps(t *testing.T) {
	thread := &clientThread{opCount: 10, opsDone: 4}
	require.Equal(t, int64(6), thread.remainingOps())

	thread.opsDone = 10
	require.Equal(t, int64(0), thread.remainingOps())

	thread.opsDone = 11
	require.Equal(t, int64(0), thread.remainingOps())
}

func TestClientThreadRemainingOpsUnboundedIsZero(t *testing.T) {
	thread := &clientThread{opCount: 0, opsDone: 1000}
	require.Equal(t, int64(0), thread.remainingOps())
}
