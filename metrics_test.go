package ycsb

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestMetricsServerExposesCompletedOps(t *testing.T) {
	var completedOps int64
	atomic.StoreInt64(&completedOps, 42)

	addr := freeAddr(t)
	server := NewMetricsServer(addr, &completedOps)
	server.Start()
	defer server.Stop()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get(fmt.Sprintf("http://%s/metrics", addr))
		if err == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "ycsb_completed_operations_total 42")
}

func TestMetricsServerStopIsIdempotentBeforeStart(t *testing.T) {
	var completedOps int64
	server := NewMetricsServer(freeAddr(t), &completedOps)
	server.Stop()
	server.Stop()
}
