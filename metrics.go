package ycsb

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsServer exposes a Prometheus /metrics endpoint reflecting the
// driver's live completed-operation counter for the duration of a load or
// run phase. It is optional: a phase only starts one when metrics.addr is
// set in the workload properties.
type MetricsServer struct {
	addr         string
	completedOps *int64
	registry     *prometheus.Registry
	opsTotal     prometheus.CounterFunc
	server       *http.Server
}

func NewMetricsServer(addr string, completedOps *int64) *MetricsServer {
	self := &MetricsServer{
		addr:         addr,
		completedOps: completedOps,
		registry:     prometheus.NewRegistry(),
	}
	self.opsTotal = prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "ycsb_completed_operations_total",
		Help: "Total operations completed by the client thread pool so far.",
	}, func() float64 {
		return float64(atomic.LoadInt64(self.completedOps))
	})
	self.registry.MustRegister(self.opsTotal)
	return self
}

// Start launches the HTTP server in the background. Bind failures are
// logged, not fatal: metrics are diagnostic, a benchmark run should not
// abort over a busy port.
func (self *MetricsServer) Start() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(self.registry, promhttp.HandlerOpts{}))
	self.server = &http.Server{Addr: self.addr, Handler: mux}
	go func() {
		if err := self.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			Warnf("metrics server stopped: %s", err)
		}
	}()
}

func (self *MetricsServer) Stop() {
	if self.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := self.server.Shutdown(ctx); err != nil {
		Warnf("metrics server shutdown: %s", err)
	}
}
