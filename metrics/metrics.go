// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
	}, []string{"method", "endpoint"})

	dbPoolSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_size",
		Help: "Total database connection pool size",
	})

	dbPoolInUse = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_pool_checked_out",
		Help: "Number of database connections currently checked out",
	})
)

// ObserveRequest records one completed HTTP request
func ObserveRequest(method, endpoint string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// UpdatePoolStats refreshes the connection pool gauges from db.Stats()
func UpdatePoolStats(stats sql.DBStats) {
	dbPoolSize.Set(float64(stats.MaxOpenConnections))
	dbPoolInUse.Set(float64(stats.InUse))
}

// Handler serves the prometheus text exposition format
func Handler() http.Handler {
	return promhttp.Handler()
}
