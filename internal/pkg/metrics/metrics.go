// Package metrics exposes the process-wide prometheus counters for business
// operations. Counters are registered on the default registry and served by
// the HTTP adapter on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// OrdersCreated counts successfully created orders.
	OrdersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_orders_created_total",
		Help: "Total number of orders created.",
	})

	// OrdersCancelled counts orders cancelled by customers.
	OrdersCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_orders_cancelled_total",
		Help: "Total number of orders cancelled by customers.",
	})

	// ReturnsOpened counts opened return requests.
	ReturnsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "shop_returns_opened_total",
		Help: "Total number of return requests opened.",
	})

	// OperationErrors counts failed business operations by operation name.
	OperationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "shop_operation_errors_total",
		Help: "Total number of failed business operations.",
	}, []string{"operation"})
)
