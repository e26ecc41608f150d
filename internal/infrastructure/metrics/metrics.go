package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	RequestsTotal       = "app_requests_total"
	UserRegisteredTotal = "user_registered_total"
	LoginSucceededTotal = "login_succeeded_total"
	LoginFailedTotal    = "login_failed_total"
	AuthRejectedTotal   = "auth_rejected_total"
)

func NewCounter() *prometheus.CounterVec {
	return NewCounterWith(prometheus.DefaultRegisterer)
}

// NewCounterWith registers the counter vector on reg; tests pass a fresh registry.
func NewCounterWith(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "useraccounts",
			Name:      "general_counters",
		},
		[]string{"result"})
}
