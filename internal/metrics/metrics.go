package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Failure reasons used as the "reason" label of DispenseFailures.
const (
	ReasonInvalidAddress      = "invalid_address"
	ReasonInsufficientBalance = "insufficient_balance"
	ReasonAlreadyFunded       = "already_funded"
	ReasonUpstream            = "upstream"
	ReasonBuild               = "build"
	ReasonSubmit              = "submit"
)

// Service holds the faucet collectors on a private registry so multiple
// server instances (e.g. in tests) never collide on registration.
type Service struct {
	Registry *prometheus.Registry

	DispenseSuccess  prometheus.Counter
	DispenseFailures *prometheus.CounterVec
	DispensedWei     prometheus.Counter
}

func New() *Service {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s := &Service{
		Registry: registry,
		DispenseSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "faucet",
			Name:      "dispense_success_total",
			Help:      "Number of successfully broadcasted dispense transactions.",
		}),
		DispenseFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "faucet",
			Name:      "dispense_failures_total",
			Help:      "Number of failed dispense requests by reason.",
		}, []string{"reason"}),
		DispensedWei: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "faucet",
			Name:      "dispensed_wei_total",
			Help:      "Total wei sent out by the faucet.",
		}),
	}

	registry.MustRegister(s.DispenseSuccess, s.DispenseFailures, s.DispensedWei)

	return s
}
