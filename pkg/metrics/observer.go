package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/KushalwithK/valid8r/pkg/validator"
)

// Outcome label values of the validations counter.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
)

// Observer counts validation outcomes and failed rules per domain.
// It satisfies validator.Observer.
type Observer struct {
	validations *prometheus.CounterVec
	failures    *prometheus.CounterVec
}

// NewObserver creates the counters and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewObserver(reg prometheus.Registerer, namespace string) (*Observer, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	o := &Observer{
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validations_total",
			Help:      "Number of validation calls by domain and outcome.",
		}, []string{"domain", "outcome"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Number of reported rule failures by domain and rule key.",
		}, []string{"domain", "rule"}),
	}

	for _, c := range []prometheus.Collector{o.validations, o.failures} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Join(ErrRegisterCollector, err)
		}
	}

	return o, nil
}

// MustNewObserver works like NewObserver but panics on registration failure.
func MustNewObserver(reg prometheus.Registerer, namespace string) *Observer {
	o, err := NewObserver(reg, namespace)
	if err != nil {
		panic(err)
	}
	return o
}

func (o *Observer) ObserveValidation(domain validator.Domain, report validator.Report) {
	d := string(domain)
	if report.IsEmpty() {
		o.validations.WithLabelValues(d, OutcomeValid).Inc()
		return
	}

	o.validations.WithLabelValues(d, OutcomeInvalid).Inc()
	for _, e := range report {
		o.failures.WithLabelValues(d, e.Rule).Inc()
	}
}
