// Package metrics exports validation outcomes as Prometheus counters.
//
//	reg := prometheus.NewRegistry()
//	obs, err := metrics.NewObserver(reg, "valid8r")
//	if err != nil {
//	    return err
//	}
//	v := validator.New(validator.WithObserver(obs))
//
// Two counters are maintained: <namespace>_validations_total{domain,outcome}
// with outcome "valid" or "invalid", and
// <namespace>_rule_failures_total{domain,rule} incremented once per rule in
// the reported failures. Under throw-first and throw-last only the surviving
// rule is counted.
package metrics
