package validator

// Accumulator collects rule failures for a single validation call and decides,
// once at the end, whether the caller receives a report or an error.
type Accumulator struct {
	policy Policy
	safe   bool
	report Report
}

// NewAccumulator creates an empty accumulator. The zero policy behaves like ThrowAll.
func NewAccumulator(policy Policy, safe bool) *Accumulator {
	return &Accumulator{policy: policy.orDefault(), safe: safe}
}

// Record registers a failed rule according to the retention policy.
func (a *Accumulator) Record(rule, message string) {
	switch a.policy {
	case ThrowFirst:
		if len(a.report) == 0 {
			a.report = Report{{Rule: rule, Message: message}}
		}
	case ThrowLast:
		a.report = Report{{Rule: rule, Message: message}}
	default:
		a.report.set(rule, message)
	}
}

// Report returns a copy of the failures recorded so far.
func (a *Accumulator) Report() Report {
	if a.report == nil {
		return nil
	}
	return append(Report(nil), a.report...)
}

// Finalize ends the run. An empty report yields a valid result. Otherwise the
// report is returned as an invalid result in safe mode, or wrapped in an
// *Error tagged with domain when safe mode is off.
func (a *Accumulator) Finalize(domain Domain) (Result, error) {
	if a.report.IsEmpty() {
		return Result{Valid: true}, nil
	}

	report := a.Report()
	if !a.safe {
		return Result{}, &Error{Domain: domain, Policy: a.policy, Report: report}
	}

	return Result{Valid: false, Errors: report}, nil
}
