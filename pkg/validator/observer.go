package validator

// Observer is notified once per validation call made through a Validator.
// An empty report means the value was valid.
type Observer interface {
	ObserveValidation(domain Domain, report Report)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(domain Domain, report Report)

func (f ObserverFunc) ObserveValidation(domain Domain, report Report) {
	f(domain, report)
}

type nopObserver struct{}

func (nopObserver) ObserveValidation(Domain, Report) {}
