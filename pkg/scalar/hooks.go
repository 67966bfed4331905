package scalar

// Event describes one Validate call as seen by hooks.
type Event struct {
	Site       string
	Keys       int // number of keys declared in the type spec
	Failures   int
	ReportOnly bool
}

// Hooks observe validation outcomes. Any hook may be nil.
// Hooks run synchronously on the calling goroutine and must be safe for
// concurrent use when the Validator is shared.
type Hooks struct {
	// OnCheck fires once per call that got past configuration checks.
	OnCheck func(ev Event)
	// OnFailure fires for every failed key, before OnCheck.
	OnFailure func(f Failure, ev Event)
	// OnConfigError fires when the type spec itself is invalid.
	OnConfigError func(err error, ev Event)
}

func (h Hooks) check(ev Event) {
	if h.OnCheck != nil {
		h.OnCheck(ev)
	}
}

func (h Hooks) failure(f Failure, ev Event) {
	if h.OnFailure != nil {
		h.OnFailure(f, ev)
	}
}

func (h Hooks) configError(err error, ev Event) {
	if h.OnConfigError != nil {
		h.OnConfigError(err, ev)
	}
}

// Chain combines hooks so that each set runs in order.
func Chain(hooks ...Hooks) Hooks {
	return Hooks{
		OnCheck: func(ev Event) {
			for _, h := range hooks {
				h.check(ev)
			}
		},
		OnFailure: func(f Failure, ev Event) {
			for _, h := range hooks {
				h.failure(f, ev)
			}
		},
		OnConfigError: func(err error, ev Event) {
			for _, h := range hooks {
				h.configError(err, ev)
			}
		},
	}
}
