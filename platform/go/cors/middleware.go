package cors

import "net/http"

// Observer is notified of every decision the middleware takes.
type Observer interface {
	ObserveCORS(method Method, outcome Outcome)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(method Method, outcome Outcome)

func (f ObserverFunc) ObserveCORS(method Method, outcome Outcome) { f(method, outcome) }

type options struct {
	preflightStatus int
	observers       []Observer
}

// Option configures Middleware.
type Option func(*options)

// WithPreflightStatus overrides the status written for terminated preflights.
// Values outside 200-299 are ignored.
func WithPreflightStatus(status int) Option {
	return func(o *options) {
		if status >= 200 && status < 300 {
			o.preflightStatus = status
		}
	}
}

// WithObserver registers an observer. Nil observers are ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

// Middleware returns the filter as chi-compatible middleware. It should be
// installed ahead of any handler that writes the response.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := options{preflightStatus: http.StatusOK}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin, hasOrigin := requestOrigin(r)
			d := Decide(r.Method, origin, hasOrigin)
			d.Apply(w.Header())

			for _, obs := range cfg.observers {
				obs.ObserveCORS(d.Method, d.Outcome)
			}

			if d.Outcome == Terminated {
				w.WriteHeader(cfg.preflightStatus)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func requestOrigin(r *http.Request) (string, bool) {
	values, ok := r.Header["Origin"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}
