package verification

import "context"

// Validator performs the server-side token check. The returned Outcome
// carries the verdict; an error is reserved for infrastructure failures
// where no verdict could be produced.
type Validator interface {
	Validate(ctx context.Context, token string) (Outcome, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
