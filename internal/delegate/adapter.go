package delegate

import (
	"context"
	"errors"
	"fmt"

	"rcanalyzer/internal/domain"
)

// Adapter sends the analysis prompt for a passage to a Completer and returns
// the reply unparsed.
type Adapter struct {
	completer domain.Completer
}

func NewAdapter(c domain.Completer) *Adapter {
	return &Adapter{completer: c}
}

// Analyze returns the service's reply verbatim. Every failure is an
// *domain.ExternalServiceError.
func (a *Adapter) Analyze(ctx context.Context, passage string) (string, error) {
	if a == nil || a.completer == nil {
		return "", &domain.ExternalServiceError{Op: "delegate", Err: domain.ErrResourceUnavailable}
	}
	reply, err := a.completer.Complete(ctx, Prompt(passage))
	if err != nil {
		var svcErr *domain.ExternalServiceError
		if errors.As(err, &svcErr) {
			return "", err
		}
		return "", &domain.ExternalServiceError{Op: "delegate", Err: fmt.Errorf("complete: %w", err)}
	}
	return reply, nil
}
