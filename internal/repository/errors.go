package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinicbook/api/internal/domain"
)

// transient rewraps timeouts and cancellations as domain.ErrStoreUnavailable
// so callers can retry. Everything else passes through untouched — in
// particular, not-found and duplicate-key outcomes must keep their identity.
func transient(err error, op string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
