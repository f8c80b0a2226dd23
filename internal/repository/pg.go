package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Matias7xx/portal-aluno/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	pgUniqueViolation  = "23505"
	pgLockNotAvailable = "55P03"
)

func defaultStrategy() retry.Strategy {
	return retry.Strategy{
		Attempts: 3,
		Delay:    500 * time.Millisecond,
		Backoff:  2,
	}
}

// setLockTimeout bounds how long the transaction may wait for a resource
// lock; exceeding it surfaces as domain.ErrBusy instead of a deadlocked
// request.
func setLockTimeout(ctx context.Context, tx *sql.Tx, timeout time.Duration) error {
	if timeout <= 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = %d", timeout.Milliseconds()))
	if err != nil {
		return fmt.Errorf("set lock_timeout: %w", err)
	}
	return nil
}

// mapPgErr translates Postgres error codes the admission flow relies on
// into domain errors. Lock wait timeouts are retryable (Busy); unique
// violations on the active-request index mean the caller already holds an
// admission.
func mapPgErr(err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgLockNotAvailable:
			return domain.ErrBusy
		case pgUniqueViolation:
			return domain.ErrAlreadyRequested
		}
	}
	return err
}
