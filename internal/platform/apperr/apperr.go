package apperr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// NotFoundError covers both a missing id and a row excluded by the default
// soft-delete filter.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// InvalidStateError reports a workflow precondition failure with the
// expected source statuses and the status actually found.
type InvalidStateError struct {
	Entity   string
	ID       uuid.UUID
	Expected []string
	Actual   string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf(
		"%s %s is in status %s, expected one of [%s]",
		e.Entity, e.ID, e.Actual, strings.Join(e.Expected, ", "),
	)
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsInvalidState(err error) bool {
	var is *InvalidStateError
	return errors.As(err, &is)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsSerializationConflict reports whether err is a serialization failure
// (SQLSTATE 40001) from the store. Callers may retry the whole transition.
func IsSerializationConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001"
	}
	return false
}
