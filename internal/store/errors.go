package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Error taxonomy. Every store error wraps one of these sentinels, so the
// adapter layer can map categories to statuses with errors.Is and without
// inspecting detail strings.
var (
	ErrConflict   = errors.New("conflict")             // duplicate unique identity
	ErrNotFound   = errors.New("not found")            // referenced row absent
	ErrBadRequest = errors.New("bad request")          // structurally invalid input
	ErrConstraint = errors.New("constraint violation") // schema-level check failed
)

// translate folds storage-engine errors into the taxonomy. The unique index
// is the true duplicate guard; the read-then-decide checks in the create
// paths are only a fast path, so a duplicate-key error from a racing writer
// lands on the same ErrConflict.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated),
		strings.Contains(err.Error(), "CHECK constraint failed"),
		strings.Contains(err.Error(), "NOT NULL constraint failed"):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	default:
		return err
	}
}
