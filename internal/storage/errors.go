package storage

import (
	"context"
	"errors"
	"net"

	"gorm.io/gorm"
)

// Store failures are collapsed into four categories. Callers branch with
// errors.Is; everything else is an internal error.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input")
	ErrConflict   = errors.New("record conflicts with an existing one")
	ErrTransport  = errors.New("request could not complete")
)

// wrapDBError maps driver/ORM failures onto the store error taxonomy.
func wrapDBError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrInvalidData):
		return ErrValidation
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return ErrTransport
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return ErrTransport
	}
	return err
}
