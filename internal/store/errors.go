package store

import (
	"errors"

	"gorm.io/gorm"
)

// DataAccessError is the single error kind returned by the gateway. It does
// not tell a constraint violation from a lost connection; the message of the
// underlying driver error is kept as is.
type DataAccessError struct {
	Err error
}

func (e *DataAccessError) Error() string {
	return e.Err.Error()
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// IsDataAccess reports whether err came out of the gateway
func IsDataAccess(err error) bool {
	var dae *DataAccessError
	return errors.As(err, &dae)
}

// IsNotFound reports whether a single-row lookup matched nothing
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	return &DataAccessError{Err: err}
}
