package usecase

import (
	"errors"

	"talenthub/pkg/apperr"

	"gorm.io/gorm"
)

// storeErr translates a repository failure: a missing row becomes a
// NotFound with the given message, anything else is a storage failure.
func storeErr(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s", notFoundMsg)
	}
	return apperr.Storage(err)
}
