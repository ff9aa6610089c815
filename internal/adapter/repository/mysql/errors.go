package mysql

import (
	"errors"

	"gorm.io/gorm"
)

// mapNotFound turns gorm's record-not-found into the caller's domain sentinel.
func mapNotFound(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
