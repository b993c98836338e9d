package sqlite

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isCheckViolation(err error) bool {
	return strings.Contains(err.Error(), "CHECK constraint failed")
}
