package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"stayhub/internal/domain"
)

// Classify translates driver-level constraint failures into domain errors.
// Message sniffing instead of gorm.ErrDuplicatedKey keeps this working across
// the sqlite, mysql and postgres drivers.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isDupKey(err) {
		return domain.Conflict("resource already exists")
	}
	if isForeignKey(err) {
		return domain.Invalid("reference", "referenced resource does not exist")
	}
	return domain.Unexpected(err)
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}

func isForeignKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "foreign key")
}
