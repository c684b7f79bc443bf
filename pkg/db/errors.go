package db

import (
	"errors"
	"strings"

	sqlite3 "github.com/mattn/go-sqlite3"
)

// IsUniqueViolation reports whether err is a sqlite unique constraint
// failure. When columnName is provided the violated constraint must mention
// that column.
func IsUniqueViolation(err error, columnName string) bool {
	if err == nil {
		return false
	}

	var serr sqlite3.Error
	if errors.As(err, &serr) {
		if serr.ExtendedCode != sqlite3.ErrConstraintUnique &&
			serr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
			return false
		}
		return columnName == "" || strings.Contains(serr.Error(), columnName)
	}

	// Driver versions differ in whether the typed error survives wrapping.
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return columnName == "" || strings.Contains(msg, columnName)
}
