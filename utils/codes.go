package utils

import (
	"fmt"
	"strconv"

	"gorm.io/gorm"
)

// CodeWidth is the numeric width of persisted identifiers: a 3-letter type
// prefix followed by 7 digits (PED0000001). Several validators depend on the
// fixed 10-character format.
const CodeWidth = 7

// NextCode allocates the next code for a table inside the caller's
// transaction: it scans the current maximum and increments its numeric
// suffix. Callers must run it in the same transaction that inserts the row.
func NextCode(tx *gorm.DB, table, column, prefix string) (string, error) {
	var last string
	err := tx.Table(table).
		Select(column).
		Where(column+" LIKE ?", prefix+"%").
		Order(column + " DESC").
		Limit(1).
		Scan(&last).Error
	if err != nil {
		return "", err
	}

	next := 1
	if last != "" {
		n, err := strconv.Atoi(last[len(prefix):])
		if err != nil {
			return "", fmt.Errorf("malformed code %q in %s", last, table)
		}
		next = n + 1
	}
	return fmt.Sprintf("%s%0*d", prefix, CodeWidth, next), nil
}

// IsValidCode checks the fixed 3-letter + 7-digit identifier format.
func IsValidCode(code, prefix string) bool {
	if len(code) != len(prefix)+CodeWidth || code[:len(prefix)] != prefix {
		return false
	}
	_, err := strconv.Atoi(code[len(prefix):])
	return err == nil
}
