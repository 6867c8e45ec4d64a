package sqlite

import "strings"

// modernc.org/sqlite reports constraint failures as plain error strings,
// so classification goes by message.
func isConstraint(err error, constraint string) bool {
	return err != nil && strings.Contains(err.Error(), constraint+" constraint failed")
}

func isForeignKeyViolation(err error) bool { return isConstraint(err, "FOREIGN KEY") }

func isUniqueViolation(err error) bool { return isConstraint(err, "UNIQUE") }
