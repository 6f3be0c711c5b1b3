// Package dberr classifies MySQL driver errors so the application layer can map
// them onto the error taxonomy without matching on message text.
package dberr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

const (
	codeDuplicateEntry   = 1062
	codeRowIsReferenced  = 1451
	codeNoReferencedRow  = 1452
	codeLockWaitTimeout  = 1205
	codeDeadlockDetected = 1213
)

func number(err error) uint16 {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

// IsDuplicate reports a unique or primary key violation.
func IsDuplicate(err error) bool {
	return number(err) == codeDuplicateEntry
}

// IsReferenced reports a delete/update blocked by a foreign key.
func IsReferenced(err error) bool {
	return number(err) == codeRowIsReferenced
}

// IsMissingReference reports an insert whose foreign key target does not exist.
func IsMissingReference(err error) bool {
	return number(err) == codeNoReferencedRow
}

// IsLockConflict reports lock wait timeouts and deadlock victims.
func IsLockConflict(err error) bool {
	n := number(err)
	return n == codeLockWaitTimeout || n == codeDeadlockDetected
}
