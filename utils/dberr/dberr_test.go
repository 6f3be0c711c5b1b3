package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/warehouse/utils/dberr"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	dup := fmt.Errorf("insert customer: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	ref := &mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"}
	missing := &mysql.MySQLError{Number: 1452}
	deadlock := &mysql.MySQLError{Number: 1213}

	assert.True(t, dberr.IsDuplicate(dup))
	assert.False(t, dberr.IsDuplicate(ref))
	assert.True(t, dberr.IsReferenced(ref))
	assert.True(t, dberr.IsMissingReference(missing))
	assert.True(t, dberr.IsLockConflict(deadlock))
	assert.False(t, dberr.IsLockConflict(errors.New("boom")))
}
