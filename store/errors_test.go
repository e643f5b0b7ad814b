package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/joomcode/errorx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMySQLErrors(t *testing.T) {
	cases := []struct {
		name     string
		number   uint16
		expected *errorx.Type
	}{
		{name: "duplicate entry", number: 1062, expected: ErrConstraint},
		{name: "null violation", number: 1048, expected: ErrConstraint},
		{name: "missing fk parent", number: 1452, expected: ErrConstraint},
		{name: "data too long", number: 1406, expected: ErrConstraint},
		{name: "enum domain truncated", number: 1265, expected: ErrConstraint},
		{name: "syntax error", number: 1064, expected: ErrMalformed},
		{name: "unknown column", number: 1054, expected: ErrMalformed},
		{name: "missing table", number: 1146, expected: ErrMalformed},
		{name: "access denied", number: 1045, expected: ErrConnectivity},
		{name: "unknown database", number: 1049, expected: ErrConnectivity},
		{name: "unmapped server code", number: 1205, expected: ErrBackend},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := classify(&mysql.MySQLError{Number: tc.number, Message: tc.name})
			assert.True(t, errorx.IsOfType(err, tc.expected), "code %d classified as %s", tc.number, err.Type())
		})
	}
}

func TestClassifyDriverErrors(t *testing.T) {
	assert.True(t, errorx.IsOfType(classify(mysql.ErrInvalidConn), ErrConnectivity))
	assert.True(t, errorx.IsOfType(classify(driver.ErrBadConn), ErrConnectivity))
	assert.True(t, errorx.IsOfType(classify(errors.New("boom")), ErrBackend))
}

func TestClassifyKeepsCause(t *testing.T) {
	cause := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'testuser'"}
	wrapped := classify(fmt.Errorf("insert failed: %w", cause))

	require.True(t, errorx.IsOfType(wrapped, ErrConstraint))
	var mysqlErr *mysql.MySQLError
	assert.True(t, errors.As(wrapped, &mysqlErr))
	assert.Equal(t, uint16(1062), mysqlErr.Number)
}
