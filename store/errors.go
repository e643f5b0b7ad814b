package store

import (
	"database/sql/driver"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/joomcode/errorx"
)

// Errors is the namespace for everything a Store operation can return.
// Callers branch with errorx.IsOfType instead of sentinel values.
var (
	Errors = errorx.NewNamespace("store")

	// ErrConnectivity covers failures reaching or authenticating to the backend.
	ErrConnectivity = Errors.NewType("connectivity")
	// ErrConstraint covers uniqueness, not-null, enum, length and referential violations.
	ErrConstraint = Errors.NewType("constraint_violation")
	// ErrMalformed covers bad statement text, unknown tables/columns and arity mismatches.
	ErrMalformed = Errors.NewType("malformed_statement")
	// ErrBackend covers backend failures outside the taxonomy above.
	ErrBackend = Errors.NewType("backend")
	// ErrClosed is returned locally when an operation is issued on an unopened store.
	ErrClosed = Errors.NewType("closed")
	// ErrAlreadyConnected is returned locally when Open is called on a store
	// that still holds a session; reopening would leak the previous handle.
	ErrAlreadyConnected = Errors.NewType("already_connected")
)

// MySQL server error numbers grouped by failure category.
var (
	constraintCodes = map[uint16]bool{
		1022: true, // duplicate key
		1048: true, // column cannot be null
		1062: true, // duplicate entry for unique key
		1169: true, // unique violation on write
		1216: true, // foreign key parent missing
		1217: true, // foreign key child exists
		1264: true, // value out of range
		1265: true, // data truncated (enum/set domain)
		1364: true, // field without default missing
		1406: true, // data too long for column
		1451: true, // cannot delete parent row
		1452: true, // cannot add child row
		3819: true, // check constraint violated
	}

	malformedCodes = map[uint16]bool{
		1054: true, // unknown column
		1064: true, // SQL syntax error
		1146: true, // table doesn't exist
		1149: true, // syntax error (legacy)
		1210: true, // incorrect arguments / placeholder arity
		1241: true, // operand should contain N columns
	}

	connectivityCodes = map[uint16]bool{
		1040: true, // too many connections
		1044: true, // access denied for database
		1045: true, // access denied for user
		1049: true, // unknown database
		1053: true, // server shutdown in progress
		1129: true, // host blocked
		1130: true, // host not allowed
		1152: true, // aborted connection
		1203: true, // too many user connections
	}
)

// classify converts a backend failure into the store error taxonomy.
// The original error stays in the cause chain.
func classify(err error) *errorx.Error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch {
		case constraintCodes[mysqlErr.Number]:
			return ErrConstraint.Wrap(err, "constraint violated (code %d)", mysqlErr.Number)
		case malformedCodes[mysqlErr.Number]:
			return ErrMalformed.Wrap(err, "malformed statement (code %d)", mysqlErr.Number)
		case connectivityCodes[mysqlErr.Number]:
			return ErrConnectivity.Wrap(err, "connectivity failure (code %d)", mysqlErr.Number)
		}
		return ErrBackend.Wrap(err, "backend error (code %d)", mysqlErr.Number)
	}

	if errors.Is(err, mysql.ErrInvalidConn) || errors.Is(err, driver.ErrBadConn) {
		return ErrConnectivity.Wrap(err, "connection lost")
	}

	return ErrBackend.Wrap(err, "backend error")
}
