// Package store implements the parameterized query/command layer the
// harness drives its backend through: row-level CRUD primitives, schema
// introspection and multi-statement script execution over one
// MySQL-compatible session.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/jmoiron/sqlx"
	"github.com/querybench/querybench/constants"
	"github.com/querybench/querybench/logger"
	"github.com/querybench/querybench/pkg/sqlgen"
	"github.com/querybench/querybench/types"
	"github.com/querybench/querybench/utils"

	// MySQL driver
	_ "github.com/go-sql-driver/mysql"
)

// Store owns exactly one backend session. It is either fully connected
// or fully disconnected; operations on a disconnected store return
// ErrClosed. A Store is not safe for concurrent use; create one Store
// per concurrent caller instead.
type Store struct {
	config *Config
	client *sqlx.DB
	schema map[string]map[string]bool // cached column sets per table
}

// SelectOptions are the optional clauses of a Select call. Zero values
// omit their clause entirely.
type SelectOptions struct {
	Columns []string
	Where   types.Condition
	OrderBy string
	Limit   int
}

func New(config *Config) *Store {
	return &Store{
		config: config,
		schema: map[string]map[string]bool{},
	}
}

// Open establishes the backend session. The pool is capped to a single
// connection so the store maps onto one session, matching the FK-check
// and transaction visibility expectations of the fixtures.
func (s *Store) Open(ctx context.Context) error {
	if s.client != nil {
		return ErrAlreadyConnected.New("store already holds a session; close it before reopening")
	}
	if err := s.config.Validate(); err != nil {
		return fmt.Errorf("failed to validate config: %s", err)
	}
	client, err := sqlx.Open("mysql", s.config.URI())
	if err != nil {
		logger.Errorf("failed to open database connection: %s", err)
		return ErrConnectivity.Wrap(err, "failed to open database connection")
	}
	client.SetMaxOpenConns(1)

	pingCtx, cancel := context.WithTimeout(ctx, constants.DefaultConnectTimeout)
	defer cancel()
	if err := client.PingContext(pingCtx); err != nil {
		client.Close()
		logger.Errorf("failed to ping database: %s", err)
		return ErrConnectivity.Wrap(err, "failed to ping database")
	}

	s.client = client
	logger.Debugf("connected to %s", s.config.ConnectionString())
	return nil
}

// Close releases the session. Safe to call on a store that never
// connected.
func (s *Store) Close() error {
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

// With runs fn against a freshly opened store and releases the session
// on every exit path, including a panicking body. A failed open is
// surfaced immediately; the body never runs against a disconnected
// store.
func With(ctx context.Context, config *Config, fn func(st *Store) error) (err error) {
	st := New(config)
	if err := st.Open(ctx); err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()
	return fn(st)
}

func (s *Store) ready() error {
	if s.client == nil {
		return ErrClosed.New("store is not connected")
	}
	return nil
}

// Query runs a read statement with positional parameters and
// materializes the full result set. Zero matching rows is a success
// with an empty (non-nil) slice.
func (s *Store) Query(ctx context.Context, statement string, args ...any) ([]types.Row, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.client.QueryContext(ctx, statement, args...)
	if err != nil {
		logger.Errorf("failed to execute query: %s", err)
		return nil, classify(err)
	}
	defer rows.Close()

	result := []types.Row{}
	for rows.Next() {
		row := types.Row{}
		if err := utils.MapScan(rows, row); err != nil {
			return nil, fmt.Errorf("failed to scan row: %s", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		logger.Errorf("failed while reading rows: %s", err)
		return nil, classify(err)
	}
	return result, nil
}

// Exec runs one mutating statement as its own atomic transaction and
// returns the affected-row count. There is no cross-call transaction
// scope.
func (s *Store) Exec(ctx context.Context, statement string, args ...any) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}

	tx, err := s.client.BeginTxx(ctx, nil)
	if err != nil {
		logger.Errorf("failed to begin transaction: %s", err)
		return 0, classify(err)
	}

	result, err := tx.ExecContext(ctx, statement, args...)
	if err != nil {
		_ = tx.Rollback()
		logger.Errorf("failed to execute non-query: %s", err)
		return 0, classify(err)
	}
	if err := tx.Commit(); err != nil {
		logger.Errorf("failed to commit: %s", err)
		return 0, classify(err)
	}

	if isDDL(statement) {
		s.flushSchema()
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %s", err)
	}
	return affected, nil
}

// Insert builds a parameterized INSERT from the record's column set and
// returns the generated identifier. Record keys are validated against
// the table's introspected columns before any SQL is issued.
func (s *Store) Insert(ctx context.Context, table string, record types.Record) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	columns := record.Columns()
	if len(columns) == 0 {
		return 0, ErrMalformed.New("empty record for table %q", table)
	}
	if err := s.validateColumns(ctx, table, columns); err != nil {
		return 0, err
	}

	tx, err := s.client.BeginTxx(ctx, nil)
	if err != nil {
		return 0, classify(err)
	}
	result, err := tx.ExecContext(ctx, sqlgen.InsertQuery(table, columns), record.Values(columns)...)
	if err != nil {
		_ = tx.Rollback()
		logger.Errorf("failed to insert into %s: %s", table, err)
		return 0, classify(err)
	}
	if err := tx.Commit(); err != nil {
		logger.Errorf("failed to commit insert: %s", err)
		return 0, classify(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read generated id: %s", err)
	}
	return id, nil
}

// InsertMany inserts all rows through one prepared statement inside a
// single transaction; either every row commits or none do.
func (s *Store) InsertMany(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}
	if err := s.validateColumns(ctx, table, columns); err != nil {
		return 0, err
	}

	tx, err := s.client.BeginTxx(ctx, nil)
	if err != nil {
		return 0, classify(err)
	}
	statement, err := tx.PreparexContext(ctx, sqlgen.InsertQuery(table, columns))
	if err != nil {
		_ = tx.Rollback()
		logger.Errorf("failed to prepare batch insert: %s", err)
		return 0, classify(err)
	}
	defer statement.Close()

	var inserted int64
	for idx, row := range rows {
		if len(row) != len(columns) {
			_ = tx.Rollback()
			return 0, ErrMalformed.New("row %d has %d values, want %d", idx, len(row), len(columns))
		}
		result, err := statement.ExecContext(ctx, row...)
		if err != nil {
			_ = tx.Rollback()
			logger.Errorf("failed to insert row %d into %s: %s", idx, table, err)
			return 0, classify(err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to read affected rows: %s", err)
		}
		inserted += affected
	}
	if err := tx.Commit(); err != nil {
		logger.Errorf("failed to commit batch insert: %s", err)
		return 0, classify(err)
	}
	return inserted, nil
}

// Update builds SET from the record and binds its values before the
// condition's values. The condition is required; an unconditional
// update must be spelled out through Exec.
func (s *Store) Update(ctx context.Context, table string, record types.Record, condition types.Condition) (int64, error) {
	if condition.Empty() {
		return 0, ErrMalformed.New("update on %q requires a condition", table)
	}
	columns := record.Columns()
	if len(columns) == 0 {
		return 0, ErrMalformed.New("empty record for table %q", table)
	}
	if err := s.ready(); err != nil {
		return 0, err
	}
	if err := s.validateColumns(ctx, table, columns); err != nil {
		return 0, err
	}

	args := append(record.Values(columns), condition.Args...)
	return s.Exec(ctx, sqlgen.UpdateQuery(table, columns, condition.Text), args...)
}

// Delete removes the rows matching the condition. The condition is
// required; use Truncate to clear a table.
func (s *Store) Delete(ctx context.Context, table string, condition types.Condition) (int64, error) {
	if condition.Empty() {
		return 0, ErrMalformed.New("delete on %q requires a condition", table)
	}
	return s.Exec(ctx, sqlgen.DeleteQuery(table, condition.Text), condition.Args...)
}

// Select reads rows with optional WHERE/ORDER BY/LIMIT clauses.
func (s *Store) Select(ctx context.Context, table string, opts SelectOptions) ([]types.Row, error) {
	query := sqlgen.SelectQuery(table, opts.Columns, opts.Where.Text, opts.OrderBy, opts.Limit)
	return s.Query(ctx, query, opts.Where.Args...)
}

// Count returns the number of rows matching the condition. Zero rows
// is (0, nil); a failed query is an error, never a sentinel.
func (s *Store) Count(ctx context.Context, table string, condition types.Condition) (int64, error) {
	rows, err := s.Query(ctx, sqlgen.CountQuery(table, condition.Text), condition.Args...)
	if err != nil {
		return 0, err
	}
	if len(rows) != 1 {
		return 0, ErrBackend.New("count on %q returned %d rows", table, len(rows))
	}
	return scalarInt64(rows[0]["count"])
}

// TableExists checks the backend catalog, scoped to the configured
// database name.
func (s *Store) TableExists(ctx context.Context, table string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	var count int64
	err := s.client.QueryRowContext(ctx, sqlgen.TableExistsQuery(), s.config.Database, table).Scan(&count)
	if err != nil {
		logger.Errorf("failed to check table %s: %s", table, err)
		return false, classify(err)
	}
	return count > 0, nil
}

// TableColumns returns column metadata ordered by physical position.
func (s *Store) TableColumns(ctx context.Context, table string) ([]types.Column, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.client.QueryContext(ctx, sqlgen.TableColumnsQuery(), s.config.Database, table)
	if err != nil {
		logger.Errorf("failed to query column information: %s", err)
		return nil, classify(err)
	}
	defer rows.Close()

	var columns []types.Column
	for rows.Next() {
		var name, dataType, columnType, isNullable, columnKey string
		var columnDefault *string
		if err := rows.Scan(&name, &dataType, &columnType, &isNullable, &columnKey, &columnDefault); err != nil {
			return nil, fmt.Errorf("failed to scan column: %s", err)
		}
		columns = append(columns, types.Column{
			Name:       name,
			DataType:   dataType,
			ColumnType: columnType,
			Nullable:   strings.EqualFold("yes", isNullable),
			Key:        columnKey,
			Default:    columnDefault,
		})
	}
	return columns, rows.Err()
}

// Truncate clears a table. Callers owning tables with foreign key
// relationships are responsible for toggling FOREIGN_KEY_CHECKS around
// this call.
func (s *Store) Truncate(ctx context.Context, table string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if _, err := s.client.ExecContext(ctx, sqlgen.TruncateQuery(table)); err != nil {
		logger.Errorf("failed to truncate %s: %s", table, err)
		return classify(err)
	}
	return nil
}

// RunScript splits the script into statements (quote-aware, a trailing
// statement without a delimiter still runs) and executes them in order
// inside one transaction. The first failure rolls back and aborts the
// remainder. DDL statements inside the script commit implicitly on the
// backend; the surrounding transaction only guards the DML portions.
func (s *Store) RunScript(ctx context.Context, script string) error {
	if err := s.ready(); err != nil {
		return err
	}

	statements := splitStatements(script)
	if len(statements) == 0 {
		return nil
	}

	tx, err := s.client.BeginTxx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	for _, statement := range statements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			_ = tx.Rollback()
			logger.Errorf("failed to execute script statement: %s", err)
			return classify(err)
		}
	}
	if err := tx.Commit(); err != nil {
		logger.Errorf("failed to commit script: %s", err)
		return classify(err)
	}

	s.flushSchema()
	return nil
}

// validateColumns rejects record keys that are not columns of the
// target table, before the statement reaches the backend.
func (s *Store) validateColumns(ctx context.Context, table string, columns []string) error {
	known, err := s.columnSet(ctx, table)
	if err != nil {
		return err
	}
	for _, column := range columns {
		if !known[column] {
			return ErrMalformed.New("unknown column %q in table %q", column, table)
		}
	}
	return nil
}

func (s *Store) columnSet(ctx context.Context, table string) (map[string]bool, error) {
	if cached, found := s.schema[table]; found {
		return cached, nil
	}

	columns, err := s.TableColumns(ctx, table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, ErrMalformed.New("table %q does not exist in database %q", table, s.config.Database)
	}

	set := make(map[string]bool, len(columns))
	for _, column := range columns {
		set[column.Name] = true
	}
	s.schema[table] = set
	return set, nil
}

func (s *Store) flushSchema() {
	s.schema = map[string]map[string]bool{}
}

func isDDL(statement string) bool {
	fields := strings.Fields(statement)
	if len(fields) == 0 {
		return false
	}
	switch strings.ToUpper(fields[0]) {
	case "CREATE", "ALTER", "DROP", "RENAME", "TRUNCATE":
		return true
	}
	return false
}

func scalarInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected scalar type %T", value)
	}
}
