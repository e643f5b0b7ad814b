// Package sqlgen centralizes the SQL text the store issues against a
// MySQL-compatible backend. Values never appear in the generated text;
// they always travel through `?` placeholders bound by the driver.
package sqlgen

import (
	"fmt"
	"strings"
)

// QuoteIdentifier backtick-quotes a table or column identifier.
func QuoteIdentifier(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

func quoteIdentifiers(identifiers []string) []string {
	quoted := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		quoted = append(quoted, QuoteIdentifier(identifier))
	}
	return quoted
}

// Placeholders returns n comma separated `?` markers.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// InsertQuery returns the parameterized INSERT statement for the given
// column set. The same statement is reused for every row of a batch.
func InsertQuery(table string, columns []string) string {
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		QuoteIdentifier(table), strings.Join(quoteIdentifiers(columns), ", "), Placeholders(len(columns)))
}

// UpdateQuery returns the parameterized UPDATE statement; SET
// placeholders bind before the condition's placeholders.
func UpdateQuery(table string, columns []string, condition string) string {
	assignments := make([]string, 0, len(columns))
	for _, column := range columns {
		assignments = append(assignments, fmt.Sprintf("%s = ?", QuoteIdentifier(column)))
	}
	return fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		QuoteIdentifier(table), strings.Join(assignments, ", "), condition)
}

// DeleteQuery returns the parameterized DELETE statement.
func DeleteQuery(table, condition string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", QuoteIdentifier(table), condition)
}

// SelectQuery builds a SELECT appending WHERE, ORDER BY and LIMIT in
// that fixed order; zero-valued arguments omit their clause entirely.
// Columns are caller controlled projection text (identifiers or
// expressions) and are not quoted.
func SelectQuery(table string, columns []string, condition, orderBy string, limit int) string {
	projection := "*"
	if len(columns) > 0 {
		projection = strings.Join(columns, ", ")
	}
	query := fmt.Sprintf("SELECT %s FROM %s", projection, QuoteIdentifier(table))

	if condition != "" {
		query += " WHERE " + condition
	}
	if orderBy != "" {
		query += " ORDER BY " + orderBy
	}
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	return query
}

// CountQuery wraps the table in a COUNT(*) aggregate.
func CountQuery(table, condition string) string {
	query := fmt.Sprintf("SELECT COUNT(*) AS count FROM %s", QuoteIdentifier(table))
	if condition != "" {
		query += " WHERE " + condition
	}
	return query
}

// TruncateQuery returns the TRUNCATE statement for a table.
func TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", QuoteIdentifier(table))
}

// TableExistsQuery returns the catalog query checking a table's
// presence; binds are schema name and table name.
func TableExistsQuery() string {
	return `
		SELECT COUNT(*)
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?
	`
}

// TableColumnsQuery returns the catalog query for column metadata of a
// table; binds are schema name and table name.
func TableColumnsQuery() string {
	return `
		SELECT
			COLUMN_NAME,
			DATA_TYPE,
			COLUMN_TYPE,
			IS_NULLABLE,
			COLUMN_KEY,
			COLUMN_DEFAULT
		FROM
			INFORMATION_SCHEMA.COLUMNS
		WHERE
			TABLE_SCHEMA = ? AND TABLE_NAME = ?
		ORDER BY
			ORDINAL_POSITION
	`
}
