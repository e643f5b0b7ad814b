package utils

import "database/sql"

// MapScan reads the current row into dest keyed by column name. Value
// types are whatever the driver produced for the active protocol;
// callers normalize where it matters.
func MapScan(rows *sql.Rows, dest map[string]any) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}

	scanValues := make([]any, len(columns))
	for i := range scanValues {
		scanValues[i] = new(any)
	}

	if err := rows.Scan(scanValues...); err != nil {
		return err
	}

	for i, column := range columns {
		dest[column] = *(scanValues[i].(*any))
	}

	return nil
}
