package types

import "sort"

// Row is a single result row keyed by column name. The column set is
// determined by the query that produced it, not by a fixed schema.
type Row map[string]any

// Record is a caller supplied column -> value payload for insert and
// update operations. Keys must be column names of the target table.
type Record map[string]any

// Columns returns the record's column names in sorted order so that
// generated statements are deterministic for a given payload.
func (r Record) Columns() []string {
	columns := make([]string, 0, len(r))
	for column := range r {
		columns = append(columns, column)
	}
	sort.Strings(columns)
	return columns
}

// Values returns the record's values in the order of the given columns.
func (r Record) Values(columns []string) []any {
	values := make([]any, 0, len(columns))
	for _, column := range columns {
		values = append(values, r[column])
	}
	return values
}

// Clone returns a shallow copy, so fixtures can hand out mutable copies
// of shared payloads.
func (r Record) Clone() Record {
	clone := make(Record, len(r))
	for column, value := range r {
		clone[column] = value
	}
	return clone
}
