package types

// Column describes one table column as reported by the backend's
// information schema, ordered by physical column position.
type Column struct {
	Name       string  `json:"name"`
	DataType   string  `json:"data_type"`
	ColumnType string  `json:"column_type"`
	Nullable   bool    `json:"nullable"`
	Key        string  `json:"key,omitempty"`
	Default    *string `json:"default,omitempty"`
}
