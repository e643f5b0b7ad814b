package sqlgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertQuery(t *testing.T) {
	query := InsertQuery("users", []string{"email", "username"})
	assert.Equal(t, "INSERT INTO `users` (`email`, `username`) VALUES (?, ?)", query)
}

func TestUpdateQuery(t *testing.T) {
	query := UpdateQuery("users", []string{"age", "email"}, "id = ?")
	assert.Equal(t, "UPDATE `users` SET `age` = ?, `email` = ? WHERE id = ?", query)
}

func TestDeleteQuery(t *testing.T) {
	query := DeleteQuery("orders", "status = ? AND quantity > ?")
	assert.Equal(t, "DELETE FROM `orders` WHERE status = ? AND quantity > ?", query)
}

func TestSelectQuery(t *testing.T) {
	cases := []struct {
		name      string
		columns   []string
		condition string
		orderBy   string
		limit     int
		expected  string
	}{
		{
			name:     "defaults",
			expected: "SELECT * FROM `users`",
		},
		{
			name:     "projection only",
			columns:  []string{"id", "username"},
			expected: "SELECT id, username FROM `users`",
		},
		{
			name:      "all clauses in fixed order",
			columns:   []string{"id"},
			condition: "age >= ?",
			orderBy:   "id DESC",
			limit:     5,
			expected:  "SELECT id FROM `users` WHERE age >= ? ORDER BY id DESC LIMIT 5",
		},
		{
			name:     "limit without condition",
			limit:    3,
			expected: "SELECT * FROM `users` LIMIT 3",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query := SelectQuery("users", tc.columns, tc.condition, tc.orderBy, tc.limit)
			assert.Equal(t, tc.expected, query)
		})
	}
}

func TestCountQuery(t *testing.T) {
	assert.Equal(t, "SELECT COUNT(*) AS count FROM `users`", CountQuery("users", ""))
	assert.Equal(t, "SELECT COUNT(*) AS count FROM `users` WHERE age > ?", CountQuery("users", "age > ?"))
}

func TestTruncateQuery(t *testing.T) {
	assert.Equal(t, "TRUNCATE TABLE `users`", TruncateQuery("users"))
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "?", Placeholders(1))
	assert.Equal(t, "?, ?, ?", Placeholders(3))
}

func TestQuoteIdentifierEscapesBackticks(t *testing.T) {
	assert.Equal(t, "`weird``name`", QuoteIdentifier("weird`name"))
}
