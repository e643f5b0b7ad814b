package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStatements(t *testing.T) {
	cases := []struct {
		name     string
		script   string
		expected []string
	}{
		{
			name:     "two statements",
			script:   "DROP TABLE IF EXISTS a; DROP TABLE IF EXISTS b;",
			expected: []string{"DROP TABLE IF EXISTS a", "DROP TABLE IF EXISTS b"},
		},
		{
			name:     "trailing statement without delimiter",
			script:   "DROP TABLE IF EXISTS a; DROP TABLE IF EXISTS b",
			expected: []string{"DROP TABLE IF EXISTS a", "DROP TABLE IF EXISTS b"},
		},
		{
			name:     "delimiter inside single-quoted literal",
			script:   "INSERT INTO t (v) VALUES ('a;b'); DELETE FROM t",
			expected: []string{"INSERT INTO t (v) VALUES ('a;b')", "DELETE FROM t"},
		},
		{
			name:     "delimiter inside double-quoted literal",
			script:   `UPDATE t SET v = "x;y"; SELECT 1`,
			expected: []string{`UPDATE t SET v = "x;y"`, "SELECT 1"},
		},
		{
			name:     "escaped quote keeps literal open",
			script:   `INSERT INTO t (v) VALUES ('it\'s; fine'); SELECT 1`,
			expected: []string{`INSERT INTO t (v) VALUES ('it\'s; fine')`, "SELECT 1"},
		},
		{
			name:     "backticked identifier with delimiter",
			script:   "SELECT `a;b` FROM t; SELECT 2",
			expected: []string{"SELECT `a;b` FROM t", "SELECT 2"},
		},
		{
			name:     "empty fragments dropped",
			script:   ";;  ;\nSELECT 1;\n;",
			expected: []string{"SELECT 1"},
		},
		{
			name:     "whitespace only",
			script:   "   \n\t  ",
			expected: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitStatements(tc.script))
		})
	}
}
