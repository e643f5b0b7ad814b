package store

import "strings"

// splitStatements splits a multi-statement script on `;` while
// respecting single-quoted, double-quoted and backtick-quoted regions
// and backslash escapes inside them, so delimiters embedded in string
// literals do not corrupt statements. A trailing statement without a
// delimiter is kept. Empty fragments are dropped.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	var quote rune
	escaped := false

	flush := func() {
		statement := strings.TrimSpace(current.String())
		if statement != "" {
			statements = append(statements, statement)
		}
		current.Reset()
	}

	for _, r := range script {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case quote != 0 && r == '\\' && quote != '`':
			current.WriteRune(r)
			escaped = true
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
			current.WriteRune(r)
		case r == ';':
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return statements
}
