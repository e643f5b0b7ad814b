package types

// Condition is an opaque parameterized predicate fragment plus its
// positional bind values. The text is never parsed locally; it is
// appended after WHERE as-is and the args travel through the driver's
// placeholder binding.
type Condition struct {
	Text string
	Args []any
}

// Where builds a Condition from predicate text and positional args.
func Where(text string, args ...any) Condition {
	return Condition{Text: text, Args: args}
}

// Empty reports whether the condition carries no predicate text.
func (c Condition) Empty() bool {
	return c.Text == ""
}
