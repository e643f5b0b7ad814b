package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordColumnsSorted(t *testing.T) {
	record := Record{"username": "u", "age": 25, "email": "e"}
	assert.Equal(t, []string{"age", "email", "username"}, record.Columns())
}

func TestRecordValuesFollowColumnOrder(t *testing.T) {
	record := Record{"username": "u", "age": 25, "email": "e"}
	columns := record.Columns()
	assert.Equal(t, []any{25, "e", "u"}, record.Values(columns))
}

func TestRecordClone(t *testing.T) {
	record := Record{"username": "u"}
	clone := record.Clone()
	clone["username"] = "other"

	assert.Equal(t, "u", record["username"])
	assert.Equal(t, "other", clone["username"])
}

func TestCondition(t *testing.T) {
	assert.True(t, Condition{}.Empty())

	cond := Where("id = ? AND age > ?", 7, 18)
	assert.False(t, cond.Empty())
	assert.Equal(t, "id = ? AND age > ?", cond.Text)
	assert.Equal(t, []any{7, 18}, cond.Args)
}
