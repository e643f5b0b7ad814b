package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTernary(t *testing.T) {
	assert.Equal(t, 1, Ternary(true, 1, 2).(int))
	assert.Equal(t, 2, Ternary(false, 1, 2).(int))
}

func TestUnmarshalFile(t *testing.T) {
	dir := t.TempDir()

	type target struct {
		Host string `json:"host"`
		Port int    `json:"port"`
	}

	jsonPath := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"host": "localhost", "port": 3306}`), 0644))

	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("host: localhost\nport: 3306\n"), 0644))

	for _, path := range []string{jsonPath, yamlPath} {
		var decoded target
		require.NoError(t, UnmarshalFile(path, &decoded))
		assert.Equal(t, target{Host: "localhost", Port: 3306}, decoded)
	}

	var decoded target
	assert.Error(t, UnmarshalFile(filepath.Join(dir, "missing.json"), &decoded))
}

func TestULIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := ULID()
		require.Len(t, id, 26)
		require.False(t, seen[id], "duplicate ulid %s", id)
		seen[id] = true
	}
}

func TestErrExecSequentialCollectsAll(t *testing.T) {
	calls := 0
	err := ErrExecSequential(
		func() error { calls++; return errors.New("first") },
		func() error { calls++; return nil },
		func() error { calls++; return errors.New("third") },
	)

	assert.Equal(t, 3, calls, "every function runs regardless of earlier failures")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "third")
}

func TestValidate(t *testing.T) {
	type config struct {
		Host     string `validate:"required"`
		Username string `validate:"required"`
	}

	assert.NoError(t, Validate(&config{Host: "h", Username: "u"}))

	err := Validate(&config{Host: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Username")
}
