package fixtures_test

import (
	"context"
	"testing"

	"github.com/querybench/querybench/fixtures"
	"github.com/querybench/querybench/store"
	"github.com/querybench/querybench/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *store.Config {
	return &store.Config{
		Host:     "localhost",
		Port:     3306,
		Username: "root",
		Password: "secret1234",
		Database: "querybench_test",
	}
}

func testStore(t *testing.T) *store.Store {
	t.Helper()

	st := store.New(testConfig())
	if err := st.Open(context.Background()); err != nil {
		t.Skipf("test backend not reachable: %s", err)
	}
	t.Cleanup(func() {
		_ = fixtures.Teardown(context.Background(), st)
		_ = st.Close()
	})

	require.NoError(t, fixtures.Setup(context.Background(), st))
	return st
}

func TestSetupCreatesSchema(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	for _, table := range fixtures.Tables {
		exists, err := st.TableExists(ctx, table)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist after setup", table)
	}
}

func TestSeedPopulatesAllTables(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	require.NoError(t, fixtures.Seed(ctx, testConfig(), 5))

	for _, table := range fixtures.Tables {
		count, err := st.Count(ctx, table, types.Condition{})
		require.NoError(t, err)
		assert.EqualValues(t, 5, count, "table %s should hold 5 seeded rows", table)
	}
}

func TestResetClearsTables(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	require.NoError(t, fixtures.Seed(ctx, testConfig(), 3))
	require.NoError(t, fixtures.Reset(ctx, st))

	for _, table := range fixtures.Tables {
		count, err := st.Count(ctx, table, types.Condition{})
		require.NoError(t, err)
		assert.Zero(t, count, "table %s should be empty after reset", table)
	}
}
