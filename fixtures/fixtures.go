// Package fixtures owns the harness schema (users, products, orders)
// and the data used to exercise it: static known-good payloads, random
// generators and the setup/seed/teardown helpers the CLI and the
// integration tests share.
package fixtures

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/querybench/querybench/logger"
	"github.com/querybench/querybench/store"
	"github.com/querybench/querybench/types"
	"github.com/querybench/querybench/utils"
)

// Tables lists the harness tables in dependency order; teardown and
// truncation walk it in reverse-safe order already (orders first).
var Tables = []string{"orders", "products", "users"}

// ValidUser returns a payload satisfying every users constraint.
func ValidUser() types.Record {
	return types.Record{
		"username":      "testuser",
		"email":         "testuser@example.com",
		"password_hash": "hashed_password_123",
		"first_name":    "Test",
		"last_name":     "User",
		"age":           25,
		"is_active":     true,
	}
}

// ValidProduct returns a payload satisfying every products constraint.
func ValidProduct() types.Record {
	return types.Record{
		"name":         "Test Product",
		"description":  "A test product for automated testing",
		"price":        29.99,
		"stock":        100,
		"category":     "Electronics",
		"is_available": true,
	}
}

// Setup drops any leftover harness tables and creates them fresh.
func Setup(ctx context.Context, st *store.Store) error {
	if err := st.RunScript(ctx, DropTablesScript); err != nil {
		return fmt.Errorf("failed to drop harness tables: %s", err)
	}
	for _, ddl := range []string{CreateUsersTable, CreateProductsTable, CreateOrdersTable} {
		if err := st.RunScript(ctx, ddl); err != nil {
			return fmt.Errorf("failed to create harness table: %s", err)
		}
	}
	logger.Infof("harness schema ready")
	return nil
}

// Teardown drops the harness tables.
func Teardown(ctx context.Context, st *store.Store) error {
	return st.RunScript(ctx, DropTablesScript)
}

// Reset truncates all harness tables, toggling FOREIGN_KEY_CHECKS
// around the truncation since orders holds foreign keys into the other
// two tables. The store owns a single session, so the session variable
// applies to the truncate statements in between.
func Reset(ctx context.Context, st *store.Store) error {
	if _, err := st.Exec(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return err
	}
	truncates := make([]func() error, 0, len(Tables))
	for _, table := range Tables {
		table := table
		truncates = append(truncates, func() error {
			return st.Truncate(ctx, table)
		})
	}
	truncErr := utils.ErrExecSequential(truncates...)
	if _, err := st.Exec(ctx, "SET FOREIGN_KEY_CHECKS = 1"); err != nil {
		return err
	}
	return truncErr
}

// Seed bulk-loads count users and count products concurrently on
// independent sessions, then links them with count orders. A Store is
// single-session, so each goroutine opens its own.
func Seed(ctx context.Context, config *store.Config, count int) error {
	generator := NewGenerator(time.Now().UnixNano())

	// Rows are generated up front; the generator is not safe for
	// concurrent use, only the inserts run in parallel.
	userColumns, userRows := generator.BulkUsers(count)
	productColumns, productRows := generator.BulkProducts(count)

	err := utils.ErrExec(
		func() error {
			return store.With(ctx, config, func(st *store.Store) error {
				inserted, err := st.InsertMany(ctx, "users", userColumns, userRows)
				if err != nil {
					return fmt.Errorf("failed to seed users: %s", err)
				}
				logger.Infof("seeded %d users", inserted)
				return nil
			})
		},
		func() error {
			return store.With(ctx, config, func(st *store.Store) error {
				inserted, err := st.InsertMany(ctx, "products", productColumns, productRows)
				if err != nil {
					return fmt.Errorf("failed to seed products: %s", err)
				}
				logger.Infof("seeded %d products", inserted)
				return nil
			})
		},
	)
	if err != nil {
		return err
	}

	return store.With(ctx, config, func(st *store.Store) error {
		userIDs, err := tableIDs(ctx, st, "users")
		if err != nil {
			return err
		}
		productIDs, err := tableIDs(ctx, st, "products")
		if err != nil {
			return err
		}
		if len(userIDs) == 0 || len(productIDs) == 0 {
			return nil
		}

		for i := 0; i < count; i++ {
			order := generator.Order(userIDs[i%len(userIDs)], productIDs[i%len(productIDs)])
			if _, err := st.Insert(ctx, "orders", order); err != nil {
				return fmt.Errorf("failed to seed orders: %s", err)
			}
		}
		logger.Infof("seeded %d orders", count)
		return nil
	})
}

func tableIDs(ctx context.Context, st *store.Store, table string) ([]int64, error) {
	rows, err := st.Select(ctx, table, store.SelectOptions{Columns: []string{"id"}, OrderBy: "id"})
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(rows))
	for _, row := range rows {
		id, err := scanID(row["id"])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// scanID tolerates the driver's text protocol, which yields []byte for
// numeric columns on queries without bind parameters.
func scanID(value any) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected id type %T", value)
	}
}
