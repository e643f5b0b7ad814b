package utils

import (
	"context"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// ErrExec runs the functions concurrently and returns the first error.
// The seeder uses it to load independent tables on separate sessions.
func ErrExec(functions ...func() error) error {
	group, _ := errgroup.WithContext(context.Background())
	for _, fn := range functions {
		group.Go(fn)
	}

	return group.Wait()
}

// ErrExecSequential runs every function even after one fails and
// aggregates the failures, so a chain of cleanup steps (truncations,
// teardown) all get their turn.
func ErrExecSequential(functions ...func() error) error {
	var multErr error
	for _, fn := range functions {
		if err := fn(); err != nil {
			multErr = multierror.Append(multErr, err)
		}
	}

	return multErr
}
