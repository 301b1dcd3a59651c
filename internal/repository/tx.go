package repository

import "context"

// Tx is the part of a database transaction the repositories rely on
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
