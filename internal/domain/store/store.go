// Package store ties the repository ports together behind a unit of work so
// orchestrators can run several of them in one transaction.
package store

import (
	"context"

	"github.com/habitpet/habitpet/internal/domain/companions"
	"github.com/habitpet/habitpet/internal/domain/ledger"
	"github.com/habitpet/habitpet/internal/domain/tasks"
	"github.com/habitpet/habitpet/internal/domain/titles"
	"github.com/habitpet/habitpet/internal/domain/users"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// Repositories is bound to a single transaction or to the plain pool.
type Repositories struct {
	Users      users.Repository
	Tasks      tasks.Repository
	Companions companions.Repository
	Kinds      companions.KindRepository
	Ledger     ledger.Repository
	Titles     titles.Repository
}

// TxFunc receives repositories bound to the running transaction. Returning
// an error rolls everything back.
type TxFunc func(ctx context.Context, repos Repositories) error

type UnitOfWork interface {
	// WithTransaction runs fn atomically. It may run fn more than once when
	// the store reports a serialization conflict, so fn must not keep state
	// between attempts.
	WithTransaction(ctx context.Context, fn TxFunc) error
	// Repositories returns repositories outside any transaction, for reads.
	Repositories() Repositories
}
