package repository

import "context"

// RepositoryFactory provides repositories bound to a single transaction.
type RepositoryFactory interface {
	WatchRepo() WatchRepository
	CustomerRepo() CustomerRepository
	OrderRepo() OrderRepository
}

// TransactionManager runs a function inside a database transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepo RepositoryFactory) error) error
}
