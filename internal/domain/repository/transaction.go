package repository

import "context"

// TransactionManager owns unit-of-work boundaries.
// The use case layer opens a unit of work and passes the bound factory into
// the core; the core never begins, commits or rolls back on its own.
type TransactionManager interface {
	// Execute runs fn within a single transaction.
	// A non-nil error from fn rolls back every write made through the factory;
	// otherwise the transaction is committed.
	Execute(ctx context.Context, fn func(uow RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to one unit of work.
// A factory obtained outside Execute reads and writes without a transaction.
type RepositoryFactory interface {
	Actors() ActorRepository
	FoodBanks() FoodBankRepository
	FoodItems() FoodItemRepository
	Districts() DistrictRepository
	Inventory() InventoryRepository
	Requests() RequestRepository
}
