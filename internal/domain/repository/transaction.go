package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// The pair-keyed decision-layer writes (event transition + match/friend
// create-or-update) run through this so both sides commit atomically.
type RepositoryFactory interface {
	// NewProximityEventRepository returns an event repository bound to the current transaction.
	NewProximityEventRepository() ProximityEventRepository

	// NewMatchRepository returns a match repository bound to the current transaction.
	NewMatchRepository() MatchRepository

	// NewFriendRepository returns a friend repository bound to the current transaction.
	NewFriendRepository() FriendRepository
}
