package domain

import "context"

// TransactionRepository is the abstraction for any kind of database intended
// to persist Transactions.
type TransactionRepository interface {
	// AddTransaction stores a new transaction, failing if one with the same
	// id already exists.
	AddTransaction(ctx context.Context, transaction *Transaction) error
	// GetTransaction returns the transaction with the given id, or
	// ErrTransactionNotFound.
	GetTransaction(ctx context.Context, id TransactionId) (*Transaction, error)
	// GetAllTransactions returns all the transactions stored in the
	// repository.
	GetAllTransactions(ctx context.Context) ([]*Transaction, error)
	// GetTransactionsForTrader returns all the transactions owned by the
	// given trader.
	GetTransactionsForTrader(ctx context.Context, traderId TraderId) ([]*Transaction, error)
	// GetCompletedTransactions returns all the transactions whose legs are
	// both fully transferred.
	GetCompletedTransactions(ctx context.Context) ([]*Transaction, error)
	// UpdateTransaction allows to commit multiple changes to the same
	// transaction in a transactional way.
	UpdateTransaction(
		ctx context.Context,
		id TransactionId,
		updateFn func(tx *Transaction) (*Transaction, error),
	) error
	// NextTransactionNumber mints the next number of the given trader's
	// local transaction sequence.
	NextTransactionNumber(ctx context.Context, traderId TraderId) (TransactionNumber, error)
}
