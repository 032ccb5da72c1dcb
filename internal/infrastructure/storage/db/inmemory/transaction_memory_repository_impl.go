package inmemory

import (
	"context"
	"fmt"
	"sync"

	"github.com/marketnet/marketd/internal/core/domain"
)

type transactionInmemoryStore struct {
	transactions map[domain.TransactionId]*domain.Transaction
	sequences    map[domain.TraderId]domain.TransactionNumber
	locker       *sync.Mutex
}

// NewTransactionStore returns the in-memory store to back a
// TransactionRepository with.
func NewTransactionStore() *transactionInmemoryStore {
	return &transactionInmemoryStore{
		transactions: map[domain.TransactionId]*domain.Transaction{},
		sequences:    map[domain.TraderId]domain.TransactionNumber{},
		locker:       &sync.Mutex{},
	}
}

type transactionRepositoryImpl struct {
	store *transactionInmemoryStore
}

// NewTransactionRepositoryImpl returns a new inmemory TransactionRepository
// implementation.
func NewTransactionRepositoryImpl(store *transactionInmemoryStore) domain.TransactionRepository {
	return &transactionRepositoryImpl{store}
}

func (r transactionRepositoryImpl) AddTransaction(
	_ context.Context, transaction *domain.Transaction,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.transactions[transaction.TransactionId]; ok {
		return fmt.Errorf("transaction %s already stored", transaction.TransactionId)
	}
	r.store.transactions[transaction.TransactionId] = transaction
	return nil
}

func (r transactionRepositoryImpl) GetTransaction(
	_ context.Context, id domain.TransactionId,
) (*domain.Transaction, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	return r.getTransaction(id)
}

func (r transactionRepositoryImpl) GetAllTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	transactions := make([]*domain.Transaction, 0, len(r.store.transactions))
	for _, tx := range r.store.transactions {
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

func (r transactionRepositoryImpl) GetTransactionsForTrader(
	_ context.Context, traderId domain.TraderId,
) ([]*domain.Transaction, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	transactions := make([]*domain.Transaction, 0)
	for _, tx := range r.store.transactions {
		if tx.TransactionId.TraderId == traderId {
			transactions = append(transactions, tx)
		}
	}
	return transactions, nil
}

func (r transactionRepositoryImpl) GetCompletedTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	completed := make([]*domain.Transaction, 0)
	for _, tx := range r.store.transactions {
		if tx.IsPaymentComplete() {
			completed = append(completed, tx)
		}
	}
	return completed, nil
}

func (r transactionRepositoryImpl) UpdateTransaction(
	_ context.Context,
	id domain.TransactionId,
	updateFn func(tx *domain.Transaction) (*domain.Transaction, error),
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	currentTx, err := r.getTransaction(id)
	if err != nil {
		return err
	}

	updatedTx, err := updateFn(currentTx)
	if err != nil {
		return err
	}

	r.store.transactions[id] = updatedTx
	return nil
}

func (r transactionRepositoryImpl) NextTransactionNumber(
	_ context.Context, traderId domain.TraderId,
) (domain.TransactionNumber, error) {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	r.store.sequences[traderId]++
	return r.store.sequences[traderId], nil
}

func (r transactionRepositoryImpl) getTransaction(
	id domain.TransactionId,
) (*domain.Transaction, error) {
	tx, ok := r.store.transactions[id]
	if !ok {
		return nil, domain.ErrTransactionNotFound
	}
	return tx, nil
}
