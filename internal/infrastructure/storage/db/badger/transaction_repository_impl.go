package dbbadger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/timshannon/badgerhold/v4"

	"github.com/marketnet/marketd/internal/core/domain"
)

type transactionRepositoryImpl struct {
	db *DbManager

	// guards the scan in NextTransactionNumber against concurrent minting
	// for the same trader
	seqLock sync.Mutex
}

// NewTransactionRepositoryImpl returns a badgerhold-backed
// domain.TransactionRepository.
func NewTransactionRepositoryImpl(db *DbManager) domain.TransactionRepository {
	return &transactionRepositoryImpl{db: db}
}

func (r *transactionRepositoryImpl) AddTransaction(
	_ context.Context, transaction *domain.Transaction,
) error {
	if err := r.db.TxStore.Insert(
		transaction.TransactionId.String(), *transaction,
	); err != nil {
		if errors.Is(err, badgerhold.ErrKeyExists) {
			return fmt.Errorf(
				"transaction %s already stored", transaction.TransactionId,
			)
		}
		return err
	}
	return nil
}

func (r *transactionRepositoryImpl) GetTransaction(
	_ context.Context, id domain.TransactionId,
) (*domain.Transaction, error) {
	return r.getTransaction(id)
}

func (r *transactionRepositoryImpl) GetAllTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	return r.findTransactions(nil)
}

func (r *transactionRepositoryImpl) GetTransactionsForTrader(
	_ context.Context, traderId domain.TraderId,
) ([]*domain.Transaction, error) {
	query := badgerhold.Where("TransactionId.TraderId").Eq(traderId)
	return r.findTransactions(query)
}

func (r *transactionRepositoryImpl) GetCompletedTransactions(
	_ context.Context,
) ([]*domain.Transaction, error) {
	// completion is derived, not stored, so it cannot be part of the query
	all, err := r.findTransactions(nil)
	if err != nil {
		return nil, err
	}

	completed := make([]*domain.Transaction, 0)
	for _, tx := range all {
		if tx.IsPaymentComplete() {
			completed = append(completed, tx)
		}
	}
	return completed, nil
}

func (r *transactionRepositoryImpl) UpdateTransaction(
	_ context.Context,
	id domain.TransactionId,
	updateFn func(tx *domain.Transaction) (*domain.Transaction, error),
) error {
	currentTx, err := r.getTransaction(id)
	if err != nil {
		return err
	}

	updatedTx, err := updateFn(currentTx)
	if err != nil {
		return err
	}

	return r.db.TxStore.Update(updatedTx.TransactionId.String(), *updatedTx)
}

func (r *transactionRepositoryImpl) NextTransactionNumber(
	ctx context.Context, traderId domain.TraderId,
) (domain.TransactionNumber, error) {
	r.seqLock.Lock()
	defer r.seqLock.Unlock()

	transactions, err := r.GetTransactionsForTrader(ctx, traderId)
	if err != nil {
		return 0, err
	}

	next := domain.TransactionNumber(1)
	for _, tx := range transactions {
		if tx.TransactionId.TransactionNumber >= next {
			next = tx.TransactionId.TransactionNumber + 1
		}
	}
	return next, nil
}

func (r *transactionRepositoryImpl) getTransaction(
	id domain.TransactionId,
) (*domain.Transaction, error) {
	var tx domain.Transaction
	if err := r.db.TxStore.Get(id.String(), &tx); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepositoryImpl) findTransactions(
	query *badgerhold.Query,
) ([]*domain.Transaction, error) {
	var list []domain.Transaction
	if err := r.db.TxStore.Find(&list, query); err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(list))
	for i := range list {
		tx := list[i]
		transactions = append(transactions, &tx)
	}
	return transactions, nil
}
