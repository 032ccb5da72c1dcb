// Package ledger provides the local implementations of the ports.Ledger
// collaborator: a badger-backed block store, plus a circuit-breaker
// decorator for ledgers sitting behind an unreliable boundary.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/timshannon/badgerhold/v4"

	"github.com/marketnet/marketd/internal/core/ports"
	dbbadger "github.com/marketnet/marketd/internal/infrastructure/storage/db/badger"

	"github.com/marketnet/marketd/internal/core/domain"
)

type badgerLedger struct {
	db *DbStore
}

// DbStore aliases the badger db manager so callers don't import the storage
// package for the ledger alone.
type DbStore = dbbadger.DbManager

// NewBadgerLedger returns a ports.Ledger writing blocks to the ledger store
// of the given db manager. Block references are freshly minted uuids.
func NewBadgerLedger(db *DbStore) ports.Ledger {
	return &badgerLedger{db: db}
}

func (l *badgerLedger) WriteBlock(
	_ context.Context, record *domain.BlockRecord,
) (ports.BlockRef, error) {
	ref := ports.BlockRef(uuid.New().String())
	if err := l.db.LedgerStore.Insert(string(ref), *record); err != nil {
		return "", fmt.Errorf("writing block: %w", err)
	}
	return ref, nil
}

func (l *badgerLedger) ReadBlock(
	_ context.Context, ref ports.BlockRef,
) (*domain.BlockRecord, error) {
	var record domain.BlockRecord
	if err := l.db.LedgerStore.Get(string(ref), &record); err != nil {
		if errors.Is(err, badgerhold.ErrNotFound) {
			return nil, fmt.Errorf("block %s not found", ref)
		}
		return nil, fmt.Errorf("reading block: %w", err)
	}
	return &record, nil
}
