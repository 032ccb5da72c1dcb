package ports

import (
	"context"

	"github.com/marketnet/marketd/internal/core/domain"
)

// BlockRef addresses one block written to the ledger.
type BlockRef string

// Ledger is the append-only audit chain collaborator. The core only relies
// on the write/read contract and the block record shape; hashing, signing
// and replication are the ledger's business.
type Ledger interface {
	// WriteBlock appends a transaction checkpoint and returns a reference
	// to the written block.
	WriteBlock(ctx context.Context, record *domain.BlockRecord) (BlockRef, error)
	// ReadBlock returns the record stored in the referenced block.
	ReadBlock(ctx context.Context, ref BlockRef) (*domain.BlockRecord, error)
}
