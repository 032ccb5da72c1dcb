package ledger

import (
	"context"

	"github.com/sony/gobreaker"

	"github.com/marketnet/marketd/internal/core/domain"
	"github.com/marketnet/marketd/internal/core/ports"
	"github.com/marketnet/marketd/pkg/circuitbreaker"
)

type breakerLedger struct {
	inner ports.Ledger
	cb    *gobreaker.CircuitBreaker
}

// NewBreakerLedger decorates the given ledger with a circuit breaker, so a
// repeatedly failing ledger backend stops being hammered with checkpoint
// writes.
func NewBreakerLedger(inner ports.Ledger) ports.Ledger {
	return &breakerLedger{
		inner: inner,
		cb:    circuitbreaker.NewCircuitBreaker(),
	}
}

func (l *breakerLedger) WriteBlock(
	ctx context.Context, record *domain.BlockRecord,
) (ports.BlockRef, error) {
	res, err := l.cb.Execute(func() (interface{}, error) {
		return l.inner.WriteBlock(ctx, record)
	})
	if err != nil {
		return "", err
	}
	return res.(ports.BlockRef), nil
}

func (l *breakerLedger) ReadBlock(
	ctx context.Context, ref ports.BlockRef,
) (*domain.BlockRecord, error) {
	res, err := l.cb.Execute(func() (interface{}, error) {
		return l.inner.ReadBlock(ctx, ref)
	})
	if err != nil {
		return nil, err
	}
	return res.(*domain.BlockRecord), nil
}
