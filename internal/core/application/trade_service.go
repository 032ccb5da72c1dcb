package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/marketnet/marketd/internal/core/domain"
	"github.com/marketnet/marketd/internal/core/ports"
	"github.com/marketnet/marketd/pkg/wire"
)

// TradeService drives accepted trades to settlement: it opens transactions
// for accepted proposals, applies wallet payment reports and checkpoints
// every change to the ledger.
type TradeService interface {
	// AcceptTrade opens a transaction for the given proposal and returns
	// the initiation message to send back to the proposer.
	AcceptTrade(ctx context.Context, trade *domain.Trade) (*wire.StartTransaction, error)
	// RegisterPayment records a wallet payment report against the given
	// transaction, checkpoints it and returns the resulting status.
	RegisterPayment(
		ctx context.Context, id domain.TransactionId, report *ports.PaymentReport,
	) (domain.TransactionStatus, error)
	// NextPaymentAmount returns what is still owed on the requested leg.
	NextPaymentAmount(
		ctx context.Context, id domain.TransactionId, forFirstLeg bool,
	) (domain.AssetAmount, error)
	// ExecuteNextPayment asks the wallet to transfer the outstanding amount
	// of the requested leg and records the outcome.
	ExecuteNextPayment(
		ctx context.Context, id domain.TransactionId, forFirstLeg bool,
		destination domain.WalletAddress,
	) (domain.TransactionStatus, error)
	// RestoreTransaction rebuilds a transaction from its latest ledger
	// checkpoint and stores it, for crash recovery.
	RestoreTransaction(ctx context.Context, ref ports.BlockRef) (*domain.Transaction, error)
}

type tradeService struct {
	ownTrader             domain.TraderId
	transactionRepository domain.TransactionRepository
	ledgerSvc             ports.Ledger
	walletSvc             ports.Wallet
}

// NewTradeService returns a TradeService settling trades on behalf of the
// given trader.
func NewTradeService(
	ownTrader domain.TraderId,
	transactionRepository domain.TransactionRepository,
	ledgerSvc ports.Ledger,
	walletSvc ports.Wallet,
) TradeService {
	return &tradeService{
		ownTrader:             ownTrader,
		transactionRepository: transactionRepository,
		ledgerSvc:             ledgerSvc,
		walletSvc:             walletSvc,
	}
}

func (s *tradeService) AcceptTrade(
	ctx context.Context, trade *domain.Trade,
) (*wire.StartTransaction, error) {
	nextNumber, err := s.transactionRepository.NextTransactionNumber(ctx, s.ownTrader)
	if err != nil {
		return nil, err
	}

	transactionId := domain.NewTransactionId(s.ownTrader, nextNumber)
	transaction := domain.TransactionFromProposedTrade(trade, transactionId)

	if err := s.transactionRepository.AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	if _, err := s.checkpoint(ctx, transaction); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"transaction": transactionId.String(),
		"assets":      transaction.Assets.String(),
		"price":       trade.Price(),
	}).Info("trade accepted")

	return wire.NewStartTransaction(
		s.ownTrader, transactionId,
		transaction.OrderId, transaction.PartnerOrderId,
		trade.ProposalId, transaction.Assets, transaction.Timestamp,
	), nil
}

func (s *tradeService) RegisterPayment(
	ctx context.Context, id domain.TransactionId, report *ports.PaymentReport,
) (domain.TransactionStatus, error) {
	payment := domain.NewPayment(
		s.ownTrader, id, report.Amount,
		report.Source, report.Destination, report.PaymentId,
		domain.NewTimestamp(), report.Success,
	)

	var status domain.TransactionStatus
	var updatedTx *domain.Transaction
	if err := s.transactionRepository.UpdateTransaction(
		ctx, id, func(tx *domain.Transaction) (*domain.Transaction, error) {
			if err := tx.AddPayment(payment); err != nil {
				return nil, err
			}
			status = tx.Status()
			updatedTx = tx
			return tx, nil
		},
	); err != nil {
		return 0, err
	}

	ref, err := s.checkpoint(ctx, updatedTx)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"transaction": id.String(),
		"amount":      report.Amount.String(),
		"status":      status.String(),
		"block":       string(ref),
	}).Info("payment recorded")

	return status, nil
}

func (s *tradeService) NextPaymentAmount(
	ctx context.Context, id domain.TransactionId, forFirstLeg bool,
) (domain.AssetAmount, error) {
	transaction, err := s.transactionRepository.GetTransaction(ctx, id)
	if err != nil {
		return domain.AssetAmount{}, err
	}
	return transaction.NextPayment(forFirstLeg)
}

func (s *tradeService) ExecuteNextPayment(
	ctx context.Context, id domain.TransactionId, forFirstLeg bool,
	destination domain.WalletAddress,
) (domain.TransactionStatus, error) {
	owed, err := s.NextPaymentAmount(ctx, id, forFirstLeg)
	if err != nil {
		return 0, err
	}

	report, err := s.walletSvc.Transfer(ctx, owed, destination)
	if err != nil {
		return 0, err
	}
	if report.Source == "" {
		// wallets that do not report a source get the receiving address of
		// the transferred asset recorded instead
		source, err := s.walletSvc.Address(ctx, owed.AssetType)
		if err != nil {
			return 0, err
		}
		report.Source = source
	}
	if !report.Success {
		log.WithFields(log.Fields{
			"transaction": id.String(),
			"amount":      owed.String(),
		}).Warn("wallet reported failed transfer")
	}

	return s.RegisterPayment(ctx, id, report)
}

func (s *tradeService) RestoreTransaction(
	ctx context.Context, ref ports.BlockRef,
) (*domain.Transaction, error) {
	record, err := s.ledgerSvc.ReadBlock(ctx, ref)
	if err != nil {
		return nil, err
	}

	transaction, err := domain.TransactionFromBlock(record)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepository.AddTransaction(ctx, transaction); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"transaction": transaction.TransactionId.String(),
		"transferred": transaction.TransferredAssets.String(),
	}).Info("transaction restored from ledger")

	return transaction, nil
}

func (s *tradeService) checkpoint(
	ctx context.Context, transaction *domain.Transaction,
) (ports.BlockRef, error) {
	ref, err := s.ledgerSvc.WriteBlock(ctx, transaction.ToBlockRecord())
	if err != nil {
		log.WithError(err).WithField(
			"transaction", transaction.TransactionId.String(),
		).Error("failed to checkpoint transaction")
		return "", err
	}
	return ref, nil
}
