package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/marketnet/marketd/internal/config"
	"github.com/marketnet/marketd/internal/core/application"
	"github.com/marketnet/marketd/internal/core/domain"
	"github.com/marketnet/marketd/internal/core/ports"
	"github.com/marketnet/marketd/internal/infrastructure/ledger"
	dbbadger "github.com/marketnet/marketd/internal/infrastructure/storage/db/badger"
	"github.com/marketnet/marketd/internal/infrastructure/storage/db/inmemory"
	"github.com/marketnet/marketd/internal/infrastructure/wallet"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbDir := ""
	if config.GetString(config.DBTypeKey) == config.DBBadger {
		dbDir = filepath.Join(config.GetDatadir(), config.DbLocation)
	}
	dbManager, err := dbbadger.NewDbManager(dbDir, nil)
	if err != nil {
		log.WithError(err).Fatal("error while opening db")
	}
	defer dbManager.Close()

	var transactionRepository domain.TransactionRepository
	switch config.GetString(config.DBTypeKey) {
	case config.DBInMemory:
		transactionRepository = inmemory.NewTransactionRepositoryImpl(
			inmemory.NewTransactionStore(),
		)
	default:
		transactionRepository = dbbadger.NewTransactionRepositoryImpl(dbManager)
	}

	var ledgerSvc ports.Ledger = ledger.NewBadgerLedger(dbManager)
	if !config.GetBool(config.NoLedgerBreakerKey) {
		ledgerSvc = ledger.NewBreakerLedger(ledgerSvc)
	}

	ownTrader := domain.TraderId(config.GetString(config.TraderIdKey))
	walletSvc := wallet.NewStubWallet(
		domain.WalletAddress(config.GetString(config.WalletAddressKey)),
	)

	tradeSvc := application.NewTradeService(
		ownTrader, transactionRepository, ledgerSvc, walletSvc,
	)

	if ref := config.GetString(config.RestoreBlockRefKey); ref != "" {
		if _, err := tradeSvc.RestoreTransaction(
			context.Background(), ports.BlockRef(ref),
		); err != nil {
			log.WithError(err).Fatal("error while restoring transaction from ledger")
		}
	}

	openTxs, err := transactionRepository.GetTransactionsForTrader(
		context.Background(), ownTrader,
	)
	if err != nil {
		log.WithError(err).Fatal("error while loading open transactions")
	}

	pending := 0
	for _, tx := range openTxs {
		if tx.Status() == domain.StatusPending {
			pending++
		}
	}
	log.WithFields(log.Fields{
		"trader":  ownTrader.String(),
		"open":    len(openTxs),
		"pending": pending,
	}).Info("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	log.Info("shutting down")
}
