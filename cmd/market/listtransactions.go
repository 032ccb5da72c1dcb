package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/marketnet/marketd/internal/core/domain"
)

var listtransactions = cli.Command{
	Name:  "transactions",
	Usage: "get a list of all transactions tracked by the daemon",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "trader",
			Usage: "only list transactions owned by this trader id",
		},
		&cli.BoolFlag{
			Name:  "completed",
			Usage: "only list transactions with both legs fully transferred",
		},
	},
	Action: listTransactionsAction,
}

func listTransactionsAction(ctx *cli.Context) error {
	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	var transactions []*domain.Transaction
	switch {
	case ctx.Bool("completed"):
		transactions, err = repo.GetCompletedTransactions(ctx.Context)
	case ctx.String("trader") != "":
		transactions, err = repo.GetTransactionsForTrader(
			ctx.Context, domain.TraderId(ctx.String("trader")),
		)
	default:
		transactions, err = repo.GetAllTransactions(ctx.Context)
	}
	if err != nil {
		return err
	}

	for _, tx := range transactions {
		fmt.Printf(
			"%s\t%s\t%s of %s\t%s\n",
			tx.TransactionId, tx.Status(),
			tx.TransferredAssets, tx.Assets, tx.Timestamp.Time(),
		)
	}
	return nil
}
