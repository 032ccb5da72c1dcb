package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/marketnet/marketd/internal/core/domain"
)

var showtransaction = cli.Command{
	Name:      "transaction",
	Usage:     "show the ledger checkpoint of a transaction",
	ArgsUsage: "<trader_id>.<transaction_number>",
	Action:    showTransactionAction,
}

func showTransactionAction(ctx *cli.Context) error {
	id, err := parseTransactionId(ctx.Args().First())
	if err != nil {
		return err
	}

	repo, cleanup, err := openRepository(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	tx, err := repo.GetTransaction(ctx.Context, id)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(tx.ToBlockRecord(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func parseTransactionId(arg string) (domain.TransactionId, error) {
	i := strings.LastIndex(arg, ".")
	if i <= 0 || i == len(arg)-1 {
		return domain.TransactionId{}, fmt.Errorf(
			"invalid transaction id, expected <trader_id>.<transaction_number>",
		)
	}

	number, err := strconv.ParseInt(arg[i+1:], 10, 64)
	if err != nil {
		return domain.TransactionId{}, fmt.Errorf("invalid transaction number: %s", err)
	}
	txNumber, err := domain.NewTransactionNumber(number)
	if err != nil {
		return domain.TransactionId{}, err
	}

	return domain.NewTransactionId(domain.TraderId(arg[:i]), txNumber), nil
}
