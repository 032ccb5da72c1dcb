package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/marketnet/marketd/internal/core/domain"
	dbbadger "github.com/marketnet/marketd/internal/infrastructure/storage/db/badger"
)

func main() {
	app := cli.NewApp()

	app.Version = "0.0.1"
	app.Name = "market operator CLI"
	app.Usage = "Command line interface for marketd daemon operators"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "datadir",
			Usage: "the data directory of the marketd daemon",
			Value: defaultDatadir(),
		},
	}
	app.Commands = append(
		app.Commands,
		&listtransactions,
		&showtransaction,
	)

	err := app.Run(os.Args)
	if err != nil {
		fatal(err)
	}
}

func openRepository(ctx *cli.Context) (domain.TransactionRepository, func(), error) {
	dbManager, err := dbbadger.NewDbManager(
		filepath.Join(ctx.String("datadir"), "db"), nil,
	)
	if err != nil {
		return nil, nil, err
	}
	return dbbadger.NewTransactionRepositoryImpl(dbManager), dbManager.Close, nil
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".marketd"
	}
	return filepath.Join(home, ".marketd")
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "[market] %v\n", err)
	os.Exit(1)
}
