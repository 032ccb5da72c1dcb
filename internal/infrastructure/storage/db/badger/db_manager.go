package dbbadger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"
)

// DbManager holds all the badgerhold stores in a single data structure.
type DbManager struct {
	TxStore     *badgerhold.Store
	LedgerStore *badgerhold.Store
}

// NewDbManager opens (or creates if not exists) the badger stores under the
// given base data dir, one dedicated directory for transactions and one for
// ledger blocks. An empty base dir opens volatile in-memory stores, used by
// tests and the inmemory db type.
func NewDbManager(baseDbDir string, logger badger.Logger) (*DbManager, error) {
	txDir, ledgerDir := "", ""
	if baseDbDir != "" {
		txDir = baseDbDir + "/transactions"
		ledgerDir = baseDbDir + "/ledger"
	}

	txDb, err := createDb(txDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening transactions db: %w", err)
	}

	ledgerDb, err := createDb(ledgerDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening ledger db: %w", err)
	}

	return &DbManager{
		TxStore:     txDb,
		LedgerStore: ledgerDb,
	}, nil
}

// Close closes all the stores.
func (d DbManager) Close() {
	d.TxStore.Close()
	d.LedgerStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger
func JSONEncode(value interface{}) ([]byte, error) {
	var buff bytes.Buffer

	en := json.NewEncoder(&buff)

	err := en.Encode(value)
	if err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

// JSONDecode is a custom JSON based decoder for badger
func JSONDecode(data []byte, value interface{}) error {
	var buff bytes.Buffer
	de := json.NewDecoder(&buff)

	_, err := buff.Write(data)
	if err != nil {
		return err
	}

	return de.Decode(value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger
	if dbDir == "" {
		opts = opts.WithInMemory(true)
	}

	return badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
}
