package domain

import (
	"fmt"
	"math"
	"strconv"
)

// TraderId is the opaque identifier of a peer in the market overlay,
// derived from its network address by the messaging layer. The core treats
// it as a value key with a stable textual encoding.
type TraderId string

func (id TraderId) String() string {
	return string(id)
}

// OrderNumber is the position of an order in its trader's local sequence.
type OrderNumber uint32

// NewOrderNumber validates that the given number can be used as an order
// number, failing with ErrInvalidArgument for negative values.
func NewOrderNumber(n int64) (OrderNumber, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: order number must not be negative", ErrInvalidArgument)
	}
	return OrderNumber(n), nil
}

// OrderNumberFromFloat validates a numeric value decoded from an external
// record. Fractional values are a contract violation, not truncated.
func OrderNumberFromFloat(f float64) (OrderNumber, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: order number must be a whole number", ErrInvalidArgument)
	}
	return NewOrderNumber(int64(f))
}

func (n OrderNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// TransactionNumber is the position of a transaction in its trader's local
// sequence. Together with the trader it makes a transaction globally
// addressable.
type TransactionNumber uint32

// NewTransactionNumber validates that the given number can be used as a
// transaction number, failing with ErrInvalidArgument for negative values.
func NewTransactionNumber(n int64) (TransactionNumber, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: transaction number must not be negative", ErrInvalidArgument)
	}
	return TransactionNumber(n), nil
}

// TransactionNumberFromFloat validates a numeric value decoded from an
// external record. Fractional values are a contract violation, not truncated.
func TransactionNumberFromFloat(f float64) (TransactionNumber, error) {
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: transaction number must be a whole number", ErrInvalidArgument)
	}
	return NewTransactionNumber(int64(f))
}

func (n TransactionNumber) String() string {
	return strconv.FormatUint(uint64(n), 10)
}

// OrderId addresses one order of one trader. Equality is structural over
// both components, so ids of different traders never collide.
type OrderId struct {
	TraderId    TraderId
	OrderNumber OrderNumber
}

// NewOrderId returns the id of the order with the given number owned by the
// given trader.
func NewOrderId(traderId TraderId, orderNumber OrderNumber) OrderId {
	return OrderId{TraderId: traderId, OrderNumber: orderNumber}
}

func (id OrderId) String() string {
	return fmt.Sprintf("%s.%s", id.TraderId, id.OrderNumber)
}

// TransactionId addresses one transaction of one trader.
type TransactionId struct {
	TraderId          TraderId
	TransactionNumber TransactionNumber
}

// NewTransactionId returns the id of the transaction with the given number
// owned by the given trader.
func NewTransactionId(traderId TraderId, transactionNumber TransactionNumber) TransactionId {
	return TransactionId{TraderId: traderId, TransactionNumber: transactionNumber}
}

func (id TransactionId) String() string {
	return fmt.Sprintf("%s.%s", id.TraderId, id.TransactionNumber)
}
