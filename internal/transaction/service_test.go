package transaction_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nmwangik/dukapay/internal/customer"
	"github.com/nmwangik/dukapay/internal/mpesa"
	"github.com/nmwangik/dukapay/internal/order"
	"github.com/nmwangik/dukapay/internal/transaction"
)

const (
	senderNumber = "+254712345678"
	senderName   = "JOHN DOE"
	// validMessage carries transaction QAZ123 for Ksh1,500.00 from JOHN
	// DOE at 0712345678.
	validMessage = "QAZ123 Confirmed. Ksh1,500.00 sent to JOHN DOE 0712345678 on 5/6/24 at 2:30 PM"
)

type serviceMocks struct {
	repo      *transaction.MockRepository
	orders    *transaction.MockOrderBook
	customers *transaction.MockCustomerRegistry
}

func newServiceMocks(ctrl *gomock.Controller) serviceMocks {
	return serviceMocks{
		repo:      transaction.NewMockRepository(ctrl),
		orders:    transaction.NewMockOrderBook(ctrl),
		customers: transaction.NewMockCustomerRegistry(ctrl),
	}
}

func (m serviceMocks) service() *transaction.Service {
	return transaction.NewService(m.repo, m.orders, m.customers, mpesa.NewParser())
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// openOrder builds an order with the given remaining balance, dated
// daysAgo days in the past so allocation ordering is deterministic.
func openOrder(customerID uuid.UUID, remaining string, daysAgo int) *order.Order {
	total := amount(remaining)

	return &order.Order{
		ID:              uuid.New(),
		CustomerID:      customerID,
		Date:            time.Now().AddDate(0, 0, -daysAgo),
		TotalAmount:     total,
		PaidAmount:      decimal.Zero,
		RemainingAmount: total,
		Status:          order.StatusPending,
	}
}

func registeredCustomer(name string) *customer.Customer {
	id := uuid.New()

	return &customer.Customer{
		ID:     id,
		Name:   name,
		Number: senderNumber,
		PaymentNumbers: []*customer.PaymentDetails{
			{ID: uuid.New(), CustomerID: id, PaymentNumber: senderNumber, MpesaName: name},
		},
	}
}

func TestService_Process_FullMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	owner := registeredCustomer(senderName)
	o := openOrder(owner.ID, "1500.00", 3)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return([]*order.Order{o}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)
	m.orders.EXPECT().
		ApplyPayment(gomock.Any(), o.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
			assert.True(t, delta.Equal(amount("1500.00")))
			o.PaidAmount = delta
			o.RemainingAmount = decimal.Zero
			return o, nil
		})
	m.repo.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			tx.CreatedAt = time.Now()
			return nil
		})

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, o.ID, *tx.OrderID)
	assert.Equal(t, "QAZ123", tx.TransactionID)
	assert.Equal(t, senderNumber, tx.SenderNumber)
	assert.Equal(t, validMessage, tx.RawMessage)
}

func TestService_Process_AllocatesOldestFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	owner := registeredCustomer(senderName)
	older := openOrder(owner.ID, "1000.00", 10)
	newer := openOrder(owner.ID, "500.00", 1)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	// Listed newest first to prove the service re-sorts by order date.
	m.orders.EXPECT().
		ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).
		Return([]*order.Order{newer, older}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)

	gomock.InOrder(
		m.orders.EXPECT().
			ApplyPayment(gomock.Any(), older.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
				assert.True(t, delta.Equal(amount("1000.00")), "older order takes its full balance")
				older.RemainingAmount = decimal.Zero
				return older, nil
			}),
		m.orders.EXPECT().
			ApplyPayment(gomock.Any(), newer.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
				assert.True(t, delta.Equal(amount("500.00")), "newer order takes the rest")
				newer.RemainingAmount = decimal.Zero
				return newer, nil
			}),
	)
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, older.ID, *tx.OrderID, "transaction links to the first order paid")
}

func TestService_Process_ExcessEndsPartiallyMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	owner := registeredCustomer(senderName)
	o := openOrder(owner.ID, "1000.00", 2)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return([]*order.Order{o}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)
	m.orders.EXPECT().
		ApplyPayment(gomock.Any(), o.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
			assert.True(t, delta.Equal(amount("1000.00")), "only the open balance is applied")
			o.RemainingAmount = decimal.Zero
			return o, nil
		})
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	// Payment of 1500 against a 1000 balance leaves 500 unapplied.
	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusPartiallyMatched, tx.Status)
}

func TestService_Process_DuplicateRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(true, nil)

	tx, err := m.service().Process(context.Background(), validMessage)

	require.Error(t, err)
	assert.ErrorIs(t, err, transaction.ErrDuplicate)
	assert.Nil(t, tx)
}

func TestService_Process_UnmatchedWhenNoOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(false, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return(nil, nil)
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	// The transaction is kept for manual review, with no order link.
	assert.Equal(t, transaction.StatusUnmatched, tx.Status)
	assert.Nil(t, tx.OrderID)
}

func TestService_Process_SharedNumberResolvedByName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	// Two customers share the number; only one matches the sender name.
	match := registeredCustomer("John Doe")
	other := registeredCustomer("MARY WANJIKU")

	matchOrder := openOrder(match.ID, "1500.00", 2)
	otherOrder := openOrder(other.ID, "900.00", 5)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().
		ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).
		Return([]*order.Order{matchOrder, otherOrder}, nil)
	m.customers.EXPECT().Get(gomock.Any(), match.ID).Return(match, nil)
	m.customers.EXPECT().Get(gomock.Any(), other.ID).Return(other, nil)
	m.orders.EXPECT().
		ApplyPayment(gomock.Any(), matchOrder.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
			matchOrder.RemainingAmount = decimal.Zero
			return matchOrder, nil
		})
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, matchOrder.ID, *tx.OrderID, "only the name-matching customer's order is paid")
}

func TestService_Process_SharedNumberAmbiguous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	// Neither customer's name matches the sender; nothing may be paid.
	first := registeredCustomer("ALICE KAMAU")
	second := registeredCustomer("MARY WANJIKU")

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().
		ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).
		Return([]*order.Order{
			openOrder(first.ID, "1000.00", 2),
			openOrder(second.ID, "500.00", 4),
		}, nil)
	m.customers.EXPECT().Get(gomock.Any(), first.ID).Return(first, nil)
	m.customers.EXPECT().Get(gomock.Any(), second.ID).Return(second, nil)
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusUnmatched, tx.Status)
	assert.Nil(t, tx.OrderID)
}

func TestService_Process_AutoRegistersUnknownNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	// Orders found via the customer's primary number; the payment number
	// itself is registered nowhere yet.
	owner := &customer.Customer{ID: uuid.New(), Name: senderName, Number: senderNumber}
	o := openOrder(owner.ID, "1500.00", 2)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(false, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return([]*order.Order{o}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)
	m.customers.EXPECT().
		IsPaymentNumberRegisteredToOther(gomock.Any(), senderNumber, owner.ID).
		Return(false, nil)
	m.customers.EXPECT().AddPaymentNumber(gomock.Any(), owner.ID, senderNumber, senderName).Return(nil)
	m.orders.EXPECT().
		ApplyPayment(gomock.Any(), o.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
			o.RemainingAmount = decimal.Zero
			return o, nil
		})
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
}

func TestService_Process_NumberOwnedByAnotherCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	// The sender number matches this customer's primary number but is
	// registered as a payment number to someone else entirely.
	owner := &customer.Customer{ID: uuid.New(), Name: senderName, Number: senderNumber}
	o := openOrder(owner.ID, "1500.00", 2)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return([]*order.Order{o}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)
	m.customers.EXPECT().
		IsPaymentNumberRegisteredToOther(gomock.Any(), senderNumber, owner.ID).
		Return(true, nil)
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusUnmatched, tx.Status)
	assert.Nil(t, tx.OrderID)
}

func TestService_Process_BackfillsPaymentName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	owner := registeredCustomer(senderName)
	owner.PaymentNumbers[0].MpesaName = ""
	o := openOrder(owner.ID, "1500.00", 2)

	m.repo.EXPECT().TransactionExists(gomock.Any(), "QAZ123").Return(false, nil)
	m.customers.EXPECT().IsPaymentNumberRegistered(gomock.Any(), senderNumber).Return(true, nil)
	m.orders.EXPECT().ListUnmatchedByPaymentNumber(gomock.Any(), senderNumber).Return([]*order.Order{o}, nil)
	m.customers.EXPECT().Get(gomock.Any(), owner.ID).Return(owner, nil)
	m.customers.EXPECT().SetPaymentName(gomock.Any(), owner.PaymentNumbers[0].ID, senderName).Return(nil)
	m.orders.EXPECT().
		ApplyPayment(gomock.Any(), o.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, delta decimal.Decimal) (*order.Order, error) {
			o.RemainingAmount = decimal.Zero
			return o, nil
		})
	m.repo.EXPECT().CreateTransaction(gomock.Any(), gomock.Any()).Return(nil)

	tx, err := m.service().Process(context.Background(), validMessage)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
}

func TestService_Process_InvalidMessage(t *testing.T) {
	tests := []struct {
		name string
		msg  string
	}{
		{name: "Blank", msg: "   "},
		{name: "NotAConfirmation", msg: "random text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)

			tx, err := m.service().Process(context.Background(), tt.msg)

			require.Error(t, err)
			assert.ErrorIs(t, err, mpesa.ErrInvalidMessage)
			assert.Nil(t, tx)
		})
	}
}

func TestService_Match(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)

	txID := uuid.New()
	o := openOrder(uuid.New(), "1500.00", 2)

	stored := &transaction.Transaction{
		ID:            txID,
		TransactionID: "QAZ123",
		Amount:        amount("1500.00"),
		Status:        transaction.StatusUnmatched,
	}

	m.repo.EXPECT().GetTransaction(gomock.Any(), txID).Return(stored, nil)
	m.orders.EXPECT().Get(gomock.Any(), o.ID).Return(o, nil)
	m.orders.EXPECT().ApplyPayment(gomock.Any(), o.ID, gomock.Any()).Return(o, nil)
	m.repo.EXPECT().UpdateTransaction(gomock.Any(), stored).Return(nil)

	tx, err := m.service().Match(context.Background(), txID, o.ID)
	require.NoError(t, err)

	assert.Equal(t, transaction.StatusMatched, tx.Status)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, o.ID, *tx.OrderID)
}
