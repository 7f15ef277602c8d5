package mysql

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/pkg/mysql"
)

// newTestClient 單一連線的記憶體 SQLite，交易因此天然序列化
func newTestClient(t *testing.T) *mysql.Client {
	t.Helper()
	client, err := mysql.Open(sqlite.Open(":memory:"), mysql.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1},
		logger.Default.LogMode(logger.Silent))
	require.NoError(t, err)
	require.NoError(t, Migrate(client.DB()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestLedger(t *testing.T, accounts ...domain.Account) *MySQLLedger {
	t.Helper()
	ledger := NewMySQLLedger(newTestClient(t), domain.DefaultPostingPolicy(), nil)
	for _, acc := range accounts {
		require.NoError(t, ledger.OpenAccount(context.Background(), acc))
	}
	return ledger
}

func savings(id string, balance string) domain.Account {
	return domain.Account{
		ID:            id,
		CustomerID:    "CUST-001",
		AccountNumber: "50100012345678",
		Type:          domain.AccountTypeSavings,
		Balance:       domain.MustParseAmount(balance),
		InterestRate:  decimal.RequireFromString("3.5"),
		IFSC:          "HDFC0001234",
		BranchCode:    "MUM01",
		CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestMySQLLedger_PostDeposit(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, savings("ACC-101", "1000.00"))

	tx, err := ledger.Post(ctx, domain.PostingRequest{
		AccountID:  "ACC-101",
		Type:       domain.TransactionTypeDeposit,
		Amount:     domain.MustParseAmount("500.00"),
		OperatorID: "OP-1",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("1500.00"), tx.BalanceAfter)
	assert.Equal(t, "Standard Transaction", tx.Description)
	assert.NotZero(t, tx.Sequence)

	acc, err := ledger.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("1500.00"), acc.Balance)
	assert.True(t, acc.InterestRate.Equal(decimal.RequireFromString("3.5")))
}

func TestMySQLLedger_InsufficientFundsLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, savings("ACC-101", "100.00"))

	_, err := ledger.Post(ctx, domain.PostingRequest{
		AccountID: "ACC-101",
		Type:      domain.TransactionTypeWithdrawal,
		Amount:    domain.MustParseAmount("100.01"),
	})
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	acc, err := ledger.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("100.00"), acc.Balance)

	txs, err := ledger.ListTransactions(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestMySQLLedger_UnknownAccount(t *testing.T) {
	ledger := newTestLedger(t)
	_, err := ledger.Post(context.Background(), domain.PostingRequest{
		AccountID: "ACC-404",
		Type:      domain.TransactionTypeDeposit,
		Amount:    1,
	})
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = ledger.ListTransactions(context.Background(), "ACC-404")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMySQLLedger_RequestIDIsIdempotent(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, savings("ACC-101", "0.00"))

	req := domain.PostingRequest{
		AccountID: "ACC-101",
		Type:      domain.TransactionTypeDeposit,
		Amount:    domain.MustParseAmount("10.00"),
		RequestID: uuid.New(),
		Tax:       domain.InclusiveTaxBreakdown(domain.MustParseAmount("10.00"), decimal.NewFromInt(18)),
	}
	first, err := ledger.Post(ctx, req)
	require.NoError(t, err)
	second, err := ledger.Post(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Sequence, second.Sequence)
	require.NotNil(t, second.Tax)
	assert.Equal(t, first.Tax.GSTAmount, second.Tax.GSTAmount)

	acc, err := ledger.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("10.00"), acc.Balance)
}

func TestMySQLLedger_LockedAccount(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, savings("ACC-101", "10.00"))
	require.NoError(t, ledger.SetLocked(ctx, "ACC-101", true))

	_, err := ledger.Post(ctx, domain.PostingRequest{
		AccountID: "ACC-101",
		Type:      domain.TransactionTypeDeposit,
		Amount:    1,
	})
	assert.ErrorIs(t, err, domain.ErrAccountLocked)
	assert.ErrorIs(t, ledger.SetLocked(ctx, "ACC-404", true), domain.ErrAccountNotFound)
}

func TestMySQLLedger_OpenAccountTwice(t *testing.T) {
	ledger := newTestLedger(t, savings("ACC-101", "10.00"))
	err := ledger.OpenAccount(context.Background(), savings("ACC-101", "0.00"))
	assert.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	all, err := ledger.LoadAllAccounts(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMySQLLedger_ConcurrentDeposits(t *testing.T) {
	ctx := context.Background()
	ledger := newTestLedger(t, savings("ACC-101", "0.00"))

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ledger.Post(ctx, domain.PostingRequest{
				AccountID: "ACC-101",
				Type:      domain.TransactionTypeDeposit,
				Amount:    domain.MustParseAmount("1.00"),
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	acc, err := ledger.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("50.00"), acc.Balance)

	txs, err := ledger.ListTransactions(ctx, "")
	require.NoError(t, err)
	require.Len(t, txs, n)
	for i := 1; i < len(txs); i++ {
		assert.Greater(t, txs[i-1].Sequence, txs[i].Sequence)
	}
}

func TestInvoiceStore_UniquenessAndSequence(t *testing.T) {
	ctx := context.Background()
	store := NewInvoiceStore(newTestClient(t))
	txID := uuid.New()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	inv := domain.Invoice{
		ID:            "INV-1",
		Number:        domain.FormatInvoiceNumber("MUM01", 2026, 7),
		Sequence:      7,
		CustomerID:    "CUST-001",
		AccountID:     "ACC-101",
		TransactionID: &txID,
		Amount:        domain.MustParseAmount("118.00"),
		Tax:           domain.InclusiveTaxBreakdown(domain.MustParseAmount("118.00"), decimal.NewFromInt(18)),
		Type:          domain.InvoiceTypeTransaction,
		Status:        domain.InvoiceStatusPaid,
		CreatedAt:     now,
	}
	require.NoError(t, store.Save(ctx, inv))

	dup := inv
	dup.ID = "INV-2"
	assert.ErrorIs(t, store.Save(ctx, dup), domain.ErrDuplicateInvoiceNumber)

	// 號碼不同但同一筆交易，由 (transaction_id, type) 唯一索引擋下
	again := inv
	again.ID = "INV-3"
	again.Number = domain.FormatInvoiceNumber("MUM01", 2026, 8)
	again.Sequence = 8
	assert.ErrorIs(t, store.Save(ctx, again), domain.ErrInvoiceAlreadyIssued)

	last, err := store.MaxSequence(ctx, "MUM01", 2026)
	require.NoError(t, err)
	assert.EqualValues(t, 7, last)
	last, err = store.MaxSequence(ctx, "MUM01", 2025)
	require.NoError(t, err)
	assert.Zero(t, last)

	got, err := store.FindByTransaction(ctx, txID.String())
	require.NoError(t, err)
	assert.Equal(t, inv.Number, got.Number)
	require.NotNil(t, got.Tax)
	assert.Equal(t, domain.MustParseAmount("100.00"), got.Tax.TaxableAmount)

	_, err = store.Get(ctx, "INV-404")
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewInvoiceStore(newTestClient(t))
	inv := domain.Invoice{
		ID:        "INV-1",
		Number:    domain.FormatInvoiceNumber("MUM01", 2026, 1),
		Sequence:  1,
		AccountID: "ACC-101",
		Amount:    100,
		Type:      domain.InvoiceTypeStatement,
		Status:    domain.InvoiceStatusPending,
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Save(ctx, inv))

	require.NoError(t, store.UpdateStatus(ctx, "INV-1", domain.InvoiceStatusPending, domain.InvoiceStatusCancelled))

	list, err := store.List(ctx, "ACC-101")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.InvoiceStatusCancelled, list[0].Status)
	assert.EqualValues(t, 100, list[0].Amount)

	// 第二個結清帶著過期的 from，不可覆蓋
	err = store.UpdateStatus(ctx, "INV-1", domain.InvoiceStatusPending, domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	got, err := store.Get(ctx, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusCancelled, got.Status)

	err = store.UpdateStatus(ctx, "INV-404", domain.InvoiceStatusPending, domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

func TestInvoiceStore_StatementsWithoutTransaction(t *testing.T) {
	ctx := context.Background()
	store := NewInvoiceStore(newTestClient(t))
	for i := int64(1); i <= 2; i++ {
		inv := domain.Invoice{
			ID:        fmt.Sprintf("INV-S%d", i),
			Number:    domain.FormatInvoiceNumber("MUM01", 2026, i),
			Sequence:  i,
			AccountID: "ACC-101",
			Amount:    100,
			Type:      domain.InvoiceTypeStatement,
			Status:    domain.InvoiceStatusPending,
			CreatedAt: time.Now(),
		}
		require.NoError(t, store.Save(ctx, inv))
	}
	list, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCustomerDirectory(t *testing.T) {
	ctx := context.Background()
	dir := NewCustomerDirectory(newTestClient(t))

	c := domain.Customer{
		ID:         "CUST-001",
		Name:       "Asha Rao",
		KYCStatus:  domain.KYCVerified,
		NationalID: &domain.NationalID{PAN: "ABCDE1234F"},
	}
	require.NoError(t, dir.PutCustomer(ctx, c))

	got, err := dir.GetCustomer(ctx, "CUST-001")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.Name)
	require.NotNil(t, got.NationalID)
	assert.Equal(t, "ABCDE1234F", got.NationalID.PAN)
	assert.Empty(t, got.NationalID.Aadhaar)

	_, err = dir.GetCustomer(ctx, "CUST-404")
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	require.NoError(t, dir.PutCustomer(ctx, domain.Customer{ID: "CUST-000", Name: "Vikram Iyer", KYCStatus: domain.KYCPending}))
	all, err := dir.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CUST-000", all[0].ID)
	assert.Equal(t, domain.KYCPending, all[0].KYCStatus)
	assert.Equal(t, "CUST-001", all[1].ID)
}
