package usecase_test

import (
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
)

func newDeriver(t *testing.T) *usecase.InvoiceDeriver {
	t.Helper()
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	return usecase.NewInvoiceDeriver(node, memory.NewInvoiceSequence(), func() time.Time { return fixedNow })
}

func postedTx(accountID string) domain.Transaction {
	return domain.Transaction{
		ID:           uuid.New(),
		Sequence:     7,
		AccountID:    accountID,
		Type:         domain.TransactionTypeDeposit,
		Amount:       domain.MustParseAmount("1180.00"),
		Tax:          domain.InclusiveTaxBreakdown(domain.MustParseAmount("1180.00"), decimal.NewFromInt(18)),
		BalanceAfter: domain.MustParseAmount("46180.00"),
		OperatorID:   "TELLER-01",
		CreatedAt:    fixedNow,
	}
}

func TestInvoiceDeriver_Derive(t *testing.T) {
	tests := []struct {
		name      string
		tx        func() domain.Transaction
		account   func() domain.Account
		customer  string
		wantErr   error
		wantField string
	}{
		{
			name:      "transaction of another account",
			tx:        func() domain.Transaction { return postedTx("ACC-202") },
			account:   acc101,
			customer:  "CUST-001",
			wantErr:   domain.ErrReferenceMismatch,
			wantField: "account_id",
		},
		{
			name:      "account of another customer",
			tx:        func() domain.Transaction { return postedTx("ACC-101") },
			account:   acc101,
			customer:  "CUST-009",
			wantErr:   domain.ErrReferenceMismatch,
			wantField: "customer_id",
		},
		{
			name:     "matching references",
			tx:       func() domain.Transaction { return postedTx("ACC-101") },
			account:  acc101,
			customer: "CUST-001",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDeriver(t)
			tx := tt.tx()
			inv, err := d.Derive(tx, tt.account(), fakeCustomer(tt.customer))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantField, domain.FieldOf(err))
				assert.Empty(t, inv.ID)
				return
			}
			require.NoError(t, err)

			assert.NotEmpty(t, inv.ID)
			assert.Equal(t, "BR-01-2024-00001", inv.Number)
			assert.Equal(t, int64(1), inv.Sequence)
			assert.Equal(t, "CUST-001", inv.CustomerID)
			assert.Equal(t, "ACC-101", inv.AccountID)
			require.NotNil(t, inv.TransactionID)
			assert.Equal(t, tx.ID, *inv.TransactionID)
			assert.Equal(t, tx.Amount, inv.Amount)
			assert.Equal(t, domain.InvoiceTypeTransaction, inv.Type)
			assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
			assert.Equal(t, fixedNow, inv.CreatedAt)

			require.NotNil(t, inv.Tax)
			assert.Equal(t, *tx.Tax, *inv.Tax)
			assert.NotSame(t, tx.Tax, inv.Tax)
			tx.Tax.GSTAmount = 0
			assert.NotZero(t, inv.Tax.GSTAmount)
		})
	}
}

func TestInvoiceDeriver_DistinctInvoicesPerCall(t *testing.T) {
	d := newDeriver(t)
	tx := postedTx("ACC-101")

	first, err := d.Derive(tx, acc101(), fakeCustomer("CUST-001"))
	require.NoError(t, err)
	second, err := d.Derive(tx, acc101(), fakeCustomer("CUST-001"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "BR-01-2024-00002", second.Number)
	assert.Equal(t, *first.TransactionID, *second.TransactionID)
}
