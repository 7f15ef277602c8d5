package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingPolicy_Validate(t *testing.T) {
	p := DefaultPostingPolicy()
	base := PostingRequest{AccountID: "ACC-101", Type: TransactionTypeDeposit, Amount: MustParseAmount("100.00")}

	tests := []struct {
		name   string
		mutate func(r *PostingRequest)
		kind   error
		field  string
	}{
		{"valid", func(r *PostingRequest) {}, nil, ""},
		{"empty account", func(r *PostingRequest) { r.AccountID = "" }, ErrAccountNotFound, "account_id"},
		{"unknown type", func(r *PostingRequest) { r.Type = "Transfer" }, ErrInvalidTransactionType, "type"},
		{"zero amount", func(r *PostingRequest) { r.Amount = 0 }, ErrInvalidAmount, "amount"},
		{"negative amount", func(r *PostingRequest) { r.Amount = -1 }, ErrInvalidAmount, "amount"},
		{"over limit", func(r *PostingRequest) { r.Amount = DefaultMaxAmount + 1 }, ErrInvalidAmount, "amount"},
		{"unbalanced tax", func(r *PostingRequest) {
			r.Tax = &TaxBreakdown{TaxableAmount: 5000, GSTRate: decimal.NewFromInt(18), GSTAmount: 900}
		}, ErrUnbalancedTaxBreakdown, "tax"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := p.Validate(req)
			if tt.kind == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.field, FieldOf(err))
		})
	}
}

func TestPostingPolicy_Apply(t *testing.T) {
	p := DefaultPostingPolicy()
	savings := Account{ID: "ACC-101", Type: AccountTypeSavings, Balance: MustParseAmount("45000.00")}
	loan := Account{ID: "LN-1", Type: AccountTypeLoan, Balance: MustParseAmount("-100000.00")}

	t.Run("deposit adds", func(t *testing.T) {
		bal, err := p.Apply(&savings, PostingRequest{Type: TransactionTypeDeposit, Amount: MustParseAmount("5000.00")})
		require.NoError(t, err)
		assert.Equal(t, MustParseAmount("50000.00"), bal)
		assert.Equal(t, MustParseAmount("45000.00"), savings.Balance, "account must not change")
	})

	t.Run("withdrawal exactly to zero", func(t *testing.T) {
		bal, err := p.Apply(&savings, PostingRequest{Type: TransactionTypeWithdrawal, Amount: MustParseAmount("45000.00")})
		require.NoError(t, err)
		assert.Zero(t, bal)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		_, err := p.Apply(&savings, PostingRequest{Type: TransactionTypePenalty, Amount: MustParseAmount("45000.01")})
		assert.ErrorIs(t, err, ErrInsufficientFunds)
	})

	t.Run("loan may go further negative", func(t *testing.T) {
		bal, err := p.Apply(&loan, PostingRequest{Type: TransactionTypePenalty, Amount: MustParseAmount("500.00")})
		require.NoError(t, err)
		assert.Equal(t, MustParseAmount("-100500.00"), bal)
	})

	t.Run("locked wins over everything", func(t *testing.T) {
		locked := savings
		locked.Locked = true
		_, err := p.Apply(&locked, PostingRequest{Type: TransactionTypeWithdrawal, Amount: MustParseAmount("99999.00")})
		assert.ErrorIs(t, err, ErrAccountLocked)
	})

	t.Run("approval checked after funds", func(t *testing.T) {
		_, err := p.Apply(&savings, PostingRequest{Type: TransactionTypeWithdrawal, Amount: MustParseAmount("60000.00")})
		assert.ErrorIs(t, err, ErrInsufficientFunds)

		_, err = p.Apply(&savings, PostingRequest{Type: TransactionTypeDeposit, Amount: MustParseAmount("60000.00")})
		assert.ErrorIs(t, err, ErrApprovalRequired)
		assert.Equal(t, "approved", FieldOf(err))

		bal, err := p.Apply(&savings, PostingRequest{Type: TransactionTypeDeposit, Amount: MustParseAmount("60000.00"), Approved: true})
		require.NoError(t, err)
		assert.Equal(t, MustParseAmount("105000.00"), bal)
	})

	t.Run("threshold itself needs no approval", func(t *testing.T) {
		_, err := p.Apply(&savings, PostingRequest{Type: TransactionTypeDeposit, Amount: DefaultApprovalThreshold})
		assert.NoError(t, err)
	})
}

func TestSignedDelta(t *testing.T) {
	for _, typ := range TransactionTypes {
		d := SignedDelta(typ, 100)
		if typ.IsCredit() {
			assert.Equal(t, int64(100), d, typ)
		} else {
			assert.Equal(t, int64(-100), d, typ)
		}
	}
}

func TestErrorKinds(t *testing.T) {
	err := NewError(ErrInsufficientFunds, "amount", "balance %s", "1.00")
	assert.True(t, errors.Is(err, ErrInsufficientFunds))
	assert.Equal(t, "InsufficientFunds", KindOf(err))
	assert.Equal(t, "amount", FieldOf(err))
	assert.Equal(t, "insufficient funds: amount: balance 1.00", err.Error())

	assert.Equal(t, "Internal", KindOf(errors.New("boom")))
	assert.Empty(t, FieldOf(errors.New("boom")))
}
