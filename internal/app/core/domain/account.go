package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType 帳戶類型
type AccountType string

const (
	AccountTypeSavings          AccountType = "Savings"
	AccountTypeCurrent          AccountType = "Current"
	AccountTypeFixedDeposit     AccountType = "FixedDeposit"
	AccountTypeRecurringDeposit AccountType = "RecurringDeposit"
	AccountTypeLoan             AccountType = "Loan"
)

// Valid 是否為已知的帳戶類型
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeCurrent, AccountTypeFixedDeposit,
		AccountTypeRecurringDeposit, AccountTypeLoan:
		return true
	}
	return false
}

// Account 屬於單一客戶的帳戶，餘額只能由 Ledger.Post 修改
type Account struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	AccountNumber string          `json:"account_number"`
	Type          AccountType     `json:"type"`
	Balance       int64           `json:"balance"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	IFSC          string          `json:"ifsc"`
	BranchCode    string          `json:"branch_code"`
	Locked        bool            `json:"locked"`
	CreatedAt     time.Time       `json:"created_at"`
}

// AllowsNegativeBalance 只有貸款帳戶可以是負餘額 (欠款)
func (a *Account) AllowsNegativeBalance() bool {
	return a.Type == AccountTypeLoan
}

// MaskedNumber 遮罩帳號，只留末四碼
func (a *Account) MaskedNumber() string {
	n := a.AccountNumber
	if len(n) > 4 {
		n = n[len(n)-4:]
	}
	return "XXXX XXXX " + n
}

// Validate 檢查開戶資料
func (a *Account) Validate() error {
	if a.ID == "" {
		return NewError(ErrInvalidAccount, "account_id", "empty id")
	}
	if !a.Type.Valid() {
		return NewError(ErrInvalidAccount, "account_type", "unknown account type %q", a.Type)
	}
	if a.Balance < 0 && !a.AllowsNegativeBalance() {
		return NewError(ErrInvalidAccount, "balance", "opening balance %s is negative", FormatAmount(a.Balance))
	}
	return nil
}
