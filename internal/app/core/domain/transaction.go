package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType 交易類型
type TransactionType string

const (
	// 存款
	TransactionTypeDeposit TransactionType = "Deposit"
	// 提款
	TransactionTypeWithdrawal TransactionType = "Withdrawal"
	// 貸款分期還款
	TransactionTypeEMIPayment TransactionType = "EMIPayment"
	// 利息入帳
	TransactionTypeInterestCredit TransactionType = "InterestCredit"
	// 罰款
	TransactionTypePenalty TransactionType = "Penalty"
)

// TransactionTypes 所有支援的交易類型
var TransactionTypes = []TransactionType{
	TransactionTypeDeposit,
	TransactionTypeWithdrawal,
	TransactionTypeEMIPayment,
	TransactionTypeInterestCredit,
	TransactionTypePenalty,
}

// Valid 是否為支援的交易類型
func (t TransactionType) Valid() bool {
	for _, v := range TransactionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// IsCredit 入帳類交易 (增加餘額)
func (t TransactionType) IsCredit() bool {
	return t == TransactionTypeDeposit || t == TransactionTypeInterestCredit
}

// SignedDelta 依交易類型回傳帶正負號的金額
func SignedDelta(t TransactionType, amount int64) int64 {
	if t.IsCredit() {
		return amount
	}
	return -amount
}

// Transaction 已入帳的交易，建立後永不修改
type Transaction struct {
	// ID: 全局唯一交易編號
	ID uuid.UUID `json:"id"`
	// Sequence: 由 Ledger 分配的入帳順序號 (1, 2, 3...)，用於排序與 WAL 重放
	Sequence     uint64          `json:"sequence"`
	AccountID    string          `json:"account_id"`
	Type         TransactionType `json:"type"`
	Amount       int64           `json:"amount"`
	Tax          *TaxBreakdown   `json:"tax,omitempty"`
	BalanceAfter int64           `json:"balance_after"`
	Description  string          `json:"description"`
	OperatorID   string          `json:"operator_id"`
	// RequestID: 呼叫端提供的冪等鍵 (可為零值)
	RequestID uuid.UUID `json:"request_id"`
	CreatedAt time.Time `json:"created_at"`
}

// SignedDelta 本筆交易對餘額的影響
func (t *Transaction) SignedDelta() int64 {
	return SignedDelta(t.Type, t.Amount)
}

// Clone 深拷貝，避免呼叫端改到帳本內部的 Tax 指標
func (t Transaction) Clone() Transaction {
	t.Tax = t.Tax.Clone()
	return t
}

// PostingRequest 入帳請求
type PostingRequest struct {
	AccountID   string
	Type        TransactionType
	Amount      int64
	Description string
	OperatorID  string
	Tax         *TaxBreakdown
	// Approved: 授權方對大額交易的核准結果
	Approved bool
	// RequestID: 選填冪等鍵，重送同一個 RequestID 只會入帳一次
	RequestID uuid.UUID
}

// NewTransaction 依請求與試算後餘額組出交易紀錄
func NewTransaction(req PostingRequest, sequence uint64, balanceAfter int64, now time.Time) Transaction {
	desc := req.Description
	if desc == "" {
		desc = "Standard Transaction"
	}
	return Transaction{
		ID:           uuid.New(),
		Sequence:     sequence,
		AccountID:    req.AccountID,
		Type:         req.Type,
		Amount:       req.Amount,
		Tax:          req.Tax.Clone(),
		BalanceAfter: balanceAfter,
		Description:  desc,
		OperatorID:   req.OperatorID,
		RequestID:    req.RequestID,
		CreatedAt:    now,
	}
}
