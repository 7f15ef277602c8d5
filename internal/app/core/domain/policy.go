package domain

// 預設上限：單筆 1 億、超過 50,000.00 需主管核准
var (
	DefaultMaxAmount         = MustParseAmount("100000000.00")
	DefaultApprovalThreshold = MustParseAmount("50000.00")
)

// PostingPolicy 入帳規則
type PostingPolicy struct {
	// MaxAmount: 單筆交易金額上限
	MaxAmount int64
	// ApprovalThreshold: 金額超過此值需 Approved=true
	ApprovalThreshold int64
}

// DefaultPostingPolicy 回傳預設規則
func DefaultPostingPolicy() PostingPolicy {
	return PostingPolicy{
		MaxAmount:         DefaultMaxAmount,
		ApprovalThreshold: DefaultApprovalThreshold,
	}
}

// Validate 不需要帳戶狀態的檢查，可在取得鎖之前執行
//
// 參數:
//
//	req: 入帳請求
//
// 回傳:
//
//	error: ErrInvalidTransactionType / ErrInvalidAmount / ErrUnbalancedTaxBreakdown
func (p PostingPolicy) Validate(req PostingRequest) error {
	if req.AccountID == "" {
		return NewError(ErrAccountNotFound, "account_id", "empty account id")
	}
	if !req.Type.Valid() {
		return NewError(ErrInvalidTransactionType, "type", "unknown type %q", req.Type)
	}
	if req.Amount <= 0 {
		return NewError(ErrInvalidAmount, "amount", "%s must be positive", FormatAmount(req.Amount))
	}
	if p.MaxAmount > 0 && req.Amount > p.MaxAmount {
		return NewError(ErrInvalidAmount, "amount", "%s exceeds limit %s", FormatAmount(req.Amount), FormatAmount(p.MaxAmount))
	}
	return req.Tax.Validate(req.Amount)
}

// Apply 在帳戶上試算入帳，回傳新餘額；不會修改帳戶
//
// 必須在持有該帳戶的鎖時呼叫，檢查順序: 凍結 -> 餘額 -> 核准
//
// 參數:
//
//	acc: 目前帳戶狀態
//	req: 已通過 Validate 的請求
//
// 回傳:
//
//	int64: 試算後餘額
//	error: ErrAccountLocked / ErrInsufficientFunds / ErrApprovalRequired
func (p PostingPolicy) Apply(acc *Account, req PostingRequest) (int64, error) {
	if acc.Locked {
		return 0, NewError(ErrAccountLocked, "account_id", "account %s is locked", acc.ID)
	}
	candidate := acc.Balance + SignedDelta(req.Type, req.Amount)
	if candidate < 0 && !acc.AllowsNegativeBalance() {
		return 0, NewError(ErrInsufficientFunds, "amount", "balance %s cannot cover %s",
			FormatAmount(acc.Balance), FormatAmount(req.Amount))
	}
	if p.ApprovalThreshold > 0 && req.Amount > p.ApprovalThreshold && !req.Approved {
		return 0, NewError(ErrApprovalRequired, "approved", "%s exceeds approval threshold %s",
			FormatAmount(req.Amount), FormatAmount(p.ApprovalThreshold))
	}
	return candidate, nil
}
