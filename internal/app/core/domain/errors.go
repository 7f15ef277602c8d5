package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrAccountNotFound 找不到帳戶
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists 帳戶已存在
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrInvalidAccount 開戶資料不合法
	ErrInvalidAccount = errors.New("invalid account")

	// ErrAccountLocked 帳戶已凍結，拒絕任何入帳
	ErrAccountLocked = errors.New("account locked")

	// ErrInvalidAmount 金額必須為正數且不得超過上限
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidTransactionType 不支援的交易類型
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInsufficientFunds 餘額不足
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnbalancedTaxBreakdown 應稅金額 + GST 不等於交易金額
	ErrUnbalancedTaxBreakdown = errors.New("unbalanced tax breakdown")

	// ErrApprovalRequired 大額交易需經主管核准
	ErrApprovalRequired = errors.New("approval required")

	// ErrReferenceMismatch 交易、帳戶、客戶互相不對應
	ErrReferenceMismatch = errors.New("reference mismatch")

	// ErrCustomerNotFound 找不到客戶
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrInvoiceNotFound 找不到發票
	ErrInvoiceNotFound = errors.New("invoice not found")

	// ErrDuplicateInvoiceNumber 發票號碼重複
	ErrDuplicateInvoiceNumber = errors.New("duplicate invoice number")

	// ErrInvoiceAlreadyIssued 該筆交易已開立發票
	ErrInvoiceAlreadyIssued = errors.New("invoice already issued for transaction")

	// ErrInvalidStatusTransition 發票狀態只能由 Pending 轉為 Paid 或 Cancelled
	ErrInvalidStatusTransition = errors.New("invalid invoice status transition")

	// ErrWALWriteFailed 寫入 WAL 失敗
	ErrWALWriteFailed = errors.New("wal write failed")

	// ErrWALCorrupted WAL 重放結果與紀錄不一致
	ErrWALCorrupted = errors.New("wal corrupted")
)

// Error 帶有欄位資訊的業務錯誤
//
// Kind 為上方的 sentinel error，可用 errors.Is 判斷；
// Field 為造成錯誤的輸入欄位，供呈現層組出使用者訊息。
type Error struct {
	Kind   error
	Field  string
	Detail string
}

// NewError 建立一個業務錯誤
func NewError(kind error, field, format string, args ...any) error {
	return &Error{
		Kind:   kind,
		Field:  field,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Field)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// FieldOf 取出錯誤中的欄位名稱，非業務錯誤回傳空字串
func FieldOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Field
	}
	return ""
}

// KindOf 回傳錯誤所屬的 sentinel error 名稱 (如 "InsufficientFunds")
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Internal"
}

var kinds = []struct {
	err  error
	name string
}{
	{ErrAccountNotFound, "AccountNotFound"},
	{ErrAccountAlreadyExists, "AccountAlreadyExists"},
	{ErrInvalidAccount, "InvalidAccount"},
	{ErrAccountLocked, "AccountLocked"},
	{ErrInvalidAmount, "InvalidAmount"},
	{ErrInvalidTransactionType, "InvalidTransactionType"},
	{ErrInsufficientFunds, "InsufficientFunds"},
	{ErrUnbalancedTaxBreakdown, "UnbalancedTaxBreakdown"},
	{ErrApprovalRequired, "ApprovalRequired"},
	{ErrReferenceMismatch, "ReferenceMismatch"},
	{ErrCustomerNotFound, "CustomerNotFound"},
	{ErrInvoiceNotFound, "InvoiceNotFound"},
	{ErrDuplicateInvoiceNumber, "DuplicateInvoiceNumber"},
	{ErrInvoiceAlreadyIssued, "InvoiceAlreadyIssued"},
	{ErrInvalidStatusTransition, "InvalidStatusTransition"},
	{ErrWALWriteFailed, "WALWriteFailed"},
	{ErrWALCorrupted, "WALCorrupted"},
}
