package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// InvoiceType 發票類型
type InvoiceType string

const (
	InvoiceTypeTransaction InvoiceType = "Transaction"
	InvoiceTypeStatement   InvoiceType = "Statement"
	InvoiceTypeEMI         InvoiceType = "EMI"
	InvoiceTypeInterest    InvoiceType = "Interest"
)

// InvoiceStatus 發票狀態
type InvoiceStatus string

const (
	InvoiceStatusPaid      InvoiceStatus = "Paid"
	InvoiceStatusPending   InvoiceStatus = "Pending"
	InvoiceStatusCancelled InvoiceStatus = "Cancelled"
)

// Valid 是否為已知狀態
func (s InvoiceStatus) Valid() bool {
	return s == InvoiceStatusPaid || s == InvoiceStatusPending || s == InvoiceStatusCancelled
}

// Invoice 由單筆交易衍生的稅務發票/收據
type Invoice struct {
	ID string `json:"id"`
	// Number: 對外顯示的發票號碼 <branch>-<year>-<seq>
	Number string `json:"invoice_number"`
	// Sequence: Number 中的流水號，同分行同年度唯一
	Sequence      int64         `json:"sequence"`
	CustomerID    string        `json:"customer_id"`
	AccountID     string        `json:"account_id"`
	TransactionID *uuid.UUID    `json:"transaction_id,omitempty"`
	Amount        int64         `json:"amount"`
	Tax           *TaxBreakdown `json:"tax,omitempty"`
	Type          InvoiceType   `json:"type"`
	Status        InvoiceStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Clone 深拷貝
func (i Invoice) Clone() Invoice {
	i.Tax = i.Tax.Clone()
	if i.TransactionID != nil {
		id := *i.TransactionID
		i.TransactionID = &id
	}
	return i
}

// TaxableAmount 發票上的應稅金額，無 GST 時等於總額
func (i *Invoice) TaxableAmount() int64 {
	if i.Tax == nil {
		return i.Amount
	}
	return i.Tax.TaxableAmount
}

// Transition 變更發票狀態，只允許 Pending -> Paid / Cancelled
func (i *Invoice) Transition(to InvoiceStatus) error {
	if !to.Valid() {
		return NewError(ErrInvalidStatusTransition, "status", "unknown status %q", to)
	}
	if i.Status != InvoiceStatusPending || to == InvoiceStatusPending {
		return NewError(ErrInvalidStatusTransition, "status", "%s -> %s", i.Status, to)
	}
	i.Status = to
	return nil
}

// InvoiceSeries 發票號碼前綴 <branch>-<year>，流水號在同一 series 內遞增
func InvoiceSeries(branchCode string, year int) string {
	return fmt.Sprintf("%s-%04d", branchCode, year)
}

// FormatInvoiceNumber 組出發票號碼，流水號至少補滿 5 位
func FormatInvoiceNumber(branchCode string, year int, seq int64) string {
	return fmt.Sprintf("%s%s", InvoiceSeries(branchCode, year), sequenceSuffix(seq))
}

// Series 由號碼取回 <branch>-<year> 前綴
func (i *Invoice) Series() string {
	return strings.TrimSuffix(i.Number, sequenceSuffix(i.Sequence))
}

func sequenceSuffix(seq int64) string {
	return fmt.Sprintf("-%05d", seq)
}
