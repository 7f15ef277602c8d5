package usecase

import (
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
)

// InvoiceDeriver 由已入帳交易衍生發票
//
// 除了 ID、號碼、時間之外的欄位都是由輸入決定；同一筆交易呼叫兩次會得到兩張不同的發票。
// 不做任何 I/O，不會阻塞。
type InvoiceDeriver struct {
	node  *snowflake.Node
	seq   InvoiceSequencer
	clock func() time.Time
}

// NewInvoiceDeriver 建立 InvoiceDeriver
//
// 參數:
//
//	node: snowflake 節點，產生發票 ID
//	seq: 流水號產生器
//	clock: 時間來源，nil 時使用 time.Now
func NewInvoiceDeriver(node *snowflake.Node, seq InvoiceSequencer, clock func() time.Time) *InvoiceDeriver {
	if clock == nil {
		clock = time.Now
	}
	return &InvoiceDeriver{
		node:  node,
		seq:   seq,
		clock: clock,
	}
}

// Derive 產生交易發票
//
// 參數:
//
//	tx: 已入帳交易
//	account: tx 所屬帳戶
//	customer: account 所屬客戶
//
// 回傳:
//
//	domain.Invoice: 狀態為 Paid 的 Transaction 發票
//	error: 對應關係錯誤時回傳 ErrReferenceMismatch
func (d *InvoiceDeriver) Derive(tx domain.Transaction, account domain.Account, customer domain.Customer) (domain.Invoice, error) {
	if tx.AccountID != account.ID {
		return domain.Invoice{}, domain.NewError(domain.ErrReferenceMismatch, "account_id",
			"transaction %s belongs to %s, not %s", tx.ID, tx.AccountID, account.ID)
	}
	if account.CustomerID != customer.ID {
		return domain.Invoice{}, domain.NewError(domain.ErrReferenceMismatch, "customer_id",
			"account %s belongs to %s, not %s", account.ID, account.CustomerID, customer.ID)
	}

	now := d.clock()
	seq := d.seq.Next(account.BranchCode, now.Year())
	txID := tx.ID
	return domain.Invoice{
		ID:            "INV-" + d.node.Generate().String(),
		Number:        domain.FormatInvoiceNumber(account.BranchCode, now.Year(), seq),
		Sequence:      seq,
		CustomerID:    customer.ID,
		AccountID:     account.ID,
		TransactionID: &txID,
		Amount:        tx.Amount,
		Tax:           tx.Tax.Clone(),
		Type:          domain.InvoiceTypeTransaction,
		Status:        domain.InvoiceStatusPaid,
		CreatedAt:     now,
	}, nil
}
