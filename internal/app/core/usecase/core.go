package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
)

// DefaultMaxNumberAttempts 發票號碼碰撞時最多重試次數
const DefaultMaxNumberAttempts = 5

// CoreParams 建立 CoreUseCase 所需的依賴
type CoreParams struct {
	Ledger    Ledger
	Customers CustomerDirectory
	Invoices  InvoiceStore
	Deriver   *InvoiceDeriver
	Sequencer InvoiceSequencer
	Renderer  ReceiptRenderer
	Metrics   Metrics
	Bank      domain.BankIdentity
	Log       *zap.Logger
	// MaxNumberAttempts: 0 時使用 DefaultMaxNumberAttempts
	MaxNumberAttempts int
}

// CoreUseCase 是核心業務邏輯層：入帳後立即開立發票
type CoreUseCase struct {
	ledger      Ledger
	customers   CustomerDirectory
	invoices    InvoiceStore
	deriver     *InvoiceDeriver
	seq         InvoiceSequencer
	renderer    ReceiptRenderer
	metrics     Metrics
	bank        domain.BankIdentity
	log         *zap.Logger
	maxAttempts int
}

func NewCoreUseCase(p CoreParams) *CoreUseCase {
	c := &CoreUseCase{
		ledger:      p.Ledger,
		customers:   p.Customers,
		invoices:    p.Invoices,
		deriver:     p.Deriver,
		seq:         p.Sequencer,
		renderer:    p.Renderer,
		metrics:     p.Metrics,
		bank:        p.Bank,
		log:         p.Log,
		maxAttempts: p.MaxNumberAttempts,
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	if c.metrics == nil {
		c.metrics = nopMetrics{}
	}
	if c.maxAttempts <= 0 {
		c.maxAttempts = DefaultMaxNumberAttempts
	}
	return c
}

// PostTransaction 入帳並開立發票
//
// 參數:
//
//	ctx: 上下文
//	req: 入帳請求
//
// 回傳:
//
//	domain.Transaction: 已入帳交易
//	domain.Invoice: 對應發票 (冪等重送時回傳原發票)
//	error: 入帳失敗時 Transaction 為零值；入帳成功但開票失敗時仍回傳 Transaction
func (c *CoreUseCase) PostTransaction(ctx context.Context, req domain.PostingRequest) (domain.Transaction, domain.Invoice, error) {
	tx, err := c.ledger.Post(ctx, req)
	if err != nil {
		kind := domain.KindOf(err)
		c.metrics.ObservePosting(req.Type, kind)
		c.log.Info("posting rejected",
			zap.String("account_id", req.AccountID),
			zap.String("type", string(req.Type)),
			zap.String("amount", domain.FormatAmount(req.Amount)),
			zap.String("kind", kind),
			zap.String("field", domain.FieldOf(err)),
		)
		return domain.Transaction{}, domain.Invoice{}, err
	}
	c.metrics.ObservePosting(tx.Type, "posted")
	c.log.Info("transaction posted",
		zap.String("transaction_id", tx.ID.String()),
		zap.Uint64("sequence", tx.Sequence),
		zap.String("account_id", tx.AccountID),
		zap.String("type", string(tx.Type)),
		zap.String("amount", domain.FormatAmount(tx.Amount)),
		zap.String("balance_after", domain.FormatAmount(tx.BalanceAfter)),
		zap.String("operator_id", tx.OperatorID),
	)

	existing, err := c.invoices.FindByTransaction(ctx, tx.ID.String())
	if err == nil {
		return tx, existing, nil
	}
	if !errors.Is(err, domain.ErrInvoiceNotFound) {
		return tx, domain.Invoice{}, fmt.Errorf("lookup invoice for %s: %w", tx.ID, err)
	}

	inv, err := c.issueInvoice(ctx, tx)
	if errors.Is(err, domain.ErrInvoiceAlreadyIssued) {
		// 同一 RequestID 並行重送，另一個呼叫已開立發票
		if existing, findErr := c.invoices.FindByTransaction(ctx, tx.ID.String()); findErr == nil {
			return tx, existing, nil
		}
	}
	if err != nil {
		c.log.Error("invoice derivation failed",
			zap.String("transaction_id", tx.ID.String()),
			zap.Error(err),
		)
		return tx, domain.Invoice{}, err
	}
	return tx, inv, nil
}

// issueInvoice 衍生並儲存發票，號碼碰撞時以儲存端最大流水號重新同步後重試
func (c *CoreUseCase) issueInvoice(ctx context.Context, tx domain.Transaction) (domain.Invoice, error) {
	account, err := c.ledger.GetAccount(ctx, tx.AccountID)
	if err != nil {
		return domain.Invoice{}, err
	}
	customer, err := c.customers.GetCustomer(ctx, account.CustomerID)
	if err != nil {
		return domain.Invoice{}, err
	}

	for attempt := 1; ; attempt++ {
		inv, err := c.deriver.Derive(tx, account, customer)
		if err != nil {
			return domain.Invoice{}, err
		}
		err = c.invoices.Save(ctx, inv)
		if err == nil {
			c.metrics.ObserveInvoice(inv.Type)
			c.log.Info("invoice issued",
				zap.String("invoice_id", inv.ID),
				zap.String("invoice_number", inv.Number),
				zap.String("transaction_id", tx.ID.String()),
			)
			return inv, nil
		}
		if !errors.Is(err, domain.ErrDuplicateInvoiceNumber) || attempt >= c.maxAttempts {
			return domain.Invoice{}, err
		}

		year := inv.CreatedAt.Year()
		last, err := c.invoices.MaxSequence(ctx, account.BranchCode, year)
		if err != nil {
			return domain.Invoice{}, err
		}
		c.seq.Advance(account.BranchCode, year, last)
		c.log.Warn("invoice number collision, retrying",
			zap.String("invoice_number", inv.Number),
			zap.Int64("resync_to", last),
			zap.Int("attempt", attempt),
		)
	}
}

// GetAccount 取得帳戶
func (c *CoreUseCase) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	return c.ledger.GetAccount(ctx, accountID)
}

// ListTransactions 取得交易紀錄 (新到舊)
func (c *CoreUseCase) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return c.ledger.ListTransactions(ctx, accountID)
}

// GetInvoice 取得發票
func (c *CoreUseCase) GetInvoice(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	return c.invoices.Get(ctx, invoiceID)
}

// ListInvoices 取得發票 (新到舊)
func (c *CoreUseCase) ListInvoices(ctx context.Context, accountID string) ([]domain.Invoice, error) {
	if accountID != "" {
		if _, err := c.ledger.GetAccount(ctx, accountID); err != nil {
			return nil, err
		}
	}
	return c.invoices.List(ctx, accountID)
}

// SettleInvoice 對帳流程變更發票狀態
//
// 狀態以 compare-and-swap 寫回，兩個並行的結清只有一個會成功
func (c *CoreUseCase) SettleInvoice(ctx context.Context, invoiceID string, status domain.InvoiceStatus) (domain.Invoice, error) {
	inv, err := c.invoices.Get(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, err
	}
	from := inv.Status
	if err := inv.Transition(status); err != nil {
		return domain.Invoice{}, err
	}
	if err := c.invoices.UpdateStatus(ctx, inv.ID, from, inv.Status); err != nil {
		return domain.Invoice{}, err
	}
	c.log.Info("invoice settled", zap.String("invoice_id", inv.ID), zap.String("status", string(status)))
	return inv, nil
}

// ListCustomers 列出客戶 (依編號排序)
func (c *CoreUseCase) ListCustomers(ctx context.Context, kyc domain.KYCStatus) ([]domain.Customer, error) {
	all, err := c.customers.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	if kyc == "" {
		return all, nil
	}
	out := all[:0]
	for _, cust := range all {
		if cust.KYCStatus == kyc {
			out = append(out, cust)
		}
	}
	return out, nil
}

// Summary 儀表板統計
//
// 回傳:
//
//	domain.Summary: 總餘額、客戶數 (含 KYC 已驗證數)、交易與發票筆數
//	error: 任一資料來源讀取失敗
func (c *CoreUseCase) Summary(ctx context.Context) (domain.Summary, error) {
	accounts, err := c.ledger.LoadAllAccounts(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	customers, err := c.customers.ListCustomers(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	txs, err := c.ledger.ListTransactions(ctx, "")
	if err != nil {
		return domain.Summary{}, err
	}
	invoices, err := c.invoices.List(ctx, "")
	if err != nil {
		return domain.Summary{}, err
	}

	s := domain.Summary{
		Accounts:     len(accounts),
		Customers:    len(customers),
		Transactions: len(txs),
		Invoices:     len(invoices),
	}
	for _, acc := range accounts {
		s.TotalBalance += acc.Balance
	}
	for _, cust := range customers {
		if cust.KYCStatus == domain.KYCVerified {
			s.VerifiedCustomers++
		}
	}
	return s, nil
}

// Receipt 組出匯出用的完整發票資料
func (c *CoreUseCase) Receipt(ctx context.Context, invoiceID string) (domain.Receipt, error) {
	inv, err := c.invoices.Get(ctx, invoiceID)
	if err != nil {
		return domain.Receipt{}, err
	}
	account, err := c.ledger.GetAccount(ctx, inv.AccountID)
	if err != nil {
		return domain.Receipt{}, err
	}
	customer, err := c.customers.GetCustomer(ctx, inv.CustomerID)
	if err != nil {
		return domain.Receipt{}, err
	}
	r := domain.Receipt{
		Bank:     c.bank,
		Invoice:  inv,
		Customer: customer,
		Account:  account,
	}
	if inv.TransactionID == nil {
		return r, nil
	}
	txs, err := c.ledger.ListTransactions(ctx, inv.AccountID)
	if err != nil {
		return domain.Receipt{}, err
	}
	for i := range txs {
		if txs[i].ID == *inv.TransactionID {
			r.Transaction = &txs[i]
			break
		}
	}
	return r, nil
}

// RenderReceipt 輸出可列印的發票 (PDF)，同時回傳發票本身
func (c *CoreUseCase) RenderReceipt(ctx context.Context, invoiceID string) (domain.Invoice, []byte, error) {
	if c.renderer == nil {
		return domain.Invoice{}, nil, errors.New("receipt renderer not configured")
	}
	r, err := c.Receipt(ctx, invoiceID)
	if err != nil {
		return domain.Invoice{}, nil, err
	}
	doc, err := c.renderer.Render(ctx, r)
	if err != nil {
		return domain.Invoice{}, nil, err
	}
	return r.Invoice, doc, nil
}

type nopMetrics struct{}

func (nopMetrics) ObservePosting(domain.TransactionType, string) {}
func (nopMetrics) ObserveInvoice(domain.InvoiceType)             {}
