package usecase

import (
	"context"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
)

// Ledger 是帳務系統的介面，帳戶餘額唯一的寫入者
type Ledger interface {
	// Post 驗證並入帳，成功時回傳不可變的交易紀錄
	Post(ctx context.Context, req domain.PostingRequest) (domain.Transaction, error)
	// GetAccount 取得帳戶快照
	GetAccount(ctx context.Context, accountID string) (domain.Account, error)
	// ListTransactions 依入帳順序由新到舊列出交易，accountID 為空時列出全部
	ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error)
	// OpenAccount 由開戶流程登錄帳戶與期初餘額
	OpenAccount(ctx context.Context, account domain.Account) error
	// SetLocked 凍結/解凍帳戶 (帳戶永不刪除)
	SetLocked(ctx context.Context, accountID string, locked bool) error
	// LoadAllAccounts 載入所有帳戶
	LoadAllAccounts(ctx context.Context) (map[string]*domain.Account, error)
}

// CustomerDirectory 客戶資料來源 (開戶流程維護，對核心唯讀)
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerID string) (domain.Customer, error)
	PutCustomer(ctx context.Context, customer domain.Customer) error
	// ListCustomers 依客戶編號排序
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

// InvoiceStore 發票歷史
type InvoiceStore interface {
	// Save 新增發票；號碼重複回傳 ErrDuplicateInvoiceNumber，
	// 同一筆交易已有 Transaction 發票回傳 ErrInvoiceAlreadyIssued
	Save(ctx context.Context, invoice domain.Invoice) error
	Get(ctx context.Context, invoiceID string) (domain.Invoice, error)
	FindByTransaction(ctx context.Context, transactionID string) (domain.Invoice, error)
	// List 由新到舊，accountID 為空時列出全部
	List(ctx context.Context, accountID string) ([]domain.Invoice, error)
	// UpdateStatus 只在目前狀態等於 from 時改為 to，否則回傳 ErrInvalidStatusTransition
	UpdateStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus) error
	// MaxSequence 該分行該年度已使用的最大流水號
	MaxSequence(ctx context.Context, branchCode string, year int) (int64, error)
}

// InvoiceSequencer 發票流水號產生器 (每分行每年度單調遞增)
type InvoiceSequencer interface {
	Next(branchCode string, year int) int64
	// Advance 確保下一個號碼大於 last
	Advance(branchCode string, year int, last int64)
}

// ReceiptRenderer 將發票輸出為可列印格式
type ReceiptRenderer interface {
	Render(ctx context.Context, receipt domain.Receipt) ([]byte, error)
}

// Metrics 業務指標
type Metrics interface {
	ObservePosting(txType domain.TransactionType, outcome string)
	ObserveInvoice(invoiceType domain.InvoiceType)
}
