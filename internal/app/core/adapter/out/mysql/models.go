package mysql

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
)

// sqlAccount 對應資料庫的 accounts 表
type sqlAccount struct {
	ID            string `gorm:"primaryKey;size:64"`
	CustomerID    string `gorm:"size:64;index"`
	AccountNumber string `gorm:"size:32"`
	Type          string `gorm:"size:32"`
	Balance       int64
	// 利率以字串保存，避免浮點誤差
	InterestRate string `gorm:"size:16"`
	IFSC         string `gorm:"size:16"`
	BranchCode   string `gorm:"size:16"`
	Locked       bool
	CreatedAt    time.Time `gorm:"precision:6"`
	UpdatedAt    time.Time `gorm:"precision:6"`
}

func (*sqlAccount) TableName() string {
	return "accounts"
}

// sqlTransaction 對應資料庫的 transactions 表
//
// 自增主鍵即為全局入帳順序號
type sqlTransaction struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	RefID     string `gorm:"column:ref_id;size:36;uniqueIndex"` // 對應 domain.Transaction.ID
	AccountID string `gorm:"size:64;uniqueIndex:idx_account_request,priority:1"`
	// RequestID 為 NULL 時不參與唯一鍵
	RequestID    *string `gorm:"size:36;uniqueIndex:idx_account_request,priority:2"`
	Type         string  `gorm:"size:32"`
	Amount       int64
	HasTax       bool
	TaxableAmt   int64
	GSTRate      string `gorm:"column:gst_rate;size:16"`
	GSTAmount    int64  `gorm:"column:gst_amount"`
	BalanceAfter int64
	Description  string    `gorm:"size:255"`
	OperatorID   string    `gorm:"size:64"`
	CreatedAt    time.Time `gorm:"precision:6"`
}

func (*sqlTransaction) TableName() string {
	return "transactions"
}

// sqlInvoice 對應資料庫的 invoices 表
type sqlInvoice struct {
	ID     string `gorm:"primaryKey;size:32"`
	Number string `gorm:"size:64;uniqueIndex"`
	// Series: <branch>-<year>，MaxSequence 依此查詢
	Series        string `gorm:"size:48;index:idx_series_seq,priority:1"`
	Sequence      int64  `gorm:"index:idx_series_seq,priority:2"`
	CustomerID    string `gorm:"size:64"`
	AccountID     string `gorm:"size:64;index"`
	// 同一筆交易同一類型只能有一張發票
	TransactionID *string `gorm:"size:36;uniqueIndex:idx_invoice_transaction,priority:1"`
	Amount        int64
	HasTax        bool
	TaxableAmt    int64
	GSTRate       string    `gorm:"column:gst_rate;size:16"`
	GSTAmount     int64     `gorm:"column:gst_amount"`
	Type          string    `gorm:"size:16;uniqueIndex:idx_invoice_transaction,priority:2"`
	Status        string    `gorm:"size:16"`
	CreatedAt     time.Time `gorm:"precision:6"`
	UpdatedAt     time.Time `gorm:"precision:6"`
}

func (*sqlInvoice) TableName() string {
	return "invoices"
}

// sqlCustomer 對應資料庫的 customers 表
type sqlCustomer struct {
	ID        string `gorm:"primaryKey;size:64"`
	Name      string `gorm:"size:128"`
	Phone     string `gorm:"size:32"`
	Email     string `gorm:"size:128"`
	Address   string `gorm:"size:255"`
	KYCStatus string `gorm:"column:kyc_status;size:16"`
	Aadhaar   *string `gorm:"size:16"`
	PAN       *string `gorm:"column:pan;size:16"`
	CreatedAt time.Time `gorm:"precision:6"`
}

func (*sqlCustomer) TableName() string {
	return "customers"
}

// isDuplicateKey 唯一索引衝突；driver 未翻譯成 gorm.ErrDuplicatedKey 時比對原始訊息
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	// MySQL 1062 / SQLite 2067
	return strings.Contains(msg, "Error 1062") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Migrate 建立或更新資料表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&sqlAccount{}, &sqlTransaction{}, &sqlInvoice{}, &sqlCustomer{})
}

func accountFromDomain(a domain.Account) sqlAccount {
	return sqlAccount{
		ID:            a.ID,
		CustomerID:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		Type:          string(a.Type),
		Balance:       a.Balance,
		InterestRate:  a.InterestRate.String(),
		IFSC:          a.IFSC,
		BranchCode:    a.BranchCode,
		Locked:        a.Locked,
		CreatedAt:     a.CreatedAt,
	}
}

func (r *sqlAccount) toDomain() (domain.Account, error) {
	rate, err := parseRate(r.InterestRate)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		ID:            r.ID,
		CustomerID:    r.CustomerID,
		AccountNumber: r.AccountNumber,
		Type:          domain.AccountType(r.Type),
		Balance:       r.Balance,
		InterestRate:  rate,
		IFSC:          r.IFSC,
		BranchCode:    r.BranchCode,
		Locked:        r.Locked,
		CreatedAt:     r.CreatedAt,
	}, nil
}

func transactionFromDomain(tx domain.Transaction) sqlTransaction {
	row := sqlTransaction{
		RefID:        tx.ID.String(),
		AccountID:    tx.AccountID,
		Type:         string(tx.Type),
		Amount:       tx.Amount,
		BalanceAfter: tx.BalanceAfter,
		Description:  tx.Description,
		OperatorID:   tx.OperatorID,
		CreatedAt:    tx.CreatedAt,
	}
	if tx.RequestID != uuid.Nil {
		id := tx.RequestID.String()
		row.RequestID = &id
	}
	if tx.Tax != nil {
		row.HasTax = true
		row.TaxableAmt = tx.Tax.TaxableAmount
		row.GSTRate = tx.Tax.GSTRate.String()
		row.GSTAmount = tx.Tax.GSTAmount
	}
	return row
}

func (r *sqlTransaction) toDomain() (domain.Transaction, error) {
	id, err := uuid.Parse(r.RefID)
	if err != nil {
		return domain.Transaction{}, err
	}
	tx := domain.Transaction{
		ID:           id,
		Sequence:     uint64(r.ID),
		AccountID:    r.AccountID,
		Type:         domain.TransactionType(r.Type),
		Amount:       r.Amount,
		BalanceAfter: r.BalanceAfter,
		Description:  r.Description,
		OperatorID:   r.OperatorID,
		CreatedAt:    r.CreatedAt,
	}
	if r.RequestID != nil {
		if tx.RequestID, err = uuid.Parse(*r.RequestID); err != nil {
			return domain.Transaction{}, err
		}
	}
	if r.HasTax {
		if tx.Tax, err = taxFromColumns(r.TaxableAmt, r.GSTRate, r.GSTAmount); err != nil {
			return domain.Transaction{}, err
		}
	}
	return tx, nil
}

func invoiceFromDomain(inv domain.Invoice) sqlInvoice {
	row := sqlInvoice{
		ID:         inv.ID,
		Number:     inv.Number,
		Series:     inv.Series(),
		Sequence:   inv.Sequence,
		CustomerID: inv.CustomerID,
		AccountID:  inv.AccountID,
		Amount:     inv.Amount,
		Type:       string(inv.Type),
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt,
	}
	if inv.TransactionID != nil {
		id := inv.TransactionID.String()
		row.TransactionID = &id
	}
	if inv.Tax != nil {
		row.HasTax = true
		row.TaxableAmt = inv.Tax.TaxableAmount
		row.GSTRate = inv.Tax.GSTRate.String()
		row.GSTAmount = inv.Tax.GSTAmount
	}
	return row
}

func (r *sqlInvoice) toDomain() (domain.Invoice, error) {
	inv := domain.Invoice{
		ID:         r.ID,
		Number:     r.Number,
		Sequence:   r.Sequence,
		CustomerID: r.CustomerID,
		AccountID:  r.AccountID,
		Amount:     r.Amount,
		Type:       domain.InvoiceType(r.Type),
		Status:     domain.InvoiceStatus(r.Status),
		CreatedAt:  r.CreatedAt,
	}
	if r.TransactionID != nil {
		id, err := uuid.Parse(*r.TransactionID)
		if err != nil {
			return domain.Invoice{}, err
		}
		inv.TransactionID = &id
	}
	if r.HasTax {
		tax, err := taxFromColumns(r.TaxableAmt, r.GSTRate, r.GSTAmount)
		if err != nil {
			return domain.Invoice{}, err
		}
		inv.Tax = tax
	}
	return inv, nil
}

func customerFromDomain(c domain.Customer) sqlCustomer {
	row := sqlCustomer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		KYCStatus: string(c.KYCStatus),
		CreatedAt: c.CreatedAt,
	}
	if c.NationalID != nil {
		if c.NationalID.Aadhaar != "" {
			v := c.NationalID.Aadhaar
			row.Aadhaar = &v
		}
		if c.NationalID.PAN != "" {
			v := c.NationalID.PAN
			row.PAN = &v
		}
	}
	return row
}

func (r *sqlCustomer) toDomain() domain.Customer {
	c := domain.Customer{
		ID:        r.ID,
		Name:      r.Name,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		KYCStatus: domain.KYCStatus(r.KYCStatus),
		CreatedAt: r.CreatedAt,
	}
	if r.Aadhaar != nil || r.PAN != nil {
		c.NationalID = &domain.NationalID{}
		if r.Aadhaar != nil {
			c.NationalID.Aadhaar = *r.Aadhaar
		}
		if r.PAN != nil {
			c.NationalID.PAN = *r.PAN
		}
	}
	return c
}

func taxFromColumns(taxable int64, rate string, gst int64) (*domain.TaxBreakdown, error) {
	r, err := parseRate(rate)
	if err != nil {
		return nil, err
	}
	return &domain.TaxBreakdown{TaxableAmount: taxable, GSTRate: r, GSTAmount: gst}, nil
}

func parseRate(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
