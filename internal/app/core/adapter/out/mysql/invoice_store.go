package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/pkg/mysql"
)

// InvoiceStore 資料庫版發票歷史
type InvoiceStore struct {
	client *mysql.Client
}

func NewInvoiceStore(client *mysql.Client) *InvoiceStore {
	return &InvoiceStore{client: client}
}

// Save 新增發票
//
// 發票號碼與 (transaction_id, type) 皆由唯一索引保證，並行寫入同樣會被擋下
func (s *InvoiceStore) Save(ctx context.Context, inv domain.Invoice) error {
	db := s.client.DB().WithContext(ctx)
	row := invoiceFromDomain(inv)
	err := db.Create(&row).Error
	if !isDuplicateKey(err) {
		return err
	}
	// 查出是哪一個索引擋下
	var count int64
	if err := db.Model(&sqlInvoice{}).Where("number = ?", inv.Number).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || inv.TransactionID == nil {
		return domain.NewError(domain.ErrDuplicateInvoiceNumber, "invoice_number", "%s", inv.Number)
	}
	return domain.NewError(domain.ErrInvoiceAlreadyIssued, "transaction_id", "%s", inv.TransactionID)
}

func (s *InvoiceStore) Get(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	var row sqlInvoice
	err := s.client.DB().WithContext(ctx).Where("id = ?", invoiceID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Invoice{}, domain.NewError(domain.ErrInvoiceNotFound, "invoice_id", "%s", invoiceID)
	}
	if err != nil {
		return domain.Invoice{}, err
	}
	return row.toDomain()
}

func (s *InvoiceStore) FindByTransaction(ctx context.Context, transactionID string) (domain.Invoice, error) {
	var row sqlInvoice
	err := s.client.DB().WithContext(ctx).
		Where("transaction_id = ? AND type = ?", transactionID, string(domain.InvoiceTypeTransaction)).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Invoice{}, domain.NewError(domain.ErrInvoiceNotFound, "transaction_id", "%s", transactionID)
	}
	if err != nil {
		return domain.Invoice{}, err
	}
	return row.toDomain()
}

func (s *InvoiceStore) List(ctx context.Context, accountID string) ([]domain.Invoice, error) {
	db := s.client.DB().WithContext(ctx)
	if accountID != "" {
		db = db.Where("account_id = ?", accountID)
	}
	var rows []sqlInvoice
	if err := db.Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Invoice, 0, len(rows))
	for i := range rows {
		inv, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("invoice %s: %w", rows[i].ID, err)
		}
		out = append(out, inv)
	}
	return out, nil
}

// UpdateStatus 以 status 作為條件更新，沒有列被更新代表狀態已被他人改變
func (s *InvoiceStore) UpdateStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus) error {
	res := s.client.DB().WithContext(ctx).
		Model(&sqlInvoice{}).
		Where("id = ? AND status = ?", invoiceID, string(from)).
		Update("status", string(to))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	cur, err := s.Get(ctx, invoiceID)
	if err != nil {
		return err
	}
	return domain.NewError(domain.ErrInvalidStatusTransition, "status", "%s is %s, not %s", invoiceID, cur.Status, from)
}

func (s *InvoiceStore) MaxSequence(ctx context.Context, branchCode string, year int) (int64, error) {
	var last int64
	err := s.client.DB().WithContext(ctx).
		Model(&sqlInvoice{}).
		Where("series = ?", domain.InvoiceSeries(branchCode, year)).
		Select("COALESCE(MAX(sequence), 0)").
		Scan(&last).Error
	return last, err
}

var _ usecase.InvoiceStore = (*InvoiceStore)(nil)

// CustomerDirectory 資料庫版客戶資料
type CustomerDirectory struct {
	client *mysql.Client
}

func NewCustomerDirectory(client *mysql.Client) *CustomerDirectory {
	return &CustomerDirectory{client: client}
}

func (d *CustomerDirectory) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	var row sqlCustomer
	err := d.client.DB().WithContext(ctx).Where("id = ?", customerID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Customer{}, domain.NewError(domain.ErrCustomerNotFound, "customer_id", "%s", customerID)
	}
	if err != nil {
		return domain.Customer{}, err
	}
	return row.toDomain(), nil
}

// PutCustomer 新增或覆蓋客戶資料
func (d *CustomerDirectory) PutCustomer(ctx context.Context, customer domain.Customer) error {
	row := customerFromDomain(customer)
	return d.client.DB().WithContext(ctx).Save(&row).Error
}

// ListCustomers 依客戶編號排序
func (d *CustomerDirectory) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	var rows []sqlCustomer
	if err := d.client.DB().WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Customer, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].toDomain())
	}
	return out, nil
}

var _ usecase.CustomerDirectory = (*CustomerDirectory)(nil)
