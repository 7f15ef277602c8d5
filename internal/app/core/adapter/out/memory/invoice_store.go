package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
)

// InvoiceStore 記憶體版發票歷史
type InvoiceStore struct {
	mu       sync.RWMutex
	invoices map[string]domain.Invoice
	// 索引: 發票號碼、來源交易
	byNumber      map[string]string
	byTransaction map[string]string
}

func NewInvoiceStore() *InvoiceStore {
	return &InvoiceStore{
		invoices:      make(map[string]domain.Invoice),
		byNumber:      make(map[string]string),
		byTransaction: make(map[string]string),
	}
}

// Save 新增發票，號碼與交易的唯一性在同一把鎖內檢查
func (s *InvoiceStore) Save(ctx context.Context, inv domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byNumber[inv.Number]; ok {
		return domain.NewError(domain.ErrDuplicateInvoiceNumber, "invoice_number", "%s", inv.Number)
	}
	txKey := ""
	if inv.TransactionID != nil && inv.Type == domain.InvoiceTypeTransaction {
		txKey = inv.TransactionID.String()
		if _, ok := s.byTransaction[txKey]; ok {
			return domain.NewError(domain.ErrInvoiceAlreadyIssued, "transaction_id", "%s", txKey)
		}
	}

	s.invoices[inv.ID] = inv.Clone()
	s.byNumber[inv.Number] = inv.ID
	if txKey != "" {
		s.byTransaction[txKey] = inv.ID
	}
	return nil
}

func (s *InvoiceStore) Get(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	inv, ok := s.invoices[invoiceID]
	if !ok {
		return domain.Invoice{}, domain.NewError(domain.ErrInvoiceNotFound, "invoice_id", "%s", invoiceID)
	}
	return inv.Clone(), nil
}

func (s *InvoiceStore) FindByTransaction(ctx context.Context, transactionID string) (domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byTransaction[transactionID]
	if !ok {
		return domain.Invoice{}, domain.NewError(domain.ErrInvoiceNotFound, "transaction_id", "%s", transactionID)
	}
	return s.invoices[id].Clone(), nil
}

func (s *InvoiceStore) List(ctx context.Context, accountID string) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, 0, len(s.invoices))
	for _, inv := range s.invoices {
		if accountID == "" || inv.AccountID == accountID {
			out = append(out, inv.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// UpdateStatus 僅在目前狀態仍為 from 時改為 to (compare-and-swap)
func (s *InvoiceStore) UpdateStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.invoices[invoiceID]
	if !ok {
		return domain.NewError(domain.ErrInvoiceNotFound, "invoice_id", "%s", invoiceID)
	}
	if cur.Status != from {
		return domain.NewError(domain.ErrInvalidStatusTransition, "status", "%s is %s, not %s", invoiceID, cur.Status, from)
	}
	cur.Status = to
	s.invoices[invoiceID] = cur
	return nil
}

func (s *InvoiceStore) MaxSequence(ctx context.Context, branchCode string, year int) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	series := domain.InvoiceSeries(branchCode, year)
	var last int64
	for _, inv := range s.invoices {
		// 號碼本身帶有分行與年度
		if inv.Series() != series {
			continue
		}
		if inv.Sequence > last {
			last = inv.Sequence
		}
	}
	return last, nil
}

var _ usecase.InvoiceStore = (*InvoiceStore)(nil)

// InvoiceSequence 每分行每年度單調遞增的發票流水號
type InvoiceSequence struct {
	mu   sync.Mutex
	last map[sequenceKey]int64
}

type sequenceKey struct {
	branch string
	year   int
}

func NewInvoiceSequence() *InvoiceSequence {
	return &InvoiceSequence{last: make(map[sequenceKey]int64)}
}

// Next 取得下一個流水號 (由 1 開始)
func (s *InvoiceSequence) Next(branchCode string, year int) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := sequenceKey{branchCode, year}
	s.last[k]++
	return s.last[k]
}

// Advance 將流水號推進到至少 last
func (s *InvoiceSequence) Advance(branchCode string, year int, last int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := sequenceKey{branchCode, year}
	if s.last[k] < last {
		s.last[k] = last
	}
}

var _ usecase.InvoiceSequencer = (*InvoiceSequence)(nil)

// CustomerDirectory 記憶體版客戶資料
type CustomerDirectory struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
}

func NewCustomerDirectory(customers ...domain.Customer) *CustomerDirectory {
	d := &CustomerDirectory{customers: make(map[string]domain.Customer, len(customers))}
	for _, c := range customers {
		d.customers[c.ID] = c.Clone()
	}
	return d
}

func (d *CustomerDirectory) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.customers[customerID]
	if !ok {
		return domain.Customer{}, domain.NewError(domain.ErrCustomerNotFound, "customer_id", "%s", customerID)
	}
	return c.Clone(), nil
}

func (d *CustomerDirectory) PutCustomer(ctx context.Context, customer domain.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[customer.ID] = customer.Clone()
	return nil
}

// ListCustomers 依客戶編號排序
func (d *CustomerDirectory) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]domain.Customer, 0, len(d.customers))
	for _, c := range d.customers {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

var _ usecase.CustomerDirectory = (*CustomerDirectory)(nil)
