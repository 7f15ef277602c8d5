package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/memory"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
)

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

type fixture struct {
	core      *usecase.CoreUseCase
	ledger    *memory.MutexLedger
	invoices  *memory.InvoiceStore
	customers *memory.CustomerDirectory
	metrics   *recordingMetrics
	renderer  *capturingRenderer
}

type fixtureOption func(p *usecase.CoreParams)

func fakeCustomer(id string) domain.Customer {
	return domain.Customer{
		ID:        id,
		Name:      gofakeit.Name(),
		Phone:     gofakeit.Phone(),
		Email:     gofakeit.Email(),
		Address:   gofakeit.Address().Address,
		KYCStatus: domain.KYCVerified,
		CreatedAt: fixedNow.AddDate(-1, 0, 0),
	}
}

func acc101() domain.Account {
	return domain.Account{
		ID:            "ACC-101",
		CustomerID:    "CUST-001",
		AccountNumber: "50100012345678",
		Type:          domain.AccountTypeSavings,
		Balance:       domain.MustParseAmount("45000.00"),
		InterestRate:  decimal.RequireFromString("3.5"),
		IFSC:          "FEDG000101",
		BranchCode:    "BR-01",
		CreatedAt:     fixedNow.AddDate(-1, 0, 0),
	}
}

func newFixture(t *testing.T, opts ...fixtureOption) *fixture {
	t.Helper()
	acc := acc101()
	ledger, err := memory.NewMutexLedger(map[string]*domain.Account{acc.ID: &acc}, nil,
		memory.WithClock(func() time.Time { return fixedNow }))
	require.NoError(t, err)

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	seq := memory.NewInvoiceSequence()

	f := &fixture{
		ledger:    ledger,
		invoices:  memory.NewInvoiceStore(),
		customers: memory.NewCustomerDirectory(fakeCustomer("CUST-001")),
		metrics:   &recordingMetrics{postings: map[string]int{}},
		renderer:  &capturingRenderer{},
	}
	p := usecase.CoreParams{
		Ledger:    ledger,
		Customers: f.customers,
		Invoices:  f.invoices,
		Deriver:   usecase.NewInvoiceDeriver(node, seq, func() time.Time { return fixedNow }),
		Sequencer: seq,
		Renderer:  f.renderer,
		Metrics:   f.metrics,
		Bank:      domain.BankIdentity{Name: "PMB Group Co-op Bank", IFSC: "PMBG000101", SAC: "997112"},
	}
	for _, opt := range opts {
		opt(&p)
	}
	f.core = usecase.NewCoreUseCase(p)
	return f
}

func deposit(amount string) domain.PostingRequest {
	return domain.PostingRequest{
		AccountID:  "ACC-101",
		Type:       domain.TransactionTypeDeposit,
		Amount:     domain.MustParseAmount(amount),
		OperatorID: "TELLER-01",
	}
}

func TestPostTransaction_Scenarios(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit 5000 on 45000", func(t *testing.T) {
		f := newFixture(t)
		tx, _, err := f.core.PostTransaction(ctx, deposit("5000.00"))
		require.NoError(t, err)
		assert.Equal(t, "50000.00", domain.FormatAmount(tx.BalanceAfter))

		acc, err := f.core.GetAccount(ctx, "ACC-101")
		require.NoError(t, err)
		assert.Equal(t, "50000.00", domain.FormatAmount(acc.Balance))
	})

	t.Run("withdrawal 60000 is rejected", func(t *testing.T) {
		f := newFixture(t)
		req := deposit("60000.00")
		req.Type = domain.TransactionTypeWithdrawal
		tx, inv, err := f.core.PostTransaction(ctx, req)
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)
		assert.Equal(t, uuid.Nil, tx.ID)
		assert.Empty(t, inv.ID)

		acc, err := f.core.GetAccount(ctx, "ACC-101")
		require.NoError(t, err)
		assert.Equal(t, "45000.00", domain.FormatAmount(acc.Balance))
		txs, err := f.core.ListTransactions(ctx, "ACC-101")
		require.NoError(t, err)
		assert.Empty(t, txs)
		assert.Equal(t, 1, f.metrics.count("Withdrawal", "InsufficientFunds"))
	})

	t.Run("deposit 1200 yields a paid invoice", func(t *testing.T) {
		f := newFixture(t)
		tx, inv, err := f.core.PostTransaction(ctx, deposit("1200.00"))
		require.NoError(t, err)
		assert.Equal(t, "1200.00", domain.FormatAmount(inv.Amount))
		assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
		assert.Equal(t, "ACC-101", inv.AccountID)
		assert.Equal(t, "CUST-001", inv.CustomerID)
		require.NotNil(t, inv.TransactionID)
		assert.Equal(t, tx.ID, *inv.TransactionID)
		assert.Equal(t, "BR-01-2024-00001", inv.Number)
		assert.Equal(t, 1, f.metrics.count("Deposit", "posted"))
		assert.Equal(t, 1, f.metrics.invoices)
	})

	t.Run("60000 without approval", func(t *testing.T) {
		f := newFixture(t)
		_, _, err := f.core.PostTransaction(ctx, deposit("60000.00"))
		require.ErrorIs(t, err, domain.ErrApprovalRequired)

		req := deposit("60000.00")
		req.Approved = true
		tx, _, err := f.core.PostTransaction(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "105000.00", domain.FormatAmount(tx.BalanceAfter))
	})
}

func TestPostTransaction_InvoiceCarriesTax(t *testing.T) {
	f := newFixture(t)
	req := deposit("5000.00")
	req.Tax = domain.InclusiveTaxBreakdown(req.Amount, decimal.NewFromInt(18))

	tx, inv, err := f.core.PostTransaction(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, inv.Tax)
	assert.Equal(t, tx.Amount, inv.Amount)
	assert.Equal(t, *tx.Tax, *inv.Tax)
	assert.Equal(t, inv.Amount, inv.Tax.TaxableAmount+inv.Tax.GSTAmount)

	// 發票與交易不共用 Tax
	inv.Tax.GSTAmount = 0
	stored, err := f.core.GetInvoice(context.Background(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.Tax.GSTAmount, stored.Tax.GSTAmount)
}

func TestPostTransaction_IdempotentReplay(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := deposit("250.00")
	req.RequestID = uuid.New()

	tx1, inv1, err := f.core.PostTransaction(ctx, req)
	require.NoError(t, err)
	tx2, inv2, err := f.core.PostTransaction(ctx, req)
	require.NoError(t, err)

	assert.Equal(t, tx1.ID, tx2.ID)
	assert.Equal(t, inv1.ID, inv2.ID)

	acc, err := f.core.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, "45250.00", domain.FormatAmount(acc.Balance))
	invs, err := f.core.ListInvoices(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Len(t, invs, 1)
}

func TestPostTransaction_NumberCollisionResyncs(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// 另一個實例已用掉 1..3
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, f.invoices.Save(ctx, domain.Invoice{
			ID:         fmt.Sprintf("INV-OTHER-%d", i),
			Number:     domain.FormatInvoiceNumber("BR-01", 2024, i),
			Sequence:   i,
			CustomerID: "CUST-001",
			AccountID:  "ACC-101",
			Amount:     100,
			Type:       domain.InvoiceTypeStatement,
			Status:     domain.InvoiceStatusPending,
			CreatedAt:  fixedNow,
		}))
	}

	_, inv, err := f.core.PostTransaction(ctx, deposit("10.00"))
	require.NoError(t, err)
	assert.Equal(t, "BR-01-2024-00004", inv.Number)
	assert.Equal(t, int64(4), inv.Sequence)
}

// stuckSequencer 永遠回傳同一個號碼
type stuckSequencer struct{}

func (stuckSequencer) Next(string, int) int64     { return 1 }
func (stuckSequencer) Advance(string, int, int64) {}

func TestPostTransaction_CollisionRetriesExhausted(t *testing.T) {
	node, err := snowflake.NewNode(2)
	require.NoError(t, err)
	f := newFixture(t, func(p *usecase.CoreParams) {
		p.Sequencer = stuckSequencer{}
		p.Deriver = usecase.NewInvoiceDeriver(node, stuckSequencer{}, func() time.Time { return fixedNow })
		p.MaxNumberAttempts = 3
	})
	ctx := context.Background()

	_, _, err = f.core.PostTransaction(ctx, deposit("10.00"))
	require.NoError(t, err)

	// 交易已生效，但發票號碼用盡
	tx, inv, err := f.core.PostTransaction(ctx, deposit("20.00"))
	require.ErrorIs(t, err, domain.ErrDuplicateInvoiceNumber)
	assert.NotEqual(t, uuid.Nil, tx.ID)
	assert.Empty(t, inv.ID)

	acc, err := f.core.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, "45030.00", domain.FormatAmount(acc.Balance))
}

func TestPostTransaction_MissingCustomer(t *testing.T) {
	f := newFixture(t, func(p *usecase.CoreParams) {
		p.Customers = memory.NewCustomerDirectory()
	})
	tx, _, err := f.core.PostTransaction(context.Background(), deposit("10.00"))
	require.ErrorIs(t, err, domain.ErrCustomerNotFound)
	assert.Equal(t, "45010.00", domain.FormatAmount(tx.BalanceAfter))
}

func TestPostTransaction_ConcurrentDepositsGetUniqueNumbers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	const n = 200

	var wg sync.WaitGroup
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, inv, err := f.core.PostTransaction(ctx, deposit("1.50"))
			assert.NoError(t, err)
			numbers <- inv.Number
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool, n)
	for num := range numbers {
		assert.False(t, seen[num], "duplicate %s", num)
		seen[num] = true
	}
	assert.Len(t, seen, n)

	acc, err := f.core.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("45000.00")+n*domain.MustParseAmount("1.50"), acc.Balance)
}

func TestSettleInvoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, paid, err := f.core.PostTransaction(ctx, deposit("10.00"))
	require.NoError(t, err)
	_, err = f.core.SettleInvoice(ctx, paid.ID, domain.InvoiceStatusCancelled)
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	pending := domain.Invoice{
		ID:         "INV-STATEMENT-1",
		Number:     domain.FormatInvoiceNumber("BR-01", 2024, 900),
		Sequence:   900,
		CustomerID: "CUST-001",
		AccountID:  "ACC-101",
		Amount:     domain.MustParseAmount("150.00"),
		Type:       domain.InvoiceTypeStatement,
		Status:     domain.InvoiceStatusPending,
		CreatedAt:  fixedNow,
	}
	require.NoError(t, f.invoices.Save(ctx, pending))

	settled, err := f.core.SettleInvoice(ctx, pending.ID, domain.InvoiceStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, settled.Status)
	stored, err := f.core.GetInvoice(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceStatusPaid, stored.Status)

	_, err = f.core.SettleInvoice(ctx, "INV-missing", domain.InvoiceStatusPaid)
	assert.ErrorIs(t, err, domain.ErrInvoiceNotFound)
}

// rendezvous 讓前 n 次呼叫互相等待，確保並行的呼叫都讀到同一份舊狀態
type rendezvous struct {
	mu    sync.Mutex
	calls int
	n     int
	wg    sync.WaitGroup
}

func newRendezvous(n int) *rendezvous {
	r := &rendezvous{n: n}
	r.wg.Add(n)
	return r
}

func (r *rendezvous) wait() {
	r.mu.Lock()
	r.calls++
	first := r.calls <= r.n
	r.mu.Unlock()
	if first {
		r.wg.Done()
		r.wg.Wait()
	}
}

// gatedInvoices 讀取後先在 rendezvous 等待，放大讀寫之間的競爭窗口
type gatedInvoices struct {
	*memory.InvoiceStore
	onGet  *rendezvous
	onFind *rendezvous
}

func (g *gatedInvoices) Get(ctx context.Context, invoiceID string) (domain.Invoice, error) {
	inv, err := g.InvoiceStore.Get(ctx, invoiceID)
	if g.onGet != nil {
		g.onGet.wait()
	}
	return inv, err
}

func (g *gatedInvoices) FindByTransaction(ctx context.Context, transactionID string) (domain.Invoice, error) {
	inv, err := g.InvoiceStore.FindByTransaction(ctx, transactionID)
	if g.onFind != nil {
		g.onFind.wait()
	}
	return inv, err
}

func TestSettleInvoice_ConcurrentSettlesOnlyOneWins(t *testing.T) {
	ctx := context.Background()
	gated := &gatedInvoices{onGet: newRendezvous(2)}
	f := newFixture(t, func(p *usecase.CoreParams) {
		gated.InvoiceStore = p.Invoices.(*memory.InvoiceStore)
		p.Invoices = gated
	})

	pending := domain.Invoice{
		ID:         "INV-STATEMENT-2",
		Number:     domain.FormatInvoiceNumber("BR-01", 2024, 901),
		Sequence:   901,
		CustomerID: "CUST-001",
		AccountID:  "ACC-101",
		Amount:     domain.MustParseAmount("75.00"),
		Type:       domain.InvoiceTypeStatement,
		Status:     domain.InvoiceStatusPending,
		CreatedAt:  fixedNow,
	}
	require.NoError(t, f.invoices.Save(ctx, pending))

	targets := []domain.InvoiceStatus{domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled}
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, status := range targets {
		wg.Add(1)
		go func(i int, status domain.InvoiceStatus) {
			defer wg.Done()
			_, errs[i] = f.core.SettleInvoice(ctx, pending.ID, status)
		}(i, status)
	}
	wg.Wait()

	var winner domain.InvoiceStatus
	failures := 0
	for i, err := range errs {
		if err == nil {
			winner = targets[i]
			continue
		}
		failures++
		assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
	}
	require.Equal(t, 1, failures, "exactly one settle must lose")

	stored, err := f.core.GetInvoice(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, winner, stored.Status)
}

func TestPostTransaction_ConcurrentReplayReturnsSameInvoice(t *testing.T) {
	ctx := context.Background()
	const callers = 4
	gated := &gatedInvoices{onFind: newRendezvous(callers)}
	f := newFixture(t, func(p *usecase.CoreParams) {
		gated.InvoiceStore = p.Invoices.(*memory.InvoiceStore)
		p.Invoices = gated
	})
	req := deposit("320.00")
	req.RequestID = uuid.New()

	type result struct {
		tx  domain.Transaction
		inv domain.Invoice
		err error
	}
	results := make([]result, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tx, inv, err := f.core.PostTransaction(ctx, req)
			results[i] = result{tx: tx, inv: inv, err: err}
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		require.NoError(t, r.err)
		assert.Equal(t, results[0].tx.ID, r.tx.ID)
		assert.Equal(t, results[0].inv.ID, r.inv.ID)
		assert.Equal(t, results[0].inv.Number, r.inv.Number)
	}

	invs, err := f.core.ListInvoices(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Len(t, invs, 1)
	acc, err := f.core.GetAccount(ctx, "ACC-101")
	require.NoError(t, err)
	assert.Equal(t, "45320.00", domain.FormatAmount(acc.Balance))
}

func TestListCustomers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pending := fakeCustomer("CUST-003")
	pending.KYCStatus = domain.KYCPending
	require.NoError(t, f.customers.PutCustomer(ctx, pending))
	require.NoError(t, f.customers.PutCustomer(ctx, fakeCustomer("CUST-002")))

	all, err := f.core.ListCustomers(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"CUST-001", "CUST-002", "CUST-003"},
		[]string{all[0].ID, all[1].ID, all[2].ID})

	verified, err := f.core.ListCustomers(ctx, domain.KYCVerified)
	require.NoError(t, err)
	require.Len(t, verified, 2)
	for _, c := range verified {
		assert.Equal(t, domain.KYCVerified, c.KYCStatus)
	}

	onlyPending, err := f.core.ListCustomers(ctx, domain.KYCPending)
	require.NoError(t, err)
	require.Len(t, onlyPending, 1)
	assert.Equal(t, "CUST-003", onlyPending[0].ID)
}

func TestSummary(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	s, err := f.core.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.MustParseAmount("45000.00"), s.TotalBalance)
	assert.Equal(t, 1, s.Accounts)
	assert.Equal(t, 1, s.Customers)
	assert.Equal(t, 1, s.VerifiedCustomers)
	assert.Zero(t, s.Transactions)
	assert.Zero(t, s.Invoices)

	rejected := fakeCustomer("CUST-002")
	rejected.KYCStatus = domain.KYCRejected
	require.NoError(t, f.customers.PutCustomer(ctx, rejected))
	_, _, err = f.core.PostTransaction(ctx, deposit("1000.00"))
	require.NoError(t, err)
	withdraw := deposit("500.00")
	withdraw.Type = domain.TransactionTypeWithdrawal
	_, _, err = f.core.PostTransaction(ctx, withdraw)
	require.NoError(t, err)

	s, err = f.core.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, "45500.00", domain.FormatAmount(s.TotalBalance))
	assert.Equal(t, 2, s.Customers)
	assert.Equal(t, 1, s.VerifiedCustomers)
	assert.Equal(t, 2, s.Transactions)
	assert.Equal(t, 2, s.Invoices)
}

func TestListInvoices_UnknownAccount(t *testing.T) {
	f := newFixture(t)
	_, err := f.core.ListInvoices(context.Background(), "ACC-999")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestRenderReceipt(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := deposit("1200.00")
	req.Description = "Cash deposit at counter"
	tx, inv, err := f.core.PostTransaction(ctx, req)
	require.NoError(t, err)

	rendered, doc, err := f.core.RenderReceipt(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("rendered "+inv.Number), doc)
	assert.Equal(t, inv.ID, rendered.ID)
	assert.Equal(t, inv.Number, rendered.Number)

	r := f.renderer.last
	assert.Equal(t, "PMB Group Co-op Bank", r.Bank.Name)
	assert.Equal(t, "CUST-001", r.Customer.ID)
	require.NotNil(t, r.Transaction)
	assert.Equal(t, tx.ID, r.Transaction.ID)
	assert.Equal(t, "Cash deposit at counter", r.LineDescription())

	noRenderer := newFixture(t, func(p *usecase.CoreParams) { p.Renderer = nil })
	_, inv, err = noRenderer.core.PostTransaction(ctx, deposit("1.00"))
	require.NoError(t, err)
	_, _, err = noRenderer.core.RenderReceipt(ctx, inv.ID)
	assert.Error(t, err)
}

type recordingMetrics struct {
	mu       sync.Mutex
	postings map[string]int
	invoices int
}

func (m *recordingMetrics) ObservePosting(txType domain.TransactionType, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.postings[string(txType)+"/"+outcome]++
}

func (m *recordingMetrics) ObserveInvoice(domain.InvoiceType) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invoices++
}

func (m *recordingMetrics) count(txType, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.postings[txType+"/"+outcome]
}

type capturingRenderer struct {
	last domain.Receipt
}

func (r *capturingRenderer) Render(ctx context.Context, receipt domain.Receipt) ([]byte, error) {
	r.last = receipt
	return []byte("rendered " + receipt.Invoice.Number), nil
}
