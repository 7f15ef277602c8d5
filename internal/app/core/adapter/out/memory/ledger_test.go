package memory

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/pkg/wal"
)

type ledgerFactory func(t *testing.T, accounts map[string]*domain.Account, log *wal.WAL) usecase.Ledger

var ledgers = map[string]ledgerFactory{
	"mutex": func(t *testing.T, accounts map[string]*domain.Account, log *wal.WAL) usecase.Ledger {
		l, err := NewMutexLedger(accounts, log)
		require.NoError(t, err)
		return l
	},
	"lmax": func(t *testing.T, accounts map[string]*domain.Account, log *wal.WAL) usecase.Ledger {
		l, err := NewLMAXLedger(accounts, log)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		l.Start(ctx)
		t.Cleanup(func() {
			cancel()
			<-l.Stopped()
		})
		return l
	},
}

func account(id string, typ domain.AccountType, balance string) *domain.Account {
	b, err := domain.ParseSignedAmount(balance)
	if err != nil {
		panic(err)
	}
	return &domain.Account{
		ID:            id,
		CustomerID:    "CUST-" + gofakeit.DigitN(3),
		AccountNumber: gofakeit.DigitN(14),
		Type:          typ,
		Balance:       b,
		IFSC:          "FEDG000101",
		BranchCode:    "BR-01",
		CreatedAt:     time.Now().UTC(),
	}
}

func seedAccounts() map[string]*domain.Account {
	return map[string]*domain.Account{
		"ACC-101": account("ACC-101", domain.AccountTypeSavings, "45000.00"),
		"ACC-102": account("ACC-102", domain.AccountTypeCurrent, "125000.50"),
		"LN-201":  account("LN-201", domain.AccountTypeLoan, "-250000.00"),
	}
}

func post(typ domain.TransactionType, accountID, amount string) domain.PostingRequest {
	return domain.PostingRequest{
		AccountID:   accountID,
		Type:        typ,
		Amount:      domain.MustParseAmount(amount),
		Description: gofakeit.Sentence(4),
		OperatorID:  "TELLER-01",
	}
}

func TestLedger_Post(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			tx, err := l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-101", "5000.00"))
			require.NoError(t, err)
			assert.Equal(t, "50000.00", domain.FormatAmount(tx.BalanceAfter))
			assert.Equal(t, uint64(1), tx.Sequence)
			assert.NotEqual(t, uuid.Nil, tx.ID)

			acc, err := l.GetAccount(ctx, "ACC-101")
			require.NoError(t, err)
			assert.Equal(t, tx.BalanceAfter, acc.Balance)

			// 餘額不足不留痕跡
			_, err = l.Post(ctx, post(domain.TransactionTypeWithdrawal, "ACC-101", "50000.01"))
			assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
			acc, err = l.GetAccount(ctx, "ACC-101")
			require.NoError(t, err)
			assert.Equal(t, "50000.00", domain.FormatAmount(acc.Balance))
			txs, err := l.ListTransactions(ctx, "ACC-101")
			require.NoError(t, err)
			assert.Len(t, txs, 1)

			_, err = l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-999", "1.00"))
			assert.ErrorIs(t, err, domain.ErrAccountNotFound)

			_, err = l.Post(ctx, post("Transfer", "ACC-101", "1.00"))
			assert.ErrorIs(t, err, domain.ErrInvalidTransactionType)
		})
	}
}

func TestLedger_LoanGoesNegative(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			tx, err := l.Post(ctx, post(domain.TransactionTypePenalty, "LN-201", "1500.00"))
			require.NoError(t, err)
			assert.Equal(t, "-251500.00", domain.FormatAmount(tx.BalanceAfter))

			tx, err = l.Post(ctx, post(domain.TransactionTypeEMIPayment, "LN-201", "10000.00"))
			require.NoError(t, err)
			assert.Equal(t, "-261500.00", domain.FormatAmount(tx.BalanceAfter))
		})
	}
}

func TestLedger_BalanceAfterIsImmutable(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			first, err := l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-102", "100.00"))
			require.NoError(t, err)
			_, err = l.Post(ctx, post(domain.TransactionTypeWithdrawal, "ACC-102", "20000.00"))
			require.NoError(t, err)

			txs, err := l.ListTransactions(ctx, "ACC-102")
			require.NoError(t, err)
			require.Len(t, txs, 2)
			assert.Equal(t, first.ID, txs[1].ID)
			assert.Equal(t, "125100.50", domain.FormatAmount(txs[1].BalanceAfter))
			assert.Equal(t, "105100.50", domain.FormatAmount(txs[0].BalanceAfter))

			// 呼叫端修改回傳值不影響帳本
			txs[0].BalanceAfter = 0
			again, err := l.ListTransactions(ctx, "ACC-102")
			require.NoError(t, err)
			assert.Equal(t, "105100.50", domain.FormatAmount(again[0].BalanceAfter))
		})
	}
}

func TestLedger_RequestIDAndLock(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			req := post(domain.TransactionTypeDeposit, "ACC-101", "10.00")
			req.RequestID = uuid.New()
			tx1, err := l.Post(ctx, req)
			require.NoError(t, err)
			tx2, err := l.Post(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tx1, tx2)

			require.NoError(t, l.SetLocked(ctx, "ACC-101", true))
			_, err = l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-101", "1.00"))
			assert.ErrorIs(t, err, domain.ErrAccountLocked)
			// 已入帳的請求仍可重送取回結果
			tx3, err := l.Post(ctx, req)
			require.NoError(t, err)
			assert.Equal(t, tx1.ID, tx3.ID)

			require.NoError(t, l.SetLocked(ctx, "ACC-101", false))
			_, err = l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-101", "1.00"))
			assert.NoError(t, err)

			assert.ErrorIs(t, l.SetLocked(ctx, "ACC-999", true), domain.ErrAccountNotFound)
		})
	}
}

func TestLedger_OpenAccount(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			acc := account("ACC-103", domain.AccountTypeFixedDeposit, "0")
			require.NoError(t, l.OpenAccount(ctx, *acc))
			assert.ErrorIs(t, l.OpenAccount(ctx, *acc), domain.ErrAccountAlreadyExists)

			bad := account("ACC-104", domain.AccountTypeSavings, "-1.00")
			assert.ErrorIs(t, l.OpenAccount(ctx, *bad), domain.ErrInvalidAccount)

			all, err := l.LoadAllAccounts(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 4)
		})
	}
}

func TestLedger_ConcurrentDeposits(t *testing.T) {
	const (
		workers = 50
		perWork = 40
	)
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l := newLedger(t, seedAccounts(), nil)

			var wg sync.WaitGroup
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					for j := 0; j < perWork; j++ {
						id := "ACC-101"
						if (i+j)%2 == 0 {
							id = "ACC-102"
						}
						_, err := l.Post(ctx, post(domain.TransactionTypeDeposit, id, "2.50"))
						assert.NoError(t, err)
					}
				}(i)
			}
			wg.Wait()

			a, err := l.GetAccount(ctx, "ACC-101")
			require.NoError(t, err)
			b, err := l.GetAccount(ctx, "ACC-102")
			require.NoError(t, err)
			n := int64(workers * perWork)
			assert.Equal(t, domain.MustParseAmount("45000.00")+domain.MustParseAmount("125000.50")+n*250,
				a.Balance+b.Balance)

			all, err := l.ListTransactions(ctx, "")
			require.NoError(t, err)
			require.Len(t, all, int(n))
			seen := make(map[uint64]bool, n)
			for i, tx := range all {
				assert.False(t, seen[tx.Sequence])
				seen[tx.Sequence] = true
				if i > 0 {
					assert.Greater(t, all[i-1].Sequence, tx.Sequence)
				}
			}
		})
	}
}

func TestLedger_WALRecovery(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "wal.log")

			w, err := wal.Open(path)
			require.NoError(t, err)
			l := newLedger(t, seedAccounts(), w)
			_, err = l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-101", "5000.00"))
			require.NoError(t, err)
			_, err = l.Post(ctx, post(domain.TransactionTypeWithdrawal, "ACC-101", "1200.00"))
			require.NoError(t, err)
			_, err = l.Post(ctx, post(domain.TransactionTypeWithdrawal, "ACC-101", "999999.00"))
			require.Error(t, err)
			require.NoError(t, w.Close())

			w, err = wal.Open(path)
			require.NoError(t, err)
			defer w.Close()
			recovered := newLedger(t, seedAccounts(), w)
			assert.Equal(t, 2, w.Len())

			acc, err := recovered.GetAccount(ctx, "ACC-101")
			require.NoError(t, err)
			assert.Equal(t, "48800.00", domain.FormatAmount(acc.Balance))

			tx, err := recovered.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-101", "1.00"))
			require.NoError(t, err)
			assert.Equal(t, uint64(3), tx.Sequence)
		})
	}
}

func TestLedger_WALRecoversAccountEvents(t *testing.T) {
	for name, newLedger := range ledgers {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "wal.log")

			w, err := wal.Open(path)
			require.NoError(t, err)
			l := newLedger(t, seedAccounts(), w)
			opened := account("ACC-103", domain.AccountTypeSavings, "100.00")
			require.NoError(t, l.OpenAccount(ctx, *opened))
			_, err = l.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-103", "50.00"))
			require.NoError(t, err)
			require.NoError(t, l.SetLocked(ctx, "ACC-102", true))
			// 狀態未改變不寫紀錄
			require.NoError(t, l.SetLocked(ctx, "ACC-102", true))
			require.NoError(t, w.Close())

			w, err = wal.Open(path)
			require.NoError(t, err)
			defer w.Close()
			recovered := newLedger(t, seedAccounts(), w)
			assert.Equal(t, 3, w.Len())

			acc, err := recovered.GetAccount(ctx, "ACC-103")
			require.NoError(t, err)
			assert.Equal(t, "150.00", domain.FormatAmount(acc.Balance))
			assert.Equal(t, opened.CustomerID, acc.CustomerID)

			locked, err := recovered.GetAccount(ctx, "ACC-102")
			require.NoError(t, err)
			assert.True(t, locked.Locked)
			_, err = recovered.Post(ctx, post(domain.TransactionTypeDeposit, "ACC-102", "1.00"))
			assert.ErrorIs(t, err, domain.ErrAccountLocked)
			assert.ErrorIs(t, recovered.OpenAccount(ctx, *opened), domain.ErrAccountAlreadyExists)
		})
	}
}

func TestLedger_WALUnknownAccountEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := wal.Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(accountEvent{Event: eventSetLocked, AccountID: "ACC-999", Locked: true}))
	require.NoError(t, w.Close())

	w, err = wal.Open(path)
	require.NoError(t, err)
	defer w.Close()
	_, err = NewMutexLedger(seedAccounts(), w)
	assert.ErrorIs(t, err, domain.ErrWALCorrupted)
}

func TestLedger_WALCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wal.log")
	w, err := wal.Open(path)
	require.NoError(t, err)
	require.NoError(t, w.Append(domain.Transaction{
		ID:           uuid.New(),
		Sequence:     1,
		AccountID:    "ACC-101",
		Type:         domain.TransactionTypeDeposit,
		Amount:       100,
		BalanceAfter: 1, // 與重算結果不符
	}))
	require.NoError(t, w.Close())

	w, err = wal.Open(path)
	require.NoError(t, err)
	defer w.Close()
	_, err = NewMutexLedger(seedAccounts(), w)
	assert.ErrorIs(t, err, domain.ErrWALCorrupted)

	_, err = NewLMAXLedger(seedAccounts(), w)
	assert.ErrorIs(t, err, domain.ErrWALCorrupted)
}

func TestLMAXLedger_Stopped(t *testing.T) {
	l, err := NewLMAXLedger(seedAccounts(), nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	l.Start(ctx)
	cancel()
	<-l.Stopped()

	_, err = l.Post(context.Background(), post(domain.TransactionTypeDeposit, "ACC-101", "1.00"))
	assert.ErrorIs(t, err, ErrLedgerStopped)
}
