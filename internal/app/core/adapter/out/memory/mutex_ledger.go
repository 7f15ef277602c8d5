package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/pkg/wal"
)

// MutexLedger 是一個使用 Mutex 實現的帳本
//
// 結構:
//
//	entries: 帳戶資料 Map，每個帳戶各自持有一把鎖
//	mu: 只保護 entries 本身 (新增帳戶)，不同帳戶的入帳互不阻塞
//	sequence: 全局入帳順序號
//	wal: Write-Ahead Log 實例，可為 nil
type MutexLedger struct {
	mu       sync.RWMutex
	entries  map[string]*accountEntry
	sequence atomic.Uint64
	wal      *wal.WAL
	opts     options
}

// NewMutexLedger 建立一個新的 MutexLedger 實例
//
// 參數:
//
//	accounts: 初始帳戶資料 Map (會被複製)
//	log: Write-Ahead Log 實例，nil 代表純記憶體
//	opts: 入帳規則、時間來源
//
// 回傳:
//
//	*MutexLedger: MutexLedger 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewMutexLedger(accounts map[string]*domain.Account, log *wal.WAL, opts ...Option) (*MutexLedger, error) {
	entries, err := newEntries(accounts)
	if err != nil {
		return nil, err
	}
	ledger := &MutexLedger{
		entries: entries,
		wal:     log,
		opts:    buildOptions(opts),
	}
	if log != nil {
		last, err := recoverFromWAL(log, entries)
		if err != nil {
			return nil, err
		}
		ledger.sequence.Store(last)
	}
	return ledger, nil
}

func (m *MutexLedger) entry(accountID string) (*accountEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[accountID]
	if !ok {
		return nil, domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", accountID)
	}
	return e, nil
}

// Post 處理入帳請求 (帳戶層級 Mutex Lock)
//
// 參數:
//
//	ctx: 上下文
//	req: 入帳請求
//
// 回傳:
//
//	domain.Transaction: 交易紀錄
//	error: 處理錯誤，失敗時帳戶狀態不變
func (m *MutexLedger) Post(ctx context.Context, req domain.PostingRequest) (domain.Transaction, error) {
	if err := m.opts.policy.Validate(req); err != nil {
		return domain.Transaction{}, err
	}
	e, err := m.entry(req.AccountID)
	if err != nil {
		return domain.Transaction{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.post(m.opts.policy, req, m.nextSequence, m.opts.clock(), m.wal)
}

func (m *MutexLedger) nextSequence() uint64 {
	return m.sequence.Add(1)
}

// GetAccount 取得指定帳戶的快照
func (m *MutexLedger) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	e, err := m.entry(accountID)
	if err != nil {
		return domain.Account{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.account, nil
}

// ListTransactions 由新到舊列出交易
//
// accountID 為空時依固定順序鎖住所有帳戶，取得一致的全帳本快照
func (m *MutexLedger) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	if accountID != "" {
		e, err := m.entry(accountID)
		if err != nil {
			return nil, err
		}
		e.mu.Lock()
		defer e.mu.Unlock()
		return e.history(), nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := sortedIDs(m.entries)
	for _, id := range ids {
		m.entries[id].mu.Lock()
	}
	var out []domain.Transaction
	for _, id := range ids {
		out = append(out, m.entries[id].history()...)
		m.entries[id].mu.Unlock()
	}
	newestFirst(out)
	return out, nil
}

// OpenAccount 登錄新帳戶
func (m *MutexLedger) OpenAccount(ctx context.Context, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[account.ID]; ok {
		return domain.NewError(domain.ErrAccountAlreadyExists, "account_id", "%s", account.ID)
	}
	if err := logAccountEvent(m.wal, accountEvent{Event: eventOpenAccount, Account: &account}); err != nil {
		return err
	}
	m.entries[account.ID] = newAccountEntry(account)
	return nil
}

// SetLocked 凍結或解凍帳戶
func (m *MutexLedger) SetLocked(ctx context.Context, accountID string, locked bool) error {
	e, err := m.entry(accountID)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.account.Locked == locked {
		return nil
	}
	if err := logAccountEvent(m.wal, accountEvent{Event: eventSetLocked, AccountID: accountID, Locked: locked}); err != nil {
		return err
	}
	e.account.Locked = locked
	return nil
}

// LoadAllAccounts 回傳所有帳戶的快照
func (m *MutexLedger) LoadAllAccounts(ctx context.Context) (map[string]*domain.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]*domain.Account, len(m.entries))
	for id, e := range m.entries {
		e.mu.Lock()
		acc := e.account
		e.mu.Unlock()
		out[id] = &acc
	}
	return out, nil
}

var _ usecase.Ledger = (*MutexLedger)(nil)
