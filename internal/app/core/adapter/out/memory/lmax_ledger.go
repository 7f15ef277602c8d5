package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/pkg/wal"
)

// ErrLedgerStopped 事件迴圈已停止
var ErrLedgerStopped = errors.New("ledger stopped")

// command 包裝一個要在事件迴圈內執行的動作，讓呼叫端可以等待結果
type command struct {
	run  func()
	done chan struct{}
}

// LMAXLedger 單一寫入者帳本
//
// 所有讀寫都送進 commands 輸送帶，由同一個 goroutine 依序執行，
// 因此帳戶狀態不需要任何鎖。
type LMAXLedger struct {
	entries  map[string]*accountEntry
	sequence uint64
	wal      *wal.WAL
	opts     options
	// 輸送帶 負責接收指令
	commands chan *command
	// Pool 減少 GC 壓力
	pool      sync.Pool
	startOnce sync.Once
	stopped   chan struct{}
}

// NewLMAXLedger 建立一個新的 LMAXLedger 實例
//
// 參數:
//
//	accounts: 初始帳戶資料 Map (會被複製)
//	log: Write-Ahead Log 實例，可為 nil
//	opts: 入帳規則、時間來源
//
// 回傳:
//
//	*LMAXLedger: 尚未啟動的實例，需呼叫 Start
//	error: 初始化錯誤
func NewLMAXLedger(accounts map[string]*domain.Account, log *wal.WAL, opts ...Option) (*LMAXLedger, error) {
	entries, err := newEntries(accounts)
	if err != nil {
		return nil, err
	}
	ledger := &LMAXLedger{
		entries:  entries,
		wal:      log,
		opts:     buildOptions(opts),
		commands: make(chan *command, 1024),
		stopped:  make(chan struct{}),
		pool: sync.Pool{
			New: func() any {
				return &command{done: make(chan struct{}, 1)}
			},
		},
	}

	// 在啟動前先恢復資料
	if log != nil {
		last, err := recoverFromWAL(log, entries)
		if err != nil {
			return nil, err
		}
		ledger.sequence = last
	}
	return ledger, nil
}

// Start 啟動核心引擎 (非同步)；ctx 取消後把已排隊的指令處理完才停止
func (l *LMAXLedger) Start(ctx context.Context) {
	l.startOnce.Do(func() {
		go l.run(ctx)
	})
}

// Stopped 事件迴圈結束後關閉
func (l *LMAXLedger) Stopped() <-chan struct{} {
	return l.stopped
}

func (l *LMAXLedger) run(ctx context.Context) {
	defer close(l.stopped)
	for {
		select {
		case <-ctx.Done():
			l.drain()
			return
		case cmd := <-l.commands:
			l.execute(cmd)
		}
	}
}

func (l *LMAXLedger) drain() {
	for {
		select {
		case cmd := <-l.commands:
			l.execute(cmd)
		default:
			return
		}
	}
}

func (l *LMAXLedger) execute(cmd *command) {
	cmd.run()
	cmd.done <- struct{}{}
}

// submit 放入輸送帶並等待執行完成
//
// 指令一旦被迴圈取出就一定會執行完，ctx 只影響排隊階段
func (l *LMAXLedger) submit(ctx context.Context, fn func()) error {
	cmd := l.pool.Get().(*command)
	cmd.run = fn

	select {
	case l.commands <- cmd:
	case <-ctx.Done():
		cmd.run = nil
		l.pool.Put(cmd)
		return ctx.Err()
	case <-l.stopped:
		cmd.run = nil
		l.pool.Put(cmd)
		return ErrLedgerStopped
	}

	select {
	case <-cmd.done:
	case <-l.stopped:
		select {
		case <-cmd.done:
		default:
			// 迴圈已結束而指令仍在輸送帶上，不可放回 pool
			return ErrLedgerStopped
		}
	}
	cmd.run = nil
	l.pool.Put(cmd)
	return nil
}

// Post 接收入帳請求
//
// Post(等待) -> Channel -> Run Loop (核心) -> WAL -> Map Update -> done -> Post(收到結果)
func (l *LMAXLedger) Post(ctx context.Context, req domain.PostingRequest) (domain.Transaction, error) {
	if err := l.opts.policy.Validate(req); err != nil {
		return domain.Transaction{}, err
	}
	var (
		tx     domain.Transaction
		postEr error
	)
	err := l.submit(ctx, func() {
		e, ok := l.entries[req.AccountID]
		if !ok {
			postEr = domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", req.AccountID)
			return
		}
		tx, postEr = e.post(l.opts.policy, req, l.nextSequence, l.opts.clock(), l.wal)
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return tx, postEr
}

// nextSequence 只在事件迴圈內呼叫
func (l *LMAXLedger) nextSequence() uint64 {
	l.sequence++
	return l.sequence
}

// GetAccount 取得帳戶快照
func (l *LMAXLedger) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	var (
		acc   domain.Account
		getEr error
	)
	err := l.submit(ctx, func() {
		e, ok := l.entries[accountID]
		if !ok {
			getEr = domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", accountID)
			return
		}
		acc = e.account
	})
	if err != nil {
		return domain.Account{}, err
	}
	return acc, getEr
}

// ListTransactions 由新到舊列出交易
func (l *LMAXLedger) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	var (
		out    []domain.Transaction
		listEr error
	)
	err := l.submit(ctx, func() {
		if accountID != "" {
			e, ok := l.entries[accountID]
			if !ok {
				listEr = domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", accountID)
				return
			}
			out = e.history()
			return
		}
		for _, e := range l.entries {
			out = append(out, e.history()...)
		}
		newestFirst(out)
	})
	if err != nil {
		return nil, err
	}
	return out, listEr
}

// OpenAccount 登錄新帳戶
func (l *LMAXLedger) OpenAccount(ctx context.Context, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	var openEr error
	err := l.submit(ctx, func() {
		if _, ok := l.entries[account.ID]; ok {
			openEr = domain.NewError(domain.ErrAccountAlreadyExists, "account_id", "%s", account.ID)
			return
		}
		if openEr = logAccountEvent(l.wal, accountEvent{Event: eventOpenAccount, Account: &account}); openEr != nil {
			return
		}
		l.entries[account.ID] = newAccountEntry(account)
	})
	if err != nil {
		return err
	}
	return openEr
}

// SetLocked 凍結或解凍帳戶
func (l *LMAXLedger) SetLocked(ctx context.Context, accountID string, locked bool) error {
	var lockEr error
	err := l.submit(ctx, func() {
		e, ok := l.entries[accountID]
		if !ok {
			lockEr = domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", accountID)
			return
		}
		if e.account.Locked == locked {
			return
		}
		if lockEr = logAccountEvent(l.wal, accountEvent{Event: eventSetLocked, AccountID: accountID, Locked: locked}); lockEr != nil {
			return
		}
		e.account.Locked = locked
	})
	if err != nil {
		return err
	}
	return lockEr
}

// LoadAllAccounts 回傳所有帳戶的快照
func (l *LMAXLedger) LoadAllAccounts(ctx context.Context) (map[string]*domain.Account, error) {
	out := make(map[string]*domain.Account)
	err := l.submit(ctx, func() {
		for id, e := range l.entries {
			acc := e.account
			out[id] = &acc
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

var _ usecase.Ledger = (*LMAXLedger)(nil)
