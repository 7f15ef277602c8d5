package memory

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/pkg/wal"
)

// Option 記憶體帳本的選項
type Option func(*options)

type options struct {
	policy domain.PostingPolicy
	clock  func() time.Time
}

// WithPolicy 設定入帳規則 (預設 domain.DefaultPostingPolicy)
func WithPolicy(p domain.PostingPolicy) Option {
	return func(o *options) { o.policy = p }
}

// WithClock 設定時間來源 (測試用)
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

func buildOptions(opts []Option) options {
	o := options{
		policy: domain.DefaultPostingPolicy(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// accountEntry 單一帳戶的狀態與交易紀錄
//
// MutexLedger 以 mu 序列化同一帳戶的入帳；LMAXLedger 只在事件迴圈內存取，不使用 mu
type accountEntry struct {
	mu      sync.Mutex
	account domain.Account
	// transactions 由舊到新
	transactions []domain.Transaction
	// requests: 冪等鍵 -> transactions 索引
	requests map[uuid.UUID]int
}

func newAccountEntry(acc domain.Account) *accountEntry {
	return &accountEntry{
		account:  acc,
		requests: make(map[uuid.UUID]int),
	}
}

func newEntries(accounts map[string]*domain.Account) (map[string]*accountEntry, error) {
	entries := make(map[string]*accountEntry, len(accounts))
	for id, acc := range accounts {
		if acc == nil {
			continue
		}
		if acc.ID != id {
			return nil, fmt.Errorf("account key %q does not match id %q", id, acc.ID)
		}
		if err := acc.Validate(); err != nil {
			return nil, err
		}
		entries[id] = newAccountEntry(*acc)
	}
	return entries, nil
}

// post 入帳核心邏輯，呼叫端必須已取得該帳戶的獨占權
//
// 參數:
//
//	policy: 入帳規則
//	req: 已通過 policy.Validate 的請求
//	nextSeq: 分配全局順序號
//	now: 交易時間
//	log: WAL，可為 nil
//
// 回傳:
//
//	domain.Transaction: 新交易 (或冪等重送時的原交易)
//	error: 任何錯誤都不會留下部分修改
func (e *accountEntry) post(policy domain.PostingPolicy, req domain.PostingRequest, nextSeq func() uint64, now time.Time, log *wal.WAL) (domain.Transaction, error) {
	if req.RequestID != uuid.Nil {
		if idx, ok := e.requests[req.RequestID]; ok {
			return e.transactions[idx].Clone(), nil
		}
	}

	balance, err := policy.Apply(&e.account, req)
	if err != nil {
		return domain.Transaction{}, err
	}
	tx := domain.NewTransaction(req, nextSeq(), balance, now)

	// 1. 寫入 WAL (Critical Path)
	if log != nil {
		if err := log.Append(tx); err != nil {
			return domain.Transaction{}, fmt.Errorf("%w: %v", domain.ErrWALWriteFailed, err)
		}
	}

	// 2. 更新餘額並追加交易
	e.commit(tx)
	return tx.Clone(), nil
}

func (e *accountEntry) commit(tx domain.Transaction) {
	e.account.Balance = tx.BalanceAfter
	e.transactions = append(e.transactions, tx)
	if tx.RequestID != uuid.Nil {
		e.requests[tx.RequestID] = len(e.transactions) - 1
	}
}

// replay 重放一筆 WAL 紀錄，並驗證 BalanceAfter 與重算結果一致
func (e *accountEntry) replay(tx domain.Transaction) error {
	next := e.account.Balance + tx.SignedDelta()
	if next != tx.BalanceAfter {
		return fmt.Errorf("%w: transaction %s expects balance %s, replay gives %s",
			domain.ErrWALCorrupted, tx.ID, domain.FormatAmount(tx.BalanceAfter), domain.FormatAmount(next))
	}
	e.commit(tx)
	return nil
}

// history 由新到舊的拷貝
func (e *accountEntry) history() []domain.Transaction {
	out := make([]domain.Transaction, 0, len(e.transactions))
	for i := len(e.transactions) - 1; i >= 0; i-- {
		out = append(out, e.transactions[i].Clone())
	}
	return out
}

// accountEvent 帳戶異動的 WAL 紀錄；入帳紀錄直接寫入 domain.Transaction，沒有 event 欄位
type accountEvent struct {
	Event     string          `json:"event"`
	Account   *domain.Account `json:"account,omitempty"`
	AccountID string          `json:"account_id,omitempty"`
	Locked    bool            `json:"locked"`
}

const (
	eventOpenAccount = "open_account"
	eventSetLocked   = "set_locked"
)

// logAccountEvent 寫入帳戶異動，log 為 nil 時略過
func logAccountEvent(log *wal.WAL, ev accountEvent) error {
	if log == nil {
		return nil
	}
	if err := log.Append(ev); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWALWriteFailed, err)
	}
	return nil
}

// replayAccountEvent 重放開戶與凍結紀錄
//
// 開戶紀錄的帳戶若已在初始資料中則保留初始資料
func replayAccountEvent(ev accountEvent, entries map[string]*accountEntry) error {
	switch ev.Event {
	case eventOpenAccount:
		if ev.Account == nil {
			return fmt.Errorf("%w: open_account record without account", domain.ErrWALCorrupted)
		}
		if _, ok := entries[ev.Account.ID]; ok {
			return nil
		}
		if err := ev.Account.Validate(); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWALCorrupted, err)
		}
		entries[ev.Account.ID] = newAccountEntry(*ev.Account)
		return nil
	case eventSetLocked:
		entry, ok := entries[ev.AccountID]
		if !ok {
			return fmt.Errorf("%w: set_locked references unknown account %s", domain.ErrWALCorrupted, ev.AccountID)
		}
		entry.account.Locked = ev.Locked
		return nil
	default:
		return fmt.Errorf("%w: unknown event %q", domain.ErrWALCorrupted, ev.Event)
	}
}

// recoverFromWAL 從 WAL 檔案恢復帳本狀態 (單執行緒，建構時呼叫)
//
// 回傳:
//
//	uint64: 已使用的最大順序號
//	error: 恢復過程錯誤
func recoverFromWAL(log *wal.WAL, entries map[string]*accountEntry) (uint64, error) {
	var last uint64
	err := log.Replay(func(raw json.RawMessage) error {
		var ev accountEvent
		if err := json.Unmarshal(raw, &ev); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWALCorrupted, err)
		}
		if ev.Event != "" {
			return replayAccountEvent(ev, entries)
		}

		var tx domain.Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return fmt.Errorf("%w: %v", domain.ErrWALCorrupted, err)
		}
		entry, ok := entries[tx.AccountID]
		if !ok {
			return fmt.Errorf("%w: transaction %s references unknown account %s", domain.ErrWALCorrupted, tx.ID, tx.AccountID)
		}
		if err := entry.replay(tx); err != nil {
			return err
		}
		if tx.Sequence > last {
			last = tx.Sequence
		}
		return nil
	})
	return last, err
}

// newestFirst 依全局順序號由新到舊排序
func newestFirst(txs []domain.Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Sequence > txs[j].Sequence
	})
}

// sortedIDs 固定的加鎖順序，避免死鎖
func sortedIDs(entries map[string]*accountEntry) []string {
	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
