package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/pkg/mysql"
)

// MySQLLedger 以資料庫交易 + 悲觀鎖實作的帳本
//
// 多個服務實例可共用同一個資料庫；帳戶列的 SELECT ... FOR UPDATE 序列化同帳戶入帳
type MySQLLedger struct {
	client *mysql.Client
	policy domain.PostingPolicy
	clock  func() time.Time
	log    *zap.Logger
}

// NewMySQLLedger 建立資料庫帳本
//
// 參數:
//
//	client: 已連線的資料庫客戶端 (MySQL 或 SQLite)
//	policy: 入帳規則
//	log: 結構化日誌，可為 nil
func NewMySQLLedger(client *mysql.Client, policy domain.PostingPolicy, log *zap.Logger) *MySQLLedger {
	if log == nil {
		log = zap.NewNop()
	}
	return &MySQLLedger{
		client: client,
		policy: policy,
		clock:  time.Now,
		log:    log,
	}
}

// WithClock 設定時間來源 (測試用)
func (ledger *MySQLLedger) WithClock(clock func() time.Time) *MySQLLedger {
	ledger.clock = clock
	return ledger
}

// Post 在單一資料庫交易內完成: 鎖帳戶 -> 冪等檢查 -> 規則試算 -> 寫交易 -> 更新餘額
func (ledger *MySQLLedger) Post(ctx context.Context, req domain.PostingRequest) (domain.Transaction, error) {
	if err := ledger.policy.Validate(req); err != nil {
		return domain.Transaction{}, err
	}

	var result domain.Transaction
	err := ledger.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 取得鎖定帳號 悲觀鎖
		var row sqlAccount
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", req.AccountID).
			First(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", req.AccountID)
		}
		if err != nil {
			return err
		}

		// 先檢查是否有這筆請求的紀錄
		if req.RequestID != uuid.Nil {
			var existing sqlTransaction
			err := tx.Where("account_id = ? AND request_id = ?", req.AccountID, req.RequestID.String()).
				First(&existing).Error
			if err == nil {
				ledger.log.Debug("idempotent replay",
					zap.String("account_id", req.AccountID),
					zap.String("request_id", req.RequestID.String()),
				)
				result, err = existing.toDomain()
				return err
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		acc, err := row.toDomain()
		if err != nil {
			return err
		}
		balance, err := ledger.policy.Apply(&acc, req)
		if err != nil {
			return err
		}

		// 建立交易紀錄，自增主鍵即為順序號
		t := domain.NewTransaction(req, 0, balance, ledger.clock())
		txRow := transactionFromDomain(t)
		if err := tx.Create(&txRow).Error; err != nil {
			return err
		}
		if err := tx.Model(&sqlAccount{}).
			Where("id = ?", req.AccountID).
			Update("balance", balance).Error; err != nil {
			return err
		}
		t.Sequence = uint64(txRow.ID)
		result = t
		return nil
	})
	if err != nil {
		return domain.Transaction{}, err
	}
	return result, nil
}

// GetAccount 取得帳戶快照
func (ledger *MySQLLedger) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	var row sqlAccount
	err := ledger.client.DB().WithContext(ctx).Where("id = ?", accountID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Account{}, domain.NewError(domain.ErrAccountNotFound, "account_id", "%s", accountID)
	}
	if err != nil {
		return domain.Account{}, err
	}
	return row.toDomain()
}

// ListTransactions 依順序號由新到舊
func (ledger *MySQLLedger) ListTransactions(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	db := ledger.client.DB().WithContext(ctx)
	if accountID != "" {
		if _, err := ledger.GetAccount(ctx, accountID); err != nil {
			return nil, err
		}
		db = db.Where("account_id = ?", accountID)
	}
	var rows []sqlTransaction
	if err := db.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		t, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", rows[i].ID, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// OpenAccount 登錄新帳戶
func (ledger *MySQLLedger) OpenAccount(ctx context.Context, account domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}
	return ledger.client.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&sqlAccount{}).Where("id = ?", account.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.NewError(domain.ErrAccountAlreadyExists, "account_id", "%s", account.ID)
		}
		row := accountFromDomain(account)
		err := tx.Create(&row).Error
		if isDuplicateKey(err) {
			return domain.NewError(domain.ErrAccountAlreadyExists, "account_id", "%s", account.ID)
		}
		return err
	})
}

// SetLocked 凍結或解凍帳戶
func (ledger *MySQLLedger) SetLocked(ctx context.Context, accountID string, locked bool) error {
	if _, err := ledger.GetAccount(ctx, accountID); err != nil {
		return err
	}
	return ledger.client.DB().WithContext(ctx).
		Model(&sqlAccount{}).
		Where("id = ?", accountID).
		Update("locked", locked).Error
}

// LoadAllAccounts 載入所有帳戶
func (ledger *MySQLLedger) LoadAllAccounts(ctx context.Context) (map[string]*domain.Account, error) {
	var rows []sqlAccount
	if err := ledger.client.DB().WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]*domain.Account, len(rows))
	for i := range rows {
		acc, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", rows[i].ID, err)
		}
		out[acc.ID] = &acc
	}
	return out, nil
}

var _ usecase.Ledger = (*MySQLLedger)(nil)
