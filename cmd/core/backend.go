package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"

	memory_adapter "github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/internal/config"
	"github.com/JoeShih716/go-branch-ledger/internal/observability/logger"
	"github.com/JoeShih716/go-branch-ledger/pkg/mysql"
	"github.com/JoeShih716/go-branch-ledger/pkg/wal"
)

// slowQueryThreshold 超過即以 Warn 記錄 SQL
const slowQueryThreshold = 200 * time.Millisecond

// backend 依設定組好的儲存端
type backend struct {
	ledger    usecase.Ledger
	customers usecase.CustomerDirectory
	invoices  usecase.InvoiceStore
	sequencer *memory_adapter.InvoiceSequence
	// start 事件迴圈型帳本需要啟動；其他為 nil
	start func(ctx context.Context)
	// wait 等待帳本把已排隊的指令處理完
	wait  func()
	close func() error
}

// openBackend 建立帳本、客戶目錄與發票儲存
//
// 參數:
//
//	ctx: 上下文，用於 seed 與讀取既有流水號
//	cfg: 服務設定
//	log: 日誌
//
// 回傳:
//
//	*backend: 已 seed 的儲存端
//	error: 初始化錯誤
func openBackend(ctx context.Context, cfg *config.Config, log *zap.Logger) (*backend, error) {
	policy, err := cfg.Ledger.Policy()
	if err != nil {
		return nil, err
	}
	accounts, err := seedAccounts(cfg.Seed)
	if err != nil {
		return nil, err
	}

	switch cfg.Ledger.Backend {
	case config.BackendMutex, config.BackendLMAX:
		return openMemoryBackend(cfg, policy, accounts, log)
	case config.BackendMySQL, config.BackendSQLite:
		client, err := openSQLClient(cfg, log)
		if err != nil {
			return nil, err
		}
		b, err := openSQLBackend(ctx, cfg, client, policy, accounts, log)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown ledger backend %q", cfg.Ledger.Backend)
	}
}

func openMemoryBackend(cfg *config.Config, policy domain.PostingPolicy, accounts []domain.Account, log *zap.Logger) (*backend, error) {
	initial := make(map[string]*domain.Account, len(accounts))
	for i := range accounts {
		initial[accounts[i].ID] = &accounts[i]
	}

	var walFile *wal.WAL
	if cfg.Ledger.WALPath != "" {
		w, err := wal.Open(cfg.Ledger.WALPath)
		if err != nil {
			return nil, fmt.Errorf("open wal: %w", err)
		}
		walFile = w
	}
	closeWAL := func() error {
		if walFile == nil {
			return nil
		}
		return walFile.Close()
	}

	b := &backend{
		customers: memory_adapter.NewCustomerDirectory(cfg.Seed.Customers...),
		invoices:  memory_adapter.NewInvoiceStore(),
		sequencer: memory_adapter.NewInvoiceSequence(),
		wait:      func() {},
		close:     closeWAL,
	}

	opts := []memory_adapter.Option{memory_adapter.WithPolicy(policy)}
	if cfg.Ledger.Backend == config.BackendLMAX {
		l, err := memory_adapter.NewLMAXLedger(initial, walFile, opts...)
		if err != nil {
			_ = closeWAL()
			return nil, fmt.Errorf("init lmax ledger: %w", err)
		}
		b.ledger = l
		b.start = l.Start
		b.wait = func() { <-l.Stopped() }
	} else {
		l, err := memory_adapter.NewMutexLedger(initial, walFile, opts...)
		if err != nil {
			_ = closeWAL()
			return nil, fmt.Errorf("init mutex ledger: %w", err)
		}
		b.ledger = l
	}
	if walFile != nil {
		log.Info("wal recovered", zap.String("path", cfg.Ledger.WALPath), zap.Int("records", walFile.Len()))
	}
	return b, nil
}

func openSQLClient(cfg *config.Config, log *zap.Logger) (*mysql.Client, error) {
	gormLog := logger.NewGormLogger(log, cfg.MySQL.LogLevel, slowQueryThreshold)
	if cfg.Ledger.Backend == config.BackendSQLite {
		// sqlite 單一寫入者
		client, err := mysql.Open(sqlite.Open(cfg.SQLite.Path), mysql.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}, gormLog)
		if err != nil {
			return nil, fmt.Errorf("open sqlite %s: %w", cfg.SQLite.Path, err)
		}
		return client, nil
	}
	client, err := mysql.NewClient(cfg.MySQL, gormLog, log)
	if err != nil {
		return nil, err
	}
	log.Info("connected to mysql", zap.String("host", cfg.MySQL.Host), zap.String("db", cfg.MySQL.DBName))
	return client, nil
}

func openSQLBackend(ctx context.Context, cfg *config.Config, client *mysql.Client, policy domain.PostingPolicy,
	accounts []domain.Account, log *zap.Logger) (*backend, error) {
	if err := mysql_adapter.Migrate(client.DB()); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	ledger := mysql_adapter.NewMySQLLedger(client, policy, log)
	customers := mysql_adapter.NewCustomerDirectory(client)
	invoices := mysql_adapter.NewInvoiceStore(client)
	if err := seed(ctx, ledger, customers, cfg.Seed.Customers, accounts, log); err != nil {
		return nil, err
	}

	// 流水號由資料庫既有的最大值接續
	sequencer := memory_adapter.NewInvoiceSequence()
	existing, err := ledger.LoadAllAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load accounts: %w", err)
	}
	year := time.Now().Year()
	branches := make(map[string]struct{})
	for _, acc := range existing {
		branches[acc.BranchCode] = struct{}{}
	}
	for branch := range branches {
		last, err := invoices.MaxSequence(ctx, branch, year)
		if err != nil {
			return nil, fmt.Errorf("max invoice sequence for %s: %w", branch, err)
		}
		sequencer.Advance(branch, year, last)
	}
	log.Info("sql ledger ready", zap.Int("accounts", len(existing)), zap.Int("branches", len(branches)))

	return &backend{
		ledger:    ledger,
		customers: customers,
		invoices:  invoices,
		sequencer: sequencer,
		wait:      func() {},
		close:     client.Close,
	}, nil
}

// seed 登錄設定檔中的客戶與帳戶，已存在的帳戶略過 (不覆寫餘額)
func seed(ctx context.Context, ledger usecase.Ledger, customers usecase.CustomerDirectory,
	seedCustomers []domain.Customer, accounts []domain.Account, log *zap.Logger) error {
	for _, c := range seedCustomers {
		if err := customers.PutCustomer(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.ID, err)
		}
	}
	opened := 0
	for _, acc := range accounts {
		err := ledger.OpenAccount(ctx, acc)
		switch {
		case err == nil:
			opened++
		case errors.Is(err, domain.ErrAccountAlreadyExists):
		default:
			return fmt.Errorf("seed account %s: %w", acc.ID, err)
		}
	}
	log.Info("seed applied", zap.Int("customers", len(seedCustomers)), zap.Int("accounts_opened", opened))
	return nil
}

func seedAccounts(s config.Seed) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		acc, err := a.ToDomain()
		if err != nil {
			return nil, err
		}
		if acc.CreatedAt.IsZero() {
			acc.CreatedAt = time.Now().UTC()
		}
		out = append(out, acc)
	}
	return out, nil
}
