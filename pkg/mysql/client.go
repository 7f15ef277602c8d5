package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Client 封裝 GORM DB 實例
type Client struct {
	db *gorm.DB
}

// NewClient 建立並回傳一個新的 MySQL 客戶端實例 (GORM)
//
// 參數:
//
//	cfg: Config - MySQL 連線配置
//	gormLog: GORM logger，nil 時依 cfg.LogLevel 使用預設 logger
//	log: 連線重試訊息
//
// 回傳值:
//
//	*Client: 封裝後的 MySQL 客戶端
//	error: 若連線失敗則回傳錯誤
func NewClient(cfg Config, gormLog logger.Interface, log *zap.Logger) (*Client, error) {
	if gormLog == nil {
		gormLog = newLogger(cfg.LogLevel)
	}
	if log == nil {
		log = zap.NewNop()
	}

	var (
		client *Client
		err    error
	)
	// Retry mechanism for database connection
	maxRetries := 10
	retryInterval := 2 * time.Second
	for i := 0; i < maxRetries; i++ {
		client, err = Open(mysql.Open(cfg.DSN()), cfg.Pool, gormLog)
		if err == nil {
			return client, nil
		}
		if i < maxRetries-1 {
			log.Warn("mysql connect failed, retrying",
				zap.Int("attempt", i+1),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("retry_in", retryInterval),
				zap.Error(err),
			)
			time.Sleep(retryInterval)
		}
	}
	return nil, fmt.Errorf("failed to connect to mysql after %d attempts: %w", maxRetries, err)
}

// Open 以任意 GORM dialector 建立客戶端 (MySQL 正式環境、SQLite 開發與測試)
func Open(dialector gorm.Dialector, pool PoolConfig, gormLog logger.Interface) (*Client, error) {
	if gormLog == nil {
		gormLog = newLogger("")
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		// 入帳一律顯式開 Transaction，其餘寫入不需要預設事務
		SkipDefaultTransaction: true,
		Logger:                 gormLog,
		// 唯一鍵衝突轉成 gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	// 取得底層 sql.DB 物件以設定連線池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.db: %w", err)
	}
	pool = pool.WithDefaults()
	sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}
	return &Client{db: db}, nil
}

// DB 回傳底層的 *gorm.DB 實例，供業務邏輯層使用
func (c *Client) DB() *gorm.DB {
	return c.db
}

// Close 關閉資料庫連線
func (c *Client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// newLogger 根據配置建立 GORM Logger
func newLogger(level string) logger.Interface {
	var logLevel logger.LogLevel
	switch level {
	case "info":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	case "silent":
		logLevel = logger.Silent
	default:
		logLevel = logger.Error // 預設只記錄錯誤
	}

	return logger.Default.LogMode(logLevel)
}
