package mysql

import (
	"fmt"
	"time"
)

// Config 定義 MySQL 連線與連線池的配置
type Config struct {
	Host     string `yaml:"host" split_words:"true"`     // 資料庫主機地址
	Port     int    `yaml:"port" split_words:"true"`     // 資料庫埠號 (預設 3306)
	User     string `yaml:"user" split_words:"true"`     // 使用者名稱
	Password string `yaml:"password" split_words:"true"` // 密碼
	DBName   string `yaml:"db_name" split_words:"true"`  // 資料庫名稱

	Pool PoolConfig `yaml:"pool"`

	// GORM 設定
	LogLevel string `yaml:"log_level" split_words:"true"` // Log 等級: "silent", "error", "warn", "info"
}

// PoolConfig 連線池設定 (Connection Pool)
// 參考: https://github.com/go-sql-driver/mysql#important-settings
type PoolConfig struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`    // 最大開啟連線數
	MaxIdleConns    int           `yaml:"max_idle_conns"`    // 最大閒置連線數
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"` // 連線最大存活時間
}

// WithDefaults 補全未設定的連線池參數
func (p PoolConfig) WithDefaults() PoolConfig {
	if p.MaxOpenConns == 0 {
		p.MaxOpenConns = 100
	}
	if p.MaxIdleConns == 0 {
		p.MaxIdleConns = 10
	}
	if p.ConnMaxLifetime == 0 {
		p.ConnMaxLifetime = 30 * time.Minute
	}
	return p
}

// DSN (Data Source Name) 產生連線字串
// 格式: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
func (c *Config) DSN() string {
	port := c.Port
	if port == 0 {
		port = 3306
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User,
		c.Password,
		c.Host,
		port,
		c.DBName,
	)
}
