package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/observability/logger"
	"github.com/JoeShih716/go-branch-ledger/pkg/mysql"
)

// EnvPrefix 環境變數前綴，例如 LEDGER_LEDGER_BACKEND=lmax
const EnvPrefix = "LEDGER"

// 帳本實作
const (
	BackendMutex  = "mutex"
	BackendLMAX   = "lmax"
	BackendMySQL  = "mysql"
	BackendSQLite = "sqlite"
)

var (
	ifscPattern  = regexp.MustCompile(`^[A-Z]{4}[A-Z0-9]{6,7}$`)
	gstinPattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
)

// Config 服務設定
type Config struct {
	Server ServerConfig        `yaml:"server"`
	Ledger LedgerConfig        `yaml:"ledger"`
	MySQL  mysql.Config        `yaml:"mysql"`
	SQLite SQLiteConfig        `yaml:"sqlite"`
	Bank   domain.BankIdentity `yaml:"bank"`
	Log    logger.Config       `yaml:"log"`
	// Seed 啟動時登錄的客戶與帳戶 (已存在則略過)
	Seed Seed `yaml:"seed" ignored:"true"`
}

type ServerConfig struct {
	GRPCAddr    string `yaml:"grpc_addr" split_words:"true"`
	MetricsAddr string `yaml:"metrics_addr" split_words:"true"`
	// ShutdownTimeout GracefulStop 的等待上限
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" split_words:"true"`
}

type LedgerConfig struct {
	Backend string `yaml:"backend" split_words:"true"`
	// WALPath 記憶體帳本的 Write-Ahead Log，空值代表不落地
	WALPath string `yaml:"wal_path" split_words:"true"`
	// 金額以十進位字串表示，如 "50000.00"
	MaxAmount         string `yaml:"max_amount" split_words:"true"`
	ApprovalThreshold string `yaml:"approval_threshold" split_words:"true"`
	// SnowflakeNode 發票編號的節點 ID (0-1023)，多實例部署時需各自不同
	SnowflakeNode int64 `yaml:"snowflake_node" split_words:"true"`
}

type SQLiteConfig struct {
	Path string `yaml:"path" split_words:"true"`
}

// Seed 初始資料
type Seed struct {
	Customers []domain.Customer `yaml:"customers"`
	Accounts  []AccountSeed     `yaml:"accounts"`
}

// AccountSeed 設定檔中的帳戶，金額與利率為十進位字串
type AccountSeed struct {
	ID            string    `yaml:"id"`
	CustomerID    string    `yaml:"customer_id"`
	AccountNumber string    `yaml:"account_number"`
	Type          string    `yaml:"type"`
	Balance       string    `yaml:"balance"`
	InterestRate  string    `yaml:"interest_rate"`
	IFSC          string    `yaml:"ifsc"`
	BranchCode    string    `yaml:"branch_code"`
	Locked        bool      `yaml:"locked"`
	CreatedAt     time.Time `yaml:"created_at"`
}

// ToDomain 轉成 domain.Account；貸款帳戶可為負餘額
func (s AccountSeed) ToDomain() (domain.Account, error) {
	balance, err := domain.ParseSignedAmount(s.Balance)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s balance: %w", s.ID, err)
	}
	rate := decimal.Zero
	if s.InterestRate != "" {
		if rate, err = decimal.NewFromString(s.InterestRate); err != nil {
			return domain.Account{}, fmt.Errorf("account %s interest_rate: %w", s.ID, err)
		}
	}
	acc := domain.Account{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		AccountNumber: s.AccountNumber,
		Type:          domain.AccountType(s.Type),
		Balance:       balance,
		InterestRate:  rate,
		IFSC:          s.IFSC,
		BranchCode:    s.BranchCode,
		Locked:        s.Locked,
		CreatedAt:     s.CreatedAt,
	}
	return acc, acc.Validate()
}

// Default 回傳預設設定
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			GRPCAddr:        ":50051",
			MetricsAddr:     ":9090",
			ShutdownTimeout: 10 * time.Second,
		},
		Ledger: LedgerConfig{
			Backend:           BackendMutex,
			WALPath:           "wal.log",
			MaxAmount:         domain.FormatAmount(domain.DefaultMaxAmount),
			ApprovalThreshold: domain.FormatAmount(domain.DefaultApprovalThreshold),
			SnowflakeNode:     1,
		},
		MySQL: mysql.Config{
			Host:     "127.0.0.1",
			Port:     3306,
			DBName:   "ledger",
			LogLevel: "warn",
		},
		SQLite: SQLiteConfig{Path: "ledger.db"},
		Bank: domain.BankIdentity{
			Name:       "PMB Group Co-op Bank",
			BranchName: "Bangalore Central",
			IFSC:       "PMBG000101",
			GSTIN:      "29AAAFP0000A1Z5",
			Address:    "Main Road, Indiranagar, KA - 560038",
			SAC:        "997112",
		},
		Log: logger.Config{Level: "info", Format: "json"},
	}
}

// Load 讀取設定: 預設值 -> YAML 檔 -> 環境變數覆蓋 -> 驗證
//
// 參數:
//
//	path: YAML 檔路徑，空字串或檔案不存在時只使用預設值與環境變數
//
// 回傳:
//
//	*Config: 驗證過的設定
//	error: 解析或驗證錯誤
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			// 只用環境變數
		default:
			return nil, err
		}
	}

	// override config from environment variables
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("env override: %w", err)
	}
	cfg.Ledger.Backend = strings.ToLower(strings.TrimSpace(cfg.Ledger.Backend))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 檢查設定值
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Server),
		validation.Field(&c.Ledger),
		validation.Field(&c.MySQL, validation.When(c.Ledger.Backend == BackendMySQL,
			validation.By(validateMySQL))),
		validation.Field(&c.SQLite, validation.When(c.Ledger.Backend == BackendSQLite,
			validation.By(validateSQLite))),
		validation.Field(&c.Bank, validation.By(validateBank)),
		validation.Field(&c.Seed),
	)
}

func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.GRPCAddr, validation.Required),
		validation.Field(&s.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

func (l LedgerConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Backend, validation.Required,
			validation.In(BackendMutex, BackendLMAX, BackendMySQL, BackendSQLite)),
		validation.Field(&l.MaxAmount, validation.Required, validation.By(isAmount)),
		validation.Field(&l.ApprovalThreshold, validation.Required, validation.By(isAmount)),
		validation.Field(&l.SnowflakeNode, validation.Min(int64(0)), validation.Max(int64(1023))),
	)
}

// Policy 由設定組出入帳規則
func (l LedgerConfig) Policy() (domain.PostingPolicy, error) {
	maxAmount, err := domain.ParseAmount(l.MaxAmount)
	if err != nil {
		return domain.PostingPolicy{}, fmt.Errorf("max_amount: %w", err)
	}
	threshold, err := domain.ParseAmount(l.ApprovalThreshold)
	if err != nil {
		return domain.PostingPolicy{}, fmt.Errorf("approval_threshold: %w", err)
	}
	return domain.PostingPolicy{MaxAmount: maxAmount, ApprovalThreshold: threshold}, nil
}

func (s Seed) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Customers, validation.Each(validation.By(validateCustomer))),
		validation.Field(&s.Accounts, validation.Each(validation.By(validateAccountSeed))),
	)
}

func validateMySQL(v interface{}) error {
	c := v.(mysql.Config)
	return validation.ValidateStruct(&c,
		validation.Field(&c.Host, validation.Required),
		validation.Field(&c.User, validation.Required),
		validation.Field(&c.DBName, validation.Required),
		validation.Field(&c.Port, validation.Min(0), validation.Max(65535)),
	)
}

func validateSQLite(v interface{}) error {
	c := v.(SQLiteConfig)
	return validation.ValidateStruct(&c, validation.Field(&c.Path, validation.Required))
}

func validateBank(v interface{}) error {
	b := v.(domain.BankIdentity)
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.IFSC, validation.Required, validation.Match(ifscPattern)),
		validation.Field(&b.GSTIN, validation.Required, validation.Match(gstinPattern)),
	)
}

func validateCustomer(v interface{}) error {
	c := v.(domain.Customer)
	return validation.ValidateStruct(&c,
		validation.Field(&c.ID, validation.Required),
		validation.Field(&c.Name, validation.Required),
	)
}

func validateAccountSeed(v interface{}) error {
	s := v.(AccountSeed)
	if err := validation.ValidateStruct(&s,
		validation.Field(&s.ID, validation.Required),
		validation.Field(&s.CustomerID, validation.Required),
		validation.Field(&s.BranchCode, validation.Required),
		validation.Field(&s.IFSC, validation.Match(ifscPattern)),
	); err != nil {
		return err
	}
	_, err := s.ToDomain()
	return err
}

func isAmount(v interface{}) error {
	s, _ := v.(string)
	_, err := domain.ParseAmount(s)
	return err
}
