package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mysql_adapter "github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/mysql"
	"github.com/JoeShih716/go-branch-ledger/internal/config"
)

// migrateCommand 建立資料表並寫入 seed，只適用 mysql / sqlite
func migrateCommand(a *app) *cobra.Command {
	var withSeed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the SQL schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := a.cfg, a.log
			if cfg.Ledger.Backend != config.BackendMySQL && cfg.Ledger.Backend != config.BackendSQLite {
				return fmt.Errorf("migrate needs a sql backend, got %q", cfg.Ledger.Backend)
			}
			client, err := openSQLClient(cfg, log)
			if err != nil {
				return err
			}
			defer client.Close()

			if err := mysql_adapter.Migrate(client.DB()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("schema migrated", zap.String("backend", cfg.Ledger.Backend))
			if !withSeed {
				return nil
			}

			policy, err := cfg.Ledger.Policy()
			if err != nil {
				return err
			}
			accounts, err := seedAccounts(cfg.Seed)
			if err != nil {
				return err
			}
			ledger := mysql_adapter.NewMySQLLedger(client, policy, log)
			return seed(cmd.Context(), ledger, mysql_adapter.NewCustomerDirectory(client), cfg.Seed.Customers, accounts, log)
		},
	}
	cmd.Flags().BoolVar(&withSeed, "seed", true, "open seed customers and accounts from the config file")
	return cmd
}
