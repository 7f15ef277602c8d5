package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-branch-ledger/internal/config"
	"github.com/JoeShih716/go-branch-ledger/internal/observability/logger"
)

const serviceName = "ledgerd"

// app 由 PersistentPreRunE 填入，子指令共用
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCommand() *cobra.Command {
	var configFile string
	a := &app{}

	root := &cobra.Command{
		Use:           serviceName,
		Short:         "Branch ledger: postings, GST invoices and receipts over gRPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			log, err := logger.New(cfg.Log, serviceName)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "config/config.yaml", "YAML config file (env LEDGER_* overrides)")

	serve := serveCommand(a)
	root.AddCommand(serve, migrateCommand(a))
	// 不帶子指令時直接啟動服務
	root.RunE = serve.RunE
	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
