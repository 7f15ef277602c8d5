package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	grpcpool "github.com/JoeShih716/go-branch-ledger/pkg/grpc"
	pb "github.com/JoeShih716/go-branch-ledger/proto"
)

type loadOptions struct {
	addr        string
	accountID   string
	amount      string
	gstRate     string
	count       int
	concurrency int
	timeout     time.Duration
	json        bool
}

func main() {
	opts := loadOptions{}
	cmd := &cobra.Command{
		Use:   "test_rpc_client",
		Short: "Fire concurrent deposits at ledgerd and check the resulting balance",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}
			defer log.Sync()
			return run(cmd.Context(), opts, log)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.addr, "addr", "localhost:50051", "ledgerd gRPC address")
	f.StringVar(&opts.accountID, "account", "ACC-101", "account to deposit into")
	f.StringVar(&opts.amount, "amount", "100.00", "amount per deposit")
	f.StringVar(&opts.gstRate, "gst-rate", "18", "inclusive GST rate in percent, empty for none")
	f.IntVar(&opts.count, "count", 10000, "number of deposits")
	f.IntVar(&opts.concurrency, "concurrency", 100, "in-flight requests")
	f.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline")
	f.BoolVar(&opts.json, "json", false, "encode requests with the json content-subtype instead of protobuf")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts loadOptions, log *zap.Logger) error {
	amount, err := domain.ParseAmount(opts.amount)
	if err != nil {
		return err
	}

	var poolOpts []grpcpool.PoolOption
	if opts.json {
		poolOpts = append(poolOpts, grpcpool.WithContentSubtype(pb.Codec))
	}
	pool := grpcpool.NewPool(poolOpts...)
	defer pool.Close()
	conn, err := pool.GetConnection(opts.addr)
	if err != nil {
		return err
	}
	c := pb.NewLedgerServiceClient(conn)

	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	before, err := c.GetAccount(ctx, &pb.GetAccountRequest{AccountId: opts.accountID})
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	log.Info("starting load",
		zap.String("account", opts.accountID),
		zap.String("balance", before.Account.Balance),
		zap.Int("count", opts.count),
		zap.Int("concurrency", opts.concurrency),
	)

	var (
		wg          sync.WaitGroup
		posted      atomic.Int64
		rejected    atomic.Int64
		failed      atomic.Int64
		lastInvoice atomic.Value
	)
	sem := make(chan struct{}, opts.concurrency)
	start := time.Now()
	for i := 0; i < opts.count; i++ {
		sem <- struct{}{}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			resp, err := c.Post(ctx, &pb.PostRequest{
				AccountId:        opts.accountID,
				Type:             string(domain.TransactionTypeDeposit),
				Amount:           opts.amount,
				Description:      fmt.Sprintf("load test deposit #%d", idx),
				OperatorId:       "load-test",
				RequestId:        uuid.NewString(),
				InclusiveGstRate: opts.gstRate,
			})
			switch {
			case err != nil:
				failed.Add(1)
				if idx%1000 == 0 {
					log.Warn("post failed", zap.Int("idx", idx), zap.Error(err))
				}
			case !resp.Success:
				rejected.Add(1)
				if idx%1000 == 0 {
					log.Warn("post rejected", zap.Int("idx", idx), zap.String("kind", resp.ErrorKind), zap.String("message", resp.Message))
				}
			default:
				posted.Add(1)
				if resp.Invoice != nil {
					lastInvoice.Store(resp.Invoice.Id)
				}
			}
		}(i)
	}
	wg.Wait()
	elapsed := time.Since(start)

	after, err := c.GetAccount(ctx, &pb.GetAccountRequest{AccountId: opts.accountID})
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}
	beforeMinor, _ := domain.ParseSignedAmount(before.Account.Balance)
	afterMinor, _ := domain.ParseSignedAmount(after.Account.Balance)
	expected := beforeMinor + posted.Load()*amount

	log.Info("load finished",
		zap.Duration("elapsed", elapsed),
		zap.Float64("tps", float64(opts.count)/elapsed.Seconds()),
		zap.Int64("posted", posted.Load()),
		zap.Int64("rejected", rejected.Load()),
		zap.Int64("failed", failed.Load()),
		zap.String("balance", after.Account.Balance),
		zap.String("expected", domain.FormatAmount(expected)),
	)
	if afterMinor != expected {
		// 其他客戶端同時入帳時也會不一致
		log.Warn("balance differs from expected", zap.Int64("diff_minor", afterMinor-expected))
	}

	if id, ok := lastInvoice.Load().(string); ok {
		receipt, err := c.RenderReceipt(ctx, &pb.RenderReceiptRequest{InvoiceId: id})
		if err != nil {
			return fmt.Errorf("render receipt: %w", err)
		}
		log.Info("sample receipt",
			zap.String("invoice_number", receipt.InvoiceNumber),
			zap.String("content_type", receipt.ContentType),
			zap.Int("bytes", len(receipt.Document)),
		)
	}

	sum, err := c.GetSummary(ctx, &pb.GetSummaryRequest{})
	if err != nil {
		return fmt.Errorf("get summary: %w", err)
	}
	log.Info("ledger summary",
		zap.String("total_balance", sum.TotalBalance),
		zap.Int64("transactions", sum.TransactionCount),
		zap.Int64("invoices", sum.InvoiceCount),
		zap.Int64("verified_customers", sum.VerifiedCustomerCount),
	)
	return nil
}
