package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/in/grpc"
	pdf_adapter "github.com/JoeShih716/go-branch-ledger/internal/app/core/adapter/out/pdf"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-branch-ledger/internal/observability/metrics"
	pb "github.com/JoeShih716/go-branch-ledger/proto"
)

func serveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the gRPC ledger service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// serve 啟動 gRPC 與 metrics 服務，直到 ctx 取消
func (a *app) serve(ctx context.Context) error {
	cfg, log := a.cfg, a.log

	// 1. 儲存端
	engineCtx, stopEngine := context.WithCancel(context.Background())
	defer stopEngine()
	store, err := openBackend(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.close(); err != nil {
			log.Error("close backend failed", zap.Error(err))
		}
	}()
	if store.start != nil {
		store.start(engineCtx)
	}
	log.Info("ledger backend ready", zap.String("backend", cfg.Ledger.Backend))

	// 2. 指標
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	// 3. UseCase
	node, err := snowflake.NewNode(cfg.Ledger.SnowflakeNode)
	if err != nil {
		return fmt.Errorf("snowflake node: %w", err)
	}
	core := usecase.NewCoreUseCase(usecase.CoreParams{
		Ledger:    store.ledger,
		Customers: store.customers,
		Invoices:  store.invoices,
		Deriver:   usecase.NewInvoiceDeriver(node, store.sequencer, nil),
		Sequencer: store.sequencer,
		Renderer:  pdf_adapter.NewReceiptRenderer(),
		Metrics:   m,
		Bank:      cfg.Bank,
		Log:       log,
	})

	// 4. gRPC
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.GRPCAddr, err)
	}
	s := grpc.NewServer(grpc.ChainUnaryInterceptor(grpc_adapter.UnaryServerInterceptor(log, m)))
	pb.RegisterLedgerServiceServer(s, grpc_adapter.NewGrpcServer(core, log))
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(s, healthSrv)
	healthSrv.SetServingStatus(pb.ServiceName, healthpb.HealthCheckResponse_SERVING)
	// grpcurl 等工具透過 reflection 取得 ledger.proto 描述
	reflection.Register(s)

	errCh := make(chan error, 2)
	go func() {
		log.Info("grpc server listening", zap.String("addr", cfg.Server.GRPCAddr))
		if err := s.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc serve: %w", err)
		}
	}()

	var metricsSrv *http.Server
	if cfg.Server.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		metricsSrv = &http.Server{
			Addr:              cfg.Server.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("metrics server listening", zap.String("addr", cfg.Server.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("metrics serve: %w", err)
			}
		}()
	}

	// 5. Graceful Shutdown
	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case serveErr = <-errCh:
		log.Error("server failed, shutting down", zap.Error(serveErr))
	}
	healthSrv.Shutdown()

	timeout := cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		log.Warn("graceful stop timed out, forcing")
		s.Stop()
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Warn("metrics shutdown", zap.Error(err))
		}
	}

	// 所有請求結束後才停止帳本，確保已排隊的入帳寫入 WAL
	stopEngine()
	store.wait()
	log.Info("server exited")
	return serveErr
}
