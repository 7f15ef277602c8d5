package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
)

// Metrics 帳本服務的 Prometheus 指標
type Metrics struct {
	postings    *prometheus.CounterVec
	invoices    *prometheus.CounterVec
	rpcDuration *prometheus.HistogramVec
}

// New 建立並註冊指標
//
// 參數:
//
//	registerer: 註冊目標，nil 時使用 prometheus.DefaultRegisterer
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	postings := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_postings_total",
		Help: "Posting attempts by transaction type and outcome.",
	}, []string{"type", "outcome"})
	invoices := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_invoices_issued_total",
		Help: "Invoices issued by type.",
	}, []string{"type"})
	rpcDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_grpc_duration_seconds",
		Help:    "gRPC handler latency by method and status code.",
		Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"method", "code"})

	registerer.MustRegister(postings, invoices, rpcDuration)
	return &Metrics{
		postings:    postings,
		invoices:    invoices,
		rpcDuration: rpcDuration,
	}
}

// ObservePosting outcome 為 "posted" 或錯誤種類 (如 InsufficientFunds)
func (m *Metrics) ObservePosting(txType domain.TransactionType, outcome string) {
	m.postings.WithLabelValues(string(txType), outcome).Inc()
}

func (m *Metrics) ObserveInvoice(invoiceType domain.InvoiceType) {
	m.invoices.WithLabelValues(string(invoiceType)).Inc()
}

// ObserveRPC 記錄 gRPC 處理時間
func (m *Metrics) ObserveRPC(method, code string, elapsed time.Duration) {
	m.rpcDuration.WithLabelValues(method, code).Observe(elapsed.Seconds())
}

var _ usecase.Metrics = (*Metrics)(nil)
