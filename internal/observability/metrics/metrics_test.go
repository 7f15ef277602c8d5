package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObservePosting(domain.TransactionTypeDeposit, "posted")
	m.ObservePosting(domain.TransactionTypeDeposit, "posted")
	m.ObservePosting(domain.TransactionTypeWithdrawal, "InsufficientFunds")
	m.ObserveInvoice(domain.InvoiceTypeTransaction)
	m.ObserveRPC("/ledger.v1.LedgerService/Post", "OK", 3*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.postings.WithLabelValues("Deposit", "posted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.postings.WithLabelValues("Withdrawal", "InsufficientFunds")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invoices.WithLabelValues("Transaction")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}
