package grpc

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	pb "github.com/JoeShih716/go-branch-ledger/proto"
)

// toPostingRequest 轉換已通過格式驗證的請求；金額與稅額解析失敗回傳業務錯誤
func toPostingRequest(req *pb.PostRequest) (domain.PostingRequest, error) {
	amount, err := domain.ParseAmount(req.Amount)
	if err != nil {
		return domain.PostingRequest{}, err
	}
	out := domain.PostingRequest{
		AccountID:   req.AccountId,
		Type:        domain.TransactionType(req.Type),
		Amount:      amount,
		Description: req.Description,
		OperatorID:  req.OperatorId,
		Approved:    req.Approved,
	}
	if req.RequestId != "" {
		// 格式已由 validatePost 檢查
		out.RequestID = uuid.MustParse(req.RequestId)
	}

	switch {
	case req.Tax != nil:
		out.Tax, err = toTaxBreakdown(req.Tax)
		if err != nil {
			return domain.PostingRequest{}, err
		}
	case req.InclusiveGstRate != "":
		rate, err := decimal.NewFromString(req.InclusiveGstRate)
		if err != nil || rate.IsNegative() {
			return domain.PostingRequest{}, domain.NewError(domain.ErrUnbalancedTaxBreakdown,
				"inclusive_gst_rate", "%q is not a valid rate", req.InclusiveGstRate)
		}
		out.Tax = domain.InclusiveTaxBreakdown(amount, rate)
	}
	return out, nil
}

func toTaxBreakdown(t *pb.Tax) (*domain.TaxBreakdown, error) {
	taxable, err := domain.ParseSignedAmount(t.TaxableAmount)
	if err != nil {
		return nil, domain.NewError(domain.ErrUnbalancedTaxBreakdown, "tax.taxable_amount", "%v", err)
	}
	gst, err := domain.ParseSignedAmount(t.GstAmount)
	if err != nil {
		return nil, domain.NewError(domain.ErrUnbalancedTaxBreakdown, "tax.gst_amount", "%v", err)
	}
	rate, err := decimal.NewFromString(t.GstRate)
	if err != nil {
		return nil, domain.NewError(domain.ErrUnbalancedTaxBreakdown, "tax.gst_rate", "%q is not a number", t.GstRate)
	}
	return &domain.TaxBreakdown{TaxableAmount: taxable, GSTRate: rate, GSTAmount: gst}, nil
}

func fromTax(t *domain.TaxBreakdown) *pb.Tax {
	if t == nil {
		return nil
	}
	return &pb.Tax{
		TaxableAmount: domain.FormatAmount(t.TaxableAmount),
		GstRate:       t.GSTRate.String(),
		GstAmount:     domain.FormatAmount(t.GSTAmount),
	}
}

func fromTransaction(tx domain.Transaction) *pb.Transaction {
	out := &pb.Transaction{
		Id:           tx.ID.String(),
		Sequence:     tx.Sequence,
		AccountId:    tx.AccountID,
		Type:         string(tx.Type),
		Amount:       domain.FormatAmount(tx.Amount),
		Tax:          fromTax(tx.Tax),
		BalanceAfter: domain.FormatAmount(tx.BalanceAfter),
		Description:  tx.Description,
		OperatorId:   tx.OperatorID,
		CreatedAt:    formatTime(tx.CreatedAt),
	}
	if tx.RequestID != uuid.Nil {
		out.RequestId = tx.RequestID.String()
	}
	return out
}

func fromAccount(a domain.Account) *pb.Account {
	return &pb.Account{
		Id:            a.ID,
		CustomerId:    a.CustomerID,
		AccountNumber: a.AccountNumber,
		Type:          string(a.Type),
		Balance:       domain.FormatAmount(a.Balance),
		InterestRate:  a.InterestRate.String(),
		Ifsc:          a.IFSC,
		BranchCode:    a.BranchCode,
		Locked:        a.Locked,
		CreatedAt:     formatTime(a.CreatedAt),
	}
}

func fromInvoice(inv domain.Invoice) *pb.Invoice {
	out := &pb.Invoice{
		Id:            inv.ID,
		InvoiceNumber: inv.Number,
		CustomerId:    inv.CustomerID,
		AccountId:     inv.AccountID,
		Amount:        domain.FormatAmount(inv.Amount),
		TaxableAmount: domain.FormatAmount(inv.TaxableAmount()),
		Tax:           fromTax(inv.Tax),
		Type:          string(inv.Type),
		Status:        string(inv.Status),
		CreatedAt:     formatTime(inv.CreatedAt),
	}
	if inv.TransactionID != nil {
		out.TransactionId = inv.TransactionID.String()
	}
	if inv.Tax != nil {
		out.Cgst = domain.FormatAmount(inv.Tax.CGST())
		out.Sgst = domain.FormatAmount(inv.Tax.SGST())
	}
	return out
}

func fromCustomer(c domain.Customer) *pb.Customer {
	out := &pb.Customer{
		Id:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		KycStatus: string(c.KYCStatus),
		CreatedAt: formatTime(c.CreatedAt),
	}
	if c.NationalID != nil {
		out.Aadhaar = c.NationalID.Aadhaar
		out.Pan = c.NationalID.PAN
	}
	return out
}

func fromSummary(s domain.Summary) *pb.GetSummaryResponse {
	return &pb.GetSummaryResponse{
		TotalBalance:          domain.FormatAmount(s.TotalBalance),
		AccountCount:          int64(s.Accounts),
		CustomerCount:         int64(s.Customers),
		VerifiedCustomerCount: int64(s.VerifiedCustomers),
		TransactionCount:      int64(s.Transactions),
		InvoiceCount:          int64(s.Invoices),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
