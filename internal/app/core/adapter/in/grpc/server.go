package grpc

import (
	"context"
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/JoeShih716/go-branch-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-branch-ledger/internal/app/core/usecase"
	pb "github.com/JoeShih716/go-branch-ledger/proto"
)

// ReceiptContentType RenderReceipt 回傳的文件格式
const ReceiptContentType = "application/pdf"

type GrpcServer struct {
	pb.UnimplementedLedgerServiceServer
	core *usecase.CoreUseCase
	log  *zap.Logger
}

func NewGrpcServer(core *usecase.CoreUseCase, log *zap.Logger) *GrpcServer {
	if log == nil {
		log = zap.NewNop()
	}
	return &GrpcServer{
		core: core,
		log:  log,
	}
}

// Post 入帳並開立發票
//
// 業務拒絕回傳 Success=false (Soft Failure)；入帳成功但開票失敗時 Success=true
// 並附上 ErrorKind，呼叫端不可重送 (交易已生效)
func (s *GrpcServer) Post(ctx context.Context, req *pb.PostRequest) (*pb.PostResponse, error) {
	// 1. 格式驗證
	if err := validatePost(req); err != nil {
		return softFailure(err), nil
	}

	// 2. 組裝 Domain Request
	pr, err := toPostingRequest(req)
	if err != nil {
		return softFailure(err), nil
	}

	// 3. 執行交易
	tx, inv, err := s.core.PostTransaction(ctx, pr)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && tx.ID == uuid.Nil {
			return nil, status.FromContextError(ctxErr).Err()
		}
		if tx.ID == uuid.Nil {
			// 業務邏輯錯誤，回傳 Success=false
			return softFailure(err), nil
		}
		resp := &pb.PostResponse{
			Success:     true,
			ErrorKind:   domain.KindOf(err),
			Field:       domain.FieldOf(err),
			Message:     "transaction posted but invoice was not issued: " + err.Error(),
			Transaction: fromTransaction(tx),
		}
		return resp, nil
	}

	return &pb.PostResponse{
		Success:     true,
		Transaction: fromTransaction(tx),
		Invoice:     fromInvoice(inv),
	}, nil
}

func (s *GrpcServer) GetAccount(ctx context.Context, req *pb.GetAccountRequest) (*pb.GetAccountResponse, error) {
	if err := validation.ValidateStruct(req, validation.Field(&req.AccountId, validation.Required)); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	acc, err := s.core.GetAccount(ctx, req.AccountId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetAccountResponse{Account: fromAccount(acc)}, nil
}

func (s *GrpcServer) ListTransactions(ctx context.Context, req *pb.ListTransactionsRequest) (*pb.ListTransactionsResponse, error) {
	txs, err := s.core.ListTransactions(ctx, req.AccountId)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Transaction, 0, len(txs))
	for _, tx := range txs {
		out = append(out, fromTransaction(tx))
	}
	return &pb.ListTransactionsResponse{Transactions: out}, nil
}

func (s *GrpcServer) GetInvoice(ctx context.Context, req *pb.GetInvoiceRequest) (*pb.GetInvoiceResponse, error) {
	if err := validation.ValidateStruct(req, validation.Field(&req.InvoiceId, validation.Required)); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	inv, err := s.core.GetInvoice(ctx, req.InvoiceId)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.GetInvoiceResponse{Invoice: fromInvoice(inv)}, nil
}

func (s *GrpcServer) ListInvoices(ctx context.Context, req *pb.ListInvoicesRequest) (*pb.ListInvoicesResponse, error) {
	invs, err := s.core.ListInvoices(ctx, req.AccountId)
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, fromInvoice(inv))
	}
	return &pb.ListInvoicesResponse{Invoices: out}, nil
}

func (s *GrpcServer) SettleInvoice(ctx context.Context, req *pb.SettleInvoiceRequest) (*pb.SettleInvoiceResponse, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.InvoiceId, validation.Required),
		validation.Field(&req.Status, validation.Required,
			validation.In(string(domain.InvoiceStatusPaid), string(domain.InvoiceStatusCancelled))),
	)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	inv, err := s.core.SettleInvoice(ctx, req.InvoiceId, domain.InvoiceStatus(req.Status))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.SettleInvoiceResponse{Invoice: fromInvoice(inv)}, nil
}

func (s *GrpcServer) RenderReceipt(ctx context.Context, req *pb.RenderReceiptRequest) (*pb.RenderReceiptResponse, error) {
	if err := validation.ValidateStruct(req, validation.Field(&req.InvoiceId, validation.Required)); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	inv, doc, err := s.core.RenderReceipt(ctx, req.InvoiceId)
	if err != nil {
		if !errors.Is(err, domain.ErrInvoiceNotFound) {
			s.log.Error("render receipt failed", zap.String("invoice_id", req.InvoiceId), zap.Error(err))
		}
		return nil, toStatus(err)
	}
	return &pb.RenderReceiptResponse{
		InvoiceNumber: inv.Number,
		ContentType:   ReceiptContentType,
		Document:      doc,
	}, nil
}

func (s *GrpcServer) ListCustomers(ctx context.Context, req *pb.ListCustomersRequest) (*pb.ListCustomersResponse, error) {
	err := validation.ValidateStruct(req,
		validation.Field(&req.KycStatus, validation.In(
			string(domain.KYCPending), string(domain.KYCVerified), string(domain.KYCRejected))),
	)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	customers, err := s.core.ListCustomers(ctx, domain.KYCStatus(req.KycStatus))
	if err != nil {
		return nil, toStatus(err)
	}
	out := make([]*pb.Customer, 0, len(customers))
	for _, c := range customers {
		out = append(out, fromCustomer(c))
	}
	return &pb.ListCustomersResponse{Customers: out}, nil
}

// GetSummary 儀表板統計
func (s *GrpcServer) GetSummary(ctx context.Context, _ *pb.GetSummaryRequest) (*pb.GetSummaryResponse, error) {
	sum, err := s.core.Summary(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return fromSummary(sum), nil
}

// validatePost 只檢查格式，金額語意交給 domain
func validatePost(req *pb.PostRequest) error {
	types := make([]interface{}, 0, len(domain.TransactionTypes))
	for _, t := range domain.TransactionTypes {
		types = append(types, string(t))
	}
	return validation.ValidateStruct(req,
		validation.Field(&req.AccountId, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In(types...)),
		validation.Field(&req.Amount, validation.Required),
		validation.Field(&req.RequestId, is.UUID),
		validation.Field(&req.Description, validation.Length(0, 255)),
	)
}

// requestFieldKinds 格式錯誤對應的業務錯誤種類
var requestFieldKinds = map[string]error{
	"account_id": domain.ErrAccountNotFound,
	"type":       domain.ErrInvalidTransactionType,
	"amount":     domain.ErrInvalidAmount,
}

func softFailure(err error) *pb.PostResponse {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for f := range verrs {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		field := fields[0]
		kind := "InvalidRequest"
		if k, ok := requestFieldKinds[field]; ok {
			kind = domain.KindOf(k)
		}
		return &pb.PostResponse{
			Success:   false,
			ErrorKind: kind,
			Field:     field,
			Message:   err.Error(),
		}
	}
	return &pb.PostResponse{
		Success:   false,
		ErrorKind: domain.KindOf(err),
		Field:     domain.FieldOf(err),
		Message:   err.Error(),
	}
}

// toStatus 業務錯誤轉 gRPC status
func toStatus(err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	case errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrInvoiceNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidTransactionType),
		errors.Is(err, domain.ErrUnbalancedTaxBreakdown),
		errors.Is(err, domain.ErrInvalidAccount):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrAccountLocked),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrApprovalRequired),
		errors.Is(err, domain.ErrReferenceMismatch):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, domain.ErrAccountAlreadyExists),
		errors.Is(err, domain.ErrInvoiceAlreadyIssued),
		errors.Is(err, domain.ErrDuplicateInvoiceNumber):
		return status.Error(codes.AlreadyExists, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

var _ pb.LedgerServiceServer = (*GrpcServer)(nil)
