package grpc

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RPCObserver 記錄每個 RPC 的延遲
type RPCObserver interface {
	ObserveRPC(method, code string, elapsed time.Duration)
}

// UnaryServerInterceptor 記錄每個請求的方法、狀態碼與耗時，並回報給 observer
//
// 參數:
//
//	log: 結構化日誌
//	observer: 指標收集，可為 nil
func UnaryServerInterceptor(log *zap.Logger, observer RPCObserver) grpc.UnaryServerInterceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)

		code := status.Code(err)
		if observer != nil {
			observer.ObserveRPC(info.FullMethod, code.String(), elapsed)
		}

		level := zapcore.DebugLevel
		switch code {
		case codes.OK, codes.NotFound, codes.InvalidArgument, codes.FailedPrecondition, codes.AlreadyExists:
		case codes.Canceled, codes.DeadlineExceeded:
			level = zapcore.WarnLevel
		default:
			level = zapcore.ErrorLevel
		}
		if ce := log.Check(level, "grpc request"); ce != nil {
			fields := []zap.Field{
				zap.String("method", info.FullMethod),
				zap.String("code", code.String()),
				zap.Duration("elapsed", elapsed),
			}
			if err != nil {
				fields = append(fields, zap.Error(err))
			}
			ce.Write(fields...)
		}
		return resp, err
	}
}
