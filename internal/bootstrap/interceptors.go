package bootstrap

import (
	"context"
	"path"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RPCObserver records one finished RPC.
type RPCObserver interface {
	ObserveRPC(method, code string, elapsed time.Duration)
}

// recoveryInterceptor turns a handler panic into codes.Internal.
func recoveryInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in rpc handler",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				err = status.Error(codes.Internal, "internal error")
			}
		}()
		return handler(ctx, req)
	}
}

func observeInterceptor(logger *zap.Logger, observer RPCObserver) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		elapsed := time.Since(start)
		code := status.Code(err)
		method := path.Base(info.FullMethod)

		if observer != nil {
			observer.ObserveRPC(method, code.String(), elapsed)
		}
		logger.Info("rpc",
			zap.String("method", info.FullMethod),
			zap.String("code", code.String()),
			zap.Duration("duration", elapsed),
		)
		return resp, err
	}
}

// rateLimitInterceptor applies one server-wide token bucket.
func rateLimitInterceptor(limiter *rate.Limiter, logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if !limiter.Allow() {
			logger.Warn("rate limit exceeded", zap.String("method", info.FullMethod))
			return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded, try again later")
		}
		return handler(ctx, req)
	}
}

func unaryInterceptors(logger *zap.Logger, observer RPCObserver, rps float64, burst int) []grpc.UnaryServerInterceptor {
	chain := []grpc.UnaryServerInterceptor{
		observeInterceptor(logger, observer),
		recoveryInterceptor(logger),
	}
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		chain = append(chain, rateLimitInterceptor(rate.NewLimiter(rate.Limit(rps), burst), logger))
	}
	return chain
}
