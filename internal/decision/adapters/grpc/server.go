package grpc

import (
	"context"
	"log/slog"
	"net"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"loandecision/internal/decision"
	"loandecision/pkg/requestcontext"
)

// RequestIDMetadataKey is the metadata key carrying a caller-supplied request ID.
const RequestIDMetadataKey = "x-request-id"

// Server wraps a gRPC server with the decision handler registered.
type Server struct {
	gs     *grpclib.Server
	health *health.Server
	logger *slog.Logger
}

// NewServer creates and configures the gRPC server.
func NewServer(handler DecisionEngineServer, logger *slog.Logger, enableReflection bool) *Server {
	gs := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			recoveryInterceptor(logger),
			requestIDInterceptor,
			loggingInterceptor(logger),
		),
	)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(gs, healthSrv)
	healthSrv.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	if enableReflection {
		reflection.Register(gs)
	}

	RegisterDecisionEngineServer(gs, handler)

	return &Server{
		gs:     gs,
		health: healthSrv,
		logger: logger,
	}
}

// Serve accepts connections on lis until the server is stopped.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", "addr", lis.Addr().String())
	return s.gs.Serve(lis)
}

// GracefulStop marks the service as not serving and drains in-flight calls.
func (s *Server) GracefulStop() {
	s.logger.Info("gRPC server shutting down")
	s.health.Shutdown()
	s.gs.GracefulStop()
}

// Shutdown drains in-flight calls like GracefulStop, but closes every
// connection once ctx is done.
func (s *Server) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.logger.Warn("gRPC graceful stop timed out, forcing stop")
		s.gs.Stop()
		<-done
		return ctx.Err()
	}
}

// recoveryInterceptor turns a handler panic into the opaque unknown error.
func recoveryInterceptor(logger *slog.Logger) grpclib.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (resp any, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered",
					"request_id", incomingRequestID(ctx),
					"method", info.FullMethod,
					"panic", rec,
					"stack", string(debug.Stack()),
				)
				resp, err = nil, status.Error(codes.Internal, decision.UnknownErrorMessage)
			}
		}()
		return handler(ctx, req)
	}
}

// requestIDInterceptor propagates x-request-id from metadata, generating one
// when the caller sent none.
func requestIDInterceptor(ctx context.Context, req any, _ *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (any, error) {
	requestID := incomingRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	ctx = requestcontext.WithRequestID(ctx, requestID)
	_ = grpclib.SetHeader(ctx, metadata.Pairs(RequestIDMetadataKey, requestID))
	return handler(ctx, req)
}

func loggingInterceptor(logger *slog.Logger) grpclib.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpclib.UnaryServerInfo, handler grpclib.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.InfoContext(ctx, "grpc request",
			"request_id", requestcontext.RequestID(ctx),
			"method", info.FullMethod,
			"code", status.Code(err).String(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return resp, err
	}
}

func incomingRequestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(RequestIDMetadataKey); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}
