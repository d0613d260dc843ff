package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/Domenick1991/bookingrpc/api"
	"github.com/Domenick1991/bookingrpc/config"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

const shutdownTimeout = 5 * time.Second

type Servers struct {
	grpcServer      *grpc.Server
	httpServer      *http.Server
	health          *health.Server
	logger          *zap.Logger
	shutdownTimeout time.Duration
}

// Deps are the collaborators the servers are built from.
type Deps struct {
	Bookings bookingv1.BookingServiceServer
	Logger   *zap.Logger
	Observer RPCObserver
	// Gatherer backs GET /metrics; nil disables the route.
	Gatherer prometheus.Gatherer
}

// Run starts the gRPC and HTTP servers and blocks until ctx is cancelled or
// a server fails, then shuts both down gracefully.
func Run(ctx context.Context, cfg *config.Config, deps Deps) error {
	s := NewServers(cfg, deps)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("grpc server listening", zap.String("address", cfg.GRPC.Address))
		return s.grpcServer.Serve(lis)
	})
	g.Go(func() error {
		s.logger.Info("http server listening", zap.String("address", cfg.HTTP.Address))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown()
	})

	if err := g.Wait(); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func NewServers(cfg *config.Config, deps Deps) *Servers {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	grpcSrv := grpc.NewServer(
		grpc.ForceServerCodec(bookingv1.Codec{}),
		grpc.ChainUnaryInterceptor(unaryInterceptors(logger, deps.Observer, cfg.GRPC.RateLimitRPS, cfg.GRPC.RateLimitBurst)...),
	)
	bookingv1.RegisterBookingServiceServer(grpcSrv, deps.Bookings)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(bookingv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           newRouter(cfg, deps, logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
		health:          healthSrv,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}
}

// Shutdown drains both servers within shutdownTimeout. gRPC streams still
// open at the deadline, such as health Watch, are closed forcibly.
func (s *Servers) Shutdown() error {
	s.health.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	stopped := make(chan struct{})
	go func() {
		s.grpcServer.GracefulStop()
		close(stopped)
	}()

	httpErr := s.httpServer.Shutdown(shutdownCtx)

	select {
	case <-stopped:
	case <-shutdownCtx.Done():
		s.logger.Warn("grpc graceful stop timed out, closing open streams", zap.Duration("timeout", s.shutdownTimeout))
		s.grpcServer.Stop()
		<-stopped
	}

	if httpErr != nil {
		return fmt.Errorf("shutdown http server: %w", httpErr)
	}
	s.logger.Info("servers stopped")
	return nil
}

func newRouter(cfg *config.Config, deps Deps, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), accessLog(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api.NewBookingHandler(deps.Bookings).Register(router.Group("/v1"))

	if cfg.HTTP.SwaggerDir != "" {
		router.Static("/swagger", cfg.HTTP.SwaggerDir)
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/booking.swagger.json"))))
	}
	return router
}

func accessLog(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
