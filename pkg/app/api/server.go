// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/card-bridge/pkg/app/http"
	"github.com/chainsafe/card-bridge/pkg/auth"
	"github.com/chainsafe/card-bridge/pkg/bridge"
	bridgeservice "github.com/chainsafe/card-bridge/pkg/bridge/service"
	"github.com/chainsafe/card-bridge/pkg/config"
	"github.com/chainsafe/card-bridge/pkg/ethereum"
	"github.com/chainsafe/card-bridge/pkg/keys"
	"github.com/chainsafe/card-bridge/pkg/oauth/provider"
	oauthservice "github.com/chainsafe/card-bridge/pkg/oauth/service"
	oauthstore "github.com/chainsafe/card-bridge/pkg/oauth/store"
	"github.com/chainsafe/card-bridge/pkg/pgutil"
	"github.com/chainsafe/card-bridge/pkg/ratelimit"
	userservice "github.com/chainsafe/card-bridge/pkg/user/service"
	"github.com/chainsafe/card-bridge/pkg/userstore"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.APIServerConfig
}

// services are the HTTP-facing components built from config
type services struct {
	registration userservice.Service
	bridge       bridgeservice.Service
	oauth        oauthservice.Service
	jwt          *auth.JWTValidator
	limiter      *ratelimit.Limiter
}

// NewServer initializes new api server.
func NewServer(cfg *config.APIServerConfig) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)

	cipher, err := s.openCipher()
	if err != nil {
		return err
	}

	ethClient, err := s.openEthereumClient(ctx, logger)
	if err != nil {
		return err
	}
	defer ethClient.Close()

	svcs := &services{}

	userStore := userstore.NewStore(db)
	svcs.registration = userservice.NewLog(userservice.NewService(userStore, logger), logger)

	if svcs.bridge, err = s.newBridgeService(ctx, ethClient, logger); err != nil {
		return err
	}

	oauthSvc, err := s.newOAuthService(db, cipher, userStore, logger)
	if err != nil {
		return err
	}
	svcs.oauth = oauthSvc

	if svcs.jwt, err = s.newJWTValidator(); err != nil {
		return err
	}

	limiter, closeLimiter, err := s.newLimiter(logger)
	if err != nil {
		return err
	}
	defer closeLimiter()
	svcs.limiter = limiter

	cleaner := oauthservice.NewSessionCleaner(oauthSvc, logger)
	cleaner.Start(cfg.OAuth.CleanupInterval)
	// Stopped explicitly after ServeAndWait for deterministic shutdown order,
	// the defer covers early returns.
	stopped := false
	stopCleaner := func() {
		if !stopped {
			stopped = true
			cleaner.Stop()
		}
	}
	defer stopCleaner()

	router := s.setupRouter(svcs, logger)

	err = apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)

	stopCleaner()

	return err
}

func (s *Server) openCipher() (keys.Cipher, error) {
	masterKeyStr := os.Getenv(s.cfg.KeyManagement.MasterKeyEnv)
	if masterKeyStr == "" {
		return nil, fmt.Errorf(
			"master key not set: env=%s (hint: openssl rand -base64 32)",
			s.cfg.KeyManagement.MasterKeyEnv,
		)
	}

	masterKey, err := keys.MasterKeyFromBase64(masterKeyStr)
	if err != nil {
		return nil, fmt.Errorf("invalid master key: %w", err)
	}
	return keys.NewMasterKeyCipher(masterKey)
}

func (s *Server) openEthereumClient(ctx context.Context, logger *zap.Logger) (*ethereum.Client, error) {
	walletKey := os.Getenv(s.cfg.Bridge.WalletKeyEnv)
	if walletKey == "" {
		return nil, fmt.Errorf("bridge wallet key not set: env=%s", s.cfg.Bridge.WalletKeyEnv)
	}

	client, err := ethereum.NewClient(ctx, s.cfg.Chains, walletKey, s.cfg.Bridge.ReceiptPollInterval, logger)
	if err != nil {
		return nil, fmt.Errorf("create ethereum client: %w", err)
	}
	return client, nil
}

func (s *Server) newBridgeService(ctx context.Context, client *ethereum.Client, logger *zap.Logger) (bridgeservice.Service, error) {
	svc, err := bridgeservice.NewService(
		bridge.NewChains(s.cfg.Chains),
		bridgeservice.SettingsFromConfig(s.cfg.Bridge),
		func() ethereum.Wallet { return client.Session() },
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("create bridge service: %w", err)
	}

	if err := bridgeservice.CheckTokens(ctx, svc); err != nil {
		return nil, fmt.Errorf("token configuration mismatch: %w", err)
	}
	return bridgeservice.NewLog(svc, logger), nil
}

func (s *Server) newOAuthService(
	db *bun.DB,
	cipher keys.Cipher,
	users oauthservice.Users,
	logger *zap.Logger,
) (oauthservice.Service, error) {
	providers, err := provider.NewRegistry(s.cfg.OAuth, os.Getenv, logger)
	if err != nil {
		return nil, fmt.Errorf("create oauth providers: %w", err)
	}
	for name := range providers {
		logger.Info("OAuth provider enabled", zap.String("provider", string(name)))
	}

	svc := oauthservice.NewService(
		oauthstore.NewStore(db, cipher),
		users,
		providers,
		oauthservice.SettingsFromConfig(s.cfg.OAuth),
		logger,
	)
	return oauthservice.NewLog(svc, logger), nil
}

func (s *Server) newJWTValidator() (*auth.JWTValidator, error) {
	secret := os.Getenv(s.cfg.Auth.JWTSecretEnv)
	if secret == "" {
		return nil, fmt.Errorf("jwt secret not set: env=%s", s.cfg.Auth.JWTSecretEnv)
	}
	return auth.NewJWTValidator([]byte(secret), s.cfg.Auth.JWTIssuer)
}

func (s *Server) newLimiter(logger *zap.Logger) (*ratelimit.Limiter, func(), error) {
	if !s.cfg.RateLimit.Enabled {
		logger.Warn("Rate limiting disabled")
		return nil, func() {}, nil
	}

	client, err := ratelimit.NewValkeyClient(s.cfg.RateLimit)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Rate limiting enabled",
		zap.String("valkey_addr", s.cfg.RateLimit.ValkeyAddr),
		zap.Int64("requests", s.cfg.RateLimit.Requests),
		zap.Duration("window", s.cfg.RateLimit.Window),
	)
	return ratelimit.New(ratelimit.NewValkeyCounter(client), s.cfg.RateLimit, logger), client.Close, nil
}

func (s *Server) setupRouter(svcs *services, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	userservice.RegisterRoutes(r, svcs.registration, logger)
	bridgeservice.RegisterRoutes(r, svcs.bridge, svcs.jwt, logger)

	r.Group(func(r chi.Router) {
		if svcs.limiter != nil {
			r.Use(svcs.limiter.Middleware("oauth"))
		}
		oauthservice.RegisterRoutes(r, svcs.oauth, s.cfg.Auth.SignatureMaxAge, logger)
	})

	return r
}
