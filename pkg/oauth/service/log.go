package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/oauth"
)

const serviceName = "OAuthService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the linking Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) fields(method string, name oauth.Provider, start time.Time) []zap.Field {
	return []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.String("provider", string(name)),
		zap.Duration("duration", time.Since(start)),
	}
}

func (ls *logService) done(method string, fields []zap.Field, err error) {
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// Initiate wraps the service method with logging
func (ls *logService) Initiate(ctx context.Context, name oauth.Provider, walletAddress string) (res *oauth.InitiateResponse, err error) {
	start := time.Now()
	defer func() {
		fields := append(ls.fields("Initiate", name, start), zap.String("wallet_address", walletAddress))
		if res != nil {
			fields = append(fields, zap.String("session_id", res.SessionID))
		}
		ls.done("Initiate", fields, err)
	}()

	return ls.svc.Initiate(ctx, name, walletAddress)
}

// Complete wraps the service method with logging. Code and state are redacted.
func (ls *logService) Complete(ctx context.Context, name oauth.Provider, req *oauth.CallbackRequest) (link *oauth.Link, err error) {
	start := time.Now()
	defer func() {
		fields := append(ls.fields("Complete", name, start),
			zap.String("session_id", req.SessionID),
			zap.String("code", redact(req.Code)),
			zap.String("state", redact(req.State)),
		)
		if link != nil {
			fields = append(fields,
				zap.String("wallet_address", link.WalletAddress),
				zap.String("external_user_id", link.ExternalUserID))
		}
		ls.done("Complete", fields, err)
	}()

	return ls.svc.Complete(ctx, name, req)
}

// Disconnect wraps the service method with logging
func (ls *logService) Disconnect(ctx context.Context, name oauth.Provider, walletAddress string) (err error) {
	start := time.Now()
	defer func() {
		ls.done("Disconnect", append(ls.fields("Disconnect", name, start), zap.String("wallet_address", walletAddress)), err)
	}()

	return ls.svc.Disconnect(ctx, name, walletAddress)
}

// Links wraps the service method with logging
func (ls *logService) Links(ctx context.Context, walletAddress string) (links []*oauth.Link, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Links"),
			zap.String("wallet_address", walletAddress),
			zap.Int("count", len(links)),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("Links failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("Links completed", fields...)
	}()

	return ls.svc.Links(ctx, walletAddress)
}

// FreshToken wraps the service method with logging. The token is never logged.
func (ls *logService) FreshToken(ctx context.Context, name oauth.Provider, walletAddress string) (token string, err error) {
	start := time.Now()
	defer func() {
		fields := append(ls.fields("FreshToken", name, start), zap.String("wallet_address", walletAddress))
		if err != nil {
			ls.logger.Error("FreshToken failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("FreshToken completed", fields...)
	}()

	return ls.svc.FreshToken(ctx, name, walletAddress)
}

// SyncProfile wraps the service method with logging
func (ls *logService) SyncProfile(ctx context.Context, name oauth.Provider, walletAddress string) (link *oauth.Link, err error) {
	start := time.Now()
	defer func() {
		fields := append(ls.fields("SyncProfile", name, start), zap.String("wallet_address", walletAddress))
		if link != nil {
			fields = append(fields, zap.String("handle", link.Handle))
		}
		ls.done("SyncProfile", fields, err)
	}()

	return ls.svc.SyncProfile(ctx, name, walletAddress)
}

// PurgeExpiredSessions wraps the service method with logging
func (ls *logService) PurgeExpiredSessions(ctx context.Context) (n int64, err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "PurgeExpiredSessions"),
			zap.Int64("deleted", n),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("PurgeExpiredSessions failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Debug("PurgeExpiredSessions completed", fields...)
	}()

	return ls.svc.PurgeExpiredSessions(ctx)
}

// redact keeps enough of a secret to correlate log lines.
func redact(secret string) string {
	if len(secret) <= 4 {
		return fmt.Sprintf("***(%d)", len(secret))
	}
	return fmt.Sprintf("%s***(%d)", secret[:4], len(secret))
}
