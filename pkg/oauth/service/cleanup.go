package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const purgeTimeout = time.Minute

// SessionCleaner periodically deletes sessions past their retention.
type SessionCleaner struct {
	svc    Service
	logger *zap.Logger
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewSessionCleaner creates a cleaner for svc. Nothing runs until Start.
func NewSessionCleaner(svc Service, logger *zap.Logger) *SessionCleaner {
	return &SessionCleaner{
		svc:    svc,
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

// Start runs the purge every interval in a background goroutine.
// A non-positive interval leaves cleanup disabled.
func (c *SessionCleaner) Start(interval time.Duration) {
	if interval <= 0 {
		c.logger.Warn("Session cleanup disabled", zap.Duration("interval", interval))
		return
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		c.logger.Info("Started session cleanup", zap.Duration("interval", interval))

		for {
			select {
			case <-ticker.C:
				c.purge()
			case <-c.stopCh:
				c.logger.Info("Stopping session cleanup")
				return
			}
		}
	}()
}

func (c *SessionCleaner) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
	defer cancel()

	n, err := c.svc.PurgeExpiredSessions(ctx)
	if err != nil {
		c.logger.Error("Session cleanup failed", zap.Error(err))
		return
	}
	if n > 0 {
		c.logger.Info("Purged expired sessions", zap.Int64("count", n))
	}
}

// Stop stops the cleanup loop and waits for it to exit
func (c *SessionCleaner) Stop() {
	close(c.stopCh)
	c.wg.Wait()
}
