package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/chainsafe/card-bridge/pkg/oauth/service/mocks"
)

func TestSessionCleaner_PurgesUntilStopped(t *testing.T) {
	svc := mocks.NewService(t)
	purged := make(chan struct{}, 1)
	svc.EXPECT().PurgeExpiredSessions(mock.Anything).
		Run(func(_ context.Context) {
			select {
			case purged <- struct{}{}:
			default:
			}
		}).
		Return(2, nil)

	cleaner := NewSessionCleaner(svc, zap.NewNop())
	cleaner.Start(10 * time.Millisecond)

	select {
	case <-purged:
	case <-time.After(2 * time.Second):
		t.Fatalf("expected a purge within the interval")
	}
	cleaner.Stop()
}

func TestSessionCleaner_NonPositiveIntervalDisablesCleanup(t *testing.T) {
	svc := mocks.NewService(t)

	cleaner := NewSessionCleaner(svc, zap.NewNop())
	cleaner.Start(-time.Minute)
	cleaner.Start(0)
	cleaner.Stop()
}
