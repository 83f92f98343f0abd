package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransfersTotal counts bridge attempts by direction and final state
	TransfersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_bridge_transfers_total",
			Help: "Total number of bridge transfer attempts",
		},
		[]string{"direction", "status", "reason"},
	)

	// TransferDuration tracks wall time from network check to terminal state
	TransferDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "card_bridge_transfer_duration_seconds",
			Help:    "Transfer duration in seconds",
			Buckets: []float64{1, 2, 5, 10, 20, 30, 60, 90, 120},
		},
		[]string{"direction"},
	)

	// TransferAmount tracks the amount of tokens bridged
	TransferAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "card_bridge_transfer_amount",
			Help:    "Amount of tokens bridged",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 10, 100, 1000, 10000},
		},
		[]string{"direction"},
	)

	// ApprovalsTotal counts allowance checks by chain and outcome
	ApprovalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_bridge_approvals_total",
			Help: "Total number of allowance checks",
		},
		[]string{"chain", "result"},
	)

	// BalanceReadErrors counts failed balance reads per chain
	BalanceReadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_bridge_balance_read_errors_total",
			Help: "Total number of failed balance reads",
		},
		[]string{"chain"},
	)

	// OAuthInitiations counts authorization sessions started per provider
	OAuthInitiations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_oauth_initiations_total",
			Help: "Total number of OAuth sessions started",
		},
		[]string{"provider"},
	)

	// OAuthCallbacks counts callbacks per provider and outcome
	OAuthCallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_oauth_callbacks_total",
			Help: "Total number of OAuth callbacks by result",
		},
		[]string{"provider", "result"},
	)

	// TokenRefreshes counts provider token refresh attempts
	TokenRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_oauth_token_refreshes_total",
			Help: "Total number of provider token refreshes",
		},
		[]string{"provider", "result"},
	)

	// SessionsPurged counts expired OAuth sessions removed by cleanup
	SessionsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "card_oauth_sessions_purged_total",
			Help: "Total number of expired OAuth sessions removed",
		},
	)

	// RateLimited counts requests rejected by the shared rate limiter
	RateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_rate_limited_total",
			Help: "Total number of rate limited requests",
		},
		[]string{"route"},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "card_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
