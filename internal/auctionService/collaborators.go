package auction

import (
	"context"
	"time"
)

// AutoExtendSettings are the anti-snipe tunables, read per resolution pass so
// operators can change them without redeploying.
type AutoExtendSettings struct {
	// Threshold: a winning bid landing closer than this to the deadline
	// triggers an extension
	Threshold time.Duration
	// Duration: the extended deadline is the bid time plus this
	Duration time.Duration
}

// ConfigProvider supplies auto-extend settings to the engine.
type ConfigProvider interface {
	AutoExtendSettings() AutoExtendSettings
}

// ConfigProviderFunc adapts a plain function to a ConfigProvider.
type ConfigProviderFunc func() AutoExtendSettings

func (f ConfigProviderFunc) AutoExtendSettings() AutoExtendSettings { return f() }

// ReputationProvider reads a bidder's rating standing from the external user
// service. rated is false when the bidder has no rated transactions yet.
type ReputationProvider interface {
	ApprovalPercentage(ctx context.Context, bidderID string) (percent float64, rated bool, err error)
}

// UserDirectory resolves user ids to display names for history rendering.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID string) (string, error)
}
