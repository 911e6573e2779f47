package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps the per-server counters of games and results.
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementUserWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementUserWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.IncrementComputerWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetUserWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetUserWinsCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetComputerWinsCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.GetComputerWinsCount(ctx, serverIpNet)
}
