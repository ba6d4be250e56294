package queries

import (
	"errors"
	"time"

	"tableservice/internal/pkg/guard"
)

var ErrGetDashboardStatsQueryIsNotConstructed = errors.New(
	"GetDashboardStatsQuery must be created via NewGetDashboardStatsQuery constructor",
)

// GetDashboardStatsQuery retrieves the manager dashboard snapshot: order and
// table counts grouped by status plus today's delivered revenue.
type GetDashboardStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardStatsQuery creates a query for the dashboard snapshot.
func NewGetDashboardStatsQuery() GetDashboardStatsQuery {
	return GetDashboardStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardStatsQueryIsNotConstructed)
}

// DashboardStatsResponse is the dashboard snapshot. The maps are keyed by
// status name and only carry statuses that actually occur, matching the
// group-by they come from. Revenue counts delivered orders created since
// midnight UTC.
type DashboardStatsResponse struct {
	Orders       map[string]int `json:"orders"`
	Tables       map[string]int `json:"tables"`
	TodayRevenue float64        `json:"today_revenue"`
	Timestamp    time.Time      `json:"timestamp"`
}
