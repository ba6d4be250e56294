package queries

import (
	"context"
	"time"

	"tableservice/internal/core/domain/model/order"
	"tableservice/internal/core/domain/model/table"

	"gorm.io/gorm"
)

// GetDashboardStatsQueryHandler assembles the manager dashboard snapshot
// from three aggregate queries over the orders and tables.
type GetDashboardStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDashboardStatsQueryHandler creates a handler for dashboard queries.
func NewGetDashboardStatsQueryHandler(db *gorm.DB) GetDashboardStatsQueryHandler {
	return GetDashboardStatsQueryHandler{db: db}
}

// Handle builds the snapshot. The three reads are not wrapped in one
// transaction; the dashboard tolerates counts that are a moment apart.
func (h GetDashboardStatsQueryHandler) Handle(ctx context.Context, query GetDashboardStatsQuery) (DashboardStatsResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardStatsResponse{}, err
	}

	resp := DashboardStatsResponse{
		Orders:    make(map[string]int),
		Tables:    make(map[string]int),
		Timestamp: time.Now().UTC(),
	}

	orderCounts, err := h.countByStatus(ctx, "orders")
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	for status, count := range orderCounts {
		resp.Orders[order.Status(status).String()] = count
	}

	tableCounts, err := h.countByStatus(ctx, "tables")
	if err != nil {
		return DashboardStatsResponse{}, err
	}
	for status, count := range tableCounts {
		resp.Tables[table.Status(status).String()] = count
	}

	// Day boundary is midnight UTC regardless of the venue's timezone.
	todayStart := time.Now().UTC().Truncate(24 * time.Hour)

	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_amount), 0)
		FROM orders
		WHERE created_at >= ? AND status = ?
	`, todayStart, order.Delivered).Scan(&resp.TodayRevenue).Error
	if err != nil {
		return DashboardStatsResponse{}, err
	}

	return resp, nil
}

func (h GetDashboardStatsQueryHandler) countByStatus(ctx context.Context, tableName string) (map[int]int, error) {
	counts := make(map[int]int)

	rows, err := h.db.WithContext(ctx).Raw(
		"SELECT status, COUNT(*) FROM " + tableName + " GROUP BY status",
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status, count int
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}
