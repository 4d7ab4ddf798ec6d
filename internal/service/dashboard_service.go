package service

import (
	"context"
	"math"
	"time"

	"github.com/dmarti/rentbase/internal/storage"
)

// DashboardService computes derived read-only statistics by scanning the
// persisted contract/payment state. Everything is recomputed per call; no
// caching or incremental maintenance.
type DashboardService struct {
	store storage.Store
}

// NewDashboardService creates a new DashboardService with the given storage backend.
func NewDashboardService(store storage.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Stats is the dashboard snapshot as of request time.
type Stats struct {
	TotalRooms            int     `json:"totalRooms"`
	OccupiedRooms         int     `json:"occupiedRooms"`
	FreeRooms             int     `json:"freeRooms"`
	CurrentMonthRevenue   float64 `json:"currentMonthRevenue"`
	PendingPayments       int     `json:"pendingPayments"`
	ContractsExpiringSoon int     `json:"contractsExpiringSoon"`
}

// Stats computes the dashboard snapshot. Occupied rooms equal the number
// of active contracts; revenue sums paid rent and expense payments of the
// current calendar month; expiring contracts are active ones ending within
// the next 30 days (inclusive).
func (s *DashboardService) Stats(ctx context.Context) (*Stats, error) {
	totalRooms, err := s.store.CountRooms(ctx)
	if err != nil {
		return nil, err
	}

	occupied, err := s.store.CountActiveContracts(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	revenue, err := s.store.SumPaidForPeriod(ctx, currentPeriod(now))
	if err != nil {
		return nil, err
	}

	open, err := s.store.CountOpenPayments(ctx)
	if err != nil {
		return nil, err
	}

	expiring, err := s.store.CountContractsExpiringBy(ctx, now.Add(30*24*time.Hour).Unix())
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalRooms:            totalRooms,
		OccupiedRooms:         occupied,
		FreeRooms:             totalRooms - occupied,
		CurrentMonthRevenue:   math.Round(revenue*100) / 100,
		PendingPayments:       open,
		ContractsExpiringSoon: expiring,
	}, nil
}
