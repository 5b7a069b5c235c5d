package service

import (
	"context"
	"time"

	"drone-response-be/internal/dto"
	"drone-response-be/internal/repository/specification"
	"drone-response-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const dashboardCacheKey = "dashboard:snapshot"

type IDashboardService interface {
	Snapshot(ctx context.Context) (*dto.DashboardResponse, error)
}

// dashboardService aggregates fleet and chat figures behind a short
// lived cache so dashboard polling does not hammer the database.
type dashboardService struct {
	uowFactory   unitofwork.RepositoryFactory
	fleetService IFleetService
	cache        *cache.Cache
}

func NewDashboardService(uowFactory unitofwork.RepositoryFactory, fleetService IFleetService) IDashboardService {
	return &dashboardService{
		uowFactory:   uowFactory,
		fleetService: fleetService,
		cache:        cache.New(30*time.Second, time.Minute),
	}
}

func (s *dashboardService) Snapshot(ctx context.Context) (*dto.DashboardResponse, error) {
	if cached, found := s.cache.Get(dashboardCacheKey); found {
		snapshot := *cached.(*dto.DashboardResponse)
		snapshot.Cached = true
		return &snapshot, nil
	}

	fleet, err := s.fleetService.FleetStatus(ctx)
	if err != nil {
		return nil, err
	}

	chat, err := s.chatStats(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &dto.DashboardResponse{
		Fleet:       fleet,
		Chat:        chat,
		GeneratedAt: time.Now(),
	}
	s.cache.Set(dashboardCacheKey, snapshot, cache.DefaultExpiration)

	return snapshot, nil
}

func (s *dashboardService) chatStats(ctx context.Context) (*dto.DashboardChatStats, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	activeSessions, err := uow.ChatSessionRepository().Count(ctx, specification.ActiveSessions{})
	if err != nil {
		return nil, err
	}

	totalMessages, err := uow.ChatMessageRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := uow.ChatAnalyticsRepository().FindAll(ctx,
		specification.CreatedAtOrAfter{At: time.Now().AddDate(0, 0, -7)},
	)
	if err != nil {
		return nil, err
	}

	intentCounts := make(map[string]int64)
	for _, row := range rows {
		intentCounts[row.QueryType]++
	}

	return &dto.DashboardChatStats{
		ActiveSessions: activeSessions,
		TotalMessages:  totalMessages,
		IntentCounts:   intentCounts,
	}, nil
}
