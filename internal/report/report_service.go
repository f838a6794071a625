package report

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"siap-cuti/internal/domain"
	reporterrors "siap-cuti/internal/report/errors"
	"siap-cuti/internal/shared/contextutil"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	DashboardCacheKey   = "report:dashboard:v1"
	DefaultDashboardTTL = 60 * time.Second

	recentPendingLimit = 5
	maxMonths          = 24
	defaultPageSize    = 10
)

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	MonthlyStats(ctx context.Context, now time.Time, months int) ([]MonthlyBucket, error)
	Dashboard(ctx context.Context) (DashboardResponse, error)
	AnnualReport(ctx context.Context, filter AnnualFilter) (AnnualReportResponse, int64, error)
	InvalidateDashboard(ctx context.Context)
}

type Config struct {
	Location *time.Location
	CacheTTL time.Duration
	Now      func() time.Time
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	loc    *time.Location
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultDashboardTTL
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		loc:    cfg.Location,
		ttl:    cfg.CacheTTL,
		now:    cfg.Now,
		logger: l,
	}
}

func (s *service) MonthlyStats(ctx context.Context, now time.Time, months int) ([]MonthlyBucket, error) {
	if months == 0 {
		months = DefaultMonths
	}
	if months < 1 || months > maxMonths {
		return nil, reporterrors.ErrInvalidMonths
	}

	rows, err := s.repo.StatusRowsSince(ctx, WindowStart(now, months, s.loc))
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("monthly stats query failed", zap.Error(err))
		return nil, err
	}
	return BucketMonthly(rows, now, months, s.loc), nil
}

// Dashboard serves from Redis when possible. Cache errors fall back to the database.
func (s *service) Dashboard(ctx context.Context) (DashboardResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, DashboardCacheKey).Result()
		switch {
		case err == nil:
			var resp DashboardResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		case !errors.Is(err, redis.Nil):
			log.Warn("dashboard cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(DashboardCacheKey, func() (interface{}, error) {
		// shared by every waiter, so one caller cancelling must not fail the rest
		bctx := context.WithoutCancel(ctx)
		resp, err := s.buildDashboard(bctx)
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(bctx, DashboardCacheKey, data, s.ttl).Err(); err != nil {
					log.Warn("dashboard cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		log.Error("dashboard build failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return v.(DashboardResponse), nil
}

// InvalidateDashboard drops the cached dashboard after a write. Failures are only logged.
func (s *service) InvalidateDashboard(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(context.WithoutCancel(ctx), DashboardCacheKey).Err(); err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("dashboard cache invalidation failed", zap.Error(err))
	}
}

func (s *service) buildDashboard(ctx context.Context) (DashboardResponse, error) {
	now := s.now().In(s.loc)
	monthStart := WindowStart(now, 1, s.loc)
	resp := DashboardResponse{GeneratedAt: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountMembers(gctx)
		resp.TotalMembers = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountCreatedSince(gctx, monthStart, "")
		resp.MonthlyRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountCreatedSince(gctx, monthStart, domain.LeaveStatusApproved)
		resp.ApprovedRequests = n
		return err
	})
	g.Go(func() error {
		recent, err := s.repo.RecentPending(gctx, recentPendingLimit)
		if recent == nil {
			recent = []RecentRequest{}
		}
		resp.RecentRequests = recent
		return err
	})
	g.Go(func() error {
		stats, err := s.MonthlyStats(gctx, now, DefaultMonths)
		resp.MonthlyStats = stats
		return err
	})
	if err := g.Wait(); err != nil {
		return DashboardResponse{}, err
	}
	return resp, nil
}

func (s *service) AnnualReport(ctx context.Context, filter AnnualFilter) (AnnualReportResponse, int64, error) {
	if filter.Year == 0 {
		filter.Year = s.now().In(s.loc).Year()
	}
	if filter.Year < 1 {
		return AnnualReportResponse{}, 0, reporterrors.ErrInvalidYear
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = defaultPageSize
	}
	filter.Query = strings.TrimSpace(filter.Query)

	rows, total, err := s.repo.AnnualRecap(ctx, filter.Year, filter.Query, (filter.Page-1)*filter.PageSize, filter.PageSize)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("annual report query failed",
			zap.Int("year", filter.Year),
			zap.Error(err),
		)
		return AnnualReportResponse{}, 0, err
	}
	if rows == nil {
		rows = []AnnualRow{}
	}

	return AnnualReportResponse{
		Year:           filter.Year,
		Query:          filter.Query,
		Rows:           rows,
		AvailableYears: []int{filter.Year, filter.Year - 1, filter.Year - 2},
	}, total, nil
}
