package analytics

import (
	"context"
	"fmt"

	"studio-backoffice/internal/cache"
	"studio-backoffice/internal/logger"
	"studio-backoffice/internal/models"
)

// Presentation defaults for the dashboard trims.
const (
	DefaultGrowthMonths  = 6
	DefaultTopCategories = 6
)

type Fetcher interface {
	FetchShoots(ctx context.Context) ([]models.Shoot, error)
	FetchEditProjects(ctx context.Context) ([]models.EditProject, error)
}

// GrowthReport is the month-bucketed dashboard payload covering both shoots
// and edit projects.
type GrowthReport struct {
	Shoots       []MonthBucket `json:"shoots"`
	EditProjects []MonthBucket `json:"edit_projects"`
}

// CategoryReport is the per-city dashboard payload: the top buckets plus an
// overflow count for everything trimmed off.
type CategoryReport struct {
	Cities   []CategoryBucket `json:"cities"`
	Overflow int              `json:"overflow"`
}

type Service struct {
	DB     Fetcher
	Cache  *cache.StatsCache
	Logger *logger.Logger
}

func NewService(db Fetcher, statsCache *cache.StatsCache, log *logger.Logger) *Service {
	return &Service{DB: db, Cache: statsCache, Logger: log}
}

// GrowthByMonth buckets shoot and edit-project creation by calendar month
// and keeps the most recent months entries of each.
func (s *Service) GrowthByMonth(ctx context.Context, months int) (*GrowthReport, error) {
	if months <= 0 {
		months = DefaultGrowthMonths
	}

	cacheKey := fmt.Sprintf("growth:%d", months)
	var cached GrowthReport
	if hit, err := s.Cache.Get(ctx, cacheKey, &cached); err != nil {
		s.Logger.Warn("ANALYTICS", fmt.Sprintf("Stats cache read failed: %v", err))
	} else if hit {
		return &cached, nil
	}

	shoots, err := s.DB.FetchShoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shoots: %w", err)
	}
	projects, err := s.DB.FetchEditProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch edit projects: %w", err)
	}

	shootRecords := make([]StatusRecord, 0, len(shoots))
	for _, sh := range shoots {
		shootRecords = append(shootRecords, StatusRecord{CreatedAt: sh.CreatedAt, Status: sh.Status})
	}
	editRecords := make([]StatusRecord, 0, len(projects))
	for _, p := range projects {
		editRecords = append(editRecords, StatusRecord{CreatedAt: p.CreatedAt, Status: p.Status})
	}

	report := &GrowthReport{
		Shoots:       LastMonths(BucketByMonth(shootRecords), months),
		EditProjects: LastMonths(BucketByMonth(editRecords), months),
	}

	if err := s.Cache.Set(ctx, cacheKey, report); err != nil {
		s.Logger.Warn("ANALYTICS", fmt.Sprintf("Stats cache write failed: %v", err))
	}
	return report, nil
}

// GrowthByCity buckets shoots by city and keeps the top buckets, summarizing
// the rest as an overflow count.
func (s *Service) GrowthByCity(ctx context.Context, top int) (*CategoryReport, error) {
	if top <= 0 {
		top = DefaultTopCategories
	}

	cacheKey := fmt.Sprintf("cities:%d", top)
	var cached CategoryReport
	if hit, err := s.Cache.Get(ctx, cacheKey, &cached); err != nil {
		s.Logger.Warn("ANALYTICS", fmt.Sprintf("Stats cache read failed: %v", err))
	} else if hit {
		return &cached, nil
	}

	shoots, err := s.DB.FetchShoots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shoots: %w", err)
	}

	records := make([]CategoryRecord, 0, len(shoots))
	for _, sh := range shoots {
		records = append(records, CategoryRecord{Category: sh.City, Status: sh.Status})
	}

	buckets, overflow := TopCategories(BucketByCategory(records), top)
	report := &CategoryReport{Cities: buckets, Overflow: overflow}

	if err := s.Cache.Set(ctx, cacheKey, report); err != nil {
		s.Logger.Warn("ANALYTICS", fmt.Sprintf("Stats cache write failed: %v", err))
	}
	return report, nil
}
