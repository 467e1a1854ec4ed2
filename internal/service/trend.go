package service

import (
	"context"
	"errors"
	"strings"

	pkgErrors "github.com/pkg/errors"

	"github.com/citypulse/backend/internal/domain"
	"github.com/citypulse/backend/internal/repository"
)

const (
	defaultTrendLimit = 10
	maxTrendLimit     = 100
)

type trendService struct {
	trendRepository  repository.Trends
	regionRepository repository.Regions
}

func newTrendService(trendRepository repository.Trends, regionRepository repository.Regions) *trendService {
	return &trendService{
		trendRepository:  trendRepository,
		regionRepository: regionRepository,
	}
}

// Get runs the point-in-time aggregation over current table contents.
// An unknown region slug is reported rather than returning an empty set.
func (s *trendService) Get(ctx context.Context, params TrendParams) ([]domain.TrendGroup, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultTrendLimit
	}
	if limit > maxTrendLimit {
		limit = maxTrendLimit
	}

	query := repository.TrendQuery{
		Category: params.Category,
		Limit:    limit,
	}

	if params.RegionSlug != nil {
		slug := strings.ToLower(strings.TrimSpace(*params.RegionSlug))
		if _, err := s.regionRepository.GetBySlug(ctx, slug); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrRegionNotFound
			}
			return nil, pkgErrors.Wrap(err, "get region by slug")
		}
		query.RegionSlug = &slug
	}

	groups, err := s.trendRepository.Aggregate(ctx, query)
	if err != nil {
		return nil, pkgErrors.Wrap(err, "aggregate trends")
	}
	if groups == nil {
		groups = []domain.TrendGroup{}
	}
	return groups, nil
}
