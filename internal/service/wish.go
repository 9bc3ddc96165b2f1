package service

import (
	"math"

	"wishtracker/internal/model"
	"wishtracker/internal/repository"
)

// SourceStat is the completion breakdown for one source (expansion pack).
type SourceStat struct {
	Source    string  `json:"source"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Percent   float64 `json:"percent"`
}

// Stats aggregates completion over all wishes for one save.
type Stats struct {
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	Percent   float64      `json:"percent"`
	BySource  []SourceStat `json:"by_source"`
}

type WishService struct {
	repo repository.WishRepository
}

func NewWishService(repo repository.WishRepository) *WishService {
	return &WishService{repo: repo}
}

// WishesWithProgress lists all wishes joined with the given save's progress,
// ordered by source then name. Wishes without a progress row carry defaults.
func (s *WishService) WishesWithProgress(saveID int64) ([]*model.WishWithProgress, error) {
	return s.repo.WishesWithProgress(saveID)
}

// Stats computes overall and per-source completion for one save.
func (s *WishService) Stats(saveID int64) (*Stats, error) {
	wishes, err := s.repo.WishesWithProgress(saveID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{}
	perSource := make(map[string]*SourceStat)
	var order []string

	for _, wish := range wishes {
		stats.Total++
		src, ok := perSource[wish.Source]
		if !ok {
			src = &SourceStat{Source: wish.Source}
			perSource[wish.Source] = src
			order = append(order, wish.Source)
		}
		src.Total++
		if wish.Completed {
			stats.Completed++
			src.Completed++
		}
	}

	stats.Percent = percent(stats.Completed, stats.Total)
	for _, source := range order {
		src := perSource[source]
		src.Percent = percent(src.Completed, src.Total)
		stats.BySource = append(stats.BySource, *src)
	}

	return stats, nil
}

func (s *WishService) Counts() (*model.TableCounts, error) {
	return s.repo.Counts()
}

// percent rounds to one decimal place, 0 when total is 0.
func percent(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
