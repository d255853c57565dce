package usecase

import (
	"math"
	"sort"

	"talenthub/internal/entity"
	"talenthub/internal/repo/persistent"
	"talenthub/pkg/apperr"
	"talenthub/pkg/logger"
)

// Score is the canonical ranking formula: bounded by the rating scale
// and comparable across authors with very different vote volumes.
func Score(totalViews int64, avgRating float64) float64 {
	return float64(totalViews)*0.6 + avgRating*0.4
}

type LeaderboardUseCase interface {
	Global(limit, offset int) ([]entity.LeaderboardEntry, error)
	Portal(postType entity.PostType, limit, offset int) ([]entity.LeaderboardEntry, error)
	UserRank(userID string) (*entity.LeaderboardEntry, error)
	Stats() (*entity.PlatformStats, error)
}

type leaderboardUseCase struct {
	leaderboardRepo persistent.LeaderboardRepository
	logger          *logger.Logger
}

func NewLeaderboardUseCase(leaderboardRepo persistent.LeaderboardRepository, logger *logger.Logger) LeaderboardUseCase {
	return &leaderboardUseCase{
		leaderboardRepo: leaderboardRepo,
		logger:          logger,
	}
}

func (uc *leaderboardUseCase) Global(limit, offset int) ([]entity.LeaderboardEntry, error) {
	return uc.board("", limit, offset)
}

func (uc *leaderboardUseCase) Portal(postType entity.PostType, limit, offset int) ([]entity.LeaderboardEntry, error) {
	if !entity.ValidPostType(postType) {
		return nil, apperr.Validation("invalid portal type: %s", postType)
	}
	return uc.board(postType, limit, offset)
}

func (uc *leaderboardUseCase) UserRank(userID string) (*entity.LeaderboardEntry, error) {
	entries, err := uc.board("", 0, 0)
	if err != nil {
		return nil, err
	}

	for i := range entries {
		if entries[i].UserID == userID {
			return &entries[i], nil
		}
	}
	return nil, apperr.NotFound("user has no ranked posts")
}

func (uc *leaderboardUseCase) Stats() (*entity.PlatformStats, error) {
	stats, err := uc.leaderboardRepo.PlatformStats()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	stats.AverageRating = round2(stats.AverageRating)
	return stats, nil
}

// board recomputes the ranking from current aggregates on every call;
// no stored leaderboard row is authoritative. limit == 0 means all.
func (uc *leaderboardUseCase) board(postType entity.PostType, limit, offset int) ([]entity.LeaderboardEntry, error) {
	aggregates, err := uc.leaderboardRepo.AggregateByAuthor(postType)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	entries := make([]entity.LeaderboardEntry, 0, len(aggregates))
	for _, agg := range aggregates {
		entries = append(entries, entity.LeaderboardEntry{
			UserID:   agg.AuthorID,
			Username: agg.Name,
			Avatar:   agg.AvatarURL,
			Stats: entity.LeaderboardStats{
				TotalPosts:    agg.TotalPosts,
				TotalViews:    agg.TotalViews,
				AverageRating: round2(agg.AvgRating),
				Score:         round2(Score(agg.TotalViews, agg.AvgRating)),
			},
		})
	}

	// Deterministic total order: score descending, ties broken by the
	// lower author id.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Stats.Score != entries[j].Stats.Score {
			return entries[i].Stats.Score > entries[j].Stats.Score
		}
		return entries[i].UserID < entries[j].UserID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	if offset > len(entries) {
		return []entity.LeaderboardEntry{}, nil
	}
	entries = entries[offset:]
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
