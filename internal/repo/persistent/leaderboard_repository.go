package persistent

import (
	"talenthub/internal/entity"
	"talenthub/internal/model"

	"gorm.io/gorm"
)

// AuthorAggregate is one author's engagement totals over their
// approved, non-deleted posts. Scoring happens in the usecase; this
// layer only aggregates.
type AuthorAggregate struct {
	AuthorID   string
	Name       string
	AvatarURL  string
	TotalPosts int64
	TotalViews int64
	AvgRating  float64
}

type LeaderboardRepository interface {
	// AggregateByAuthor groups approved, non-deleted posts by author,
	// optionally scoped to one post type.
	AggregateByAuthor(postType entity.PostType) ([]AuthorAggregate, error)
	PlatformStats() (*entity.PlatformStats, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

func (r *leaderboardRepository) AggregateByAuthor(postType entity.PostType) ([]AuthorAggregate, error) {
	query := r.db.Model(&model.PostModel{}).
		Select(`posts.author_id,
			users.name,
			users.avatar_url,
			COUNT(posts.id) AS total_posts,
			COALESCE(SUM(posts.views), 0) AS total_views,
			COALESCE(AVG(posts.rating), 0) AS avg_rating`).
		Joins("INNER JOIN users ON users.id = posts.author_id").
		Where("posts.status = ? AND posts.is_deleted = ?", string(entity.StatusApproved), false).
		Group("posts.author_id, users.name, users.avatar_url")

	if postType != "" {
		query = query.Where("posts.type = ?", string(postType))
	}

	var aggregates []AuthorAggregate
	if err := query.Scan(&aggregates).Error; err != nil {
		return nil, err
	}
	return aggregates, nil
}

func (r *leaderboardRepository) PlatformStats() (*entity.PlatformStats, error) {
	stats := &entity.PlatformStats{PostsByType: map[string]int64{}}

	err := r.db.Model(&model.UserModel{}).
		Where("role = ?", string(entity.RoleCreator)).
		Count(&stats.TotalCreators).Error
	if err != nil {
		return nil, err
	}

	approved := func() *gorm.DB {
		return r.db.Model(&model.PostModel{}).
			Where("status = ? AND is_deleted = ?", string(entity.StatusApproved), false)
	}

	if err := approved().Count(&stats.TotalPosts).Error; err != nil {
		return nil, err
	}

	var totals struct {
		TotalViews int64
		AvgRating  float64
	}
	err = approved().
		Select("COALESCE(SUM(views), 0) AS total_views, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	stats.TotalViews = totals.TotalViews
	stats.AverageRating = totals.AvgRating

	var byType []struct {
		Type  string
		Count int64
	}
	err = approved().
		Select("type, COUNT(id) AS count").
		Group("type").
		Scan(&byType).Error
	if err != nil {
		return nil, err
	}
	for _, row := range byType {
		stats.PostsByType[row.Type] = row.Count
	}

	return stats, nil
}
