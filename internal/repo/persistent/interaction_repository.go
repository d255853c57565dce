package persistent

import (
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InteractionStats counts ledger rows per kind for one post.
type InteractionStats struct {
	Views   int64 `json:"views"`
	Likes   int64 `json:"likes"`
	Ratings int64 `json:"ratings"`
}

type InteractionRepository interface {
	// UpsertView inserts the (user, post, view) fact and reports whether
	// a new row was created. A repeat view hits the unique index and
	// creates nothing.
	UpsertView(userID, postID string) (bool, error)

	HasLike(userID, postID string) (bool, error)
	CreateLike(userID, postID string) (bool, error)
	DeleteLike(userID, postID string) error
	CountLikes(postID string) (int64, error)

	UpsertRating(userID, postID string, value int) error
	AverageRating(postID string) (float64, error)

	StatsForPost(postID string) (*InteractionStats, error)
	ListForPost(postID string, kind entity.InteractionKind) ([]*entity.Interaction, error)
}

type interactionRepository struct {
	db *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) InteractionRepository {
	return &interactionRepository{db: db}
}

var interactionKey = []clause.Column{
	{Name: "user_id"},
	{Name: "post_id"},
	{Name: "kind"},
}

func (r *interactionRepository) UpsertView(userID, postID string) (bool, error) {
	row := &model.InteractionModel{
		UserID: userID,
		PostID: postID,
		Kind:   string(entity.InteractionView),
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   interactionKey,
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *interactionRepository) HasLike(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.InteractionModel{}).
		Where("user_id = ? AND post_id = ? AND kind = ?", userID, postID, string(entity.InteractionLike)).
		Count(&count).Error
	return count > 0, err
}

// CreateLike relies on the unique index so that two concurrent likes
// from the same user resolve to exactly one row.
func (r *interactionRepository) CreateLike(userID, postID string) (bool, error) {
	row := &model.InteractionModel{
		UserID: userID,
		PostID: postID,
		Kind:   string(entity.InteractionLike),
	}
	res := r.db.Clauses(clause.OnConflict{
		Columns:   interactionKey,
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *interactionRepository) DeleteLike(userID, postID string) error {
	return r.db.
		Where("user_id = ? AND post_id = ? AND kind = ?", userID, postID, string(entity.InteractionLike)).
		Delete(&model.InteractionModel{}).Error
}

func (r *interactionRepository) CountLikes(postID string) (int64, error) {
	var count int64
	err := r.db.Model(&model.InteractionModel{}).
		Where("post_id = ? AND kind = ?", postID, string(entity.InteractionLike)).
		Count(&count).Error
	return count, err
}

func (r *interactionRepository) UpsertRating(userID, postID string, value int) error {
	row := &model.InteractionModel{
		UserID: userID,
		PostID: postID,
		Kind:   string(entity.InteractionRating),
		Value:  &value,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: interactionKey,
		DoUpdates: clause.Assignments(map[string]interface{}{
			"value":      value,
			"updated_at": time.Now(),
		}),
	}).Create(row).Error
}

func (r *interactionRepository) AverageRating(postID string) (float64, error) {
	var avg float64
	err := r.db.Model(&model.InteractionModel{}).
		Select("COALESCE(AVG(value), 0)").
		Where("post_id = ? AND kind = ?", postID, string(entity.InteractionRating)).
		Scan(&avg).Error
	return avg, err
}

func (r *interactionRepository) StatsForPost(postID string) (*InteractionStats, error) {
	stats := &InteractionStats{}
	kinds := []struct {
		kind string
		dst  *int64
	}{
		{string(entity.InteractionView), &stats.Views},
		{string(entity.InteractionLike), &stats.Likes},
		{string(entity.InteractionRating), &stats.Ratings},
	}
	for _, k := range kinds {
		err := r.db.Model(&model.InteractionModel{}).
			Where("post_id = ? AND kind = ?", postID, k.kind).
			Count(k.dst).Error
		if err != nil {
			return nil, err
		}
	}
	return stats, nil
}

func (r *interactionRepository) ListForPost(postID string, kind entity.InteractionKind) ([]*entity.Interaction, error) {
	query := r.db.Where("post_id = ?", postID)
	if kind != "" {
		query = query.Where("kind = ?", string(kind))
	}

	var rows []model.InteractionModel
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	interactions := make([]*entity.Interaction, len(rows))
	for i := range rows {
		interactions[i] = ToInteractionEntity(&rows[i])
	}
	return interactions, nil
}
