package persistent

import (
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/model"

	"gorm.io/gorm"
)

// PostFilter narrows listings. Zero values mean "no constraint".
// Deleted posts are excluded unless DeletedOnly is set (garbage bin).
type PostFilter struct {
	Type        entity.PostType
	Status      entity.PostStatus
	AuthorID    string
	DeletedOnly bool
}

type StatusCounts struct {
	Total    int64
	Pending  int64
	Approved int64
	Rejected int64
	Deleted  int64
}

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	List(filter PostFilter, limit, offset int) ([]*entity.Post, int64, error)
	UpdateFields(id string, fields map[string]interface{}) error

	// TransitionStatus flips status only when the stored status still
	// matches from; reports whether a row changed. Closes the
	// double-approve race at the store.
	TransitionStatus(id string, from, to entity.PostStatus, extra map[string]interface{}) (bool, error)

	SoftDelete(id, reason string) (bool, error)
	Restore(id string) (bool, error)
	Purge(id string) error

	IncrementViews(id string) error
	SetRating(id string, rating float64) error
	CountByStatus() (*StatusCounts, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create inserts the post and its media rows in one transaction so a
// failed media insert never orphans the post.
func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(postModel).Error
	})
	if err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Preload("Media").Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) List(filter PostFilter, limit, offset int) ([]*entity.Post, int64, error) {
	query := r.db.Model(&model.PostModel{})

	if filter.DeletedOnly {
		query = query.Where("is_deleted = ?", true).Order("deleted_at DESC")
	} else {
		query = query.Where("is_deleted = ?", false).Order("created_at DESC")
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var postModels []model.PostModel
	if err := query.Preload("Media").Find(&postModels).Error; err != nil {
		return nil, 0, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, total, nil
}

func (r *postRepository) UpdateFields(id string, fields map[string]interface{}) error {
	res := r.db.Model(&model.PostModel{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *postRepository) TransitionStatus(id string, from, to entity.PostStatus, extra map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": string(to)}
	for k, v := range extra {
		updates[k] = v
	}

	res := r.db.Model(&model.PostModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *postRepository) SoftDelete(id, reason string) (bool, error) {
	now := time.Now()
	res := r.db.Model(&model.PostModel{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Updates(map[string]interface{}{
			"is_deleted":    true,
			"deleted_at":    &now,
			"delete_reason": reason,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *postRepository) Restore(id string) (bool, error) {
	res := r.db.Model(&model.PostModel{}).
		Where("id = ? AND is_deleted = ?", id, true).
		Updates(map[string]interface{}{
			"is_deleted":    false,
			"deleted_at":    nil,
			"delete_reason": "",
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Purge hard-deletes the post with its interactions and media in one
// transaction.
func (r *postRepository) Purge(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.InteractionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&model.MediaModel{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.PostModel{}).Error
	})
}

func (r *postRepository) IncrementViews(id string) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1)).Error
}

func (r *postRepository) SetRating(id string, rating float64) error {
	return r.db.Model(&model.PostModel{}).Where("id = ?", id).
		UpdateColumn("rating", rating).Error
}

func (r *postRepository) CountByStatus() (*StatusCounts, error) {
	counts := &StatusCounts{}
	db := r.db.Model(&model.PostModel{})

	if err := db.Session(&gorm.Session{}).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", string(entity.StatusPending)).Count(&counts.Pending).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", string(entity.StatusApproved)).Count(&counts.Approved).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("status = ?", string(entity.StatusRejected)).Count(&counts.Rejected).Error; err != nil {
		return nil, err
	}
	if err := db.Session(&gorm.Session{}).Where("is_deleted = ?", true).Count(&counts.Deleted).Error; err != nil {
		return nil, err
	}
	return counts, nil
}
