package persistent

import (
	"talenthub/internal/entity"
	"talenthub/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:          m.ID,
		Email:       m.Email,
		Name:        m.Name,
		Password:    m.Password,
		Role:        entity.UserRole(m.Role),
		AvatarURL:   m.AvatarURL,
		Bio:         m.Bio,
		SocialLinks: m.SocialLinks,
		StudentID:   m.StudentID,
		LastLoginAt: m.LastLoginAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:          e.ID,
		Email:       e.Email,
		Name:        e.Name,
		Password:    e.Password,
		Role:        string(e.Role),
		AvatarURL:   e.AvatarURL,
		Bio:         e.Bio,
		SocialLinks: e.SocialLinks,
		StudentID:   e.StudentID,
		LastLoginAt: e.LastLoginAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	media := make([]entity.Media, len(m.Media))
	for i := range m.Media {
		media[i] = *ToMediaEntity(&m.Media[i])
	}

	return &entity.Post{
		ID:           m.ID,
		AuthorID:     m.AuthorID,
		Title:        m.Title,
		Description:  m.Description,
		Type:         entity.PostType(m.Type),
		Thumbnail:    m.Thumbnail,
		Duration:     m.Duration,
		Status:       entity.PostStatus(m.Status),
		Views:        m.Views,
		Rating:       m.Rating,
		IsDeleted:    m.IsDeleted,
		DeletedAt:    m.DeletedAt,
		DeleteReason: m.DeleteReason,
		Media:        media,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	media := make([]model.MediaModel, len(e.Media))
	for i := range e.Media {
		media[i] = *ToMediaModel(&e.Media[i])
	}

	return &model.PostModel{
		ID:           e.ID,
		AuthorID:     e.AuthorID,
		Title:        e.Title,
		Description:  e.Description,
		Type:         string(e.Type),
		Thumbnail:    e.Thumbnail,
		Duration:     e.Duration,
		Status:       string(e.Status),
		Views:        e.Views,
		Rating:       e.Rating,
		IsDeleted:    e.IsDeleted,
		DeletedAt:    e.DeletedAt,
		DeleteReason: e.DeleteReason,
		Media:        media,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func ToMediaEntity(m *model.MediaModel) *entity.Media {
	if m == nil {
		return nil
	}

	return &entity.Media{
		ID:        m.ID,
		PostID:    m.PostID,
		FilePath:  m.FilePath,
		FileType:  m.FileType,
		FileSize:  m.FileSize,
		CreatedAt: m.CreatedAt,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:        e.ID,
		PostID:    e.PostID,
		FilePath:  e.FilePath,
		FileType:  e.FileType,
		FileSize:  e.FileSize,
		CreatedAt: e.CreatedAt,
	}
}

func ToInteractionEntity(m *model.InteractionModel) *entity.Interaction {
	if m == nil {
		return nil
	}

	return &entity.Interaction{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		Kind:      entity.InteractionKind(m.Kind),
		Value:     m.Value,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToRefreshTokenEntity(m *model.RefreshTokenModel) *entity.RefreshToken {
	if m == nil {
		return nil
	}

	return &entity.RefreshToken{
		ID:        m.ID,
		UserID:    m.UserID,
		Token:     m.Token,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
