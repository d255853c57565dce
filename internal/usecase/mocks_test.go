package usecase

import (
	"time"

	"talenthub/internal/entity"
	"talenthub/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock implementation of persistent.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(email string) (*entity.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Update(user *entity.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRole(id string, role entity.UserRole) error {
	args := m.Called(id, role)
	return args.Error(0)
}

func (m *MockUserRepository) TouchLastLogin(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockUserRepository) CountByRole(role entity.UserRole) (int64, error) {
	args := m.Called(role)
	return args.Get(0).(int64), args.Error(1)
}

var _ persistent.UserRepository = (*MockUserRepository)(nil)

// MockTokenRepository is a mock implementation of persistent.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Create(userID, token string, expiresAt time.Time) error {
	args := m.Called(userID, token, expiresAt)
	return args.Error(0)
}

func (m *MockTokenRepository) GetByToken(token string) (*entity.RefreshToken, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockTokenRepository) Delete(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteAllForUser(userID string) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteExpired() error {
	args := m.Called()
	return args.Error(0)
}

var _ persistent.TokenRepository = (*MockTokenRepository)(nil)

// MockPostRepository is a mock implementation of persistent.PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) List(filter persistent.PostFilter, limit, offset int) ([]*entity.Post, int64, error) {
	args := m.Called(filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entity.Post), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostRepository) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

func (m *MockPostRepository) TransitionStatus(id string, from, to entity.PostStatus, extra map[string]interface{}) (bool, error) {
	args := m.Called(id, from, to, extra)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) SoftDelete(id, reason string) (bool, error) {
	args := m.Called(id, reason)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Restore(id string) (bool, error) {
	args := m.Called(id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) Purge(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) IncrementViews(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPostRepository) SetRating(id string, rating float64) error {
	args := m.Called(id, rating)
	return args.Error(0)
}

func (m *MockPostRepository) CountByStatus() (*persistent.StatusCounts, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.StatusCounts), args.Error(1)
}

var _ persistent.PostRepository = (*MockPostRepository)(nil)

// MockInteractionRepository is a mock implementation of persistent.InteractionRepository
type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) UpsertView(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) HasLike(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) CreateLike(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInteractionRepository) DeleteLike(userID, postID string) error {
	args := m.Called(userID, postID)
	return args.Error(0)
}

func (m *MockInteractionRepository) CountLikes(postID string) (int64, error) {
	args := m.Called(postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInteractionRepository) UpsertRating(userID, postID string, value int) error {
	args := m.Called(userID, postID, value)
	return args.Error(0)
}

func (m *MockInteractionRepository) AverageRating(postID string) (float64, error) {
	args := m.Called(postID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockInteractionRepository) StatsForPost(postID string) (*persistent.InteractionStats, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*persistent.InteractionStats), args.Error(1)
}

func (m *MockInteractionRepository) ListForPost(postID string, kind entity.InteractionKind) ([]*entity.Interaction, error) {
	args := m.Called(postID, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Interaction), args.Error(1)
}

var _ persistent.InteractionRepository = (*MockInteractionRepository)(nil)

// MockLeaderboardRepository is a mock implementation of persistent.LeaderboardRepository
type MockLeaderboardRepository struct {
	mock.Mock
}

func (m *MockLeaderboardRepository) AggregateByAuthor(postType entity.PostType) ([]persistent.AuthorAggregate, error) {
	args := m.Called(postType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]persistent.AuthorAggregate), args.Error(1)
}

func (m *MockLeaderboardRepository) PlatformStats() (*entity.PlatformStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PlatformStats), args.Error(1)
}

var _ persistent.LeaderboardRepository = (*MockLeaderboardRepository)(nil)
