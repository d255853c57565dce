package permission

import (
	"testing"

	"talenthub/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRole(t *testing.T) {
	assert.Equal(t, entity.RoleViewer, NormalizeRole("viewer"))
	assert.Equal(t, entity.RoleCreator, NormalizeRole("creator"))
	assert.Equal(t, entity.RoleAdmin, NormalizeRole("admin"))

	// Legacy and garbage values fail closed to viewer.
	assert.Equal(t, entity.RoleViewer, NormalizeRole("student"))
	assert.Equal(t, entity.RoleViewer, NormalizeRole("moderator"))
	assert.Equal(t, entity.RoleViewer, NormalizeRole(""))
	assert.Equal(t, entity.RoleViewer, NormalizeRole("ADMIN"))
}

func TestCanUpload(t *testing.T) {
	assert.False(t, CanUpload(entity.RoleViewer))
	assert.True(t, CanUpload(entity.RoleCreator))
	assert.True(t, CanUpload(entity.RoleAdmin))
}

func TestCanModerate(t *testing.T) {
	assert.False(t, CanModerate(entity.RoleViewer))
	assert.False(t, CanModerate(entity.RoleCreator))
	assert.True(t, CanModerate(entity.RoleAdmin))
}

func TestCanMutatePost(t *testing.T) {
	// Admin may mutate anything, even terminal states.
	assert.True(t, CanMutatePost(entity.RoleAdmin, false, entity.StatusRejected, true))

	// Owner may mutate live posts.
	assert.True(t, CanMutatePost(entity.RoleCreator, true, entity.StatusPending, false))
	assert.True(t, CanMutatePost(entity.RoleCreator, true, entity.StatusApproved, false))

	// Owner loses rights on rejected or deleted posts.
	assert.False(t, CanMutatePost(entity.RoleCreator, true, entity.StatusRejected, false))
	assert.False(t, CanMutatePost(entity.RoleCreator, true, entity.StatusApproved, true))

	// Non-owners never mutate.
	assert.False(t, CanMutatePost(entity.RoleCreator, false, entity.StatusApproved, false))
	assert.False(t, CanMutatePost(entity.RoleViewer, false, entity.StatusPending, false))
}

func TestCanVote(t *testing.T) {
	assert.True(t, CanVote(false))
	assert.False(t, CanVote(true))
}

func TestHasMinimumRole(t *testing.T) {
	assert.True(t, HasMinimumRole(entity.RoleAdmin, entity.RoleViewer))
	assert.True(t, HasMinimumRole(entity.RoleCreator, entity.RoleCreator))
	assert.False(t, HasMinimumRole(entity.RoleViewer, entity.RoleCreator))
	assert.False(t, HasMinimumRole(entity.RoleCreator, entity.RoleAdmin))
}
