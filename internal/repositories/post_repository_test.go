package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGetPostsByUserIDs(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	carol := createTestUser(t, db, "carol")

	createTestPost(t, db, alice.ID, "from alice")
	createTestPost(t, db, bob.ID, "from bob")
	createTestPost(t, db, carol.ID, "from carol")

	posts, err := repo.GetPostsByUserIDs([]uint{alice.ID, bob.ID})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
}

func TestGetPostsByUserIDsEmptySet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice")
	createTestPost(t, db, alice.ID, "exists")

	posts, err := repo.GetPostsByUserIDs([]uint{})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestDeletePost(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPostgresPostRepository(db)
	alice := createTestUser(t, db, "alice")
	post := createTestPost(t, db, alice.ID, "short lived")

	require.NoError(t, repo.DeletePost(post.ID))

	_, err := repo.GetPostByID(post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
