package repositories

import (
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FavoriteRepository defines the interface for favorite data operations
type FavoriteRepository interface {
	ToggleFavorite(userID, postID uint) (favorited bool, err error)
	GetFavoritesByUser(userID uint) ([]models.Favorite, error)
}

// PostgresFavoriteRepository implements FavoriteRepository for PostgreSQL
type PostgresFavoriteRepository struct {
	db *gorm.DB
}

// NewPostgresFavoriteRepository creates a new PostgresFavoriteRepository
func NewPostgresFavoriteRepository(db *gorm.DB) *PostgresFavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

// ToggleFavorite favorites the post if absent, unfavorites it otherwise,
// with the same conditional-insert discipline as likes. Returns true when
// the post ends up favorited.
func (r *PostgresFavoriteRepository) ToggleFavorite(userID, postID uint) (bool, error) {
	favorite := &models.Favorite{UserID: userID, PostID: postID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	err := r.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Favorite{}).Error
	return false, err
}

// GetFavoritesByUser lists the caller's favorites with posts preloaded.
func (r *PostgresFavoriteRepository) GetFavoritesByUser(userID uint) ([]models.Favorite, error) {
	favorites := []models.Favorite{}
	err := r.db.Preload("Post").Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}
