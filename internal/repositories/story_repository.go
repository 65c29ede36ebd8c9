package repositories

import (
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoryRepository defines the interface for story and story-view operations
type StoryRepository interface {
	CreateStory(story *models.Story) error
	GetStoryByID(id uint) (*models.Story, error)
	GetStoriesByUserIDs(userIDs []uint) ([]models.Story, error)
	TrackView(storyID, viewerID uint) error
	GetViewers(storyID uint) ([]models.StoryViewer, error)
	GetViewCount(storyID uint) (int64, error)
}

// PostgresStoryRepository implements StoryRepository for PostgreSQL
type PostgresStoryRepository struct {
	db *gorm.DB
}

// NewPostgresStoryRepository creates a new PostgresStoryRepository
func NewPostgresStoryRepository(db *gorm.DB) *PostgresStoryRepository {
	return &PostgresStoryRepository{db: db}
}

func (r *PostgresStoryRepository) CreateStory(story *models.Story) error {
	return r.db.Create(story).Error
}

func (r *PostgresStoryRepository) GetStoryByID(id uint) (*models.Story, error) {
	var story models.Story
	if err := r.db.First(&story, id).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// GetStoriesByUserIDs retrieves stories owned by any of the given users.
func (r *PostgresStoryRepository) GetStoriesByUserIDs(userIDs []uint) ([]models.Story, error) {
	stories := []models.Story{}
	if len(userIDs) == 0 {
		return stories, nil
	}
	if err := r.db.Where("user_id IN ?", userIDs).Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// TrackView records that viewerID saw the story. Repeated calls are no-ops:
// the conditional insert on the unique (story_id, user_id) index keeps
// exactly one row per pair, even under concurrent calls.
func (r *PostgresStoryRepository) TrackView(storyID, viewerID uint) error {
	view := &models.StoryView{StoryID: storyID, UserID: viewerID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(view).Error
}

// GetViewers lists who viewed the story, as (username, viewed_at) pairs.
func (r *PostgresStoryRepository) GetViewers(storyID uint) ([]models.StoryViewer, error) {
	viewers := []models.StoryViewer{}
	err := r.db.Model(&models.StoryView{}).
		Select("users.username AS username, story_views.viewed_at AS viewed_at").
		Joins("JOIN users ON users.id = story_views.user_id").
		Where("story_views.story_id = ?", storyID).
		Scan(&viewers).Error
	if err != nil {
		return nil, err
	}
	return viewers, nil
}

func (r *PostgresStoryRepository) GetViewCount(storyID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.StoryView{}).Where("story_id = ?", storyID).Count(&count).Error
	return count, err
}
