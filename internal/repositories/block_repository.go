package repositories

import (
	"github.com/onielsteve2003/Modern-social-media/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BlockRepository defines the interface for block data operations
type BlockRepository interface {
	ToggleBlock(blockerID, blockedID uint) (blocked bool, err error)
	IsBlocked(blockerID, blockedID uint) (bool, error)
}

// PostgresBlockRepository implements BlockRepository for PostgreSQL
type PostgresBlockRepository struct {
	db *gorm.DB
}

// NewPostgresBlockRepository creates a new PostgresBlockRepository
func NewPostgresBlockRepository(db *gorm.DB) *PostgresBlockRepository {
	return &PostgresBlockRepository{db: db}
}

// ToggleBlock creates the edge if absent, removes it otherwise. The insert
// is conditional on the unique (blocker_id, blocked_id) index so concurrent
// toggles cannot double-insert. Returns true when the user ends up blocked.
func (r *PostgresBlockRepository) ToggleBlock(blockerID, blockedID uint) (bool, error) {
	block := &models.Block{BlockerID: blockerID, BlockedID: blockedID}
	res := r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(block)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// Edge already existed: this toggle unblocks.
	err := r.db.Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).Delete(&models.Block{}).Error
	return false, err
}

func (r *PostgresBlockRepository) IsBlocked(blockerID, blockedID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Block{}).Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
