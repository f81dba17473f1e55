package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mado-app/mado/internal/infrastructure/persistence/models"
	"github.com/mado-app/mado/internal/shared/logger"
)

// Manager runs schema migrations.
type Manager struct {
	db  *gorm.DB
	log logger.Interface
}

func NewManager(db *gorm.DB, log logger.Interface) *Manager {
	return &Manager{db: db, log: log.Named("migration")}
}

// Migrate brings the schema up to date for all persisted models.
func (m *Manager) Migrate() error {
	m.log.Info("running schema migrations")

	err := m.db.AutoMigrate(
		&models.UserModel{},
		&models.OAuthAccountModel{},
		&models.StoryModel{},
		&models.ChapterModel{},
		&models.LikeModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	m.log.Info("schema migrations complete")
	return nil
}
