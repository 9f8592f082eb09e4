package database

import (
	"gorm.io/gorm"
)

type Database struct {
	db                    *gorm.DB
	workspaceRepo         *WorkspaceRepo
	inspirationSourceRepo *InspirationSourceRepo
	hotTopicRepo          *HotTopicRepo
	socialProfileRepo     *SocialProfileRepo
	styleProfileRepo      *StyleProfileRepo
	contentPieceRepo      *ContentPieceRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:                    db,
		workspaceRepo:         NewWorkspaceRepo(db),
		inspirationSourceRepo: NewInspirationSourceRepo(db),
		hotTopicRepo:          NewHotTopicRepo(db),
		socialProfileRepo:     NewSocialProfileRepo(db),
		styleProfileRepo:      NewStyleProfileRepo(db),
		contentPieceRepo:      NewContentPieceRepo(db),
	}
}

// Ping verifies the underlying connection is alive.
func (d Database) Ping() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Accessor methods for each repository

func (d Database) WorkspaceRepo() *WorkspaceRepo {
	return d.workspaceRepo
}

func (d Database) InspirationSourceRepo() *InspirationSourceRepo {
	return d.inspirationSourceRepo
}

func (d Database) HotTopicRepo() *HotTopicRepo {
	return d.hotTopicRepo
}

func (d Database) SocialProfileRepo() *SocialProfileRepo {
	return d.socialProfileRepo
}

func (d Database) StyleProfileRepo() *StyleProfileRepo {
	return d.styleProfileRepo
}

func (d Database) ContentPieceRepo() *ContentPieceRepo {
	return d.contentPieceRepo
}
