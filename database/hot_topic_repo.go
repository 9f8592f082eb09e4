package database

import (
	"contentpilot/models"

	"gorm.io/gorm"
)

type HotTopicRepo struct {
	db *gorm.DB
}

func NewHotTopicRepo(db *gorm.DB) *HotTopicRepo {
	return &HotTopicRepo{db}
}

// FindByWorkspace returns all topics in a workspace, highest engagement first
func (r *HotTopicRepo) FindByWorkspace(workspaceID string) ([]*models.HotTopic, error) {
	var topics []*models.HotTopic
	err := r.db.Where("workspace_id = ?", workspaceID).
		Order("engagement_score DESC, created_at DESC").
		Find(&topics).Error
	return topics, err
}

// FindByID returns a topic by its ID
func (r *HotTopicRepo) FindByID(id string) (*models.HotTopic, error) {
	var topic models.HotTopic
	err := r.db.First(&topic, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

// AddAll inserts a batch of topics in one statement. A nil or empty batch is a no-op.
func (r *HotTopicRepo) AddAll(topics []*models.HotTopic) error {
	if len(topics) == 0 {
		return nil
	}
	return r.db.Create(topics).Error
}

// Update updates an existing topic in the database
func (r *HotTopicRepo) Update(topic *models.HotTopic) error {
	return r.db.Save(topic).Error
}

// Delete removes a topic from the database by id
func (r *HotTopicRepo) Delete(id string) error {
	return r.db.Delete(&models.HotTopic{}, "id = ?", id).Error
}

// DeleteByWorkspace clears every topic in a workspace and reports how many
// rows were removed.
func (r *HotTopicRepo) DeleteByWorkspace(workspaceID string) (int64, error) {
	result := r.db.Delete(&models.HotTopic{}, "workspace_id = ?", workspaceID)
	return result.RowsAffected, result.Error
}
