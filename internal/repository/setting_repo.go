package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

type settingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Key         string    `gorm:"column:key;uniqueIndex"`
	Value       string    `gorm:"column:value;type:text"`
	Description *string   `gorm:"column:description"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (settingModel) TableName() string { return "settings" }

func (r *SettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	var rows []settingModel
	err := r.db.WithContext(ctx).Order("key ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Setting, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Setting{
			ID:          m.ID,
			Key:         m.Key,
			Value:       m.Value,
			Description: strVal(m.Description),
			UpdatedAt:   m.UpdatedAt,
		})
	}
	return out, nil
}

func (r *SettingRepository) SetValue(ctx context.Context, key, value string) error {
	tx := r.db.WithContext(ctx).Model(&settingModel{}).
		Where("key = ?", key).
		Update("value", value)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Upsert inserts a setting or updates its value, used by the seeder.
func (r *SettingRepository) Upsert(ctx context.Context, key, value, description string) error {
	m := settingModel{
		Key:         key,
		Value:       value,
		Description: strPtr(description),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "description"}),
		}).
		Create(&m).Error
}
