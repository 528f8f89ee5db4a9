package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type ServiceRateRepository struct {
	db *gorm.DB
}

func NewServiceRateRepository(db *gorm.DB) *ServiceRateRepository {
	return &ServiceRateRepository{db: db}
}

type serviceRateModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	DeviceType  string    `gorm:"column:device_type;index"`
	ServiceName string    `gorm:"column:service_name"`
	BasePrice   float64   `gorm:"column:base_price"`
	Description *string   `gorm:"column:description;type:text"`
	IsActive    bool      `gorm:"column:is_active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (serviceRateModel) TableName() string { return "service_rates" }

func toDomainServiceRate(m serviceRateModel) *domain.ServiceRate {
	return &domain.ServiceRate{
		ID:          m.ID,
		DeviceType:  m.DeviceType,
		ServiceName: m.ServiceName,
		BasePrice:   m.BasePrice,
		Description: strVal(m.Description),
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *ServiceRateRepository) Create(ctx context.Context, s *domain.ServiceRate) error {
	m := serviceRateModel{
		DeviceType:  s.DeviceType,
		ServiceName: s.ServiceName,
		BasePrice:   s.BasePrice,
		Description: strPtr(s.Description),
		IsActive:    s.IsActive,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainServiceRate(m)
	return nil
}

func (r *ServiceRateRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceRate, error) {
	q := r.db.WithContext(ctx).Model(&serviceRateModel{}).Order("device_type ASC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []serviceRateModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ServiceRate, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainServiceRate(m))
	}
	return out, nil
}

func (r *ServiceRateRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.ServiceRate, error) {
	tx := r.db.WithContext(ctx).Model(&serviceRateModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var m serviceRateModel
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, err
	}
	return toDomainServiceRate(m), nil
}

func (r *ServiceRateRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&serviceRateModel{}, id).Error
}
