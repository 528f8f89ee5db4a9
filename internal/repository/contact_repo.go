package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

type contactModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name"`
	Email     string    `gorm:"column:email"`
	Phone     *string   `gorm:"column:phone"`
	Subject   *string   `gorm:"column:subject"`
	Message   string    `gorm:"column:message;type:text"`
	IsRead    bool      `gorm:"column:is_read;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (contactModel) TableName() string { return "contacts" }

func toDomainContact(m contactModel) *domain.Contact {
	return &domain.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     strVal(m.Phone),
		Subject:   strVal(m.Subject),
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	m := contactModel{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   strPtr(c.Phone),
		Subject: strPtr(c.Subject),
		Message: c.Message,
		IsRead:  false,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainContact(m)
	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	var rows []contactModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Contact, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}

func (r *ContactRepository) ListUnread(ctx context.Context) ([]domain.Contact, error) {
	var rows []contactModel
	err := r.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Contact, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainContact(m))
	}
	return out, nil
}

func (r *ContactRepository) MarkRead(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Model(&contactModel{}).
		Where("id = ?", id).
		Update("is_read", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&contactModel{}, id).Error
}
