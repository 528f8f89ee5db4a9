package repository

import (
	"context"
	"errors"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

type customerModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        *string   `gorm:"column:email"`
	Phone        string    `gorm:"column:phone;index"`
	Address      *string   `gorm:"column:address"`
	TotalRepairs int       `gorm:"column:total_repairs"`
	TotalSpent   float64   `gorm:"column:total_spent"`
	IsVIP        bool      `gorm:"column:is_vip"`
	Notes        *string   `gorm:"column:notes;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (customerModel) TableName() string { return "customers" }

func toDomainCustomer(m customerModel) *domain.Customer {
	return &domain.Customer{
		ID:           m.ID,
		Name:         m.Name,
		Email:        strVal(m.Email),
		Phone:        m.Phone,
		Address:      strVal(m.Address),
		TotalRepairs: m.TotalRepairs,
		TotalSpent:   m.TotalSpent,
		IsVIP:        m.IsVIP,
		Notes:        strVal(m.Notes),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toCustomerModel(c *domain.Customer) customerModel {
	return customerModel{
		ID:           c.ID,
		Name:         c.Name,
		Email:        strPtr(c.Email),
		Phone:        c.Phone,
		Address:      strPtr(c.Address),
		TotalRepairs: c.TotalRepairs,
		TotalSpent:   c.TotalSpent,
		IsVIP:        c.IsVIP,
		Notes:        strPtr(c.Notes),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	m := toCustomerModel(c)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCustomer(m)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}

func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []customerModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Customer, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCustomer(m))
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Customer, error) {
	tx := r.db.WithContext(ctx).Model(&customerModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&customerModel{}, id).Error
}

// FindByPhone treats a missing row as a nil result, not an error.
func (r *CustomerRepository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	var m customerModel
	tx := r.db.WithContext(ctx).Where("phone = ?", phone).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCustomer(m), nil
}
