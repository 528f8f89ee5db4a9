package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type WarrantyRepository struct {
	db *gorm.DB
}

func NewWarrantyRepository(db *gorm.DB) *WarrantyRepository {
	return &WarrantyRepository{db: db}
}

type warrantyModel struct {
	ID                 int64     `gorm:"column:id;primaryKey"`
	CustomerName       string    `gorm:"column:customer_name"`
	CustomerPhone      string    `gorm:"column:customer_phone;index"`
	DeviceType         string    `gorm:"column:device_type"`
	DeviceBrand        *string   `gorm:"column:device_brand"`
	SerialNumber       *string   `gorm:"column:serial_number"`
	StartDate          time.Time `gorm:"column:start_date"`
	EndDate            time.Time `gorm:"column:end_date;index"`
	ServiceDescription *string   `gorm:"column:service_description;type:text"`
	TechnicianName     *string   `gorm:"column:technician_name"`
	Status             string    `gorm:"column:status;index"`
	ClaimCount         int       `gorm:"column:claim_count"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (warrantyModel) TableName() string { return "warranties" }

type warrantyClaimModel struct {
	ID               int64     `gorm:"column:id;primaryKey"`
	WarrantyID       int64     `gorm:"column:warranty_id;index"`
	IssueDescription string    `gorm:"column:issue_description;type:text"`
	Resolution       *string   `gorm:"column:resolution;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at"`
}

func (warrantyClaimModel) TableName() string { return "warranty_claims" }

func toDomainWarranty(m warrantyModel) *domain.Warranty {
	return &domain.Warranty{
		ID:                 m.ID,
		CustomerName:       m.CustomerName,
		CustomerPhone:      m.CustomerPhone,
		DeviceType:         m.DeviceType,
		DeviceBrand:        strVal(m.DeviceBrand),
		SerialNumber:       strVal(m.SerialNumber),
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		ServiceDescription: strVal(m.ServiceDescription),
		TechnicianName:     strVal(m.TechnicianName),
		Status:             domain.WarrantyStatus(m.Status),
		ClaimCount:         m.ClaimCount,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func toWarrantyModel(w *domain.Warranty) warrantyModel {
	return warrantyModel{
		ID:                 w.ID,
		CustomerName:       w.CustomerName,
		CustomerPhone:      w.CustomerPhone,
		DeviceType:         w.DeviceType,
		DeviceBrand:        strPtr(w.DeviceBrand),
		SerialNumber:       strPtr(w.SerialNumber),
		StartDate:          w.StartDate,
		EndDate:            w.EndDate,
		ServiceDescription: strPtr(w.ServiceDescription),
		TechnicianName:     strPtr(w.TechnicianName),
		Status:             string(w.Status),
		ClaimCount:         w.ClaimCount,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

func toDomainWarranties(rows []warrantyModel) []domain.Warranty {
	out := make([]domain.Warranty, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainWarranty(m))
	}
	return out
}

func (r *WarrantyRepository) Create(ctx context.Context, w *domain.Warranty) error {
	m := toWarrantyModel(w)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*w = *toDomainWarranty(m)
	return nil
}

func (r *WarrantyRepository) GetByID(ctx context.Context, id int64) (*domain.Warranty, error) {
	var m warrantyModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWarranty(m), nil
}

func (r *WarrantyRepository) List(ctx context.Context) ([]domain.Warranty, error) {
	var rows []warrantyModel
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainWarranties(rows), nil
}

// ListActive returns warranties with status=active that are still within
// their validity window. The stored status alone does not mean "valid".
func (r *WarrantyRepository) ListActive(ctx context.Context, today time.Time) ([]domain.Warranty, error) {
	var rows []warrantyModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date >= ?", string(domain.WarrantyActive), today).
		Order("end_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainWarranties(rows), nil
}

// ListExpiring returns active warranties whose end_date falls in [today, until].
func (r *WarrantyRepository) ListExpiring(ctx context.Context, today, until time.Time) ([]domain.Warranty, error) {
	var rows []warrantyModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND end_date >= ? AND end_date <= ?", string(domain.WarrantyActive), today, until).
		Order("end_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainWarranties(rows), nil
}

func (r *WarrantyRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Warranty, error) {
	var rows []warrantyModel
	err := r.db.WithContext(ctx).
		Where("customer_phone = ?", phone).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainWarranties(rows), nil
}

func (r *WarrantyRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Warranty, error) {
	tx := r.db.WithContext(ctx).Model(&warrantyModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *WarrantyRepository) UpdateStatus(ctx context.Context, id int64, status domain.WarrantyStatus) error {
	return r.db.WithContext(ctx).Model(&warrantyModel{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// IncrementClaims bumps the claim counter store-side, so two simultaneous
// claims cannot lose an update the way a read-modify-write would.
func (r *WarrantyRepository) IncrementClaims(ctx context.Context, warrantyID int64) error {
	return r.db.WithContext(ctx).Model(&warrantyModel{}).
		Where("id = ?", warrantyID).
		UpdateColumn("claim_count", gorm.Expr("claim_count + ?", 1)).Error
}

func (r *WarrantyRepository) CreateClaim(ctx context.Context, c *domain.WarrantyClaim) error {
	m := warrantyClaimModel{
		WarrantyID:       c.WarrantyID,
		IssueDescription: c.IssueDescription,
		Resolution:       strPtr(c.Resolution),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	c.ID = m.ID
	c.CreatedAt = m.CreatedAt
	return nil
}

func (r *WarrantyRepository) ListClaims(ctx context.Context, warrantyID int64) ([]domain.WarrantyClaim, error) {
	var rows []warrantyClaimModel
	err := r.db.WithContext(ctx).
		Where("warranty_id = ?", warrantyID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.WarrantyClaim, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.WarrantyClaim{
			ID:               m.ID,
			WarrantyID:       m.WarrantyID,
			IssueDescription: m.IssueDescription,
			Resolution:       strVal(m.Resolution),
			CreatedAt:        m.CreatedAt,
		})
	}
	return out, nil
}
