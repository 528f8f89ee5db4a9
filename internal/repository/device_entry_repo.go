package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type DeviceEntryRepository struct {
	db *gorm.DB
}

func NewDeviceEntryRepository(db *gorm.DB) *DeviceEntryRepository {
	return &DeviceEntryRepository{db: db}
}

type deviceEntryModel struct {
	ID                  int64      `gorm:"column:id;primaryKey"`
	SerialNumber        string     `gorm:"column:serial_number;index"`
	CustomerName        string     `gorm:"column:customer_name"`
	MobileNumber        string     `gorm:"column:mobile_number;index"`
	VillageName         *string    `gorm:"column:village_name"`
	Address             *string    `gorm:"column:address"`
	DeviceType          string     `gorm:"column:device_type"`
	DeviceBrand         *string    `gorm:"column:device_brand"`
	DeviceModel         *string    `gorm:"column:device_model"`
	WindingType         *string    `gorm:"column:winding_type"`
	MotorHP             *string    `gorm:"column:motor_hp"`
	ProblemDescription  string     `gorm:"column:problem_description;type:text"`
	AccessoriesReceived *string    `gorm:"column:accessories_received"`
	EstimatedCost       float64    `gorm:"column:estimated_cost"`
	AdvancePaid         float64    `gorm:"column:advance_paid"`
	FinalCost           float64    `gorm:"column:final_cost"`
	Status              string     `gorm:"column:status;index"`
	ReceivedDate        time.Time  `gorm:"column:received_date"`
	ExpectedDelivery    *time.Time `gorm:"column:expected_delivery"`
	DeliveredDate       *time.Time `gorm:"column:delivered_date"`
	TechnicianName      *string    `gorm:"column:technician_name"`
	Notes               *string    `gorm:"column:notes;type:text"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	UpdatedAt           time.Time  `gorm:"column:updated_at"`
}

func (deviceEntryModel) TableName() string { return "device_entries" }

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	v := s
	return &v
}

func toDomainDeviceEntry(m deviceEntryModel) *domain.DeviceEntry {
	return &domain.DeviceEntry{
		ID:                  m.ID,
		SerialNumber:        m.SerialNumber,
		CustomerName:        m.CustomerName,
		MobileNumber:        m.MobileNumber,
		VillageName:         strVal(m.VillageName),
		Address:             strVal(m.Address),
		DeviceType:          m.DeviceType,
		DeviceBrand:         strVal(m.DeviceBrand),
		DeviceModel:         strVal(m.DeviceModel),
		WindingType:         domain.WindingType(strVal(m.WindingType)),
		MotorHP:             strVal(m.MotorHP),
		ProblemDescription:  m.ProblemDescription,
		AccessoriesReceived: strVal(m.AccessoriesReceived),
		EstimatedCost:       m.EstimatedCost,
		AdvancePaid:         m.AdvancePaid,
		FinalCost:           m.FinalCost,
		Status:              domain.DeviceEntryStatus(m.Status),
		ReceivedDate:        m.ReceivedDate,
		ExpectedDelivery:    m.ExpectedDelivery,
		DeliveredDate:       m.DeliveredDate,
		TechnicianName:      strVal(m.TechnicianName),
		Notes:               strVal(m.Notes),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}

func toDeviceEntryModel(e *domain.DeviceEntry) deviceEntryModel {
	return deviceEntryModel{
		ID:                  e.ID,
		SerialNumber:        e.SerialNumber,
		CustomerName:        e.CustomerName,
		MobileNumber:        e.MobileNumber,
		VillageName:         strPtr(e.VillageName),
		Address:             strPtr(e.Address),
		DeviceType:          e.DeviceType,
		DeviceBrand:         strPtr(e.DeviceBrand),
		DeviceModel:         strPtr(e.DeviceModel),
		WindingType:         strPtr(string(e.WindingType)),
		MotorHP:             strPtr(e.MotorHP),
		ProblemDescription:  e.ProblemDescription,
		AccessoriesReceived: strPtr(e.AccessoriesReceived),
		EstimatedCost:       e.EstimatedCost,
		AdvancePaid:         e.AdvancePaid,
		FinalCost:           e.FinalCost,
		Status:              string(e.Status),
		ReceivedDate:        e.ReceivedDate,
		ExpectedDelivery:    e.ExpectedDelivery,
		DeliveredDate:       e.DeliveredDate,
		TechnicianName:      strPtr(e.TechnicianName),
		Notes:               strPtr(e.Notes),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
}

func (r *DeviceEntryRepository) Create(ctx context.Context, e *domain.DeviceEntry) error {
	m := toDeviceEntryModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainDeviceEntry(m)
	return nil
}

func (r *DeviceEntryRepository) GetByID(ctx context.Context, id int64) (*domain.DeviceEntry, error) {
	var m deviceEntryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainDeviceEntry(m), nil
}

// List returns entries newest first, optionally filtered by status.
func (r *DeviceEntryRepository) List(ctx context.Context, status string) ([]domain.DeviceEntry, error) {
	q := r.db.WithContext(ctx).Model(&deviceEntryModel{}).Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var rows []deviceEntryModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.DeviceEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDeviceEntry(m))
	}
	return out, nil
}

// Update applies a partial column patch and returns the updated row.
func (r *DeviceEntryRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.DeviceEntry, error) {
	tx := r.db.WithContext(ctx).Model(&deviceEntryModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *DeviceEntryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&deviceEntryModel{}, id).Error
}

// FindBySerial does an exact match; a missing row is a nil result, not an error.
func (r *DeviceEntryRepository) FindBySerial(ctx context.Context, serial string) (*domain.DeviceEntry, error) {
	var m deviceEntryModel
	tx := r.db.WithContext(ctx).Where("serial_number = ?", serial).First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainDeviceEntry(m), nil
}

// SearchBySerial does a case-insensitive partial match on the serial number.
func (r *DeviceEntryRepository) SearchBySerial(ctx context.Context, q string) ([]domain.DeviceEntry, error) {
	var rows []deviceEntryModel
	pattern := "%" + strings.ToLower(q) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(serial_number) LIKE ?", pattern).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.DeviceEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDeviceEntry(m))
	}
	return out, nil
}

func (r *DeviceEntryRepository) ListByMobile(ctx context.Context, mobile string) ([]domain.DeviceEntry, error) {
	var rows []deviceEntryModel
	err := r.db.WithContext(ctx).
		Where("mobile_number = ?", mobile).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.DeviceEntry, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainDeviceEntry(m))
	}
	return out, nil
}

// CountCreatedBetween counts entries created within [from, to).
func (r *DeviceEntryRepository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&deviceEntryModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}
