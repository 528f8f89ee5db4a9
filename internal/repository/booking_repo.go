package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	CustomerName     string     `gorm:"column:customer_name"`
	Phone            string     `gorm:"column:phone;index"`
	Email            *string    `gorm:"column:email"`
	DeviceType       string     `gorm:"column:device_type;index"`
	Brand            *string    `gorm:"column:brand"`
	IssueDescription string     `gorm:"column:issue_description;type:text"`
	Status           string     `gorm:"column:status;index"`
	Priority         string     `gorm:"column:priority"`
	EstimatedCost    float64    `gorm:"column:estimated_cost"`
	ActualCost       float64    `gorm:"column:actual_cost"`
	TechnicianName   *string    `gorm:"column:technician_name"`
	TechnicianPhone  *string    `gorm:"column:technician_phone"`
	ScheduledDate    *time.Time `gorm:"column:scheduled_date"`
	CompletedDate    *time.Time `gorm:"column:completed_date"`
	WarrantyUntil    *time.Time `gorm:"column:warranty_until"`
	Notes            *string    `gorm:"column:notes;type:text"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:               m.ID,
		CustomerName:     m.CustomerName,
		Phone:            m.Phone,
		Email:            strVal(m.Email),
		DeviceType:       m.DeviceType,
		Brand:            strVal(m.Brand),
		IssueDescription: m.IssueDescription,
		Status:           domain.BookingStatus(m.Status),
		Priority:         domain.BookingPriority(m.Priority),
		EstimatedCost:    m.EstimatedCost,
		ActualCost:       m.ActualCost,
		TechnicianName:   strVal(m.TechnicianName),
		TechnicianPhone:  strVal(m.TechnicianPhone),
		ScheduledDate:    m.ScheduledDate,
		CompletedDate:    m.CompletedDate,
		WarrantyUntil:    m.WarrantyUntil,
		Notes:            strVal(m.Notes),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:               b.ID,
		CustomerName:     b.CustomerName,
		Phone:            b.Phone,
		Email:            strPtr(b.Email),
		DeviceType:       b.DeviceType,
		Brand:            strPtr(b.Brand),
		IssueDescription: b.IssueDescription,
		Status:           string(b.Status),
		Priority:         string(b.Priority),
		EstimatedCost:    b.EstimatedCost,
		ActualCost:       b.ActualCost,
		TechnicianName:   strPtr(b.TechnicianName),
		TechnicianPhone:  strPtr(b.TechnicianPhone),
		ScheduledDate:    b.ScheduledDate,
		CompletedDate:    b.CompletedDate,
		WarrantyUntil:    b.WarrantyUntil,
		Notes:            strPtr(b.Notes),
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) List(ctx context.Context, status string) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&bookingModel{}).Order("created_at DESC")
	if status != "" && status != "all" {
		q = q.Where("status = ?", status)
	}

	var rows []bookingModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Booking, error) {
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&bookingModel{}, id).Error
}

func (r *BookingRepository) ListByPhone(ctx context.Context, phone string) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) Recent(ctx context.Context, limit int) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

func (r *BookingRepository) ListCreatedSince(ctx context.Context, since time.Time) ([]domain.Booking, error) {
	var rows []bookingModel
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBookings(rows), nil
}

// CountByDeviceType groups repair counts per device type, most repaired first.
func (r *BookingRepository) CountByDeviceType(ctx context.Context, limit int) ([]domain.PopularDevice, error) {
	var out []domain.PopularDevice
	err := r.db.WithContext(ctx).Model(&bookingModel{}).
		Select("device_type, COUNT(*) AS repair_count").
		Group("device_type").
		Order("repair_count DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func toDomainBookings(rows []bookingModel) []domain.Booking {
	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out
}
