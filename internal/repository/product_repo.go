package repository

import (
	"context"
	"time"

	"repairshop/internal/domain"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type productModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description *string   `gorm:"column:description;type:text"`
	Price       float64   `gorm:"column:price"`
	Category    string    `gorm:"column:category;index"`
	Brand       *string   `gorm:"column:brand"`
	ImageURL    *string   `gorm:"column:image_url"`
	Stock       int       `gorm:"column:stock"`
	IsFeatured  bool      `gorm:"column:is_featured"`
	IsActive    bool      `gorm:"column:is_active;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (productModel) TableName() string { return "products" }

func toDomainProduct(m productModel) *domain.Product {
	return &domain.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: strVal(m.Description),
		Price:       m.Price,
		Category:    domain.ProductCategory(m.Category),
		Brand:       strVal(m.Brand),
		ImageURL:    strVal(m.ImageURL),
		Stock:       m.Stock,
		IsFeatured:  m.IsFeatured,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
	}
}

func toProductModel(p *domain.Product) productModel {
	return productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: strPtr(p.Description),
		Price:       p.Price,
		Category:    string(p.Category),
		Brand:       strPtr(p.Brand),
		ImageURL:    strPtr(p.ImageURL),
		Stock:       p.Stock,
		IsFeatured:  p.IsFeatured,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
	}
}

func toDomainProducts(rows []productModel) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProduct(m))
	}
	return out
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	m := toProductModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProduct(m)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var m productModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProduct(m), nil
}

func (r *ProductRepository) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&productModel{}).Order("created_at DESC")
	if f.Category != "" && f.Category != "all" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if f.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}

	var rows []productModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(rows), nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Product, error) {
	tx := r.db.WithContext(ctx).Model(&productModel{}).Where("id = ?", id).Updates(patch)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&productModel{}, id).Error
}

// ListLowStock returns active products at or below the threshold, emptiest first.
func (r *ProductRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND stock <= ?", true, threshold).
		Order("stock ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainProducts(rows), nil
}
