package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"repairshop/internal/domain"
)

// Mock repositories
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, p *domain.Product) error {
	args := m.Called(ctx, p)
	if p != nil {
		p.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, f domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.Product, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) ListLowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type MockServiceRateRepository struct {
	mock.Mock
}

func (m *MockServiceRateRepository) Create(ctx context.Context, s *domain.ServiceRate) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockServiceRateRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServiceRate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceRate), args.Error(1)
}

func (m *MockServiceRateRepository) Update(ctx context.Context, id int64, patch map[string]any) (*domain.ServiceRate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceRate), args.Error(1)
}

func (m *MockServiceRateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) List(ctx context.Context) ([]domain.Setting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Setting), args.Error(1)
}

func (m *MockSettingRepository) SetValue(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, key, value, description string) error {
	args := m.Called(ctx, key, value, description)
	return args.Error(0)
}

func newCatalogService(products *MockProductRepository, rates *MockServiceRateRepository, settings *MockSettingRepository) *Service {
	if products == nil {
		products = new(MockProductRepository)
	}
	if rates == nil {
		rates = new(MockServiceRateRepository)
	}
	if settings == nil {
		settings = new(MockSettingRepository)
	}
	return NewService(products, rates, settings)
}

func TestService_CreateProduct_ActiveByDefault(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := newCatalogService(mockProducts, nil, nil)

	p, err := service.CreateProduct(context.Background(), CreateProductRequest{
		Name:     "Crompton HS Plus",
		Category: "fans",
		Price:    2650,
		Stock:    8,
	})

	assert.NoError(t, err)
	assert.True(t, p.IsActive)
	assert.Equal(t, domain.CategoryFans, p.Category)
}

func TestService_CreateProduct_UnknownCategory(t *testing.T) {
	service := newCatalogService(nil, nil, nil)

	_, err := service.CreateProduct(context.Background(), CreateProductRequest{
		Name:     "Mystery Item",
		Category: "gadgets",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_ListProducts_AllCategoryPassesThrough(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("List", mock.Anything, domain.ProductFilter{Category: "all", ActiveOnly: true}).
		Return([]domain.Product{}, nil)

	service := newCatalogService(mockProducts, nil, nil)

	_, err := service.ListProducts(context.Background(), domain.ProductFilter{Category: "all", ActiveOnly: true})
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestService_ListLowStock_DefaultThreshold(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockProducts.On("ListLowStock", mock.Anything, DefaultLowStockThreshold).
		Return([]domain.Product{}, nil)

	service := newCatalogService(mockProducts, nil, nil)

	_, err := service.ListLowStock(context.Background(), 0)
	assert.NoError(t, err)
	mockProducts.AssertExpectations(t)
}

func TestService_Settings_FlattensToMap(t *testing.T) {
	mockSettings := new(MockSettingRepository)
	mockSettings.On("List", mock.Anything).Return([]domain.Setting{
		{Key: "shop_name", Value: "Sri Raam Electricals"},
		{Key: "shop_phone", Value: "+91 98765 43210"},
	}, nil)

	service := newCatalogService(nil, nil, mockSettings)

	settings, err := service.Settings(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Sri Raam Electricals", settings["shop_name"])
	assert.Len(t, settings, 2)
}

func TestService_SetSetting_EmptyKey(t *testing.T) {
	service := newCatalogService(nil, nil, nil)

	assert.ErrorIs(t, service.SetSetting(context.Background(), "", "x"), ErrValidation)
}
