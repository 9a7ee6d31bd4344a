package product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo 内存仓储,按SKU索引
type fakeRepo struct {
	bySKU  map[string]*Product
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bySKU: map[string]*Product{}, nextID: 1}
}

func (r *fakeRepo) Create(_ context.Context, p *Product) error {
	if _, ok := r.bySKU[p.SKU]; ok {
		return ErrSKUDuplicate
	}
	p.ID = r.nextID
	r.nextID++
	r.bySKU[p.SKU] = p
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, id uint) (*Product, error) {
	for _, p := range r.bySKU {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (r *fakeRepo) FindBySKU(_ context.Context, sku string) (*Product, error) {
	p, ok := r.bySKU[sku]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *fakeRepo) Update(_ context.Context, p *Product) error {
	r.bySKU[p.SKU] = p
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	for sku, p := range r.bySKU {
		if p.ID == id {
			delete(r.bySKU, sku)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *fakeRepo) List(_ context.Context, params ListParams) ([]*Product, int64, error) {
	items := make([]*Product, 0, len(r.bySKU))
	for _, p := range r.bySKU {
		items = append(items, p)
	}
	return items, int64(len(items)), nil
}

func TestService_CreateProduct(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.CreateProduct(context.Background(), "KET-POUR-01", "手冲咖啡壶", "厨具", 8900, "细口壶")
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "KET-POUR-01", p.SKU)
	assert.Equal(t, int64(8900), p.Price)
	assert.True(t, p.Active, "新建商品默认上架")
}

func TestService_CreateProductValidation(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	tests := []struct {
		name  string
		sku   string
		title string
		price int64
	}{
		{"SKU太短", "AB", "商品", 100},
		{"SKU含小写", "abc-123", "商品", 100},
		{"SKU含空格", "ABC 123", "商品", 100},
		{"价格为0", "ABC-123", "商品", 0},
		{"价格为负", "ABC-123", "商品", -100},
		{"价格超上限", "ABC-123", "商品", 100000000},
		{"名称为空", "ABC-123", "", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(ctx, tt.sku, tt.title, "", tt.price, "")
			assert.Error(t, err)
		})
	}
}

func TestService_CreateProductDuplicateSKU(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "KET-POUR-01", "商品A", "", 100, "")
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, "KET-POUR-01", "商品B", "", 200, "")
	assert.ErrorIs(t, err, ErrSKUDuplicate)
}

func TestService_UpdateProductPrice(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "KET-POUR-01", "商品", "", 8900, "")
	require.NoError(t, err)

	updated, err := svc.UpdateProductPrice(ctx, p.ID, 9900)
	require.NoError(t, err)
	assert.Equal(t, int64(9900), updated.Price)

	_, err = svc.UpdateProductPrice(ctx, p.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_DeleteProduct(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, "KET-POUR-01", "商品", "", 8900, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, p.ID))

	_, err = svc.GetProductByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = svc.DeleteProduct(ctx, 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestService_ListProductsClampsPaging(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.CreateProduct(ctx, "ABC-001", "商品1", "", 100, "")
	require.NoError(t, err)

	items, total, err := svc.ListProducts(ctx, ListParams{Page: -1, PageSize: 9999})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}
