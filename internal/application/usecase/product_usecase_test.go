package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olayos/pos-api/internal/application/dto"
	"github.com/olayos/pos-api/internal/application/feed"
	"github.com/olayos/pos-api/internal/application/usecase"
	"github.com/olayos/pos-api/internal/domain"
	"github.com/olayos/pos-api/internal/domain/entity"
)

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]*entity.Product)}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(id string, qty int) error {
	p, ok := r.products[id]
	if !ok || p.Stock < qty {
		return domain.ErrStockInsuficiente
	}
	p.Stock -= qty
	return nil
}

func fixture(t *testing.T) (*usecase.ProductUseCase, *fakeProductRepo, *feed.CatalogFeed) {
	t.Helper()
	repo := newFakeProductRepo()
	catalogFeed := feed.NewCatalogFeed(repo)
	require.NoError(t, catalogFeed.Refresh(context.Background()))
	return usecase.NewProductUseCase(repo, catalogFeed), repo, catalogFeed
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:     "Plancha zinc 2m",
		Price:    decimal.NewFromInt(12000),
		Stock:    10,
		Category: entity.CategoryMetales,
		MinStock: 3,
	}
}

func TestCreate_AsignaIDYRefrescaElCatalogo(t *testing.T) {
	uc, _, catalogFeed := fixture(t)

	out, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.NotEmpty(t, out.ID, "el ID lo asigna el sistema")
	assert.False(t, out.LowStock)

	// El feed ve el producto de inmediato.
	_, ok := catalogFeed.Find(out.ID)
	assert.True(t, ok)
}

func TestCreate_ValidaEntrada(t *testing.T) {
	uc, _, _ := fixture(t)

	cases := map[string]func(*dto.CreateProductRequest){
		"nombre vacío":       func(in *dto.CreateProductRequest) { in.Name = "" },
		"categoría inválida": func(in *dto.CreateProductRequest) { in.Category = "Bebidas" },
		"precio negativo":    func(in *dto.CreateProductRequest) { in.Price = decimal.NewFromInt(-1) },
		"stock negativo":     func(in *dto.CreateProductRequest) { in.Stock = -1 },
		"minStock negativo":  func(in *dto.CreateProductRequest) { in.MinStock = -1 },
	}
	for name, mutate := range cases {
		in := validCreate()
		mutate(&in)
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestGetByID_NoExisteDevuelveNilNil(t *testing.T) {
	uc, _, _ := fixture(t)
	out, err := uc.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_ParcialSoloCambiaLosCamposPresentes(t *testing.T) {
	uc, _, _ := fixture(t)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	newPrice := decimal.NewFromInt(13500)
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Price: &newPrice})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.True(t, out.Price.Equal(newPrice))
	assert.Equal(t, created.Name, out.Name, "los campos ausentes no deben cambiar")
	assert.Equal(t, created.Stock, out.Stock)
}

func TestUpdate_ProductoInexistente(t *testing.T) {
	uc, _, _ := fixture(t)
	stock := 5
	out, err := uc.Update(context.Background(), "no-existe", dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestUpdate_MarcaLowStockAlBajarDelUmbral(t *testing.T) {
	uc, _, _ := fixture(t)
	created, err := uc.Create(context.Background(), validCreate()) // stock 10, minStock 3
	require.NoError(t, err)

	stock := 3
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Stock: &stock})
	require.NoError(t, err)
	assert.True(t, out.LowStock, "stock == minStock cuenta como stock bajo")
}

func TestDelete_SacaElProductoDelCatalogo(t *testing.T) {
	uc, _, catalogFeed := fixture(t)
	created, err := uc.Create(context.Background(), validCreate())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, ok := catalogFeed.Find(created.ID)
	assert.False(t, ok)

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
