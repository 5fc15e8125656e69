package postgres

import (
	"context"
	"fmt"

	"github.com/automly/automotora-api/internal/domain/entity"
	"github.com/automly/automotora-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo lectura del catálogo paramétrico de marcas y modelos
// (tablas pobladas por cmd/seed, compartidas entre tenants).
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador.
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListBrands marcas ordenadas por nombre.
func (r *CatalogRepo) ListBrands() ([]*entity.CatalogBrand, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT code, name FROM catalog_brands ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogBrand
	for rows.Next() {
		var b entity.CatalogBrand
		if err := rows.Scan(&b.Code, &b.Name); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

// ListModelsByBrand modelos de una marca, ordenados por nombre.
func (r *CatalogRepo) ListModelsByBrand(brandCode string) ([]*entity.CatalogModel, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT brand_code, code, name FROM catalog_models WHERE brand_code = $1 ORDER BY name`, brandCode)
	if err != nil {
		return nil, fmt.Errorf("list models: %w", err)
	}
	defer rows.Close()
	var list []*entity.CatalogModel
	for rows.Next() {
		var m entity.CatalogModel
		if err := rows.Scan(&m.BrandCode, &m.Code, &m.Name); err != nil {
			return nil, fmt.Errorf("scan model: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
