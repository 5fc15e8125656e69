package repository

import "github.com/automly/automotora-api/internal/domain/entity"

// CatalogRepository acceso de solo lectura al catálogo de marcas y modelos
// (tabla paramétrica compartida entre tenants, poblada por cmd/seed).
type CatalogRepository interface {
	ListBrands() ([]*entity.CatalogBrand, error)
	ListModelsByBrand(brandCode string) ([]*entity.CatalogModel, error)
}
