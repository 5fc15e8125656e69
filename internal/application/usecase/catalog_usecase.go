package usecase

import (
	"github.com/automly/automotora-api/internal/application/dto"
	"github.com/automly/automotora-api/internal/domain/repository"
)

// CatalogUseCase consultas del catálogo de marcas y modelos (global, no por tenant).
type CatalogUseCase struct {
	catalogRepo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalogRepo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalogRepo: catalogRepo}
}

// Brands lista todas las marcas del catálogo.
func (uc *CatalogUseCase) Brands() ([]dto.CatalogBrandResponse, error) {
	brands, err := uc.catalogRepo.ListBrands()
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogBrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, dto.CatalogBrandResponse{Code: b.Code, Name: b.Name})
	}
	return out, nil
}

// ModelsByBrand lista los modelos de una marca.
func (uc *CatalogUseCase) ModelsByBrand(brandCode string) ([]dto.CatalogModelResponse, error) {
	models, err := uc.catalogRepo.ListModelsByBrand(brandCode)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogModelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, dto.CatalogModelResponse{BrandCode: m.BrandCode, Code: m.Code, Name: m.Name})
	}
	return out, nil
}
