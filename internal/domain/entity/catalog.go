package entity

// CatalogBrand marca de vehículo del catálogo paramétrico (compartido entre
// tenants; el campo brand de Vehicle sigue siendo texto libre).
type CatalogBrand struct {
	Code string
	Name string
}

// CatalogModel modelo de vehículo asociado a una marca del catálogo.
type CatalogModel struct {
	BrandCode string
	Code      string
	Name      string
}
