package repository

import "github.com/automly/automotora-api/internal/domain/entity"

// DealerListFilter filtros del listado administrativo de automotoras.
type DealerListFilter struct {
	Query    string // busca en name, rut y email
	IsActive *bool  // nil = todas
}

// DealerRepository define el puerto de persistencia para Dealer (raíz de tenant).
// Es la única entidad sin scoping por dealer: la administran operadores de la
// plataforma, no usuarios de una automotora.
type DealerRepository interface {
	Create(dealer *entity.Dealer) error
	GetByID(id string) (*entity.Dealer, error)
	GetByRUT(rut string) (*entity.Dealer, error)
	Update(dealer *entity.Dealer) error
	// Deactivate baja lógica (is_active=false); nunca borra filas.
	Deactivate(id string) error
	List(filter DealerListFilter, limit, offset int) ([]*entity.Dealer, error)
	Count() (int, error)
}
