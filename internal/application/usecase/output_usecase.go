package usecase

import (
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
)

// OutputUseCase consulta del libro de salidas (solo lectura: el libro es
// append-only y las altas pasan por inventory.StockOutUseCase).
type OutputUseCase struct {
	repo repository.OutputRepository
}

// NewOutputUseCase construye el caso de uso.
func NewOutputUseCase(repo repository.OutputRepository) *OutputUseCase {
	return &OutputUseCase{repo: repo}
}

// List devuelve el libro completo, los más recientes primero.
func (uc *OutputUseCase) List() []entity.OutputRecord {
	return uc.repo.List()
}
