package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
)

// ItemUseCase casos de uso CRUD y listado filtrado/ordenado del inventario.
// Las salidas de stock se manejan vía inventory.StockOutUseCase.
type ItemUseCase struct {
	repo repository.ItemRepository
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{repo: repo}
}

// Create da de alta un artículo: asigna UUID fresco y timestamp, normaliza la
// categoría y lo inserta al frente de la colección.
func (uc *ItemUseCase) Create(in dto.ItemRequest) (*entity.InventoryItem, error) {
	item, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = uuid.New().String()
	item.LastUpdated = time.Now()
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetByID obtiene un artículo. Devuelve (nil, nil) si no existe.
func (uc *ItemUseCase) GetByID(id string) (*entity.InventoryItem, error) {
	return uc.repo.GetByID(id)
}

// Update edita un artículo existente conservando ID y posición; refresca el
// timestamp. Devuelve domain.ErrNotFound si el ID no existe.
func (uc *ItemUseCase) Update(id string, in dto.ItemRequest) (*entity.InventoryItem, error) {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	item, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	item.ID = existing.ID
	item.LastUpdated = time.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete elimina un artículo. Los registros del libro de salidas que lo
// referencian se conservan intactos (instantáneas históricas).
func (uc *ItemUseCase) Delete(id string) error {
	existing, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// List devuelve la vista filtrada y ordenada de la tabla.
func (uc *ItemUseCase) List(q dto.ListItemsQuery) (*dto.ListItemsResponse, error) {
	opts, err := filterOptions(q)
	if err != nil {
		return nil, err
	}
	visible := inventory.Filter(uc.repo.List(), opts)

	key := inventory.SortKey(q.SortKey)
	switch key {
	case "":
		key = inventory.SortByName
	case inventory.SortByName, inventory.SortByQuantity, inventory.SortByLocation:
	default:
		return nil, domain.ErrInvalidInput
	}
	dir := inventory.SortDirection(q.SortDir)
	switch dir {
	case "":
		dir = inventory.SortAsc
	case inventory.SortAsc, inventory.SortDesc:
	default:
		return nil, domain.ErrInvalidInput
	}
	visible = inventory.Sort(visible, key, dir)

	return &dto.ListItemsResponse{Total: len(visible), Items: visible}, nil
}

// Subsections deriva el selector de subsecciones del alcance indicado.
func (uc *ItemUseCase) Subsections(category string) ([]string, error) {
	cat, err := parseCategory(category, true)
	if err != nil {
		return nil, err
	}
	return inventory.Subsections(uc.repo.List(), cat), nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func fromRequest(in dto.ItemRequest) (*entity.InventoryItem, error) {
	if in.Name == "" || in.Quantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	cat, err := parseCategory(in.Category, false)
	if err != nil {
		return nil, err
	}
	return &entity.InventoryItem{
		Name:          in.Name,
		Category:      cat,
		Subsection:    in.Subsection,
		Quantity:      in.Quantity,
		Location:      in.Location,
		Description:   in.Description,
		MinStockLevel: in.MinStockLevel,
	}, nil
}

func filterOptions(q dto.ListItemsQuery) (inventory.FilterOptions, error) {
	cat, err := parseCategory(q.Category, true)
	if err != nil {
		return inventory.FilterOptions{}, err
	}
	return inventory.FilterOptions{
		Category:   cat,
		Search:     q.Search,
		Subsection: q.Subsection,
	}, nil
}

// parseCategory valida el valor del enum; con allowEmpty el vacío significa
// "sin bloqueo de categoría".
func parseCategory(s string, allowEmpty bool) (entity.ItemCategory, error) {
	if s == "" {
		if allowEmpty {
			return "", nil
		}
		return "", domain.ErrInvalidInput
	}
	cat := entity.ItemCategory(s)
	if !cat.Valid() {
		return "", domain.ErrInvalidInput
	}
	return cat, nil
}
