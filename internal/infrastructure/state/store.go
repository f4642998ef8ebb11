// Package state implementa el estado explícito de la aplicación: las dos
// colecciones ordenadas en memoria (inventario y libro de salidas) con
// escritura a través del colaborador de persistencia tras cada mutación.
//
// El objeto Store lo posee el proceso principal y se inyecta como capacidad
// (puertos de repositorio y TxRunner) a cada componente; no hay singletons
// ambientales.
package state

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/metrics"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/storage"
)

// persistTimeout límite de cada escritura al almacén clave-valor.
const persistTimeout = 5 * time.Second

// Store estado de la aplicación: colecciones en memoria + persistencia.
//
// Un único RWMutex protege ambas colecciones; toda mutación lo toma en
// escritura y guarda la colección completa antes de soltarlo, de modo que
// cualquier lector observa cada mutación ya durable o aún no iniciada.
type Store struct {
	mu      sync.RWMutex
	items   []entity.InventoryItem
	outputs []entity.OutputRecord
	kv      storage.KV
	log     zerolog.Logger
}

// NewStore carga el estado desde el almacén clave-valor.
//
// Sin blob de inventario arranca con los datos semilla; un blob corrupto se
// registra en el log y se conserva el estado en memoria previo (los datos
// semilla), nunca se aborta el arranque.
func NewStore(ctx context.Context, kv storage.KV, log zerolog.Logger) *Store {
	s := &Store{
		items: seedItems(),
		kv:    kv,
		log:   log.With().Str("component", "state").Logger(),
	}

	if blob, err := kv.Get(ctx, storage.KeyInventory); err != nil {
		s.log.Error().Err(err).Msg("leer inventario persistido")
	} else if blob != nil {
		var items []entity.InventoryItem
		if err := json.Unmarshal(blob, &items); err != nil {
			s.log.Error().Err(err).Msg("inventario persistido corrupto, se conserva el estado en memoria")
		} else {
			s.items = items
		}
	}

	if blob, err := kv.Get(ctx, storage.KeyOutputs); err != nil {
		s.log.Error().Err(err).Msg("leer libro de salidas persistido")
	} else if blob != nil {
		var outputs []entity.OutputRecord
		if err := json.Unmarshal(blob, &outputs); err != nil {
			s.log.Error().Err(err).Msg("libro de salidas corrupto, se conserva el estado en memoria")
		} else {
			s.outputs = outputs
		}
	}

	return s
}

// Items devuelve el puerto de repositorio del inventario.
func (s *Store) Items() repository.ItemRepository { return &itemStore{s} }

// Outputs devuelve el puerto del libro de salidas.
func (s *Store) Outputs() repository.OutputRepository { return &outputStore{s} }

// Run ejecuta fn bajo el bloqueo de escritura con repositorios atados a esa
// sección crítica (implementa inventory.TxRunner). Si fn devuelve error se
// restauran ambas colecciones al estado previo y no se persiste nada: las dos
// mutaciones de una salida de stock se observan juntas o ninguna.
func (s *Store) Run(_ context.Context, fn func(items repository.ItemRepository, outputs repository.OutputRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemsBackup := cloneItems(s.items)
	outputsBackup := cloneOutputs(s.outputs)

	if err := fn(&txItemStore{s}, &txOutputStore{s}); err != nil {
		s.items = itemsBackup
		s.outputs = outputsBackup
		return err
	}

	s.persistItemsLocked()
	s.persistOutputsLocked()
	return nil
}

// ── Mutaciones internas (con el lock ya tomado) ───────────────────────────────

func (s *Store) listItemsLocked() []entity.InventoryItem {
	return cloneItems(s.items)
}

func (s *Store) getItemLocked(id string) *entity.InventoryItem {
	for _, it := range s.items {
		if it.ID == id {
			copied := it
			return &copied
		}
	}
	return nil
}

func (s *Store) createItemLocked(item *entity.InventoryItem) {
	// Al frente: orden de visualización más reciente primero.
	s.items = append([]entity.InventoryItem{*item}, s.items...)
	metrics.Mutations.WithLabelValues("item_create").Inc()
}

func (s *Store) updateItemLocked(item *entity.InventoryItem) {
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = *item
			metrics.Mutations.WithLabelValues("item_update").Inc()
			return
		}
	}
	// ID inexistente: no-op, la colección queda intacta.
}

func (s *Store) deleteItemLocked(id string) {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			metrics.Mutations.WithLabelValues("item_delete").Inc()
			return
		}
	}
}

func (s *Store) listOutputsLocked() []entity.OutputRecord {
	return cloneOutputs(s.outputs)
}

func (s *Store) appendOutputLocked(record *entity.OutputRecord) {
	s.outputs = append([]entity.OutputRecord{*record}, s.outputs...)
	metrics.Mutations.WithLabelValues("output_append").Inc()
}

// persistItemsLocked serializa y guarda la colección completa. Un error de
// persistencia se registra y no se propaga: el estado en memoria manda y el
// siguiente guardado lo reintentará de forma natural.
func (s *Store) persistItemsLocked() {
	s.persistLocked(storage.KeyInventory, s.items)
}

func (s *Store) persistOutputsLocked() {
	s.persistLocked(storage.KeyOutputs, s.outputs)
}

func (s *Store) persistLocked(key string, v any) {
	blob, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("serializar estado")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()
	if err := s.kv.Set(ctx, key, blob); err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("persistir estado")
	}
}

func cloneItems(items []entity.InventoryItem) []entity.InventoryItem {
	out := make([]entity.InventoryItem, len(items))
	copy(out, items)
	return out
}

func cloneOutputs(outputs []entity.OutputRecord) []entity.OutputRecord {
	out := make([]entity.OutputRecord, len(outputs))
	copy(out, outputs)
	return out
}

// ── Adaptadores de puerto ─────────────────────────────────────────────────────

var (
	_ repository.ItemRepository   = (*itemStore)(nil)
	_ repository.OutputRepository = (*outputStore)(nil)
	_ repository.ItemRepository   = (*txItemStore)(nil)
	_ repository.OutputRepository = (*txOutputStore)(nil)
)

// itemStore vista del inventario que toma el lock y persiste en cada mutación.
type itemStore struct{ s *Store }

func (r *itemStore) List() []entity.InventoryItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listItemsLocked()
}

func (r *itemStore) GetByID(id string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.getItemLocked(id), nil
}

func (r *itemStore) Create(item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.createItemLocked(item)
	r.s.persistItemsLocked()
	return nil
}

func (r *itemStore) Update(item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.updateItemLocked(item)
	r.s.persistItemsLocked()
	return nil
}

func (r *itemStore) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.deleteItemLocked(id)
	r.s.persistItemsLocked()
	return nil
}

// outputStore vista del libro de salidas con lock y persistencia propios.
type outputStore struct{ s *Store }

func (r *outputStore) List() []entity.OutputRecord {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.listOutputsLocked()
}

func (r *outputStore) Append(record *entity.OutputRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.appendOutputLocked(record)
	r.s.persistOutputsLocked()
	return nil
}

// txItemStore / txOutputStore variantes usadas dentro de Run: el lock ya está
// tomado y la persistencia la hace Run al final, una vez por colección.
type txItemStore struct{ s *Store }

func (r *txItemStore) List() []entity.InventoryItem { return r.s.listItemsLocked() }
func (r *txItemStore) GetByID(id string) (*entity.InventoryItem, error) {
	return r.s.getItemLocked(id), nil
}
func (r *txItemStore) Create(item *entity.InventoryItem) error {
	r.s.createItemLocked(item)
	return nil
}
func (r *txItemStore) Update(item *entity.InventoryItem) error {
	r.s.updateItemLocked(item)
	return nil
}
func (r *txItemStore) Delete(id string) error {
	r.s.deleteItemLocked(id)
	return nil
}

type txOutputStore struct{ s *Store }

func (r *txOutputStore) List() []entity.OutputRecord { return r.s.listOutputsLocked() }
func (r *txOutputStore) Append(record *entity.OutputRecord) error {
	r.s.appendOutputLocked(record)
	return nil
}
