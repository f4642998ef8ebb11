package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/application/ports"
	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/internal/domain/repository"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/metrics"
)

// aiCallTimeout límite por llamada al LLM: las latencias externas no deben
// dejar colgado el flujo que las inició.
const aiCallTimeout = 10 * time.Second

// chatApology mensaje fijo cuando el servicio de IA no responde.
const chatApology = "Sorry, I'm having trouble connecting to the AI service right now."

// AIUseCase orquesta el autocompletado del alta y el chat sobre inventario.
//
// El adaptador de IA devuelve éxito o error; este caso de uso decide el valor
// de respaldo: sugerencia segura por defecto en el alta, mensaje de disculpa
// en el chat. Ningún fallo del servicio externo se propaga al handler.
type AIUseCase struct {
	advisor ports.AdvisorService
	items   repository.ItemRepository
	log     zerolog.Logger
}

// NewAIUseCase construye el caso de uso.
func NewAIUseCase(advisor ports.AdvisorService, items repository.ItemRepository, log zerolog.Logger) *AIUseCase {
	return &AIUseCase{advisor: advisor, items: items, log: log}
}

// fallbackSuggestion valores seguros cuando la clasificación IA falla:
// el usuario completa los campos a mano.
func fallbackSuggestion() *dto.ItemSuggestionDTO {
	return &dto.ItemSuggestionDTO{
		Category:          "Other",
		Subsection:        "General",
		Description:       "Manual entry required",
		SuggestedMinStock: 5,
		Fallback:          true,
	}
}

// SuggestDetails pide al modelo la clasificación de un artículo nuevo.
// Nombre vacío es error de validación; cualquier fallo del servicio externo
// devuelve la sugerencia de respaldo, nunca un error.
func (uc *AIUseCase) SuggestDetails(ctx context.Context, req dto.SuggestDetailsRequest) (*dto.ItemSuggestionDTO, error) {
	if req.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	suggestion, err := uc.advisor.SuggestItemDetails(ctx, req.Name)
	if err != nil {
		uc.log.Warn().Err(err).Str("item_name", req.Name).Msg("clasificación IA falló, usando valores por defecto")
		metrics.AICalls.WithLabelValues("suggest", "fallback").Inc()
		return fallbackSuggestion(), nil
	}
	metrics.AICalls.WithLabelValues("suggest", "ok").Inc()
	return suggestion, nil
}

// Chat responde una pregunta sobre el inventario con la instantánea actual
// como único contexto. Fallo externo → mensaje fijo de disculpa.
func (uc *AIUseCase) Chat(ctx context.Context, req dto.ChatRequest) (*dto.ChatResponse, error) {
	if req.Query == "" {
		return nil, domain.ErrInvalidInput
	}

	ctx, cancel := context.WithTimeout(ctx, aiCallTimeout)
	defer cancel()

	answer, err := uc.advisor.AnswerInventoryQuery(ctx, req.Query, uc.snapshot())
	if err != nil {
		uc.log.Warn().Err(err).Msg("chat de inventario falló, devolviendo disculpa")
		metrics.AICalls.WithLabelValues("chat", "fallback").Inc()
		return &dto.ChatResponse{Answer: chatApology, Fallback: true}, nil
	}
	metrics.AICalls.WithLabelValues("chat", "ok").Inc()
	return &dto.ChatResponse{Answer: answer}, nil
}

// snapshot proyecta el inventario a la vista compacta que consume el modelo.
// El flag lowStock usa desigualdad estricta, como la vista de chat original
// (el dashboard, en cambio, cuenta la igualdad como alerta).
func (uc *AIUseCase) snapshot() []dto.InventorySnapshotEntry {
	items := uc.items.List()
	entries := make([]dto.InventorySnapshotEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, dto.InventorySnapshotEntry{
			Name:       it.Name,
			Category:   string(it.Category),
			Subsection: it.SubsectionOrDefault(),
			Qty:        it.Quantity,
			Location:   it.Location,
			LowStock:   it.Quantity < it.MinStockLevel,
		})
	}
	return entries
}
