package ports

import (
	"context"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
)

// AdvisorService define el puerto de salida hacia el servicio de IA.
// Cualquier adaptador (Anthropic, Gemini, mock) debe implementar esta interfaz.
// El adaptador devuelve éxito o error etiquetado; la elección del valor de
// respaldo es del caso de uso que lo consume, nunca del adaptador.
type AdvisorService interface {
	// SuggestItemDetails analiza el nombre de un artículo nuevo y sugiere
	// categoría, subsección, descripción y stock mínimo.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	SuggestItemDetails(ctx context.Context, itemName string) (*dto.ItemSuggestionDTO, error)

	// AnswerInventoryQuery responde una pregunta en lenguaje natural usando
	// exclusivamente la instantánea de inventario proporcionada.
	AnswerInventoryQuery(ctx context.Context, query string, snapshot []dto.InventorySnapshotEntry) (string, error)
}
