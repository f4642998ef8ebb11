package dto

// SuggestDetailsRequest entrada del autocompletado asistido por IA en el alta.
type SuggestDetailsRequest struct {
	Name string `json:"name"`
}

// ItemSuggestionDTO clasificación sugerida para un artículo nuevo.
// Fallback indica que el servicio de IA falló y los valores son los seguros
// por defecto; el usuario siempre puede aceptar o sobreescribir la sugerencia.
type ItemSuggestionDTO struct {
	Category          string `json:"category"` // "Sonorisation" | "Quran Book" | "Other"
	Subsection        string `json:"subsection"`
	Description       string `json:"description"`
	SuggestedMinStock int    `json:"suggestedMinStock"`
	Fallback          bool   `json:"fallback,omitempty"`
}

// ChatRequest pregunta en lenguaje natural sobre el estado del inventario.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse respuesta del asistente. Fallback indica el mensaje fijo de
// disculpa por fallo del servicio externo.
type ChatResponse struct {
	Answer   string `json:"answer"`
	Fallback bool   `json:"fallback,omitempty"`
}

// InventorySnapshotEntry vista compacta de un artículo que se envía al modelo
// como contexto de la conversación.
type InventorySnapshotEntry struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	Subsection string `json:"subsection"`
	Qty        int    `json:"qty"`
	Location   string `json:"location"`
	LowStock   bool   `json:"lowStock"`
}
