// Package ai contiene el adaptador del asesor de IA sobre la API REST de
// Anthropic (Claude). El adaptador solo traduce; los valores de respaldo ante
// fallo los decide el caso de uso que lo consume.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/application/ports"
)

// Verificar en tiempo de compilación que AnthropicService implementa AdvisorService.
var _ ports.AdvisorService = (*AnthropicService)(nil)

const (
	anthropicMessagesURL = "https://api.anthropic.com/v1/messages"
	anthropicVersion     = "2023-06-01"

	suggestSystemPrompt = `You are the classification assistant of an inventory system for a mosque / community center.
The user sends the name of a new inventory item. Return ONLY a valid JSON object (no markdown, no ` + "```json" + ` code fences) with this exact structure:
{
  "category": "<one of: Sonorisation, Quran Book, Other>",
  "subsection": "<a specific concise type, e.g. Microphones, Cables, Speakers, Mushaf, Education>",
  "description": "<a short, professional description>",
  "suggestedMinStock": <integer>
}

Rules:
- "Sonorisation" covers sound equipment; "Quran Book" covers religious texts; anything else is "Other".
- Do not include any text outside the JSON object.`

	chatSystemPrompt = `You are the Inventory Assistant for "Noor Inventory".
Answer strictly based on the inventory data provided in the user message.
If asked about specific subsections (e.g. "How many mics?"), filter by that subsection context.`
)

// AnthropicService adaptador que implementa AdvisorService usando la API REST
// de Anthropic. Usa net/http de la librería estándar; no requiere el SDK oficial.
type AnthropicService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewAnthropicService construye el adaptador.
// model suele ser "claude-3-5-haiku-20241022".
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewAnthropicService(apiKey, model string) *AnthropicService {
	return &AnthropicService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			// Timeout de red de 25 s; el use case impone además un context.WithTimeout de 10 s.
			Timeout: 25 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Anthropic Messages API ─────────────────

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// jsonBlockRe extrae el primer objeto JSON del texto aunque el modelo lo
// envuelva en markdown. Captura desde el primer '{' hasta el último '}'.
var jsonBlockRe = regexp.MustCompile(`(?s)\{.*\}`)

// ── Implementación del puerto ─────────────────────────────────────────────────

// SuggestItemDetails envía el nombre del artículo al modelo y devuelve la
// clasificación sugerida (categoría, subsección, descripción y stock mínimo).
func (s *AnthropicService) SuggestItemDetails(ctx context.Context, itemName string) (*dto.ItemSuggestionDTO, error) {
	rawText, err := s.complete(ctx, suggestSystemPrompt, fmt.Sprintf("Inventory item name: %q", itemName))
	if err != nil {
		return nil, err
	}

	// Parseo seguro: extraer solo el bloque JSON aunque el modelo añada texto.
	cleanJSON := extractJSON(rawText)
	if cleanJSON == "" {
		return nil, fmt.Errorf("AI: no se encontró JSON válido en la respuesta del modelo (respuesta: %s)", rawText)
	}

	var suggestion struct {
		Category          string `json:"category"`
		Subsection        string `json:"subsection"`
		Description       string `json:"description"`
		SuggestedMinStock int    `json:"suggestedMinStock"`
	}
	if err := json.Unmarshal([]byte(cleanJSON), &suggestion); err != nil {
		return nil, fmt.Errorf("AI: parsear JSON de sugerencia: %w (JSON extraído: %s)", err, cleanJSON)
	}

	return &dto.ItemSuggestionDTO{
		Category:          suggestion.Category,
		Subsection:        suggestion.Subsection,
		Description:       suggestion.Description,
		SuggestedMinStock: suggestion.SuggestedMinStock,
	}, nil
}

// AnswerInventoryQuery responde una pregunta en lenguaje natural usando la
// instantánea de inventario como único contexto.
func (s *AnthropicService) AnswerInventoryQuery(ctx context.Context, query string, snapshot []dto.InventorySnapshotEntry) (string, error) {
	inventoryContext, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("AI: serializar instantánea: %w", err)
	}

	userContent := fmt.Sprintf("User Query: %q\n\nCurrent Inventory Data:\n%s", query, inventoryContext)
	answer, err := s.complete(ctx, chatSystemPrompt, userContent)
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("AI: el modelo devolvió una respuesta vacía")
	}
	return answer, nil
}

// complete realiza una llamada a la Messages API y devuelve el texto del
// primer bloque de contenido.
func (s *AnthropicService) complete(ctx context.Context, system, userContent string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: ANTHROPIC_API_KEY no configurado")
	}

	payload := anthropicRequest{
		Model:     s.model,
		MaxTokens: 1024,
		System:    system,
		Messages: []anthropicMessage{
			{Role: "user", Content: userContent},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, anthropicMessagesURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)
	req.Header.Set("content-type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	// Manejar errores HTTP de la API de Anthropic
	if resp.StatusCode != http.StatusOK {
		var errResp anthropicResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Anthropic error (%s): %s", errResp.Error.Type, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Anthropic HTTP %d: %s", resp.StatusCode, string(rawBody))
	}

	var anthResp anthropicResponse
	if err := json.Unmarshal(rawBody, &anthResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Anthropic: %w", err)
	}
	if len(anthResp.Content) == 0 {
		return "", fmt.Errorf("AI: el modelo devolvió respuesta vacía")
	}
	return anthResp.Content[0].Text, nil
}

// extractJSON extrae el primer objeto JSON bien formado de un texto libre.
// Estrategia en dos pasos:
//  1. Eliminar bloques de código markdown (```json … ``` o ``` … ```).
//  2. Usar regex para capturar el primer bloque { … }.
func extractJSON(text string) string {
	text = strings.TrimSpace(text)
	if idx := strings.Index(text, "```"); idx != -1 {
		// Quitar la línea de apertura (```json o ```)
		after := text[idx+3:]
		if nl := strings.Index(after, "\n"); nl != -1 {
			after = after[nl+1:]
		}
		// Quitar el cierre ```
		if close := strings.LastIndex(after, "```"); close != -1 {
			after = after[:close]
		}
		text = strings.TrimSpace(after)
	}

	// Si el texto resultante ya empieza con '{', usarlo directamente
	if strings.HasPrefix(text, "{") {
		return text
	}

	// Fallback: regex para extraer el primer {...}
	match := jsonBlockRe.FindString(text)
	return strings.TrimSpace(match)
}
