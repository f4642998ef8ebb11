package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
	"github.com/ayoubkh/noorinv-api/internal/domain"
)

// AIHandler autocompletado del alta y chat sobre inventario (protegido).
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// SuggestDetails godoc
// @Summary      Sugerir clasificación de un artículo nuevo
// @Description  Si el servicio de IA falla se devuelven los valores seguros
// @Description  por defecto con fallback=true; nunca un error 5xx.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SuggestDetailsRequest  true  "Nombre del artículo"
// @Success      200   {object}  dto.ItemSuggestionDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/suggest-details [post]
func (h *AIHandler) SuggestDetails(c *fiber.Ctx) error {
	var in dto.SuggestDetailsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SuggestDetails(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Chat godoc
// @Summary      Preguntar al asistente de inventario
// @Description  Responde usando exclusivamente la instantánea actual del
// @Description  inventario. Fallo del servicio externo → mensaje fijo de
// @Description  disculpa con fallback=true.
// @Tags         ai
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChatRequest  true  "Pregunta en lenguaje natural"
// @Success      200   {object}  dto.ChatResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ai/chat [post]
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Chat(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
