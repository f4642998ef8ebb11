package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubkh/noorinv-api/internal/application/dto"
	"github.com/ayoubkh/noorinv-api/internal/application/usecase"
	"github.com/ayoubkh/noorinv-api/internal/domain"
	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/infrastructure/metrics"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeAdvisor asesor de IA controlable: o responde fijo, o falla siempre.
type fakeAdvisor struct {
	suggestion *dto.ItemSuggestionDTO
	answer     string
	err        error
}

func (f *fakeAdvisor) SuggestItemDetails(_ context.Context, _ string) (*dto.ItemSuggestionDTO, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.suggestion, nil
}

func (f *fakeAdvisor) AnswerInventoryQuery(_ context.Context, _ string, _ []dto.InventorySnapshotEntry) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

// emptyItems repositorio de solo lectura sin artículos.
type emptyItems struct{}

func (emptyItems) List() []entity.InventoryItem                  { return nil }
func (emptyItems) GetByID(string) (*entity.InventoryItem, error) { return nil, nil }
func (emptyItems) Create(*entity.InventoryItem) error            { return nil }
func (emptyItems) Update(*entity.InventoryItem) error            { return nil }
func (emptyItems) Delete(string) error                           { return nil }

func newAIUseCase(advisor *fakeAdvisor) *usecase.AIUseCase {
	return usecase.NewAIUseCase(advisor, emptyItems{}, zerolog.Nop())
}

func aiCallsCount(operation, result string) float64 {
	return testutil.ToFloat64(metrics.AICalls.WithLabelValues(operation, result))
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestSuggestDetails_ExitoIncrementaContadorOk(t *testing.T) {
	uc := newAIUseCase(&fakeAdvisor{suggestion: &dto.ItemSuggestionDTO{
		Category: "Sonorisation", Subsection: "Microphones",
		Description: "Micrófono dinámico", SuggestedMinStock: 2,
	}})
	before := aiCallsCount("suggest", "ok")

	out, err := uc.SuggestDetails(context.Background(), dto.SuggestDetailsRequest{Name: "Shure SM58"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Sonorisation", out.Category)
	assert.False(t, out.Fallback)
	assert.Equal(t, before+1, aiCallsCount("suggest", "ok"),
		"cada sugerencia exitosa debe contarse como ok")
}

func TestSuggestDetails_FalloDevuelveRespaldoYCuentaFallback(t *testing.T) {
	uc := newAIUseCase(&fakeAdvisor{err: errors.New("servicio caído")})
	before := aiCallsCount("suggest", "fallback")

	out, err := uc.SuggestDetails(context.Background(), dto.SuggestDetailsRequest{Name: "Cable XLR"})
	require.NoError(t, err, "el fallo externo nunca se propaga")
	require.NotNil(t, out)

	assert.True(t, out.Fallback)
	assert.Equal(t, "Other", out.Category)
	assert.Equal(t, "Manual entry required", out.Description)
	assert.Equal(t, 5, out.SuggestedMinStock)
	assert.Equal(t, before+1, aiCallsCount("suggest", "fallback"),
		"cada sugerencia de respaldo debe contarse como fallback")
}

func TestSuggestDetails_NombreVacioEsErrorDeValidacion(t *testing.T) {
	uc := newAIUseCase(&fakeAdvisor{})
	before := aiCallsCount("suggest", "ok") + aiCallsCount("suggest", "fallback")

	_, err := uc.SuggestDetails(context.Background(), dto.SuggestDetailsRequest{})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, before, aiCallsCount("suggest", "ok")+aiCallsCount("suggest", "fallback"),
		"la validación no cuenta como llamada al asesor")
}

func TestChat_ExitoIncrementaContadorOk(t *testing.T) {
	uc := newAIUseCase(&fakeAdvisor{answer: "Hay 4 micrófonos en la sala principal."})
	before := aiCallsCount("chat", "ok")

	out, err := uc.Chat(context.Background(), dto.ChatRequest{Query: "¿cuántos micrófonos hay?"})
	require.NoError(t, err)

	assert.Equal(t, "Hay 4 micrófonos en la sala principal.", out.Answer)
	assert.False(t, out.Fallback)
	assert.Equal(t, before+1, aiCallsCount("chat", "ok"))
}

func TestChat_FalloDevuelveDisculpaYCuentaFallback(t *testing.T) {
	uc := newAIUseCase(&fakeAdvisor{err: errors.New("timeout")})
	before := aiCallsCount("chat", "fallback")

	out, err := uc.Chat(context.Background(), dto.ChatRequest{Query: "¿stock bajo?"})
	require.NoError(t, err)

	assert.True(t, out.Fallback)
	assert.Equal(t, "Sorry, I'm having trouble connecting to the AI service right now.", out.Answer)
	assert.Equal(t, before+1, aiCallsCount("chat", "fallback"))
}
