package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	casos := []struct {
		nombre  string
		entrada string
		want    string
	}{
		{
			"json limpio",
			`{"category":"Sonorisation"}`,
			`{"category":"Sonorisation"}`,
		},
		{
			"bloque markdown con etiqueta",
			"```json\n{\"category\":\"Other\"}\n```",
			`{"category":"Other"}`,
		},
		{
			"bloque markdown sin etiqueta",
			"```\n{\"subsection\":\"Cables\"}\n```",
			`{"subsection":"Cables"}`,
		},
		{
			"texto alrededor del objeto",
			"Here is the classification:\n{\"category\":\"Quran Book\"}\nHope it helps.",
			`{"category":"Quran Book"}`,
		},
		{
			"sin json",
			"no structured data here",
			"",
		},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			assert.Equal(t, tc.want, extractJSON(tc.entrada))
		})
	}
}
