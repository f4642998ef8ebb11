package entity_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
)

// Los blobs exportados por la aplicación web original usan nombres camelCase.
// Estos tests fijan esa forma de cable: un cambio de tag que la rompa dejaría
// los campos en cero al importar datos existentes.

func TestInventoryItem_DecodificaBlobOriginal(t *testing.T) {
	blob := []byte(`{
		"id": "item-1",
		"name": "Shure SM58",
		"category": "Sonorisation",
		"subsection": "Microphones",
		"quantity": 4,
		"location": "Sala principal",
		"description": "Micrófono dinámico",
		"minStockLevel": 2,
		"lastUpdated": "2024-01-02T10:30:00Z"
	}`)

	var item entity.InventoryItem
	require.NoError(t, json.Unmarshal(blob, &item))

	assert.Equal(t, 2, item.MinStockLevel, "minStockLevel debe sobrevivir la importación")
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), item.LastUpdated,
		"lastUpdated debe sobrevivir la importación")
	assert.Equal(t, "Shure SM58", item.Name)
	assert.Equal(t, entity.CategorySonorisation, item.Category)
	assert.Equal(t, 4, item.Quantity)
}

func TestOutputRecord_DecodificaBlobOriginal(t *testing.T) {
	blob := []byte(`{
		"id": "out-1",
		"itemId": "item-1",
		"itemName": "Shure SM58",
		"category": "Sonorisation",
		"subsection": "Microphones",
		"quantity": 1,
		"destination": "Evento juvenil",
		"date": "2024-02-15T18:00:00Z"
	}`)

	var rec entity.OutputRecord
	require.NoError(t, json.Unmarshal(blob, &rec))

	assert.Equal(t, "item-1", rec.ItemID, "itemId debe sobrevivir la importación")
	assert.Equal(t, "Shure SM58", rec.ItemName, "itemName debe sobrevivir la importación")
	assert.Equal(t, "Evento juvenil", rec.Destination)
	assert.Equal(t, 1, rec.Quantity)
}

func TestInventoryItem_SerializaCamelCase(t *testing.T) {
	item := entity.InventoryItem{ID: "x", MinStockLevel: 3, LastUpdated: time.Now().UTC()}

	out, err := json.Marshal(item)
	require.NoError(t, err)

	assert.Contains(t, string(out), `"minStockLevel":3`)
	assert.Contains(t, string(out), `"lastUpdated":`)
	assert.NotContains(t, string(out), "min_stock_level")
}
