// Package storage implementa el colaborador de persistencia: un almacén
// clave-valor de blobs JSON serializados bajo claves fijas, una por cada
// porción del estado de la aplicación.
package storage

import "context"

// Claves fijas de las porciones de estado. Coinciden con las claves de
// almacenamiento que usaba la aplicación web original, para poder importar
// sus exportaciones tal cual.
const (
	KeyInventory = "noor-inventory-data"
	KeyOutputs   = "noor-outputs-data"
)

// KV puerto del colaborador de persistencia clave-valor.
// Los blobs son opacos para el almacén; la (de)serialización es del caller.
type KV interface {
	// Get devuelve (nil, nil) si la clave no existe todavía.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set guarda el blob bajo la clave (último escritor gana).
	Set(ctx context.Context, key string, blob []byte) error
	// Close libera la conexión subyacente.
	Close() error
}
