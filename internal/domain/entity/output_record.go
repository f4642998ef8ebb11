package entity

import "time"

// OutputRecord registra una salida de stock: una cantidad de un artículo que
// abandona el inventario hacia un destino (sala principal, evento, préstamo...).
//
// El registro es una instantánea histórica: ItemName, Category y Subsection se
// copian del artículo en el momento de la salida y no se actualizan nunca.
// ItemID es solo una referencia histórica; borrar el artículo de origen no
// invalida ni elimina los registros existentes. No hay operación de edición ni
// de borrado sobre el libro de salidas.
type OutputRecord struct {
	ID          string       `json:"id"`
	ItemID      string       `json:"itemId"`
	ItemName    string       `json:"itemName"`
	Category    ItemCategory `json:"category"`
	Subsection  string       `json:"subsection"`
	Quantity    int          `json:"quantity"` // siempre > 0: cantidad retirada
	Destination string       `json:"destination"`
	Date        time.Time    `json:"date"`
}
