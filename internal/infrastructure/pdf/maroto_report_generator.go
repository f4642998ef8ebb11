// Package pdf implementa la generación del informe imprimible del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Noor Inventory  │  Fecha del informe               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Artículos / Unidades / Alertas de stock bajo      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ALERTAS: tabla de artículos en o bajo el mínimo            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  INVENTARIO: Nombre | Cat | Subsec | Cant | Mín | Ubicación │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ayoubkh/noorinv-api/internal/domain/entity"
	"github.com/ayoubkh/noorinv-api/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 120, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 60, Blue: 40}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoReportGenerator genera el informe PDF del inventario usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
// items llega ya filtrado y ordenado por el caller; el informe respeta ese orden.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	items []entity.InventoryItem,
	now time.Time,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Noor Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(now))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(items))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	lowStock := inventory.LowStock(items)
	if len(lowStock) > 0 {
		m.AddRows(sectionTitleRow("STOCK ALERTS", colorAlert))
		m.AddRows(alertHeaderRow())
		for _, r := range alertRows(lowStock) {
			m.AddRows(r)
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	m.AddRows(sectionTitleRow("INVENTORY", colorPrimary))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(items) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del sistema (izq) y fecha del informe (der).
func headerRow(now time.Time) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Noor Inventory", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Sound equipment & religious texts", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVENTORY REPORT", props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(now.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow: tres contadores del estado global.
func summaryRow(items []entity.InventoryItem) core.Row {
	totalUnits := 0
	for _, item := range items {
		totalUnits += item.Quantity
	}
	alerts := len(inventory.LowStock(items))

	counter := func(label, value string, color *props.Color) core.Col {
		return col.New(4).Add(
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center,
				Color: color, Top: 1,
			}),
			text.New(label, props.Text{
				Size: 8, Align: align.Center, Top: 9, Color: colorGray,
			}),
		)
	}

	alertColor := colorPrimary
	if alerts > 0 {
		alertColor = colorAlert
	}
	return row.New(16).Add(
		counter("Items", strconv.Itoa(len(items)), colorPrimary),
		counter("Units in stock", strconv.Itoa(totalUnits), colorPrimary),
		counter("Low stock alerts", strconv.Itoa(alerts), alertColor),
	)
}

func sectionTitleRow(title string, color *props.Color) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: color, Top: 2,
		}),
	))
}

// alertHeaderRow / alertRows: tabla compacta de artículos en alerta.
func alertHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Item", 5, align.Left),
		h("Subsection", 3, align.Left),
		h("Qty", 2, align.Center),
		h("Min", 2, align.Center),
	)
}

func alertRows(items []entity.InventoryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(item.Name, props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(item.SubsectionOrDefault(), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(strconv.Itoa(item.Quantity), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: colorAlert,
			})),
			col.New(2).Add(text.New(strconv.Itoa(item.MinStockLevel), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
		))
	}
	return result
}

// tableHeaderRow / tableRows: listado completo del inventario.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(6).Add(
		h("Name", 4, align.Left),
		h("Category", 2, align.Left),
		h("Subsection", 2, align.Left),
		h("Qty", 1, align.Center),
		h("Min", 1, align.Center),
		h("Location", 2, align.Left),
	)
}

func tableRows(items []entity.InventoryItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, item := range items {
		qtyColor := &props.Color{}
		if item.IsLowStock() {
			qtyColor = colorAlert
		}
		result = append(result, row.New(6).Add(
			col.New(4).Add(text.New(item.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(string(item.Category), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(2).Add(text.New(item.SubsectionOrDefault(), props.Text{Size: 8, Top: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(item.Quantity), props.Text{
				Size: 8, Align: align.Center, Top: 1, Color: qtyColor,
			})),
			col.New(1).Add(text.New(strconv.Itoa(item.MinStockLevel), props.Text{
				Size: 8, Align: align.Center, Top: 1,
			})),
			col.New(2).Add(text.New(item.Location, props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}
