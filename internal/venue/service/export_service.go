package service

import (
	"context"
	"fmt"

	"github.com/Joseamica/avoqado-web-dashboard-sub001/internal/venue/repository"
	"github.com/xuri/excelize/v2"
)

// ExportService renders purchase orders and inventory as xlsx files.
type ExportService struct {
	poRepo        *repository.PORepository
	inventoryRepo *repository.InventoryRepository
}

func NewExportService(poRepo *repository.PORepository, inventoryRepo *repository.InventoryRepository) *ExportService {
	return &ExportService{
		poRepo:        poRepo,
		inventoryRepo: inventoryRepo,
	}
}

var poExportHeaders = []string{
	"#", "Artículo", "Unidad", "Cantidad pedida", "Cantidad recibida",
	"Estado", "Precio unitario", "Total",
}

// ExportPO renders one purchase order with its line items.
func (s *ExportService) ExportPO(ctx context.Context, venueID, poID string) (*excelize.File, string, error) {
	po, err := s.poRepo.FindByID(ctx, venueID, poID)
	if err != nil {
		return nil, "", fmt.Errorf("purchase order not found: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Orden"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	supplierName := ""
	if po.Supplier != nil {
		supplierName = po.Supplier.Name
	}
	f.SetCellValue(sheet, "A1", "Orden de compra")
	f.SetCellValue(sheet, "B1", po.POCode)
	f.SetCellValue(sheet, "A2", "Proveedor")
	f.SetCellValue(sheet, "B2", supplierName)
	f.SetCellValue(sheet, "A3", "Estado")
	f.SetCellValue(sheet, "B3", po.Status)

	headerRow := 5
	for i, h := range poExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := fmt.Sprintf("%s%d", col, headerRow)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, item := range po.Items {
		row := headerRow + 1 + rowIdx
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.SortOrder)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.QuantityOrdered.String())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), item.QuantityReceived.String())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), item.ReceiveStatus)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), item.UnitPrice.String())
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), item.Total.String())
	}

	totalsRow := headerRow + len(po.Items) + 2
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalsRow), "Subtotal")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow), po.Subtotal.String())
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalsRow+1), "IVA")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow+1), po.TaxAmount.String())
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalsRow+2), "Comisión")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow+2), po.Commission.String())
	f.SetCellValue(sheet, fmt.Sprintf("G%d", totalsRow+3), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("H%d", totalsRow+3), po.Total.String())

	fileName := fmt.Sprintf("%s.xlsx", po.POCode)
	return f, fileName, nil
}

var inventoryExportHeaders = []string{
	"SKU", "Nombre", "Unidad", "Existencia", "Mínimo", "Último costo", "Estado",
}

// ExportInventory renders the full raw material list of a venue.
func (s *ExportService) ExportInventory(ctx context.Context, venueID string) (*excelize.File, string, error) {
	materials, _, err := s.inventoryRepo.FindAll(ctx, venueID, 1, 10000, nil)
	if err != nil {
		return nil, "", fmt.Errorf("list materials: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Inventario"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range inventoryExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, m := range materials {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.SKU)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), m.Unit)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), m.Stock.String())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), m.MinStock.String())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), m.LastUnitCost.String())
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), m.Status)
	}

	fileName := fmt.Sprintf("inventario-%s.xlsx", venueID)
	return f, fileName, nil
}
