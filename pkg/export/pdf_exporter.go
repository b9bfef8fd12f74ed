package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// Shade is a background fill for a grid cell.
type Shade struct {
	R, G, B int
}

// GridCell is one date box of a calendar grid. A nil cell renders blank.
type GridCell struct {
	Label  string
	Detail string
	Fill   *Shade
}

// Legend pairs a fill with its meaning.
type Legend struct {
	Label string
	Fill  Shade
}

// Grid is a fixed-column calendar page.
type Grid struct {
	Title   string
	Columns []string
	Rows    [][]*GridCell
	Legend  []Legend
}

// PDFExporter renders datasets and calendar grids into PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// ContentType is the MIME type of Render output.
func (e *PDFExporter) ContentType() string {
	return "application/pdf"
}

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()
	writeTitle(pdf, title)

	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			pdf.CellFormat(colWidth, 7, row[header], "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf)
}

// RenderGrid draws a landscape calendar page with one box per cell.
func (e *PDFExporter) RenderGrid(grid Grid) ([]byte, error) {
	if len(grid.Columns) == 0 {
		return nil, fmt.Errorf("grid requires at least one column")
	}
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()
	writeTitle(pdf, grid.Title)

	const pageWidth, cellHeight = 277.0, 24.0
	colWidth := pageWidth / float64(len(grid.Columns))

	pdf.SetFont("Arial", "B", 10)
	for _, col := range grid.Columns {
		pdf.CellFormat(colWidth, 8, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	for _, row := range grid.Rows {
		x, y := pdf.GetXY()
		for i := range grid.Columns {
			var cell *GridCell
			if i < len(row) {
				cell = row[i]
			}
			drawCell(pdf, x+float64(i)*colWidth, y, colWidth, cellHeight, cell)
		}
		pdf.SetXY(x, y+cellHeight)
	}

	if len(grid.Legend) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "", 8)
		for _, item := range grid.Legend {
			pdf.SetFillColor(item.Fill.R, item.Fill.G, item.Fill.B)
			pdf.CellFormat(5, 5, "", "1", 0, "", true, 0, "")
			pdf.CellFormat(30, 5, " "+item.Label, "", 0, "L", false, 0, "")
		}
	}

	return output(pdf)
}

func drawCell(pdf *gofpdf.Fpdf, x, y, w, h float64, cell *GridCell) {
	style := "D"
	if cell != nil && cell.Fill != nil {
		pdf.SetFillColor(cell.Fill.R, cell.Fill.G, cell.Fill.B)
		style = "FD"
	}
	pdf.Rect(x, y, w, h, style)
	if cell == nil {
		return
	}
	pdf.SetXY(x+1.5, y+1.5)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(w-3, 5, cell.Label, "", 2, "L", false, 0, "")
	if cell.Detail != "" {
		pdf.SetFont("Arial", "", 7)
		pdf.MultiCell(w-3, 3.5, cell.Detail, "", "L", false)
	}
}

func writeTitle(pdf *gofpdf.Fpdf, title string) {
	if title == "" {
		return
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
