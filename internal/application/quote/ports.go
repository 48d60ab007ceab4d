package quote

import "context"

// PDFGenerator genera el PDF de la simulación (maroto local o servicio remoto).
type PDFGenerator interface {
	GenerateQuotePDF(ctx context.Context, doc *Document) ([]byte, error)
}

// SheetExporter genera la planilla de la simulación.
type SheetExporter interface {
	ExportQuoteSheet(ctx context.Context, doc *Document) ([]byte, error)
}
