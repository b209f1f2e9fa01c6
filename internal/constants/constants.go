package constants

const (
	// QR defaults
	DefaultQRVersion   = 3
	DefaultQRLevel     = "L"
	DefaultQRBoxSize   = 10
	DefaultQRBorder    = 4
	DefaultQRFillColor = "#000000"
	DefaultQRBackColor = "#ffffff"
	MaxQRVersion       = 40

	// Page defaults (points)
	DefaultPageWidth      = 300.0
	DefaultPageHeight     = 400.0
	DefaultQRSize         = 150.0
	DefaultTitleFontSize  = 16.0
	DefaultNumberFontSize = 12.0
	DefaultTitleYOffset   = 0.0
	DefaultQRYOffset      = 10.0
	DefaultNumberYOffset  = 30.0

	// PageTopMargin is the fixed distance from the top edge of the page to
	// the layout anchor. Layout constant, not configuration.
	PageTopMargin = 100.0

	// Output defaults
	DefaultQRDir  = "QR_codes"
	DefaultPDFDir = "PDF_files"
	QRExtension   = "png"
	PDFExtension  = "pdf"

	// Input defaults
	DefaultCSVFile    = "list.csv"
	DefaultSkipRows   = 1
	DefaultNameColumn = 0
	DefaultIDColumn   = 1

	// Permissions for created output directories
	OutputDirPerm = 0o755

	// Formatting constants
	TimestampFormat = "2006-01-02 15:04:05"
)
