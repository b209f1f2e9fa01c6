package config

// Config represents the application configuration
type Config struct {
	Input    InputConfig
	Output   OutputConfig
	QR       QRConfig
	Page     PageConfig
	Workers  int
	LogLevel string
}

// InputConfig holds the row-source configuration
type InputConfig struct {
	CSVFile    string
	SkipRows   int
	NameColumn int
	IDColumn   int
}

// OutputConfig holds the output directory configuration
type OutputConfig struct {
	QRDir  string
	PDFDir string
}

// QRConfig holds the QR symbol configuration. Version is the minimum symbol
// version; encoding grows to the smallest compatible version above it when
// the payload would not fit.
type QRConfig struct {
	Version   int
	Level     string
	BoxSize   int
	Border    int
	FillColor string
	BackColor string
}

// PageConfig holds the page composition configuration. Fonts are referenced
// by logical name and must be registered before composition; FontFile paths
// are what gets registered at startup. Colors are RGB triples in [0,1].
type PageConfig struct {
	Width          float64
	Height         float64
	Background     string
	TitleFont      string
	TitleFontFile  string
	TitleFontSize  float64
	TitleColor     [3]float64
	NumberFont     string
	NumberFontFile string
	NumberFontSize float64
	NumberColor    [3]float64
	QRSize         float64
	TitleYOffset   float64
	QRYOffset      float64
	NumberYOffset  float64
}
