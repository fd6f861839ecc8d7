package models

// Settings represents the application configuration
type Settings struct {
	Output OutputSettings `yaml:"output"`
	UI     UISettings     `yaml:"ui"`
}

// OutputSettings controls where exported markup goes
type OutputSettings struct {
	DefaultFilename string `yaml:"default_filename"`
	ExportPath      string `yaml:"export_path"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview bool `yaml:"show_preview"`
	ShowHints   bool `yaml:"show_hints"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Output: OutputSettings{
			DefaultFilename: "card-form.html",
			ExportPath:      "./",
		},
		UI: UISettings{
			ShowPreview: true,
			ShowHints:   true,
		},
	}
}
