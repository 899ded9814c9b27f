package types

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose bool       `mapstructure:"verbose"`
	Config  string     `mapstructure:"config"`
	Data    DataConfig `mapstructure:"data" validate:"required"`
}

// DataConfig holds store location settings.
type DataConfig struct {
	// Dir is the store directory. Empty means derive it from $HOME at
	// startup; after InitConfig it always holds the resolved path.
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file" validate:"required"`
}
