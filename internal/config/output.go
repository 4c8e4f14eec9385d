package config

// OutputConfig controls how the CLI prints results
type OutputConfig struct {
	Format  string `mapstructure:"format" validate:"required,oneof=table json"`
	NoColor bool   `mapstructure:"no_color"`
}
