package config

import "github.com/spf13/viper"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Engine defaults
	if cfg.Engine.HorizonHours == 0 {
		cfg.Engine.HorizonHours = 720
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "warn"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Output defaults
	if cfg.Output.Format == "" {
		cfg.Output.Format = "table"
	}
}

// bindDefaults registers every key with viper so AutomaticEnv can see it
// during Unmarshal.
func bindDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("engine.horizon_hours", d.Engine.HorizonHours)
	v.SetDefault("engine.parallel_slots", d.Engine.ParallelSlots)
	v.SetDefault("engine.celebrations", d.Engine.Celebrations)
	v.SetDefault("engine.training_buffer", d.Engine.TrainingBuffer)
	v.SetDefault("engine.tables_path", d.Engine.TablesPath)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.no_color", d.Output.NoColor)
}
