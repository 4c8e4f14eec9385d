package config

// EngineConfig holds simulation settings
type EngineConfig struct {
	// Simulated hours; 720 is thirty days
	HorizonHours int `mapstructure:"horizon_hours" validate:"min=1,max=8760"`

	// Concurrent constructions; 0 means unlimited
	ParallelSlots int `mapstructure:"parallel_slots" validate:"min=0,max=10"`

	// Hold small celebrations while culture points are short
	Celebrations bool `mapstructure:"celebrations"`

	// Add settler training time to the estimate
	TrainingBuffer bool `mapstructure:"training_buffer"`

	// Optional YAML file overriding the built-in game tables
	TablesPath string `mapstructure:"tables_path"`
}
