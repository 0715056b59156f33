package config

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Listen string `yaml:"listen"`
}

// CostConfig contains the cost-model calibration knobs. Their defaults match
// the embedded network; retune them before pointing the planner at a network
// with faster segments.
type CostConfig struct {
	// HeuristicMinPerKm converts crow-flight km into estimated minutes for
	// the time-criterion heuristic. Zero means "use the default".
	HeuristicMinPerKm float64 `yaml:"heuristicMinPerKm" validate:"gte=0"`
	// HopTransferWeight is the extra hop charged on a line change under
	// the hops criterion.
	HopTransferWeight float64 `yaml:"hopTransferWeight" validate:"gte=0"`
	// MaxVisitedStates bounds frontier growth per search.
	MaxVisitedStates int `yaml:"maxVisitedStates" validate:"gte=0"`
	// DefaultCriterion is used when a query does not select one.
	DefaultCriterion string `yaml:"defaultCriterion" validate:"omitempty,oneof=time hops transfers"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	Cost   CostConfig   `yaml:"cost"`
}
