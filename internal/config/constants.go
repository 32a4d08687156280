package config

const (
	// Configuration file paths
	ConfigPathPaytableSchema = "configs/schemas/paytable.schema.json"

	// PaytableSchemaDir is searched beside PAYTABLE_FILE when the default schema path is missing
	PaytableSchemaDir = "schemas"
)

// Environment variable names
const (
	EnvStartingCredits = "STARTING_CREDITS"
	EnvCostPerSpin     = "COST_PER_SPIN"
	EnvSimulatedSpins  = "SIMULATED_SPINS"
	EnvSimSeed         = "SIM_SEED"
	EnvPaytableFile    = "PAYTABLE_FILE"
	EnvPaytableSchema  = "PAYTABLE_SCHEMA"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvMetricsPort     = "METRICS_PORT"
)

// Defaults match the classic terminal game: 100 credits, 5 per spin, 5 demo spins
const (
	DefaultStartingCredits = 100
	DefaultCostPerSpin     = 5
	DefaultSimulatedSpins  = 5
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "slot-machine"
	DefaultVersion         = "dev"
)
