package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Route persistence providers
const (
	PersistenceProviderMemory    = "memory"
	PersistenceProviderFirestore = "firestore"
	PersistenceProviderPostgres  = "postgres"
	PersistenceProviderBlob      = "blob"
	PersistenceProviderSQLite    = "sqlite"
)

// Run progress store providers
const (
	RunStoreProviderMemory = "memory"
	RunStoreProviderRedis  = "redis"
)

// Simulation event types
const (
	EventFrontierUpdated     = "frontier.updated"
	EventConnectionGap       = "connection.gap"
	EventSimulationCompleted = "simulation.completed"
	EventSimulationFailed    = "simulation.failed"
	EventSimulationStopped   = "simulation.stopped"
)

// DefaultRoutesCollection is the Firestore collection the editor saves routes to.
const DefaultRoutesCollection = "routes"
