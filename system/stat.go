package system

// Telemetry keys shared by more than one system
const (
	statMissingSingleton = "sim.missing_singleton"
	statDegenerateSpawn  = "spawn.degenerate"
)
