package engine

import "github.com/lixenwraith/warpdrift/config"

// NewTestWorld creates a world with default configuration and a fixed seed for tests
func NewTestWorld() *World {
	return NewWorld(config.Default(), 1)
}
