// Package terminal is the tcell front-end: it maps keys to intents and draws render and HUD snapshots
//
// The simulation never imports this package, it only consumes game snapshots
package terminal
