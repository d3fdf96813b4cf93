// Package service runs the long-lived infrastructure around the game loop
package service

import "context"

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: audio backends, score storage
//
// Lifecycle:
//  1. Construction (via factory)
//  2. Init(ctx) - open backends; ctx bounds any network handshake
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init(ctx context.Context) error
	Start() error

	// Stop must be idempotent
	Stop() error
}
