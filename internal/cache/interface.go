// Package cache persists per-(office, week) snapshots of overview metrics
// and the last run result between sessions. It replaces ambient browser
// storage with an explicit collaborator injected into the controller.
package cache

import "github.com/rmoreau/loanboard/internal/models"

// Store is the typed snapshot cache. The boolean result reports whether a
// snapshot exists; a miss is not an error.
type Store interface {
	// Lifecycle
	Init() error
	Close() error

	// Metrics snapshots
	GetMetrics(office, weekStart string) (*models.Metrics, bool, error)
	SetMetrics(office, weekStart string, m *models.Metrics) error

	// Run result snapshots
	GetRunResult(office, weekStart string) (*models.RunResult, bool, error)
	SetRunResult(office, weekStart string, r *models.RunResult) error

	// Invalidate drops every snapshot for one office, all weeks.
	Invalidate(office string) error

	// Clear wipes the whole cache.
	Clear() error
}
