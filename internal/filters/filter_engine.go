package filters

import (
	"log-stats/internal/models"
)

// Accepts reports whether entry passes every predicate of cfg: the inclusive From and To bounds and
// the status class. It has no side effects.
func Accepts(entry *models.LogEntry, cfg *models.FilterConfig) bool {
	if cfg.From != nil && entry.Timestamp.Before(*cfg.From) {
		return false
	}
	if cfg.To != nil && entry.Timestamp.After(*cfg.To) {
		return false
	}
	low, high, ok := cfg.Status.Bounds()
	if !ok {
		return true
	}
	return entry.StatusCode >= low && entry.StatusCode < high
}
