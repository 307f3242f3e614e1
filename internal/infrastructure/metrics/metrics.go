package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	togglesApplied = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reactions_toggles_applied_total",
		Help: "Reaction toggles that mutated a reaction set.",
	})
	toggleNoops = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reactions_toggle_noops_total",
		Help: "Reaction toggles that matched the actor's current type and wrote nothing.",
	})
	toggleConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reactions_toggle_revision_conflicts_total",
		Help: "Optimistic-write conflicts retried during toggles.",
	})
	countsCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reactions_counts_cache_hits_total",
		Help: "Aggregate count lookups served from the cache.",
	})
	countsCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "reactions_counts_cache_misses_total",
		Help: "Aggregate count lookups recomputed from the store.",
	})
)

func IncToggleApplied()  { togglesApplied.Inc() }
func IncToggleNoop()     { toggleNoops.Inc() }
func IncToggleConflict() { toggleConflicts.Inc() }
func IncCountsHit()      { countsCacheHits.Inc() }
func IncCountsMiss()     { countsCacheMisses.Inc() }
