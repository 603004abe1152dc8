package cache

// Stats holds the running counters of an Engine. After every access,
// Hits+Misses equals Accesses and ColdMisses+ConflictMisses+CapacityMisses
// equals Misses.
type Stats struct {
	Accesses       uint64
	Hits           uint64
	Misses         uint64
	ColdMisses     uint64
	ConflictMisses uint64
	CapacityMisses uint64
}
