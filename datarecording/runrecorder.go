package datarecording

import (
	"github.com/rs/xid"

	"github.com/sarchlab/cachesim/cache"
)

const (
	accessTable  = "cache_accesses"
	summaryTable = "cache_run_summaries"
)

// An AccessEntry is one recorded cache access.
type AccessEntry struct {
	RunID       string
	Seq         int
	Address     uint64
	BlockNumber uint64
	SetID       int
	Outcome     string
	MissKind    string
}

// A RunSummaryEntry is the final state of one simulation run.
type RunSummaryEntry struct {
	RunID            string
	CacheByteSize    uint64
	BlockSize        uint64
	WayAssociativity int
	Policy           string
	Accesses         uint64
	Hits             uint64
	Misses           uint64
	ColdMisses       uint64
	ConflictMisses   uint64
	CapacityMisses   uint64
	HitRate          float64
}

// A RunRecorder drives a cache engine while recording every access and,
// finally, a run summary.
type RunRecorder struct {
	recorder DataRecorder
	runID    string
	seq      int
}

// NewRunRecorder creates a RunRecorder on top of a DataRecorder. The two
// tables are created immediately.
func NewRunRecorder(recorder DataRecorder) *RunRecorder {
	r := &RunRecorder{
		recorder: recorder,
		runID:    xid.New().String(),
	}

	recorder.CreateTable(accessTable, AccessEntry{})
	recorder.CreateTable(summaryTable, RunSummaryEntry{})

	return r
}

// RunID returns the identifier shared by all rows of this run.
func (r *RunRecorder) RunID() string {
	return r.runID
}

// Access performs one access on the engine and records its outcome. The miss
// kind is derived from the counter that moved.
func (r *RunRecorder) Access(e *cache.Engine, addr uint64) cache.Outcome {
	before := e.Stats()
	outcome := e.Access(addr)
	after := e.Stats()

	r.recorder.InsertData(accessTable, AccessEntry{
		RunID:       r.runID,
		Seq:         r.seq,
		Address:     addr,
		BlockNumber: e.BlockNumber(addr),
		SetID:       e.SetID(addr),
		Outcome:     outcome.String(),
		MissKind:    missKind(before, after),
	})
	r.seq++

	return outcome
}

// RecordSummary records the configuration and final counters of the engine.
func (r *RunRecorder) RecordSummary(e *cache.Engine) {
	stats := e.Stats()

	r.recorder.InsertData(summaryTable, RunSummaryEntry{
		RunID:            r.runID,
		CacheByteSize:    e.CacheByteSize(),
		BlockSize:        e.BlockSize(),
		WayAssociativity: e.WayAssociativity(),
		Policy:           e.ReplaceStrategy().String(),
		Accesses:         stats.Accesses,
		Hits:             stats.Hits,
		Misses:           stats.Misses,
		ColdMisses:       stats.ColdMisses,
		ConflictMisses:   stats.ConflictMisses,
		CapacityMisses:   stats.CapacityMisses,
		HitRate:          e.HitRate(),
	})
}

// Flush writes all buffered rows to the database.
func (r *RunRecorder) Flush() {
	r.recorder.Flush()
}

func missKind(before, after cache.Stats) string {
	switch {
	case after.ColdMisses > before.ColdMisses:
		return "cold"
	case after.ConflictMisses > before.ConflictMisses:
		return "conflict"
	case after.CapacityMisses > before.CapacityMisses:
		return "capacity"
	default:
		return ""
	}
}
