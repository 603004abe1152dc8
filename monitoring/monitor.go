// Package monitoring turns a cache simulation into a server so that an
// external display can poll its statistics and set contents.
package monitoring

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sarchlab/cachesim/cache"
)

// Monitor serves the read-only contract of a cache engine over HTTP. The
// engine itself is not synchronized; the driver that steps the simulation
// and the monitor handlers must not mutate it concurrently.
type Monitor struct {
	engine     *cache.Engine
	portNumber int
}

// NewMonitor creates a new Monitor.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// WithPortNumber sets the port number of the monitor.
func (m *Monitor) WithPortNumber(portNumber int) *Monitor {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is assigned to the monitoring server, "+
				"which is not allowed. Using a random port instead.\n",
			portNumber)
		portNumber = 0
	}

	m.portNumber = portNumber

	return m
}

// RegisterEngine registers the engine to be monitored.
func (m *Monitor) RegisterEngine(e *cache.Engine) {
	m.engine = e
}

// StartServer starts the monitor as a web server. It returns the port the
// server listens on.
func (m *Monitor) StartServer() int {
	r := m.router()

	actualPort := ":0"
	if m.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(m.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	dieOnErr(err)

	port := listener.Addr().(*net.TCPAddr).Port
	fmt.Fprintf(os.Stderr,
		"Monitoring simulation with http://localhost:%d\n", port)

	go func() {
		err := http.Serve(listener, r)
		dieOnErr(err)
	}()

	return port
}

func (m *Monitor) router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/stats", m.stats)
	r.HandleFunc("/api/hitrate", m.hitRate)
	r.HandleFunc("/api/config", m.config)
	r.HandleFunc("/api/sets", m.listSets)
	r.HandleFunc("/api/sets/{id}", m.setContents)

	return r
}

func (m *Monitor) stats(w http.ResponseWriter, _ *http.Request) {
	stats := m.engine.Stats()

	writeJSON(w, map[string]uint64{
		"accesses":        stats.Accesses,
		"hits":            stats.Hits,
		"misses":          stats.Misses,
		"cold_misses":     stats.ColdMisses,
		"conflict_misses": stats.ConflictMisses,
		"capacity_misses": stats.CapacityMisses,
	})
}

func (m *Monitor) hitRate(w http.ResponseWriter, _ *http.Request) {
	fmt.Fprintf(w, "{\"hit_rate\":%f}", m.engine.HitRate())
}

func (m *Monitor) config(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"cache_byte_size":   m.engine.CacheByteSize(),
		"block_size":        m.engine.BlockSize(),
		"way_associativity": m.engine.WayAssociativity(),
		"policy":            m.engine.ReplaceStrategy().String(),
		"num_sets":          m.engine.NumSets(),
	})
}

func (m *Monitor) listSets(w http.ResponseWriter, _ *http.Request) {
	sets := make([][]uint64, m.engine.NumSets())
	for i := range sets {
		sets[i] = m.engine.SetContents(i)
	}

	writeJSON(w, sets)
}

func (m *Monitor) setContents(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]

	id, err := strconv.Atoi(idStr)
	if err != nil || id < 0 || id >= m.engine.NumSets() {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, "set %s does not exist", idStr)

		return
	}

	writeJSON(w, m.engine.SetContents(id))
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	err := json.NewEncoder(w).Encode(v)
	dieOnErr(err)
}

func dieOnErr(err error) {
	if err != nil {
		panic(err)
	}
}
