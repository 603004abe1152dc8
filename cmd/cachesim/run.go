package main

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/monitoring"
	"github.com/sarchlab/cachesim/trace"
)

var runFlags struct {
	cacheByteSize    uint64
	blockSize        uint64
	wayAssociativity int
	policy           string

	pattern   string
	count     int
	traceFile string

	recordDB    string
	monitorPort int
	interval    time.Duration
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one cache simulation and print its statistics.",
	Run: func(cmd *cobra.Command, args []string) {
		err := runSimulation()
		if err != nil {
			log.Fatal(err)
		}

		atexit.Exit(0)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Uint64Var(&runFlags.cacheByteSize,
		"cache-size", 1024, "Total cache capacity in bytes")
	runCmd.Flags().Uint64Var(&runFlags.blockSize,
		"block-size", 64, "Bytes per cache block")
	runCmd.Flags().IntVar(&runFlags.wayAssociativity,
		"associativity", 4, "Blocks per set")
	runCmd.Flags().StringVar(&runFlags.policy,
		"policy", "LRU", "Replacement policy: LRU, FIFO, or Random")
	runCmd.Flags().StringVar(&runFlags.pattern,
		"pattern", "Random",
		"Synthetic access pattern: Random, Sequential, Stride-2, "+
			"Stride-4, or Looping")
	runCmd.Flags().IntVar(&runFlags.count,
		"count", 1000, "Number of synthetic accesses to generate")
	runCmd.Flags().StringVar(&runFlags.traceFile,
		"trace", "",
		"Trace file with one hex address per line; overrides --pattern")
	runCmd.Flags().StringVar(&runFlags.recordDB,
		"record", "",
		"Record accesses and the run summary into this SQLite database")
	runCmd.Flags().IntVar(&runFlags.monitorPort,
		"monitor-port", 0,
		"Serve statistics over HTTP on this port while running")
	runCmd.Flags().DurationVar(&runFlags.interval,
		"interval", 0,
		"Pause between accesses, e.g. 100ms; useful with --monitor-port")
}

func runSimulation() error {
	policy, err := cache.ParsePolicy(runFlags.policy)
	if err != nil {
		return err
	}

	engine, err := cache.MakeBuilder().
		WithCacheByteSize(runFlags.cacheByteSize).
		WithBlockSize(runFlags.blockSize).
		WithWayAssociativity(runFlags.wayAssociativity).
		WithReplaceStrategy(policy).
		Build()
	if err != nil {
		return err
	}

	addrs, err := loadAddresses()
	if err != nil {
		return err
	}

	if runFlags.monitorPort != 0 {
		monitor := monitoring.NewMonitor().
			WithPortNumber(runFlags.monitorPort)
		monitor.RegisterEngine(engine)
		monitor.StartServer()
	}

	var runRecorder *datarecording.RunRecorder
	if runFlags.recordDB != "" {
		recorder := datarecording.NewDataRecorder(runFlags.recordDB)
		runRecorder = datarecording.NewRunRecorder(recorder)
	}

	for _, addr := range addrs {
		if runRecorder != nil {
			runRecorder.Access(engine, addr)
		} else {
			engine.Access(addr)
		}

		if runFlags.interval > 0 {
			time.Sleep(runFlags.interval)
		}
	}

	if runRecorder != nil {
		runRecorder.RecordSummary(engine)
		runRecorder.Flush()
	}

	printStats(engine)

	return nil
}

func loadAddresses() ([]uint64, error) {
	if runFlags.traceFile != "" {
		return trace.ParseFile(runFlags.traceFile)
	}

	pattern, err := trace.ParsePattern(runFlags.pattern)
	if err != nil {
		return nil, err
	}

	return trace.Generate(pattern, runFlags.count), nil
}

func printStats(engine *cache.Engine) {
	stats := engine.Stats()

	fmt.Printf("Cache:           %d B, %d-byte blocks, %d-way, %s\n",
		engine.CacheByteSize(), engine.BlockSize(),
		engine.WayAssociativity(), engine.ReplaceStrategy())
	fmt.Printf("Sets:            %d\n", engine.NumSets())
	fmt.Printf("Total Accesses:  %d\n", stats.Accesses)
	fmt.Printf("Hits:            %d\n", stats.Hits)
	fmt.Printf("Misses:          %d\n", stats.Misses)
	fmt.Printf("Cold Misses:     %d\n", stats.ColdMisses)
	fmt.Printf("Conflict Misses: %d\n", stats.ConflictMisses)
	fmt.Printf("Capacity Misses: %d\n", stats.CapacityMisses)
	fmt.Printf("Hit Ratio:       %.1f%%\n", engine.HitRate())
}
