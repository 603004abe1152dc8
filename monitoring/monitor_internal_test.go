package monitoring

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/cachesim/cache"
)

var _ = Describe("Monitor", func() {
	var (
		m      *Monitor
		engine *cache.Engine
		server *httptest.Server
	)

	BeforeEach(func() {
		var err error
		engine, err = cache.MakeBuilder().
			WithCacheByteSize(256).
			WithBlockSize(64).
			WithWayAssociativity(2).
			Build()
		Expect(err).ToNot(HaveOccurred())

		engine.Access(0x000)
		engine.Access(0x000)
		engine.Access(0x080)

		m = NewMonitor()
		m.RegisterEngine(engine)
		server = httptest.NewServer(m.router())
	})

	AfterEach(func() {
		server.Close()
	})

	getJSON := func(path string, v any) *http.Response {
		rsp, err := http.Get(server.URL + path)
		Expect(err).ToNot(HaveOccurred())

		if v != nil {
			Expect(json.NewDecoder(rsp.Body).Decode(v)).To(Succeed())
		}
		rsp.Body.Close()

		return rsp
	}

	It("should serve statistics", func() {
		stats := map[string]uint64{}
		getJSON("/api/stats", &stats)

		Expect(stats["accesses"]).To(Equal(uint64(3)))
		Expect(stats["hits"]).To(Equal(uint64(1)))
		Expect(stats["misses"]).To(Equal(uint64(2)))
		Expect(stats["cold_misses"]).To(Equal(uint64(1)))
	})

	It("should serve the hit rate", func() {
		body := map[string]float64{}
		getJSON("/api/hitrate", &body)

		Expect(body["hit_rate"]).To(BeNumerically("~", 100.0/3, 0.001))
	})

	It("should serve the configuration", func() {
		config := map[string]any{}
		getJSON("/api/config", &config)

		Expect(config["policy"]).To(Equal("LRU"))
		Expect(config["num_sets"]).To(BeNumerically("==", 2))
		Expect(config["block_size"]).To(BeNumerically("==", 64))
	})

	It("should serve all set contents", func() {
		sets := [][]uint64{}
		getJSON("/api/sets", &sets)

		Expect(sets).To(HaveLen(2))
		Expect(sets[0]).To(Equal([]uint64{0, 2}))
		Expect(sets[1]).To(BeEmpty())
	})

	It("should serve one set's contents", func() {
		blocks := []uint64{}
		getJSON("/api/sets/0", &blocks)

		Expect(blocks).To(Equal([]uint64{0, 2}))
	})

	It("should 404 on a set that does not exist", func() {
		rsp := getJSON("/api/sets/99", nil)

		Expect(rsp.StatusCode).To(Equal(http.StatusNotFound))
	})
})
