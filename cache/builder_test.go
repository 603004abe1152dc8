package cache

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	It("should build with the default configuration", func() {
		engine, err := MakeBuilder().Build()

		Expect(err).ToNot(HaveOccurred())
		Expect(engine.CacheByteSize()).To(Equal(uint64(1024)))
		Expect(engine.BlockSize()).To(Equal(uint64(64)))
		Expect(engine.WayAssociativity()).To(Equal(4))
		Expect(engine.ReplaceStrategy()).To(Equal(LRU))
		Expect(engine.NumSets()).To(Equal(4))
	})

	It("should reject a zero cache size", func() {
		_, err := MakeBuilder().WithCacheByteSize(0).Build()

		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())
	})

	It("should reject a zero block size", func() {
		_, err := MakeBuilder().WithBlockSize(0).Build()

		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())
	})

	It("should reject a non-positive associativity", func() {
		_, err := MakeBuilder().WithWayAssociativity(0).Build()

		Expect(errors.Is(err, ErrInvalidConfiguration)).To(BeTrue())
	})
})

var _ = Describe("ParsePolicy", func() {
	It("should parse policy names case-insensitively", func() {
		for name, want := range map[string]Policy{
			"lru":    LRU,
			"LRU":    LRU,
			"fifo":   FIFO,
			"Random": Random,
		} {
			got, err := ParsePolicy(name)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(want))
		}
	})

	It("should reject unknown policy names", func() {
		_, err := ParsePolicy("plru")

		Expect(err).To(HaveOccurred())
	})
})
