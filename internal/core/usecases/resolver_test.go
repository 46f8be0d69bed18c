package usecases

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"subscanner/internal/core/domain"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

var _ = Describe("resolving hostnames", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(100 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	It("refuses to run without a lookuper", func(ctx context.Context) {
		r := NewResolver(ResolverOptions{})
		_, err := r.Resolve(ctx, []string{"a.example.com"})
		Expect(err).To(MatchError(ErrNoLookuper))
	})

	It("returns an empty map for no hosts", func(ctx context.Context) {
		r := NewResolver(ResolverOptions{Lookuper: newMockLookuper(nil)})
		Expect(Successful(r.Resolve(ctx, nil))).To(BeEmpty())
	})

	It("keeps the first address and omits failures", func(ctx context.Context) {
		lookuper := newMockLookuper(map[string][]string{
			"a.example.com": {"192.0.2.1", "2001:db8::1"},
			"c.example.com": {"192.0.2.3"},
			"d.example.com": {},
		}, "b.example.com")

		var mu sync.Mutex
		seen := map[string]string{}
		r := NewResolver(ResolverOptions{
			Lookuper: lookuper,
			OnResolved: func(host, addr string) {
				mu.Lock()
				defer mu.Unlock()
				seen[host] = addr
			},
		})

		resolved := Successful(r.Resolve(ctx, []string{
			"a.example.com", "b.example.com", "c.example.com", "d.example.com",
		}))
		Expect(resolved).To(Equal(map[string]string{
			"a.example.com": "192.0.2.1",
			"c.example.com": "192.0.2.3",
		}))
		mu.Lock()
		defer mu.Unlock()
		Expect(seen).To(Equal(resolved))
	})

	It("looks up each distinct host only once", func(ctx context.Context) {
		lookuper := newMockLookuper(map[string][]string{"a.example.com": {"192.0.2.1"}})
		r := NewResolver(ResolverOptions{Lookuper: lookuper, Workers: 2})

		Expect(Successful(r.Resolve(ctx, []string{
			"a.example.com", "A.EXAMPLE.COM", "a.example.com",
		}))).To(HaveLen(1))
		Expect(lookuper.lookupCount()).To(Equal(1))
	})

	It("bounds every lookup with its own timeout", func(ctx context.Context) {
		lookuper := newMockLookuper(map[string][]string{"slow.example.com": {"192.0.2.9"}})
		lookuper.block = make(chan struct{})
		defer close(lookuper.block)

		r := NewResolver(ResolverOptions{Lookuper: lookuper, LookupTimeout: 50 * time.Millisecond})
		start := time.Now()
		Expect(Successful(r.Resolve(ctx, []string{"slow.example.com"}))).To(BeEmpty())
		Expect(time.Since(start)).To(BeNumerically("<", 2*time.Second))
	})

	It("survives a panicking lookuper", func(ctx context.Context) {
		r := NewResolver(ResolverOptions{Lookuper: panickyLookuper{}})
		Expect(Successful(r.Resolve(ctx, []string{"a.example.com", "b.example.com"}))).To(BeEmpty())
	})

	It("returns the partial map on cancellation", func(ctx context.Context) {
		table := map[string][]string{}
		hosts := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			h := fmt.Sprintf("h%02d.example.com", i)
			table[h] = []string{fmt.Sprintf("192.0.2.%d", i)}
			hosts = append(hosts, h)
		}
		lookuper := newMockLookuper(table)
		lookuper.block = make(chan struct{})

		cctx, cancel := context.WithCancel(ctx)
		r := NewResolver(ResolverOptions{Lookuper: lookuper, Workers: 4})

		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()
		resolved, err := r.Resolve(cctx, hosts)

		Expect(errors.Is(err, domain.ErrScanCanceled)).To(BeTrue())
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
		Expect(resolved).NotTo(BeNil())
		Expect(len(resolved)).To(BeNumerically("<", len(hosts)))
		Expect(lookuper.lookupCount()).To(BeNumerically("<=", 4))
	})

})

type panickyLookuper struct{}

func (panickyLookuper) LookupHost(ctx context.Context, host string) ([]string, error) {
	panic("resolver exploded")
}
