package dnsx

import (
	"context"
	"time"

	"subscanner/internal/core/domain"
	"subscanner/internal/platform/errors"
	"subscanner/internal/platform/logx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gleak"
	. "github.com/thediveo/success"
)

var _ = Describe("name resolution backends", func() {

	BeforeEach(func() {
		goodgos := Goroutines()
		DeferCleanup(func() {
			Eventually(Goroutines).WithTimeout(3 * time.Second).WithPolling(100 * time.Millisecond).
				ShouldNot(HaveLeaked(goodgos))
		})
	})

	Context("backend selection", func() {

		It("defaults to the system resolver", func() {
			l := Successful(New(Config{}, logx.Discard()))
			Expect(l).To(BeAssignableToTypeOf(&SystemLookuper{}))
		})

		It("builds a nameserver client for the dns backend", func() {
			l := Successful(New(Config{Backend: domain.ResolverBackendDNS}, logx.Discard()))
			Expect(l).To(BeAssignableToTypeOf(&Client{}))
			Expect(l.(*Client).server).To(Equal(DefaultNameserver))
		})

		It("rejects unknown backends and malformed nameservers", func() {
			Expect(New(Config{Backend: "doh"}, nil)).Error().To(HaveOccurred())
			Expect(NewClient(Config{Nameserver: "8.8.8.8"}, nil)).Error().To(HaveOccurred())
		})
	})

	Context("system resolver", func() {

		It("passes IP literals through", NodeTimeout(10*time.Second), func(ctx context.Context) {
			Expect(NewSystem().LookupHost(ctx, "127.0.0.1")).To(ConsistOf("127.0.0.1"))
		})
	})

	Context("nameserver client", func() {

		var client *Client

		BeforeEach(func() {
			addr := startFakeServer(fakeZone{
				"a.example.com.": {
					mustRR("a.example.com. 60 IN A 192.0.2.10"),
					mustRR("a.example.com. 60 IN A 192.0.2.11"),
					mustRR("a.example.com. 60 IN AAAA 2001:db8::10"),
				},
				"v6.example.com.": {
					mustRR("v6.example.com. 60 IN AAAA 2001:db8::6"),
				},
				"alias.example.com.": {
					mustRR("alias.example.com. 60 IN CNAME a.example.com."),
					mustRR("alias.example.com. 60 IN A 192.0.2.10"),
				},
				"empty.example.com.": {},
			})
			client = Successful(NewClient(Config{Nameserver: addr, Timeout: 2 * time.Second}, logx.Discard()))
		})

		It("returns IPv4 answers in order", NodeTimeout(10*time.Second), func(ctx context.Context) {
			Expect(client.LookupHost(ctx, "a.example.com")).To(Equal([]string{"192.0.2.10", "192.0.2.11"}))
		})

		It("falls back to AAAA", NodeTimeout(10*time.Second), func(ctx context.Context) {
			Expect(client.LookupHost(ctx, "v6.example.com")).To(Equal([]string{"2001:db8::6"}))
		})

		It("skips CNAME records", NodeTimeout(10*time.Second), func(ctx context.Context) {
			Expect(client.LookupHost(ctx, "alias.example.com")).To(Equal([]string{"192.0.2.10"}))
		})

		It("maps NXDOMAIN to not found", NodeTimeout(10*time.Second), func(ctx context.Context) {
			_, err := client.LookupHost(ctx, "nx.example.com")
			Expect(errors.Is(err, errors.ErrNotFound)).To(BeTrue())
		})

		It("reports names without addresses", NodeTimeout(10*time.Second), func(ctx context.Context) {
			_, err := client.LookupHost(ctx, "empty.example.com")
			Expect(errors.Is(err, errors.ErrNoAddress)).To(BeTrue())
		})

		It("honors a canceled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			_, err := client.LookupHost(ctx, "a.example.com")
			Expect(err).To(MatchError(context.Canceled))
		})
	})
})
