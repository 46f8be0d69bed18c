package dnsx

import (
	"net"

	"github.com/miekg/dns"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/thediveo/success"
)

// fakeZone answers from a fixed record table; unknown names get NXDOMAIN.
type fakeZone map[string][]dns.RR

func (z fakeZone) ServeDNS(w dns.ResponseWriter, req *dns.Msg) {
	m := new(dns.Msg)
	m.SetReply(req)

	q := req.Question[0]
	rrs, ok := z[q.Name]
	if !ok {
		m.Rcode = dns.RcodeNameError
		_ = w.WriteMsg(m)
		return
	}
	for _, rr := range rrs {
		if rr.Header().Rrtype == q.Qtype || rr.Header().Rrtype == dns.TypeCNAME {
			m.Answer = append(m.Answer, rr)
		}
	}
	_ = w.WriteMsg(m)
}

func mustRR(s string) dns.RR {
	return Successful(dns.NewRR(s))
}

// startFakeServer serves zone on a random loopback UDP port and registers
// its shutdown with the current spec.
func startFakeServer(zone fakeZone) string {
	pc := Successful(net.ListenPacket("udp", "127.0.0.1:0"))

	started := make(chan struct{})
	srv := &dns.Server{
		PacketConn:        pc,
		Handler:           zone,
		NotifyStartedFunc: func() { close(started) },
	}
	go func() {
		defer GinkgoRecover()
		_ = srv.ActivateAndServe()
	}()
	Eventually(started).Should(BeClosed())

	DeferCleanup(func() {
		Expect(srv.Shutdown()).To(Succeed())
	})
	return pc.LocalAddr().String()
}
