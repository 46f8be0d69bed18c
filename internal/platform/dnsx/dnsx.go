// Package dnsx provides the name-resolution backends consumed by the resolver:
// the operating system resolver, and a direct A/AAAA client against a single
// nameserver built on miekg/dns.
package dnsx

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/errors"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/validator"
)

// DefaultNameserver is used by the dns backend when none is configured.
const DefaultNameserver = "8.8.8.8:53"

// Config selects and tunes a lookup backend.
type Config struct {
	Backend    domain.ResolverBackend
	Nameserver string
	Net        string // "udp" (default) or "tcp"
	Timeout    time.Duration
}

// New returns the Lookuper for cfg.Backend.
func New(cfg Config, logger logx.Logger) (ports.Lookuper, error) {
	switch cfg.Backend {
	case "", domain.ResolverBackendSystem:
		return NewSystem(), nil
	case domain.ResolverBackendDNS:
		return NewClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown resolver backend %q", cfg.Backend)
	}
}

// SystemLookuper resolves through the operating system resolver.
type SystemLookuper struct {
	resolver *net.Resolver
}

// NewSystem returns a SystemLookuper using net.DefaultResolver.
func NewSystem() *SystemLookuper {
	return &SystemLookuper{resolver: net.DefaultResolver}
}

// LookupHost returns the addresses of host in resolver order.
func (s *SystemLookuper) LookupHost(ctx context.Context, host string) ([]string, error) {
	addrs, err := s.resolver.LookupHost(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, errors.Wrapf(errors.ErrNoAddress, "lookup %s", host)
	}
	return addrs, nil
}

// Client queries a single nameserver for A records, falling back to AAAA
// when the name has no IPv4 address.
type Client struct {
	client *dns.Client
	server string
	logger logx.Logger
}

// NewClient validates cfg and returns a nameserver client.
func NewClient(cfg Config, logger logx.Logger) (*Client, error) {
	if cfg.Nameserver == "" {
		cfg.Nameserver = DefaultNameserver
	}
	if !validator.IsHostPort(cfg.Nameserver) {
		return nil, fmt.Errorf("invalid nameserver %q: expected host:port", cfg.Nameserver)
	}
	if cfg.Net == "" {
		cfg.Net = "udp"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logx.Discard()
	}

	return &Client{
		client: &dns.Client{Net: cfg.Net, Timeout: cfg.Timeout},
		server: cfg.Nameserver,
		logger: logger.With("component", "dnsx", "nameserver", cfg.Nameserver),
	}, nil
}

// LookupHost implements ports.Lookuper.
func (c *Client) LookupHost(ctx context.Context, host string) ([]string, error) {
	name := dns.Fqdn(host)

	for _, qtype := range []uint16{dns.TypeA, dns.TypeAAAA} {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		msg := new(dns.Msg)
		msg.SetQuestion(name, qtype)

		r, rtt, err := c.client.ExchangeContext(ctx, msg, c.server)
		if err != nil {
			return nil, errors.Wrapf(err, "query %s %s", dns.TypeToString[qtype], host)
		}
		c.logger.Debug("dns answer",
			"name", name,
			"type", dns.TypeToString[qtype],
			"rcode", dns.RcodeToString[r.Rcode],
			"answers", len(r.Answer),
			"rtt_ms", rtt.Milliseconds(),
		)

		switch r.Rcode {
		case dns.RcodeSuccess:
		case dns.RcodeNameError:
			return nil, errors.Wrapf(errors.ErrNotFound, "%s: NXDOMAIN", host)
		default:
			return nil, errors.Errorf("%s: %s", host, dns.RcodeToString[r.Rcode])
		}

		if addrs := addresses(r); len(addrs) > 0 {
			return addrs, nil
		}
	}

	return nil, errors.Wrapf(errors.ErrNoAddress, "lookup %s", host)
}

// addresses extracts A and AAAA answers in textual form, skipping CNAMEs.
func addresses(r *dns.Msg) []string {
	var out []string
	for _, rr := range r.Answer {
		switch v := rr.(type) {
		case *dns.A:
			out = append(out, v.A.String())
		case *dns.AAAA:
			out = append(out, v.AAAA.String())
		}
	}
	return out
}
