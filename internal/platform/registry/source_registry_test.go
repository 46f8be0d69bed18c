// internal/platform/registry/source_registry_test.go
package registry

import (
	"context"
	"errors"
	"testing"

	"subscanner/internal/core/domain"
	"subscanner/internal/core/ports"
	"subscanner/internal/platform/logx"
	"subscanner/internal/testutil"
)

// stubSource es una fuente mínima para tests del registry.
type stubSource struct {
	name    string
	enabled bool
}

func (s *stubSource) Name() string      { return s.name }
func (s *stubSource) Enabled() bool     { return s.enabled }
func (s *stubSource) SetEnabled(v bool) { s.enabled = v }
func (s *stubSource) Search(ctx context.Context, target domain.Target) *domain.HostSet {
	return domain.NewHostSet()
}

func stubFactory(name string) SourceFactory {
	return func(fetcher ports.Fetcher, logger logx.Logger) (ports.Source, error) {
		return &stubSource{name: name, enabled: true}, nil
	}
}

func TestSourceRegistry_Register(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())

	err := registry.Register("crt.sh", stubFactory("crt.sh"), ports.SourceMetadata{Description: "CT logs"})
	testutil.AssertNoError(t, err, "register should succeed")

	testutil.AssertTrue(t, registry.IsRegistered("crt.sh"), "source should be registered")
	testutil.AssertTrue(t, registry.IsRegistered("CRT.SH"), "lookup ignores case")

	meta, ok := registry.GetMetadata("Crt.Sh")
	testutil.AssertTrue(t, ok, "metadata present")
	testutil.AssertEqual(t, meta.Name, "crt.sh", "name defaulted from registration")
}

func TestSourceRegistry_Register_Invalid(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())

	testutil.AssertError(t, registry.Register("", stubFactory("x"), ports.SourceMetadata{}), "empty name")
	testutil.AssertError(t, registry.Register("x", nil, ports.SourceMetadata{}), "nil factory")

	registry.Register("wayback", stubFactory("wayback"), ports.SourceMetadata{})
	testutil.AssertError(t, registry.Register("WAYBACK", stubFactory("wayback"), ports.SourceMetadata{}), "duplicate ignoring case")
}

func TestSourceRegistry_MustRegister_Panics(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())
	registry.MustRegister("a", stubFactory("a"), ports.SourceMetadata{})

	defer func() {
		testutil.AssertNotNil(t, recover(), "duplicate MustRegister should panic")
	}()
	registry.MustRegister("a", stubFactory("a"), ports.SourceMetadata{})
}

func TestSourceRegistry_Build(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())
	registry.Register("wayback", stubFactory("wayback"), ports.SourceMetadata{})
	registry.Register("alienvault", stubFactory("alienvault"), ports.SourceMetadata{})

	sources, err := registry.Build(testutil.NewMockFetcher(), logx.Discard())

	testutil.AssertNoError(t, err, "build should succeed")
	testutil.AssertEqual(t, len(sources), 2, "should build two sources")
	testutil.AssertEqual(t, sources[0].Name(), "alienvault", "sorted by name")
	testutil.AssertEqual(t, sources[1].Name(), "wayback", "sorted by name")
}

func TestSourceRegistry_Build_FactoryError(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())
	registry.Register("ok", stubFactory("ok"), ports.SourceMetadata{})
	registry.Register("broken", func(ports.Fetcher, logx.Logger) (ports.Source, error) {
		return nil, errors.New("boom")
	}, ports.SourceMetadata{})

	sources, err := registry.Build(testutil.NewMockFetcher(), logx.Discard())
	testutil.AssertNoError(t, err, "partial build is fine")
	testutil.AssertEqual(t, len(sources), 1, "broken factory skipped")

	only := NewSourceRegistry(logx.Discard())
	only.Register("broken", func(ports.Fetcher, logx.Logger) (ports.Source, error) {
		return nil, errors.New("boom")
	}, ports.SourceMetadata{})
	_, err = only.Build(testutil.NewMockFetcher(), logx.Discard())
	testutil.AssertError(t, err, "no buildable sources")
}

func TestSourceRegistry_Build_Validation(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())

	_, err := registry.Build(nil, logx.Discard())
	testutil.AssertError(t, err, "nil fetcher")

	_, err = registry.Build(testutil.NewMockFetcher(), nil)
	testutil.AssertError(t, err, "nil logger")
}

func TestSourceRegistry_List(t *testing.T) {
	registry := NewSourceRegistry(logx.Discard())
	registry.Register("wayback", stubFactory("wayback"), ports.SourceMetadata{Name: "wayback"})
	registry.Register("crt.sh", stubFactory("crt.sh"), ports.SourceMetadata{Name: "crt.sh"})

	testutil.AssertStrings(t, registry.List(), []string{"crt.sh", "wayback"}, "sorted names")

	all := registry.GetAllMetadata()
	testutil.AssertEqual(t, len(all), 2, "all metadata")
	testutil.AssertEqual(t, all[0].Name, "crt.sh", "sorted metadata")

	registry.Clear()
	testutil.AssertLen(t, registry.List(), 0, "cleared")
}
