// internal/sources/crtsh/crtsh_test.go
package crtsh

import (
	"context"
	"errors"
	"testing"

	"subscanner/internal/core/domain"
	"subscanner/internal/platform/logx"
	"subscanner/internal/platform/registry"
	"subscanner/internal/testutil"
)

const (
	wildcardURL = "https://crt.sh/?q=%25.example.com&output=json"
	exactURL    = "https://crt.sh/?q=example.com&output=json"
)

func TestNew(t *testing.T) {
	source := New(testutil.NewMockFetcher(), logx.Discard())

	testutil.AssertNotNil(t, source, "source should not be nil")
	testutil.AssertEqual(t, source.Name(), "crt.sh", "name should be crt.sh")
	testutil.AssertTrue(t, source.Enabled(), "enabled by default")
}

func TestRegistered(t *testing.T) {
	testutil.AssertTrue(t, registry.Global().IsRegistered("CRT.SH"), "self-registered")
	meta, ok := registry.Global().GetMetadata("crt.sh")
	testutil.AssertTrue(t, ok, "metadata present")
	testutil.AssertEqual(t, meta.Queries, 2, "two queries")
}

func TestCRT_Search(t *testing.T) {
	fetcher := testutil.NewMockFetcher().
		On(wildcardURL, `[
			{"issuer_name":"R3","common_name":"www.example.com","name_value":"www.example.com\nmail.example.com"},
			{"issuer_name":"R3","common_name":"*.example.com","name_value":"*.example.com\nAPI.example.com"}
		]`).
		On(exactURL, `[{"common_name":"example.com","name_value":"example.com"},{"common_name":"dev.example.com"}]`)

	got := New(fetcher, logx.Discard()).Search(context.Background(), domain.Target{Root: "example.com"})

	testutil.AssertStrings(t, got.Sorted(), []string{
		"api.example.com",
		"dev.example.com",
		"example.com",
		"mail.example.com",
		"www.example.com",
	}, "both queries unioned")
	testutil.AssertEqual(t, fetcher.CallCount(), 2, "two requests")
}

func TestCRT_Search_OneQueryFails(t *testing.T) {
	fetcher := testutil.NewMockFetcher().
		Fail(wildcardURL, errors.New("502 bad gateway")).
		On(exactURL, `[{"common_name":"dev.example.com"}]`)

	got := New(fetcher, logx.Discard()).Search(context.Background(), domain.Target{Root: "example.com"})
	testutil.AssertStrings(t, got.Sorted(), []string{"dev.example.com"}, "sibling query survives")
}

func TestCRT_Search_HTMLResponse(t *testing.T) {
	fetcher := testutil.NewMockFetcher().
		On(wildcardURL, "<html>crt.sh is overloaded</html>").
		On(exactURL, "<html>crt.sh is overloaded</html>")

	got := New(fetcher, logx.Discard()).Search(context.Background(), domain.Target{Root: "example.com"})
	testutil.AssertEqual(t, got.Len(), 0, "empty, not a failure")
}
