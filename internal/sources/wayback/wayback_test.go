package wayback

import (
	"context"
	"testing"

	"subscanner/internal/core/domain"
	"subscanner/internal/platform/logx"
	"subscanner/internal/testutil"
)

const cdxURL = "https://web.archive.org/cdx/search/cdx?url=*.example.com/*&output=json&fl=original&collapse=urlkey"

func TestWayback_Search(t *testing.T) {
	fetcher := testutil.NewMockFetcher().On(cdxURL, `[["original"],
		["http://www.example.com/index.html"],
		["https://Blog.Example.com:443/2019/"],
		["http://old.example.com/?q=1"],
		["http://example.com.evil.org/"]]`)

	got := New(fetcher, logx.Discard()).Search(context.Background(), domain.Target{Root: "example.com"})

	testutil.AssertStrings(t, got.Sorted(), []string{"blog.example.com", "old.example.com", "www.example.com"}, "archived hosts")
}

func TestWayback_Search_EmptyIndex(t *testing.T) {
	fetcher := testutil.NewMockFetcher().On(cdxURL, `[]`)

	source := New(fetcher, logx.Discard())
	testutil.AssertEqual(t, source.Name(), "wayback", "name")
	testutil.AssertEqual(t, source.Search(context.Background(), domain.Target{Root: "example.com"}).Len(), 0, "no hosts")
}
