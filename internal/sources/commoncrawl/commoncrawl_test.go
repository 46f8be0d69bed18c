package commoncrawl

import (
	"context"
	"testing"

	"subscanner/internal/core/domain"
	"subscanner/internal/platform/logx"
	"subscanner/internal/testutil"
)

const indexURL = "https://index.commoncrawl.org/CC-MAIN-2024-10-index?url=*.example.com&output=json"

func TestCommonCrawl_Search(t *testing.T) {
	body := `{"urlkey":"com,example,docs)/","url":"https://docs.example.com/intro","status":"200"}
{"urlkey":"com,example,www)/","url":"http://www.example.com/","status":"301"}
{"urlkey":"com,example,docs)/faq","url":"https://docs.example.com/faq","status":"200"}`
	fetcher := testutil.NewMockFetcher().On(indexURL, body)

	source := New(fetcher, logx.Discard())
	got := source.Search(context.Background(), domain.Target{Root: "example.com"})

	testutil.AssertEqual(t, source.Name(), "commoncrawl", "name")
	testutil.AssertStrings(t, got.Sorted(), []string{"docs.example.com", "www.example.com"}, "indexed hosts")
}

func TestCommonCrawl_Search_Canceled(t *testing.T) {
	fetcher := testutil.NewMockFetcher().On(indexURL, `{"url":"https://docs.example.com/"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := New(fetcher, logx.Discard()).Search(ctx, domain.Target{Root: "example.com"})
	testutil.AssertEqual(t, got.Len(), 0, "canceled search is empty")
}
