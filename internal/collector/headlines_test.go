package collector

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func rssBody(items ...[2]string) string {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>t</title>`)
	for _, it := range items {
		sb.WriteString("<item><title>")
		sb.WriteString(it[0])
		sb.WriteString("</title><link>")
		sb.WriteString(it[1])
		sb.WriteString("</link></item>")
	}
	sb.WriteString("</channel></rss>")
	return sb.String()
}

func feedServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCollectGroupFirstSourceFailsSecondSucceeds(t *testing.T) {
	// 来源 1 模拟不可用（500），来源 2 返回 3 条有效条目
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(broken.Close)

	good := feedServer(t, rssBody(
		[2]string{"European leaders agree on new energy framework", "https://example.com/eu-1"},
		[2]string{"Cross-border rail corridor funding finally approved", "https://example.com/eu-2"},
		[2]string{"Fisheries dispute resolved after marathon session", "https://example.com/eu-3"},
	))

	group := Group{
		Name: "Europe",
		Sources: []Source{
			{URL: broken.URL, Kind: KindFeed},
			{URL: good.URL, Kind: KindFeed},
		},
	}

	c := New(2 * time.Second)
	out := c.collectAll([]Group{group}, false, 2, 8)

	if len(out) != 2 {
		t.Fatalf("expected min(finalLimit, valid items) = 2 items, got %d: %+v", len(out), out)
	}
	for _, h := range out {
		if h.Source != "Europe" {
			t.Fatalf("item not tagged with group name: %+v", h)
		}
	}
}

func TestCollectGroupEarlyExitSkipsRemainingSources(t *testing.T) {
	first := feedServer(t, rssBody(
		[2]string{"Primary source produces quite enough headlines", "https://example.com/p-1"},
		[2]string{"Primary source second headline also usable", "https://example.com/p-2"},
	))

	var secondHits int32
	second := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&secondHits, 1)
		fmt.Fprint(w, rssBody([2]string{"Backup source headline that should not be needed", "https://example.com/b-1"}))
	}))
	t.Cleanup(second.Close)

	group := Group{
		Name: "g",
		Sources: []Source{
			{URL: first.URL, Kind: KindFeed},
			{URL: second.URL, Kind: KindFeed},
		},
	}

	c := New(2 * time.Second)
	out := c.collectAll([]Group{group}, false, 1, 8)

	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	// 配额已满，后面的来源连请求都不该发
	if n := atomic.LoadInt32(&secondHits); n != 0 {
		t.Fatalf("second source should be skipped after quota filled, got %d hits", n)
	}
}

func TestCollectAllCrossGroupLinkDedup(t *testing.T) {
	shared := "https://example.com/same-story"

	g1 := feedServer(t, rssBody(
		[2]string{"Original coverage of the shared breaking story", shared},
	))
	g2 := feedServer(t, rssBody(
		[2]string{"Syndicated copy of the shared breaking story", shared},
		[2]string{"Second group also has an exclusive of its own", "https://example.com/exclusive"},
	))

	groups := []Group{
		{Name: "first", Sources: []Source{{URL: g1.URL, Kind: KindFeed}}},
		{Name: "second", Sources: []Source{{URL: g2.URL, Kind: KindFeed}}},
	}

	c := New(2 * time.Second)
	out := c.collectAll(groups, false, 2, 8)

	links := make(map[string]int)
	for _, h := range out {
		links[h.Link]++
	}
	if links[shared] != 1 {
		t.Fatalf("shared link should appear exactly once, got %d (%+v)", links[shared], out)
	}
	// 先到先得：重复链接归属声明顺序靠前的分组
	if out[0].Source != "first" || out[0].Link != shared {
		t.Fatalf("first-seen group should win the shared link: %+v", out)
	}
	if links["https://example.com/exclusive"] != 1 {
		t.Fatalf("unique link from second group missing: %+v", out)
	}
}

func TestCollectGroupTitleDedupAcrossSources(t *testing.T) {
	title := "Identical headline carried by two different feeds"

	src1 := feedServer(t, rssBody([2]string{title, "https://example.com/a-1"}))
	src2 := feedServer(t, rssBody(
		[2]string{title, "https://example.com/a-2"},
		[2]string{"A different headline from the second feed source", "https://example.com/a-3"},
	))
	// 第三个来源在另一个分组：同标题不同链接，跨分组只按链接去重
	other := feedServer(t, rssBody([2]string{title, "https://example.com/other-group"}))

	groups := []Group{
		{Name: "g1", Sources: []Source{
			{URL: src1.URL, Kind: KindFeed},
			{URL: src2.URL, Kind: KindFeed},
		}},
		{Name: "g2", Sources: []Source{{URL: other.URL, Kind: KindFeed}}},
	}

	c := New(2 * time.Second)
	out := c.collectAll(groups, false, 2, 8)

	var g1Count, sameTitle int
	for _, h := range out {
		if h.Source == "g1" {
			g1Count++
		}
		if h.Title == title {
			sameTitle++
		}
	}
	if g1Count != 2 {
		t.Fatalf("expected 2 items from g1 (dup title dropped, next kept), got %d: %+v", g1Count, out)
	}
	if sameTitle != 2 {
		t.Fatalf("same title should survive across groups (link dedup only), got %d: %+v", sameTitle, out)
	}
}

func TestCollectAllTopicScopedFiltering(t *testing.T) {
	srv := feedServer(t, rssBody(
		[2]string{"Quarterly revenue jumps on strong consumer demand", "https://example.com/r-1"},
		[2]string{"Predictive maintenance program slashes plant downtime", "https://example.com/r-2"},
	))

	groups := []Group{{Name: "Reliable Plant (WW)", Sources: []Source{{URL: srv.URL, Kind: KindFeed}}}}

	c := New(2 * time.Second)
	out := c.collectAll(groups, true, 1, 15)

	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].Link != "https://example.com/r-2" {
		t.Fatalf("lexicon match should win over earlier off-topic item: %+v", out[0])
	}
}

func TestCollectAllGroupLimitInvariant(t *testing.T) {
	srv := feedServer(t, rssBody(
		[2]string{"First headline with a perfectly valid length", "https://example.com/x-1"},
		[2]string{"Second headline with a perfectly valid length", "https://example.com/x-2"},
		[2]string{"Third headline with a perfectly valid length", "https://example.com/x-3"},
	))

	groups := []Group{{Name: "g", Sources: []Source{{URL: srv.URL, Kind: KindFeed}}}}

	c := New(2 * time.Second)
	out := c.collectAll(groups, false, 2, 8)

	if len(out) > 2 {
		t.Fatalf("group exceeded its final limit: %d items", len(out))
	}
}
