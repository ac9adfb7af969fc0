package collector

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// HTML 抓取对标题长度的要求更严：页面上匹配到的短链接文案
// （"Читать далее"、导航项等）比订阅源里更常见
const scrapeMinTitleRunes = 25

// extractScrapeItems 按来源配置的选择器从 HTML 页面抽取候选标题。
// 链接取元素自身的 href，元素本身不是链接时向上找最近的 <a>；
// 相对链接直接与 BaseURL 拼接（来源配置保证 BaseURL 不带尾部斜杠）
func extractScrapeItems(body []byte, src Source, groupName string, fetchLimit int) []Headline {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil
	}

	out := make([]Headline, 0, fetchLimit)
	seenTitles := make(map[string]struct{}, fetchLimit)

	doc.Find(src.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(out) >= fetchLimit {
			return false
		}

		title := strings.TrimSpace(sel.Text())

		link, ok := sel.Attr("href")
		if !ok || link == "" {
			link, _ = sel.Closest("a").Attr("href")
		}
		link = strings.TrimSpace(link)
		if link == "" {
			return true
		}
		if !strings.HasPrefix(link, "http") {
			link = src.BaseURL + link
		}

		if title == "" || utf8.RuneCountInString(title) <= scrapeMinTitleRunes {
			return true
		}
		if _, dup := seenTitles[title]; dup {
			return true
		}
		seenTitles[title] = struct{}{}

		out = append(out, Headline{Title: title, Link: link, Source: groupName})
		return true
	})

	return out
}
