package collector

import (
	"strings"
	"unicode/utf8"

	"github.com/mmcdole/gofeed"

	"github.com/LJTian/NewsPulse/internal/processor"
)

// 标题短于该阈值的条目多为"栏目名"之类的噪音，直接丢弃
const feedMinTitleRunes = 20

// extractFeedItems 从 RSS/Atom 订阅源中抽取候选标题，最多 fetchLimit 条。
// gofeed 统一处理 <item> 与 <entry> 两种条目；链接优先取 <link>
// （含 Atom 的 href 属性），为空时回退到 <guid>
func extractFeedItems(body []byte, groupName string, fetchLimit int) []Headline {
	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(body))
	if err != nil || feed == nil {
		return nil
	}

	out := make([]Headline, 0, fetchLimit)
	seenTitles := make(map[string]struct{}, fetchLimit)

	for _, item := range feed.Items {
		if len(out) >= fetchLimit {
			break
		}
		if item == nil {
			continue
		}

		title := processor.StripCDATA(strings.TrimSpace(item.Title))
		link := processor.StripCDATA(strings.TrimSpace(item.Link))
		if link == "" {
			link = processor.StripCDATA(strings.TrimSpace(item.GUID))
		}

		if title == "" || link == "" {
			continue
		}
		if utf8.RuneCountInString(title) <= feedMinTitleRunes {
			continue
		}
		if _, ok := seenTitles[title]; ok {
			continue
		}
		seenTitles[title] = struct{}{}

		out = append(out, Headline{Title: title, Link: link, Source: groupName})
	}

	return out
}
