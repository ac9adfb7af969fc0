package collector

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"

	"github.com/LJTian/NewsPulse/internal/processor"
)

const (
	// 正文质量门槛：低于该长度认为选择器只抓到了边角料，换下一个
	articleMinContentLen = 200
	// 兜底段落的最小长度，过滤按钮文案、版权行之类的碎片
	articleMinParagraphLen = 30
	// 展示用正文上限
	articleMaxContentRunes = 5000

	titleNotFound   = "Заголовок не найден"
	dateNotFound    = "Дата не найдена"
	contentNotFound = "Контент не найден"
)

// 正文容器选择器，按特异性从高到低排列；命中且文本量达标即停。
// 前半部分覆盖常见 CMS 模板（WordPress/Elementor、Astra 等），
// 末尾是通用的 article/main 兜底
var articleContentSelectors = []string{
	"article",
	".entry-inner",
	".ast-article-single",
	`[role="main"]`,
	"main",
	".post-content",
	".article-content",
	".entry-content",
	".content",
	".post",
	".article-body",
	"#content",
	".story-body",
	".post-body",
}

// 注入正文里的噪音元素，取文本前整体剔除
const articleNoiseSelector = "script, style, nav, header, footer, aside, .ad, .advertisement, .social-share, button, form, .comments"

// Article 抓取单个页面并提取文章全文。与标题采集不同，
// 这条链路的失败会原样上抛：调用方等的就是这一篇，静默空结果没有意义
func (c *Collector) Article(pageURL string) (Article, error) {
	body, err := c.fetchPage(pageURL)
	if err != nil {
		return Article{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Article{}, fmt.Errorf("parse article page: %w", err)
	}

	return Article{
		Title:   extractArticleTitle(doc),
		Date:    extractArticleDate(doc),
		Content: extractArticleContent(doc),
	}, nil
}

func extractArticleTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("title").First().Text()); t != "" {
		return t
	}
	if t, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && strings.TrimSpace(t) != "" {
		return strings.TrimSpace(t)
	}
	return titleNotFound
}

func extractArticleDate(doc *goquery.Document) string {
	if d, ok := doc.Find("time").Attr("datetime"); ok && strings.TrimSpace(d) != "" {
		return strings.TrimSpace(d)
	}
	if d, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content"); ok && strings.TrimSpace(d) != "" {
		return strings.TrimSpace(d)
	}
	if d, ok := doc.Find(`meta[name="date"]`).Attr("content"); ok && strings.TrimSpace(d) != "" {
		return strings.TrimSpace(d)
	}
	if d := strings.TrimSpace(doc.Find(".date").First().Text()); d != "" {
		return d
	}
	if d := strings.TrimSpace(doc.Find(".published").First().Text()); d != "" {
		return d
	}
	return dateNotFound
}

// extractArticleContent 依次尝试正文容器选择器，接受第一个文本量达标的；
// 全部落空时回退到"拼接所有足够长的段落"——未知模板的页面往往
// 顶不住结构化选择器，但段落兜底几乎总能捞回点东西
func extractArticleContent(doc *goquery.Document) string {
	content := ""

	for _, selector := range articleContentSelectors {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}

		container.Find(articleNoiseSelector).Remove()
		content = strings.TrimSpace(container.Text())
		if utf8.RuneCountInString(content) > articleMinContentLen {
			break
		}
	}

	if utf8.RuneCountInString(content) < articleMinContentLen {
		paragraphs := make([]string, 0, 16)
		doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
			text := strings.TrimSpace(sel.Text())
			if utf8.RuneCountInString(text) > articleMinParagraphLen {
				paragraphs = append(paragraphs, text)
			}
		})
		content = strings.Join(paragraphs, "\n\n")
	}

	content = processor.CollapseWhitespace(content)
	content = processor.TruncateRunes(content, articleMaxContentRunes)

	if content == "" {
		return contentNotFound
	}
	return content
}
