package collector

import "fmt"

// SourceKind 声明一个来源的抓取方式：RSS/Atom 订阅源 或 HTML 页面抓取
type SourceKind string

const (
	KindFeed   SourceKind = "rss"
	KindScrape SourceKind = "scrape"
)

// Source 描述一个可抓取的端点。Selector 与 BaseURL 仅在 KindScrape 时使用
type Source struct {
	URL      string
	Kind     SourceKind
	Selector string
	BaseURL  string
}

// Group 一个编辑分组（地区、行业等），内部来源按优先级排列
type Group struct {
	Name    string
	Sources []Source
}

// Headline 归一化后的单条标题记录
type Headline struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	// Source 为所属分组名，与前端展示保持一致
	Source string `json:"source"`
}

// Article 单篇文章全文提取结果
type Article struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Content string `json:"content"`
}

// FetchError 抓取失败（网络错误、超时或非 2xx 状态）。
// 在标题采集链路中只做本地降级处理，不向上传播
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
