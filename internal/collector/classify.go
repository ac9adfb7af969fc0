package collector

import "strings"

// Format 响应体格式：订阅源（RSS/Atom）或普通 HTML
type Format int

const (
	FormatFeed Format = iota
	FormatHTML
)

// classifyFormat 判定响应体格式。声明为订阅源、或正文出现 <rss / <feed
// 标记时按订阅源处理；内容嗅探只向"识别出订阅源"的方向覆盖声明——
// 订阅源地址可能被重定向到 HTML 错误页，反向则不存在误判场景
func classifyFormat(declared SourceKind, body string) Format {
	if declared == KindFeed {
		return FormatFeed
	}
	if strings.Contains(body, "<rss") || strings.Contains(body, "<feed") {
		return FormatFeed
	}
	return FormatHTML
}
