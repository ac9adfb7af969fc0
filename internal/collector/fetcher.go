package collector

import (
	"errors"
	"time"

	"github.com/gocolly/colly/v2"
)

const (
	defaultFetchTimeout = 12 * time.Second

	// 部分站点会拒绝默认客户端标识或返回阉割版页面，
	// 因此统一伪装成常见桌面浏览器
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	acceptHeader     = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguage   = "en-US,en;q=0.9,ru;q=0.8"
)

// Collector 新闻采集管线入口。所有实体均为每次调用新建的值，
// 不同调用之间没有共享可变状态，可并发使用
type Collector struct {
	timeout time.Duration
}

func New(timeout time.Duration) *Collector {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	return &Collector{timeout: timeout}
}

// fetchPage 对单个 URL 做一次带超时的 GET，返回原始响应体。
// 不做任何重试：对单次请求来说，抓取失败就是终态
func (c *Collector) fetchPage(pageURL string) ([]byte, error) {
	col := colly.NewCollector(colly.UserAgent(browserUserAgent))
	col.SetRequestTimeout(c.timeout)

	col.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept", acceptHeader)
		r.Headers.Set("Accept-Language", acceptLanguage)
	})

	var body []byte
	col.OnResponse(func(r *colly.Response) {
		body = r.Body
	})

	var reqErr error
	col.OnError(func(_ *colly.Response, err error) {
		reqErr = err
	})

	if err := col.Visit(pageURL); err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	if reqErr != nil {
		return nil, &FetchError{URL: pageURL, Err: reqErr}
	}
	if len(body) == 0 {
		return nil, &FetchError{URL: pageURL, Err: errors.New("empty response body")}
	}
	return body, nil
}
