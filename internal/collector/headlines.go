package collector

import (
	"log"
	"sync"
)

const (
	// finalLimit：单个分组最多贡献到结果里的条数
	defaultFinalLimit = 2
	tightFinalLimit   = 1

	// fetchLimit：过滤前从单个来源拉取的原始候选条数。
	// 主题过滤需要更大的池子才有机会命中关键词
	topicFetchLimit   = 15
	defaultFetchLimit = 8
)

func finalLimitForCategory(category string) int {
	if category == CategoryFinance || category == CategoryReliability {
		return tightFinalLimit
	}
	return defaultFinalLimit
}

// Headlines 采集某类别的全部分组并汇总。每个分组一个 goroutine，
// 各自持有本地累加器，join 之后才合并——分组之间没有共享可变状态，
// 不需要任何锁。结果保持分组声明顺序，总体失败时返回空序列而非错误
func (c *Collector) Headlines(category string) []Headline {
	groups := GroupsForCategory(category)
	finalLimit := finalLimitForCategory(category)
	scoped := topicScoped(category)

	fetchLimit := defaultFetchLimit
	if scoped {
		fetchLimit = topicFetchLimit
	}

	return c.collectAll(groups, scoped, finalLimit, fetchLimit)
}

// collectAll 并发跑完所有分组后合并
func (c *Collector) collectAll(groups []Group, scoped bool, finalLimit, fetchLimit int) []Headline {
	results := make([][]Headline, len(groups))
	var wg sync.WaitGroup
	for i, g := range groups {
		wg.Add(1)
		go func(idx int, group Group) {
			defer wg.Done()
			results[idx] = c.collectGroup(group, scoped, finalLimit, fetchLimit)
		}(i, g)
	}
	wg.Wait()

	// 跨分组按链接精确去重，先到先得
	merged := make([]Headline, 0, len(groups)*finalLimit)
	seenLinks := make(map[string]struct{}, len(groups)*finalLimit)
	for _, groupItems := range results {
		for _, h := range groupItems {
			if _, dup := seenLinks[h.Link]; dup {
				continue
			}
			seenLinks[h.Link] = struct{}{}
			merged = append(merged, h)
		}
	}
	return merged
}

// collectGroup 按声明顺序串行遍历分组内的来源，配额满即提前停止——
// 靠前的来源优先级更高，后面的直接跳过。
// 单个来源的任何失败都折算成"零条"并继续，绝不让一个坏源拖垮整组
func (c *Collector) collectGroup(group Group, scoped bool, finalLimit, fetchLimit int) []Headline {
	acc := make([]Headline, 0, finalLimit)

	for _, src := range group.Sources {
		if len(acc) >= finalLimit {
			break
		}

		candidates, err := c.collectSource(src, group.Name, fetchLimit)
		if err != nil {
			log.Printf("collect group %q source %s: %v", group.Name, src.URL, err)
			continue
		}
		if len(candidates) == 0 {
			continue
		}

		if scoped {
			candidates = filterRelevant(candidates, reliabilityLexicon, finalLimit)
		}

		for _, h := range candidates {
			if len(acc) >= finalLimit {
				break
			}
			if groupHasTitle(acc, h.Title) {
				continue
			}
			acc = append(acc, h)
		}
	}

	return acc
}

// groupHasTitle 分组内按标题精确去重（跨分组去重只看链接）
func groupHasTitle(acc []Headline, title string) bool {
	for _, h := range acc {
		if h.Title == title {
			return true
		}
	}
	return false
}

// collectSource 采集单个来源的候选集：抓取 → 格式判定 → 抽取
func (c *Collector) collectSource(src Source, groupName string, fetchLimit int) ([]Headline, error) {
	body, err := c.fetchPage(src.URL)
	if err != nil {
		return nil, err
	}

	if classifyFormat(src.Kind, string(body)) == FormatFeed {
		return extractFeedItems(body, groupName, fetchLimit), nil
	}
	return extractScrapeItems(body, src, groupName, fetchLimit), nil
}
