package collector

import "strings"

// filterRelevant 按词表做主题相关性过滤：标题（小写）含任一关键词即保留，
// 按原始顺序取前 finalLimit 条。
// 兜底规则：一条都没匹配时返回未过滤序列的第一条——有产出的来源
// 绝不能在结果里"看起来挂了"，偶尔放出一条离题标题是可接受的代价
func filterRelevant(candidates []Headline, lexicon []string, finalLimit int) []Headline {
	if len(candidates) == 0 {
		return nil
	}

	out := make([]Headline, 0, finalLimit)
	for _, cand := range candidates {
		if len(out) >= finalLimit {
			break
		}
		if titleMatchesLexicon(cand.Title, lexicon) {
			out = append(out, cand)
		}
	}

	if len(out) == 0 {
		return candidates[:1]
	}
	return out
}

func titleMatchesLexicon(title string, lexicon []string) bool {
	lower := strings.ToLower(title)
	for _, kw := range lexicon {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
