package collector

import "testing"

func TestFilterRelevantKeepsOnlyMatches(t *testing.T) {
	lexicon := []string{"maintenance", "ремонт"}
	candidates := []Headline{
		{Title: "Quarterly earnings beat expectations", Link: "l1"},
		{Title: "Predictive Maintenance cuts downtime in half", Link: "l2"},
		{Title: "Завод запускает программу планового ремонта", Link: "l3"},
		{Title: "Celebrity gossip of the week", Link: "l4"},
	}

	out := filterRelevant(candidates, lexicon, 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(out), out)
	}
	// 匹配大小写不敏感，保持原始顺序
	if out[0].Link != "l2" || out[1].Link != "l3" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestFilterRelevantRespectsFinalLimit(t *testing.T) {
	lexicon := []string{"plant"}
	candidates := []Headline{
		{Title: "Plant upgrade one", Link: "l1"},
		{Title: "Plant upgrade two", Link: "l2"},
		{Title: "Plant upgrade three", Link: "l3"},
	}

	out := filterRelevant(candidates, lexicon, 1)
	if len(out) != 1 || out[0].Link != "l1" {
		t.Fatalf("final limit not respected: %+v", out)
	}
}

func TestFilterRelevantFallbackToFirstCandidate(t *testing.T) {
	lexicon := []string{"maintenance"}
	candidates := []Headline{
		{Title: "Completely unrelated headline", Link: "l1"},
		{Title: "Another unrelated headline", Link: "l2"},
	}

	// 零命中时兜底返回未过滤序列的第一条：有产出的来源不能看起来是空的
	out := filterRelevant(candidates, lexicon, 2)
	if len(out) != 1 {
		t.Fatalf("fallback should return exactly one item, got %d", len(out))
	}
	if out[0].Link != "l1" {
		t.Fatalf("fallback should return the first raw candidate: %+v", out[0])
	}
}

func TestFilterRelevantEmptyInput(t *testing.T) {
	if out := filterRelevant(nil, []string{"x"}, 2); len(out) != 0 {
		t.Fatalf("empty input should yield empty output, got %+v", out)
	}
}
