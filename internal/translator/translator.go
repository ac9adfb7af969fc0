// Package translator 封装对外部 AI 服务的调用：Google Gemini 直连优先，
// 失败后按顺序轮询 OpenRouter 备用 key，全部失败才向调用方报错
package translator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const (
	geminiEndpoint     = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"
	openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	openRouterModel    = "google/gemini-2.0-flash-exp:free"

	clientTimeout    = 60 * time.Second
	maxResponseBytes = 1 << 20 // 1MB
	maxContentRunes  = 4000
	temperature      = 0.3
)

// 请求动作：生成分析报告（默认）、Telegram 帖子、或标题集合分析
const (
	ActionAnalytics = "analytics"
	ActionTelegram  = "telegram"
	ActionHeadlines = "headlines_analysis"
)

// Client AI 摘要/分析服务客户端。对上层只暴露文本进、文本出的契约，
// 供应商切换细节全部收在这里
type Client struct {
	googleKey      string
	openRouterKeys []string
	siteURL        string
	httpClient     *http.Client
}

// Result 成功响应：生成的文本与实际使用的供应商/模型标识
type Result struct {
	Text  string
	Model string
}

func New(googleKey string, openRouterKeys []string, siteURL string) *Client {
	keys := make([]string, 0, len(openRouterKeys))
	for _, k := range openRouterKeys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if siteURL == "" {
		siteURL = "http://localhost:9000"
	}
	return &Client{
		googleKey:      googleKey,
		openRouterKeys: keys,
		siteURL:        siteURL,
		httpClient:     &http.Client{Timeout: clientTimeout},
	}
}

// Summarize 按 action 生成提示词并依次尝试各个供应商。
// 返回第一个成功的结果；全部失败时返回最后一次的错误
func (c *Client) Summarize(content, title, action string) (Result, error) {
	prompt := buildPrompt(content, title, action)

	var lastErr error

	if c.googleKey != "" {
		text, err := c.callGemini(prompt)
		if err == nil && text != "" {
			return Result{Text: text, Model: "Google Direct (Gemini 2.0 Flash)"}, nil
		}
		if err != nil {
			log.Printf("translator: gemini direct failed: %v", err)
			lastErr = err
		}
	}

	if len(c.openRouterKeys) == 0 {
		if lastErr != nil {
			return Result{}, lastErr
		}
		return Result{}, errors.New("no AI provider keys configured")
	}

	for i, key := range c.openRouterKeys {
		text, model, err := c.callOpenRouter(prompt, key)
		if err != nil {
			log.Printf("translator: openrouter key #%d failed: %v", i+1, err)
			lastErr = err
			continue
		}
		if text != "" {
			return Result{Text: text, Model: fmt.Sprintf("OpenRouter Key #%d (%s)", i+1, model)}, nil
		}
	}

	if lastErr == nil {
		lastErr = errors.New("all providers returned empty output")
	}
	return Result{}, fmt.Errorf("all AI providers exhausted: %w", lastErr)
}

// buildPrompt 生成提示词。产品面向俄语用户，输出语言固定为俄语
func buildPrompt(content, title, action string) string {
	if rs := []rune(content); len(rs) > maxContentRunes {
		content = string(rs[:maxContentRunes]) + "..."
	}
	if title == "" {
		title = "Без заголовка"
	}

	switch action {
	case ActionTelegram:
		return "Ты — профессиональный SMM-менеджер и историк. Составь пост для Telegram на основе следующей статьи.\n" +
			"Твой ответ должен быть на РУССКОМ языке и состоять из двух частей:\n" +
			"1. **Главное из статьи:** (Краткий пересказ ключевых моментов).\n" +
			"2. **Похожее событие в мировой истории:** (Проведи параллель с событием из прошлого, объяснив, в чем сходство).\n" +
			"Не используй эмодзи и хэштеги.\n\n" +
			"Заголовок: " + title + "\nКонтент: " + content
	case ActionHeadlines:
		return "Ты — эксперт по медиа-анализу и когнитивной психологии. Проанализируй заголовки:\n" +
			"1. **🌍 Общая повестка дня:** (О чем кричат все заголовки).\n" +
			"2. **🧠 Вектор влияния:** (Какое мнение навязывают).\n" +
			"3. **⚠️ Скрытые манипуляции:** (На что обратить внимание).\n" +
			"Заголовки для анализа:\n" + content
	default:
		return "Ты — эксперт-аналитик. Составь краткий отчет на РУССКОМ языке:\n" +
			"1. **📌 Суть статьи:** (1-2 абзаца).\n" +
			"2. **⚖️ Влияние на политику:** (Геополитика и законы).\n" +
			"3. **📈 Влияние на рынок акций:** (Секторы и компании).\n\n" +
			"Заголовок: " + title + "\nКонтент: " + content
	}
}

func (c *Client) callGemini(prompt string) (string, error) {
	reqBody := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{"temperature": temperature},
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, geminiEndpoint+"?key="+c.googleKey, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini: status %d", resp.StatusCode)
	}

	var out struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini: empty candidates")
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}

func (c *Client) callOpenRouter(prompt, key string) (text, model string, err error) {
	reqBody := map[string]any{
		"model":       openRouterModel,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
		"temperature": temperature,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequest(http.MethodPost, openRouterEndpoint, bytes.NewReader(payload))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("HTTP-Referer", c.siteURL)
	req.Header.Set("X-Title", "NewsPulse")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("openrouter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("openrouter: status %d", resp.StatusCode)
	}

	var out struct {
		Model   string `json:"model"`
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", "", fmt.Errorf("openrouter: decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", "", errors.New("openrouter: empty choices")
	}
	return out.Choices[0].Message.Content, out.Model, nil
}
