package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/LJTian/NewsPulse/internal/collector"
	"github.com/LJTian/NewsPulse/internal/translator"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// store 为 nil：下列用例只触发在访问存储层之前就返回的分支
	s := NewServer(nil, collector.New(2*time.Second), translator.New("", nil, ""))
	s.RegisterRoutes(r)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}
}

func TestParseMissingURLReturns400(t *testing.T) {
	r := newTestRouter()

	// url 缺失：应立即 400，不发起任何网络请求
	w := doJSON(r, http.MethodPost, "/api/parse", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "URL is required") {
		t.Fatalf("missing error message: %s", w.Body.String())
	}

	// 畸形 JSON 同样按 400 处理
	w = doJSON(r, http.MethodPost, "/api/parse", `{"url": `)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed body status = %d, want 400", w.Code)
	}
}

func TestParseUnreachableURLReturns500WithDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // 拿一个必然连不上的地址

	r := newTestRouter()
	w := doJSON(r, http.MethodPost, "/api/parse", `{"url":"`+srv.URL+`"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "error") || !strings.Contains(body, "details") {
		t.Fatalf("structured error expected, got: %s", body)
	}
}

func TestTranslateMissingContentReturns400(t *testing.T) {
	r := newTestRouter()
	w := doJSON(r, http.MethodPost, "/api/translate", `{"title":"x"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Content is required") {
		t.Fatalf("missing error message: %s", w.Body.String())
	}
}

func TestTranslateNoProvidersReturns500(t *testing.T) {
	// 没配置任何 key：失败也必须是结构化错误
	r := newTestRouter()
	w := doJSON(r, http.MethodPost, "/api/translate", `{"content":"some article text"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "details") {
		t.Fatalf("details expected in error body: %s", w.Body.String())
	}
}
