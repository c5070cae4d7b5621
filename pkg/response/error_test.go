package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorMiddleware())
	return r
}

func doGet(r *gin.Engine, path string) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)

	var body Response
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorMiddlewareRecoversPanic(t *testing.T) {
	r := newTestEngine()
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	w, body := doGet(r, "/boom")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if body.Code != 500 {
		t.Fatalf("code = %d, want 500", body.Code)
	}
}

func TestErrorMiddlewareRendersBizError(t *testing.T) {
	r := newTestEngine()
	r.GET("/biz", func(c *gin.Context) {
		_ = c.Error(NewError(40400, "记录不存在"))
	})

	w, body := doGet(r, "/biz")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body.Code != 40400 || body.Msg != "记录不存在" {
		t.Fatalf("body = %+v", body)
	}
}

func TestErrorMiddlewareRendersPlainError(t *testing.T) {
	r := newTestEngine()
	r.GET("/err", func(c *gin.Context) {
		_ = c.Error(errors.New("连接超时"))
	})

	_, body := doGet(r, "/err")
	if body.Code != 500 || body.Msg != "连接超时" {
		t.Fatalf("body = %+v", body)
	}
}
