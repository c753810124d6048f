package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func setupRequestIDRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRequestID(t *testing.T) {
	t.Run("gera um id quando o cliente não envia", func(t *testing.T) {
		r := setupRequestIDRouter()

		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		id := w.Header().Get(RequestIDHeader)
		if id == "" {
			t.Fatal("esperava header X-Request-Id na resposta")
		}
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("id gerado não é um UUID válido: %q", id)
		}
	})

	t.Run("preserva o id enviado pelo cliente", func(t *testing.T) {
		r := setupRequestIDRouter()

		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "abc-123" {
			t.Errorf("esperava id do cliente ecoado, obteve %q", got)
		}
	})
}
