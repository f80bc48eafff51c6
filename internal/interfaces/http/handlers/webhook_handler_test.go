package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	domainerrors "agency-platform.backend/internal/domain/errors"
)

type paymentCompleterStub struct {
	completeFn func(ctx context.Context, paymentReference string) error
}

func (s paymentCompleterStub) CompletePayment(ctx context.Context, paymentReference string) error {
	return s.completeFn(ctx, paymentReference)
}

func TestWebhookHandler_HandlePaymentWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad request", func(t *testing.T) {
		r := gin.New()
		h := NewWebhookHandler(paymentCompleterStub{
			completeFn: func(context.Context, string) error {
				t.Fatal("should not be called")
				return nil
			},
		})
		r.POST("/webhooks/payments", h.HandlePaymentWebhook)

		req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown event acknowledged without processing", func(t *testing.T) {
		r := gin.New()
		h := NewWebhookHandler(paymentCompleterStub{
			completeFn: func(context.Context, string) error {
				t.Fatal("should not be called")
				return nil
			},
		})
		r.POST("/webhooks/payments", h.HandlePaymentWebhook)

		body := `{"eventType":"payment.created","reference":"pay_123","timestamp":"2026-08-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown reference", func(t *testing.T) {
		r := gin.New()
		h := NewWebhookHandler(paymentCompleterStub{
			completeFn: func(context.Context, string) error {
				return domainerrors.ErrNotFound
			},
		})
		r.POST("/webhooks/payments", h.HandlePaymentWebhook)

		body := `{"eventType":"payment.completed","reference":"pay_unknown"}`
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
		}
	})

	t.Run("completes the payment", func(t *testing.T) {
		r := gin.New()
		h := NewWebhookHandler(paymentCompleterStub{
			completeFn: func(_ context.Context, reference string) error {
				if reference != "pay_123" {
					t.Fatalf("unexpected reference: %s", reference)
				}
				return nil
			},
		})
		r.POST("/webhooks/payments", h.HandlePaymentWebhook)

		body := `{"eventType":"payment.completed","reference":"pay_123","timestamp":"2026-08-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/webhooks/payments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"received":true`)) {
			t.Fatalf("expected success payload, body=%s", w.Body.String())
		}
	})
}
