package http

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookSecret = "whsec_test"

type fakePaymentUC struct {
	events []*domain.PaymentEvent
	err    error
}

func (f *fakePaymentUC) HandleEvent(_ context.Context, event *domain.PaymentEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func newWebhookHandler(paymentUC *fakePaymentUC, now time.Time) *WebhookHandler {
	h := NewWebhookHandler(paymentUC, &cfg.WebhookCfg{
		Secret:    testWebhookSecret,
		Tolerance: 5 * time.Minute,
	}, logger.Discard{})
	h.now = func() time.Time { return now }
	return h
}

func signBody(secret string, ts time.Time, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts.Unix(), body)
	return fmt.Sprintf("t=%d,v1=%s", ts.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func postWebhook(h *WebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/payment", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set(signatureHeader, signature)
	}

	rec := httptest.NewRecorder()
	h.handlePaymentWebhook(rec, req)
	return rec
}

func TestWebhookAcceptsSignedCompletedEvent(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	body := []byte(`{
		"id": "evt_1",
		"type": "checkout.session.completed",
		"data": {"object": {
			"id": "cs_1",
			"amount_total": 2500,
			"payment_intent": "pi_1",
			"metadata": {"userId": "user-1"}
		}}
	}`)

	rec := postWebhook(h, body, signBody(testWebhookSecret, now, body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, paymentUC.events, 1)

	event := paymentUC.events[0]
	assert.Equal(t, "evt_1", event.EventID)
	assert.Equal(t, domain.PaymentEventCompleted, event.Type)
	assert.Equal(t, "pi_1", event.PaymentID)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, int64(2500), event.AmountCents)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	body := []byte(`{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {}}}`)

	rec := postWebhook(h, body, signBody("whsec_wrong", now, body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, paymentUC.events)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, time.Now())

	rec := postWebhook(h, []byte(`{}`), "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, paymentUC.events)
}

func TestWebhookRejectsTamperedBody(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	signed := []byte(`{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {"amount_total": 2500}}}`)
	tampered := []byte(`{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {"amount_total": 1}}}`)

	rec := postWebhook(h, tampered, signBody(testWebhookSecret, now, signed))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, paymentUC.events)
}

func TestWebhookRejectsStaleTimestamp(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	body := []byte(`{"id": "evt_1", "type": "checkout.session.completed", "data": {"object": {}}}`)

	rec := postWebhook(h, body, signBody(testWebhookSecret, now.Add(-10*time.Minute), body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, paymentUC.events)
}

func TestWebhookIgnoresUnknownEventType(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	body := []byte(`{"id": "evt_2", "type": "refund.created", "data": {"object": {}}}`)

	rec := postWebhook(h, body, signBody(testWebhookSecret, now, body))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, paymentUC.events)
}

func TestWebhookMapsFailedEvent(t *testing.T) {
	now := time.Now()
	paymentUC := &fakePaymentUC{}
	h := newWebhookHandler(paymentUC, now)

	body := []byte(`{
		"id": "evt_3",
		"type": "payment_intent.payment_failed",
		"data": {"object": {
			"id": "pi_9",
			"amount": 900,
			"metadata": {"userId": "user-2"}
		}}
	}`)

	rec := postWebhook(h, body, signBody(testWebhookSecret, now, body))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, paymentUC.events, 1)

	event := paymentUC.events[0]
	assert.Equal(t, domain.PaymentEventFailed, event.Type)
	assert.Equal(t, "pi_9", event.PaymentID)
	assert.Equal(t, int64(900), event.AmountCents)
}
