package http

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const (
	signatureHeader = "Stripe-Signature"

	eventCheckoutCompleted = "checkout.session.completed"
	eventPaymentFailed     = "payment_intent.payment_failed"

	maxWebhookBodySize = 1 << 20
)

type WebhookHandler struct {
	paymentUC usecase.PaymentUC
	cfg       *cfg.WebhookCfg
	logger    logger.Logger

	// now подменяется в тестах для проверки окна допуска.
	now func() time.Time
}

func NewWebhookHandler(paymentUC usecase.PaymentUC, cfg *cfg.WebhookCfg, logger logger.Logger) *WebhookHandler {
	return &WebhookHandler{
		paymentUC: paymentUC,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// webhookEvent — входящее уведомление платёжного провайдера в формате Stripe.
type webhookEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID            string            `json:"id"`
			AmountTotal   int64             `json:"amount_total"`
			Amount        int64             `json:"amount"`
			PaymentIntent string            `json:"payment_intent"`
			Metadata      map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// handlePaymentWebhook
//
//	@Summary		Платёжное уведомление
//	@Description	Принимает подписанные события провайдера; повторная доставка безвредна
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			Stripe-Signature	header		string	true	"Подпись t=...,v1=..."
//	@Success		200					{object}	map[string]interface{}
//	@Failure		400					{object}	ErrorResponse	"Неверная подпись"
//	@Router			/webhooks/payment [post]
func (h *WebhookHandler) handlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBodySize))
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.verifySignature(r.Header.Get(signatureHeader), body); err != nil {
		h.logger.Warnf("payment webhook rejected: %s", err.Error())
		WriteError(w, err)
		return
	}

	var raw webhookEvent
	if err := json.Unmarshal(body, &raw); err != nil {
		h.logger.Warnf("payment webhook malformed body: %s", err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	event, ok := toPaymentEvent(&raw)
	if !ok {
		// Незнакомые типы событий подтверждаются без обработки,
		// иначе провайдер будет доставлять их бесконечно.
		h.logger.Debugf("payment webhook ignored: type=%s id=%s", raw.Type, raw.ID)
		WriteSuccess(w, http.StatusOK, map[string]interface{}{"received": true})
		return
	}

	if err := h.paymentUC.HandleEvent(r.Context(), event); err != nil {
		h.logger.Errorf(err, "payment webhook %s", raw.ID)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"received": true})
}

// verifySignature проверяет заголовок вида `t=<unix>,v1=<hex>`:
// HMAC-SHA256 от строки "<t>.<body>" на общем секрете, сравнение за
// константное время, метка времени в пределах окна допуска.
func (h *WebhookHandler) verifySignature(header string, body []byte) error {
	if header == "" {
		return e.Wrap("missing signature header", e.ErrWebhookVerificationFailed)
	}

	var (
		timestamp  string
		signatures []string
	)

	for _, part := range strings.Split(header, ",") {
		k, v, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch k {
		case "t":
			timestamp = v
		case "v1":
			signatures = append(signatures, v)
		}
	}

	if timestamp == "" || len(signatures) == 0 {
		return e.Wrap("malformed signature header", e.ErrWebhookVerificationFailed)
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return e.Wrap("bad timestamp", e.ErrWebhookVerificationFailed)
	}

	age := h.now().Sub(time.Unix(ts, 0))
	if age > h.cfg.Tolerance || age < -h.cfg.Tolerance {
		return e.Wrap("timestamp outside tolerance", e.ErrWebhookVerificationFailed)
	}

	mac := hmac.New(sha256.New, []byte(h.cfg.Secret))
	fmt.Fprintf(mac, "%s.%s", timestamp, body)
	expected := mac.Sum(nil)

	for _, sig := range signatures {
		decoded, err := hex.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(decoded, expected) {
			return nil
		}
	}

	return e.Wrap("signature mismatch", e.ErrWebhookVerificationFailed)
}

// toPaymentEvent переводит событие провайдера в доменное. Второе значение
// false означает тип, который сервис не обрабатывает.
func toPaymentEvent(raw *webhookEvent) (*domain.PaymentEvent, bool) {
	switch raw.Type {
	case eventCheckoutCompleted:
		paymentID := raw.Data.Object.PaymentIntent
		if paymentID == "" {
			paymentID = raw.Data.Object.ID
		}
		return domain.NewPaymentEvent(
			raw.ID,
			domain.PaymentEventCompleted,
			paymentID,
			raw.Data.Object.Metadata["userId"],
			raw.Data.Object.AmountTotal,
		), true
	case eventPaymentFailed:
		return domain.NewPaymentEvent(
			raw.ID,
			domain.PaymentEventFailed,
			raw.Data.Object.ID,
			raw.Data.Object.Metadata["userId"],
			raw.Data.Object.Amount,
		), true
	default:
		return nil, false
	}
}
