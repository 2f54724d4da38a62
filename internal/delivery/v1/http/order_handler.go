package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type checkoutBody struct {
	ShippingAddress AddressBody `json:"shipping_address"`
	BillingAddress  AddressBody `json:"billing_address"`
	PaymentID       *string     `json:"payment_id,omitempty"`
}

// checkout
//
//	@Summary		Оформление заказа из корзины
//	@Description	Материализует корзину в заказ и очищает её
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string			true	"Идентичность пользователя"
//	@Param			body		body		checkoutBody	true	"Адреса доставки и оплаты"
//	@Success		201			{object}	OrderResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse	"Пустая корзина"
//	@Router			/orders [post]
func (h *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var body checkoutBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	identity := RequesterFromCtx(r.Context()).UserID

	order, err := h.orderUC.CreateFromCart(r.Context(), usecase.NewCheckoutReq(
		identity,
		body.ShippingAddress.toDomain(),
		body.BillingAddress.toDomain(),
		body.PaymentID,
	))
	if err != nil {
		h.logger.Warnf("checkout for %s: %s", identity, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// listMyOrders
//
//	@Summary	Заказы текущего пользователя, новые первыми
//	@Tags		orders
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность пользователя"
//	@Success	200			{array}		OrderResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/orders [get]
func (h *OrderHandler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	identity := RequesterFromCtx(r.Context()).UserID

	orders, err := h.orderUC.ListForUser(r.Context(), identity)
	if err != nil {
		h.logger.Warnf("list orders for %s: %s", identity, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderListResponse(orders))
}

// getOrder
//
//	@Summary		Заказ по идентификатору
//	@Description	Доступен владельцу и администратору; чужой заказ неотличим от несуществующего
//	@Tags			orders
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентичность пользователя"
//	@Param			id			path		string	true	"ID заказа"
//	@Success		200			{object}	OrderResponse
//	@Failure		404			{object}	ErrorResponse
//	@Router			/orders/{id} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.orderUC.GetByID(r.Context(), RequesterFromCtx(r.Context()), orderID)
	if err != nil {
		h.logger.Warnf("get order %s: %s", orderID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}
