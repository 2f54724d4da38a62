package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, logger: logger}
}

type addItemBody struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityBody struct {
	Quantity int `json:"quantity"`
}

// getCart
//
//	@Summary	Корзина текущего пользователя
//	@Tags		cart
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность пользователя"
//	@Success	200			{object}	CartResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUC.Get(r.Context(), RequesterFromCtx(r.Context()).UserID)
	if err != nil {
		h.logger.Warnf("get cart: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// addItem
//
//	@Summary	Добавление товара в корзину
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string		true	"Идентичность пользователя"
//	@Param		body		body		addItemBody	true	"Товар и количество"
//	@Success	200			{object}	CartResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var body addItemBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := h.cartUC.AddItem(r.Context(), RequesterFromCtx(r.Context()).UserID, body.ProductID, body.Quantity)
	if err != nil {
		h.logger.Warnf("add item %s: %s", body.ProductID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// updateQuantity
//
//	@Summary	Установка количества позиции
//	@Description	Количество 0 и меньше удаляет позицию
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string				true	"Идентичность пользователя"
//	@Param		id			path		string				true	"ID товара"
//	@Param		body		body		updateQuantityBody	true	"Новое количество"
//	@Success	200			{object}	CartResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/cart/items/{id} [put]
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var body updateQuantityBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	productID := chi.URLParam(r, "id")

	cart, err := h.cartUC.UpdateQuantity(r.Context(), RequesterFromCtx(r.Context()).UserID, productID, body.Quantity)
	if err != nil {
		h.logger.Warnf("update quantity %s: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// removeItem
//
//	@Summary	Удаление позиции из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность пользователя"
//	@Param		id			path		string	true	"ID товара"
//	@Success	200			{object}	CartResponse
//	@Router		/cart/items/{id} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	cart, err := h.cartUC.RemoveItem(r.Context(), RequesterFromCtx(r.Context()).UserID, productID)
	if err != nil {
		h.logger.Warnf("remove item %s: %s", productID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность пользователя"
//	@Success	200			{object}	CartResponse
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cartUC.Clear(r.Context(), RequesterFromCtx(r.Context()).UserID)
	if err != nil {
		h.logger.Warnf("clear cart: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(cart))
}
