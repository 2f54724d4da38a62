package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type AdminHandler struct {
	catalogUC usecase.CatalogUC
	orderUC   usecase.OrderUC
	userUC    usecase.UserUC
	logger    logger.Logger
}

func NewAdminHandler(catalogUC usecase.CatalogUC, orderUC usecase.OrderUC, userUC usecase.UserUC, logger logger.Logger) *AdminHandler {
	return &AdminHandler{catalogUC: catalogUC, orderUC: orderUC, userUC: userUC, logger: logger}
}

// saveProductBody — тело создания/обновления товара. Цены приходят строками
// («599.99») и конвертируются в центы на границе.
type saveProductBody struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	OnSale      bool     `json:"on_sale"`
	SalePrice   *string  `json:"sale_price,omitempty"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
}

type updateStatusBody struct {
	Status string `json:"status"`
}

type setAdminBody struct {
	IsAdmin bool `json:"is_admin"`
}

func (b *saveProductBody) toReq() (*usecase.SaveProductReq, error) {
	priceCents, err := parsePriceToCents(b.Price)
	if err != nil {
		return nil, err
	}

	req := &usecase.SaveProductReq{
		Name:        b.Name,
		Description: b.Description,
		PriceCents:  priceCents,
		OnSale:      b.OnSale,
		Images:      b.Images,
		Category:    b.Category,
		Stock:       b.Stock,
	}

	if b.SalePrice != nil {
		saleCents, err := parsePriceToCents(*b.SalePrice)
		if err != nil {
			return nil, e.Wrap("sale_price", err)
		}
		req.SalePriceCents = &saleCents
	}

	return req, nil
}

// createProduct
//
//	@Summary	Создание товара
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string			true	"Идентичность администратора"
//	@Param		X-Admin		header		string			true	"Флаг администратора"
//	@Param		body		body		saveProductBody	true	"Товар"
//	@Success	201			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/admin/products [post]
func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var body saveProductBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	req, err := body.toReq()
	if err != nil {
		h.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUC.CreateProduct(r.Context(), req)
	if err != nil {
		h.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary	Обновление товара
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string			true	"Идентичность администратора"
//	@Param		X-Admin		header		string			true	"Флаг администратора"
//	@Param		id			path		string			true	"ID товара"
//	@Param		body		body		saveProductBody	true	"Товар"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/admin/products/{id} [put]
func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var body saveProductBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	req, err := body.toReq()
	if err != nil {
		h.logger.Warnf("update product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUC.UpdateProduct(r.Context(), id, req)
	if err != nil {
		h.logger.Warnf("update product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// archiveProduct
//
//	@Summary		Архивация товара
//	@Description	Мягкое удаление: товар пропадает из листинга, но остаётся доступным по ID
//	@Tags			admin
//	@Produce		json
//	@Param			X-User-ID	header		string	true	"Идентичность администратора"
//	@Param			X-Admin		header		string	true	"Флаг администратора"
//	@Param			id			path		string	true	"ID товара"
//	@Success		200			{object}	map[string]interface{}
//	@Failure		404			{object}	ErrorResponse
//	@Router			/admin/products/{id} [delete]
func (h *AdminHandler) archiveProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogUC.ArchiveProduct(r.Context(), id); err != nil {
		h.logger.Warnf("archive product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"archived": true,
	})
}

// listRecentOrders
//
//	@Summary	Последние заказы магазина
//	@Tags		admin
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность администратора"
//	@Param		X-Admin		header		string	true	"Флаг администратора"
//	@Param		limit		query		int		false	"Максимум заказов"
//	@Success	200			{array}		OrderResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/admin/orders [get]
func (h *AdminHandler) listRecentOrders(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := h.orderUC.ListRecent(r.Context(), limit)
	if err != nil {
		h.logger.Warnf("list recent orders: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderListResponse(orders))
}

// updateOrderStatus
//
//	@Summary		Смена статуса заказа
//	@Description	Допускаются только переходы вперёд по жизненному циклу
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			X-User-ID	header		string				true	"Идентичность администратора"
//	@Param			X-Admin		header		string				true	"Флаг администратора"
//	@Param			id			path		string				true	"ID заказа"
//	@Param			body		body		updateStatusBody	true	"Новый статус"
//	@Success		200			{object}	OrderResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse	"Недопустимый переход"
//	@Router			/admin/orders/{id}/status [patch]
func (h *AdminHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body updateStatusBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	orderID := chi.URLParam(r, "id")

	order, err := h.orderUC.UpdateStatus(r.Context(), orderID, domain.OrderStatus(body.Status))
	if err != nil {
		h.logger.Warnf("update order %s status to %s: %s", orderID, body.Status, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// listUsers
//
//	@Summary	Список пользователей
//	@Tags		admin
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность администратора"
//	@Param		X-Admin		header		string	true	"Флаг администратора"
//	@Success	200			{array}		UserResponse
//	@Failure	403			{object}	ErrorResponse
//	@Router		/admin/users [get]
func (h *AdminHandler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUC.List(r.Context())
	if err != nil {
		h.logger.Warnf("list users: %s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, *toUserResponse(&users[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// setUserAdmin
//
//	@Summary	Выдача или снятие админского флага
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		X-User-ID	header		string			true	"Идентичность администратора"
//	@Param		X-Admin		header		string			true	"Флаг администратора"
//	@Param		id			path		string			true	"ID пользователя"
//	@Param		body		body		setAdminBody	true	"Новое значение флага"
//	@Success	200			{object}	map[string]interface{}
//	@Failure	404			{object}	ErrorResponse
//	@Router		/admin/users/{id}/admin [patch]
func (h *AdminHandler) setUserAdmin(w http.ResponseWriter, r *http.Request) {
	var body setAdminBody
	if err := decodeJSONBody(r, &body); err != nil {
		WriteError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.userUC.SetAdmin(r.Context(), id, body.IsAdmin); err != nil {
		h.logger.Warnf("set admin %s=%t: %s", id, body.IsAdmin, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"is_admin": body.IsAdmin,
	})
}
