package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки доменной валидации — не ретраятся, возвращаются вызывающему как типизированный отказ
	ErrNotAuthenticated  = fmt.Errorf("not authenticated")
	ErrProductNotFound   = fmt.Errorf("product not found")
	ErrItemNotFound      = fmt.Errorf("item not found in cart")
	ErrEmptyCart         = fmt.Errorf("cart is empty")
	ErrInvalidTransition = fmt.Errorf("invalid order status transition")
	ErrOrderNotFound     = fmt.Errorf("order not found")
	ErrUserNotFound      = fmt.Errorf("user not found")
	ErrForbidden         = fmt.Errorf("admin access required")

	// Ошибки хранилища
	ErrStoreUnavailable = fmt.Errorf("store unavailable")

	// Ошибки платёжных уведомлений.
	// ErrDuplicatePaymentEvent — повторная доставка уже обработанного события,
	// для вызывающего это успех (no-op), а не ошибка.
	ErrWebhookVerificationFailed = fmt.Errorf("webhook signature verification failed")
	ErrDuplicatePaymentEvent     = fmt.Errorf("duplicate payment event")

	// 400 Bad Request
	ErrInvalidQuantity      = fmt.Errorf("quantity must be positive")
	ErrProductNameRequired  = fmt.Errorf("product name is required")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrPricePrecision       = fmt.Errorf("price must have at most 2 decimal places")
	ErrInvalidSalePrice     = fmt.Errorf("sale price must not exceed price")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrAddressIncomplete    = fmt.Errorf("address is incomplete")
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrInternalServerError  = fmt.Errorf("internal server error")
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect env variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
