package http

import (
	"net/http"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

type UserHandler struct {
	userUC usecase.UserUC
	logger logger.Logger
}

func NewUserHandler(userUC usecase.UserUC, logger logger.Logger) *UserHandler {
	return &UserHandler{userUC: userUC, logger: logger}
}

// getMe
//
//	@Summary	Профиль текущего пользователя
//	@Tags		users
//	@Produce	json
//	@Param		X-User-ID	header		string	true	"Идентичность пользователя"
//	@Success	200			{object}	UserResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/users/me [get]
func (h *UserHandler) getMe(w http.ResponseWriter, r *http.Request) {
	id := RequesterFromCtx(r.Context()).UserID

	user, err := h.userUC.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get user %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserResponse(user))
}
