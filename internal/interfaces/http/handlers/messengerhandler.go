package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamboard/teamboard/internal/domain/setting"
	"github.com/teamboard/teamboard/internal/infrastructure/messenger"
	"github.com/teamboard/teamboard/internal/shared/errors"
	"github.com/teamboard/teamboard/internal/shared/logger"
	"github.com/teamboard/teamboard/internal/shared/utils"
)

// UpdateMessengerConfigRequest replaces the stored messenger credentials.
type UpdateMessengerConfigRequest struct {
	APIKey    string `json:"api_key" validate:"required,min=8,max=255,printascii"`
	NumberKey string `json:"number_key" validate:"required,max=64,printascii"`
}

type MessengerHandler struct {
	status      messengerStatusChecker
	credentials messengerCredentialStore
	logger      logger.Interface
}

func NewMessengerHandler(status messengerStatusChecker, credentials messengerCredentialStore, logger logger.Interface) *MessengerHandler {
	return &MessengerHandler{
		status:      status,
		credentials: credentials,
		logger:      logger,
	}
}

// GetStatus checks the configured api key against the provider.
func (h *MessengerHandler) GetStatus(c *gin.Context) {
	status, err := h.status.CheckStatus(c.Request.Context())
	if err != nil {
		if messenger.IsAPIError(err) {
			h.logger.Warnw("messenger status check rejected by provider", "error", err)
			utils.ErrorResponse(c, http.StatusBadGateway, "messenger provider request failed")
			return
		}
		if !errors.IsConfigurationError(err) {
			h.logger.Errorw("messenger status check failed", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}

// UpdateConfig stores new credentials as the default messenger configuration.
func (h *MessengerHandler) UpdateConfig(c *gin.Context) {
	var req UpdateMessengerConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	req.APIKey = strings.TrimSpace(req.APIKey)
	req.NumberKey = strings.TrimSpace(req.NumberKey)
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.credentials.SaveMessengerCredential(c.Request.Context(), req.APIKey, req.NumberKey); err != nil {
		if stderrors.Is(err, setting.ErrMessengerCredentialsMissing) {
			utils.ErrorResponseWithError(c, errors.NewValidationError("api_key and number_key are required"))
			return
		}
		h.logger.Errorw("failed to save messenger config", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Messenger configuration updated", nil)
}
