package handler

import (
	"context"
	"net/http"

	entity "disaster-alert/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type EmailService interface {
	SendAlert(ctx context.Context, input *entity.SendAlertInput) (entity.ProviderResponse, error)
}

type EmailHandler struct {
	email EmailService
	resp  Responder
}

func NewEmailHandler(email EmailService, resp Responder) *EmailHandler {
	return &EmailHandler{email: email, resp: resp}
}

type SendEmailRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name"`
	Severity string `json:"severity" binding:"required"`
	Body     string `json:"body" binding:"required"`
}

// SendEmail godoc
// @Summary      Send an alert email
// @Description  The severity becomes the email subject. The provider's response is returned as-is.
// @Tags         Email
// @Accept       json
// @Produce      json
// @Param        body  body      handler.SendEmailRequest  true  "alert"
// @Success      200   {object}  map[string]interface{}
// @Failure      502   {object}  entity.Result
// @Failure      503   {object}  entity.Result
// @Router       /api/send_email [post]
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	resp, err := h.email.SendAlert(c.Request.Context(), &entity.SendAlertInput{
		Email:    req.Email,
		Name:     req.Name,
		Severity: req.Severity,
		Body:     req.Body,
	})
	if err != nil {
		h.resp.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
