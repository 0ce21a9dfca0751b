package handler

import (
	"context"
	"net/http"

	entity "disaster-alert/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type NotificationService interface {
	Add(ctx context.Context, input *entity.AddNotificationInput) (*entity.Notification, error)
	ListByAdmin(ctx context.Context, email string) ([]entity.Notification, error)
	ListByLocation(ctx context.Context, location string) ([]entity.Notification, error)
}

type NotificationHandler struct {
	notifications NotificationService
	resp          Responder
}

func NewNotificationHandler(notifications NotificationService, resp Responder) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, resp: resp}
}

type AddNotificationRequest struct {
	Email    string `json:"email" binding:"required"`
	Location string `json:"location" binding:"required"`
	Severity string `json:"severity"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Text     string `json:"text" binding:"required"`
}

type AdminNotificationsRequest struct {
	Email string `json:"email"`
}

type LocationNotificationsRequest struct {
	Location string `json:"location"`
}

// AddNotification godoc
// @Summary      Issue a notification
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        body  body      handler.AddNotificationRequest  true  "notification"
// @Success      200   {object}  entity.Result
// @Router       /api/notification [post]
func (h *NotificationHandler) AddNotification(c *gin.Context) {
	var req AddNotificationRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	_, err := h.notifications.Add(c.Request.Context(), &entity.AddNotificationInput{
		Email:    req.Email,
		Location: req.Location,
		Severity: req.Severity,
		Date:     req.Date,
		Time:     req.Time,
		Text:     req.Text,
	})
	if err != nil {
		h.resp.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.Success(entity.MsgNotificationAdded))
}

// ListByAdmin godoc
// @Summary      Notifications issued by an admin
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        body  body      handler.AdminNotificationsRequest  true  "admin email"
// @Success      200   {array}   entity.Notification
// @Router       /api/notification/admin [get]
func (h *NotificationHandler) ListByAdmin(c *gin.Context) {
	var req AdminNotificationsRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	list, err := h.notifications.ListByAdmin(c.Request.Context(), req.Email)
	h.list(c, list, err)
}

// ListByLocation godoc
// @Summary      Notifications for a location
// @Tags         Notification
// @Accept       json
// @Produce      json
// @Param        body  body      handler.LocationNotificationsRequest  true  "location"
// @Success      200   {array}   entity.Notification
// @Router       /api/notification/location [get]
func (h *NotificationHandler) ListByLocation(c *gin.Context) {
	var req LocationNotificationsRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	list, err := h.notifications.ListByLocation(c.Request.Context(), req.Location)
	h.list(c, list, err)
}

func (h *NotificationHandler) list(c *gin.Context, list []entity.Notification, err error) {
	if err != nil {
		h.resp.fail(c, err)
		return
	}
	if list == nil {
		list = []entity.Notification{}
	}
	c.JSON(http.StatusOK, list)
}
