package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"disaster-alert/internal/delivery/http/middleware"
	entity "disaster-alert/internal/domain"
	"disaster-alert/internal/mailer"
	"disaster-alert/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Validation errors report the json name of a field, not the Go one.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonFieldName)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Responder writes service outcomes. In compatibility mode every in-body
// result is answered with 200; Strict maps them to 4xx codes. Store and
// provider failures are always 5xx.
type Responder struct {
	Strict bool
	Logger *zap.Logger
}

func (r Responder) status(strict int) int {
	if r.Strict {
		return strict
	}
	return http.StatusOK
}

func (r Responder) missing(c *gin.Context, field string) {
	c.JSON(r.status(http.StatusBadRequest), entity.Failure(field+" is required"))
}

// bindFailed answers a body that failed binding: a required field that is
// absent or empty is named, anything else is a malformed body.
func (r Responder) bindFailed(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		r.missing(c, verrs[0].Field())
		return
	}
	c.JSON(r.status(http.StatusBadRequest), entity.Failure(entity.MsgInvalidBody))
}

func (r Responder) fail(c *gin.Context, err error) {
	var perr *mailer.ProviderError
	switch {
	case errors.Is(err, service.ErrUserExists):
		c.JSON(r.status(http.StatusConflict), entity.Failure(entity.MsgUserExists))
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(r.status(http.StatusUnauthorized), entity.Failure(entity.MsgInvalidCredentials))
	case errors.Is(err, service.ErrProviderNotConfigured):
		c.JSON(http.StatusServiceUnavailable, entity.Failure(entity.MsgProviderUnavailable))
	case errors.As(err, &perr):
		c.JSON(http.StatusBadGateway, entity.Failure(perr.Error()))
	default:
		r.Logger.Error("request failed",
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, entity.Failure(entity.MsgInternalError))
	}
}
