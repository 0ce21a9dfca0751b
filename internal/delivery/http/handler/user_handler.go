package handler

import (
	"context"
	"net/http"

	entity "disaster-alert/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type IdentityService interface {
	Register(ctx context.Context, input *entity.RegisterInput) error
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (*entity.User, error)
}

type UserHandler struct {
	identity IdentityService
	resp     Responder
}

func NewUserHandler(identity IdentityService, resp Responder) *UserHandler {
	return &UserHandler{identity: identity, resp: resp}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email        string `json:"email" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Name         string `json:"name" binding:"required"`
	MobileNumber string `json:"mobile_number" binding:"required"`
	Location     string `json:"location" binding:"required"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       string `json:"gender"`
}

// Login godoc
// @Summary      User login
// @Description  Looks up the user by email and password. The JSON body is read even though the method is GET.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        body  body      handler.CredentialsRequest  true  "credentials"
// @Success      200   {object}  entity.Result
// @Router       /api/user [get]
func (h *UserHandler) Login(c *gin.Context) {
	h.login(c, h.identity.Authenticate)
}

// AdminLogin godoc
// @Summary      Admin login
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      handler.CredentialsRequest  true  "credentials"
// @Success      200   {object}  entity.Result
// @Router       /api/admin [get]
func (h *UserHandler) AdminLogin(c *gin.Context) {
	h.login(c, h.identity.AuthenticateAdmin)
}

func (h *UserHandler) login(c *gin.Context, authenticate func(context.Context, string, string) (*entity.User, error)) {
	var req CredentialsRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	user, err := authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.resp.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.Result{Status: entity.StatusSuccess, User: user})
}

// Register godoc
// @Summary      Register user
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        body  body      handler.RegisterRequest  true  "new user"
// @Success      200   {object}  entity.Result
// @Router       /api/user [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.resp.bindFailed(c, err)
		return
	}

	input := entity.RegisterInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		MobileNumber: req.MobileNumber,
		Location:     req.Location,
		DateOfBirth:  req.DateOfBirth,
		Gender:       req.Gender,
	}
	if err := h.identity.Register(c.Request.Context(), &input); err != nil {
		h.resp.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, entity.Success(entity.MsgUserRegistered))
}
