package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewboard/internal/middleware"
	"reviewboard/internal/services"
	"reviewboard/internal/services/dto"
)

type UserHandler struct {
	*BaseHandler
	accountService services.AccountService
	authService    services.AuthService
}

func NewUserHandler(base *BaseHandler, accountService services.AccountService, authService services.AuthService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		accountService: accountService,
		authService:    authService,
	}
}

// RegisterRoutes wires the user endpoints. create and token are public;
// me requires a bearer token.
func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup) {
	user := rg.Group("/user")
	{
		user.POST("/create", h.Create)
		user.POST("/token", h.Token)
	}

	me := rg.Group("/user/me")
	me.Use(middleware.TokenAuthMiddleware(h.authService))
	{
		me.GET("", h.Me)
		me.PATCH("", h.UpdateMe)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	user, err := h.accountService.CreateUser(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}

func (h *UserHandler) Token(c *gin.Context) {
	var req dto.TokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	token, err := h.authService.IssueToken(db, req.Email, req.Password)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: token.Key})
}

func (h *UserHandler) Me(c *gin.Context) {
	user, ok := h.GetAuthenticatedUser(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		Name:  user.Name,
		Email: user.Email,
	})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := h.GetAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.UpdateMeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	updated, err := h.accountService.UpdateUser(db, user, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MeResponse{
		Name:  updated.Name,
		Email: updated.Email,
	})
}
