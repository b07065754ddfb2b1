package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reviewboard/internal/middleware"
	"reviewboard/internal/services"
	"reviewboard/internal/services/dto"
)

type ReviewHandler struct {
	*BaseHandler
	reviewService services.ReviewService
	authService   services.AuthService
}

func NewReviewHandler(base *BaseHandler, reviewService services.ReviewService, authService services.AuthService) *ReviewHandler {
	return &ReviewHandler{
		BaseHandler:   base,
		reviewService: reviewService,
		authService:   authService,
	}
}

// RegisterRoutes wires the review endpoints. Everything here is protected.
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reviews := rg.Group("/review/reviews")
	reviews.Use(middleware.TokenAuthMiddleware(h.authService))
	{
		reviews.GET("", h.List)
		reviews.POST("", h.Create)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	user, ok := h.GetAuthenticatedUser(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	reviews, err := h.reviewService.ListForUser(db, user)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	user, ok := h.GetAuthenticatedUser(c)
	if !ok {
		return
	}

	var req dto.CreateReviewRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	// ClientIP comes from the connection's remote address, never from the
	// request body.
	review, err := h.reviewService.CreateReview(db, user, c.ClientIP(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
