package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntonTsoy/jwt-auth-api/internal/metrics"
	"github.com/AntonTsoy/jwt-auth-api/internal/model"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Register(router gin.IRouter) {
	router.POST("/auth/login", h.Login)
	router.POST("/auth/refresh", h.Refresh)
	router.POST("/auth/logout", h.Logout)
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	pair, err := h.service.Login(req.Email, req.Password, c.ClientIP())
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, model.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue tokens"})
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	accessToken, err := h.service.Refresh(req.RefreshToken, c.ClientIP())
	if err != nil {
		metrics.TokenRefreshes.WithLabelValues("failure").Inc()
		// Expired, forged, revoked and mismatched tokens all surface as the
		// same unauthorized outcome.
		if errors.Is(err, model.ErrMalformedToken) ||
			errors.Is(err, model.ErrExpiredToken) ||
			errors.Is(err, model.ErrIdentityMismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh token"})
		return
	}

	metrics.TokenRefreshes.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func (h *Handler) Logout(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "refreshToken is required"})
		return
	}

	if err := h.service.Logout(req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.Status(http.StatusNoContent)
}
