package handler

import (
	"net/http"

	"invoice-dashboard-backend/internal/middleware"
	"invoice-dashboard-backend/internal/services/auth"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Login checks the submitted credentials and starts a session.
func (h *Handler) Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	res := h.auth.Verify(c.Request.Context(), form.Email, form.Password)
	switch res.Kind {
	case auth.Authenticated:
		session := sessions.Default(c)
		session.Set(middleware.SessionUserIDKey, res.User.ID)
		session.Set(middleware.SessionUserEmailKey, res.User.Email)
		if err := session.Save(); err != nil {
			log.Error().Err(err).Msg("failed to save session")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
			return
		}
		c.Redirect(http.StatusSeeOther, DashboardPath)
	case auth.InvalidCredentials:
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
	}
}

func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
