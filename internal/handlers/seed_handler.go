package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func (h *Handler) Seed(c *gin.Context) {
	if err := h.seeder.Run(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.cache.Revalidate(c.Request.Context(), DashboardPath, InvoicesPath, CustomersPath); err != nil {
		log.Warn().Err(err).Msg("revalidation after seeding failed")
	}
	c.JSON(http.StatusOK, gin.H{"message": "Database seeded successfully"})
}
