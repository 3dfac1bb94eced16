package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"invoice-dashboard-backend/internal/caching"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/auth"
	"invoice-dashboard-backend/internal/services/seed"
	"invoice-dashboard-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	DashboardPath = "/dashboard"
	InvoicesPath  = "/dashboard/invoices"
	CustomersPath = "/dashboard/customers"
)

type Handler struct {
	store  *repository.Store
	cache  caching.PageCache
	auth   *auth.Provider
	seeder *seed.Seeder
}

func NewHandler(store *repository.Store, cache caching.PageCache, provider *auth.Provider, seeder *seed.Seeder) *Handler {
	if cache == nil {
		cache = caching.NewNoopCache()
	}
	return &Handler{store: store, cache: cache, auth: provider, seeder: seeder}
}

// respondError writes the user-safe message of a repository error, or a
// generic one for anything else.
func respondError(c *gin.Context, err error) {
	var repoErr *repository.Error
	if errors.As(err, &repoErr) {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": repoErr.Msg})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong."})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := utils.ParseStringToInt(c.Param("id"))
	if err != nil || id < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func pageParam(c *gin.Context) int {
	page, err := utils.ParseStringToInt(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// cachedPage serves a JSON read response from the page cache, building and
// storing it on a miss. Cache faults count as misses.
func (h *Handler) cachedPage(c *gin.Context, build func(ctx context.Context) (gin.H, error)) {
	ctx := c.Request.Context()
	key := caching.Key(c.Request.URL.Path, c.Request.URL.RawQuery)

	data, ok, err := h.cache.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("page cache read failed")
	}
	if ok {
		c.Header("X-Cache", "HIT")
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	body, err := build(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	data, err = json.Marshal(body)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.cache.Set(ctx, key, data); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("page cache write failed")
	}
	c.Header("X-Cache", "MISS")
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// revalidateAndRedirect purges the cached pages a mutation touched and sends
// the client to the list page.
func (h *Handler) revalidateAndRedirect(c *gin.Context, location string, paths ...string) {
	if err := h.cache.Revalidate(c.Request.Context(), paths...); err != nil {
		log.Warn().Err(err).Strs("paths", paths).Msg("revalidation failed")
	}
	c.Redirect(http.StatusSeeOther, location)
}
