package handler

import (
	"context"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Overview returns the data of the dashboard home page.
func (h *Handler) Overview(c *gin.Context) {
	h.cachedPage(c, func(ctx context.Context) (gin.H, error) {
		var (
			cards   *repository.CardData
			revenue []models.Revenue
			latest  []repository.LatestInvoice
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			cards, err = h.store.Dashboard.FetchCardData(gctx)
			return err
		})
		g.Go(func() (err error) {
			revenue, err = h.store.Revenue.FetchRevenue(gctx)
			return err
		})
		g.Go(func() (err error) {
			latest, err = h.store.Invoices.FetchLatestInvoices(gctx)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return gin.H{
			"cards":          cards,
			"revenue":        revenue,
			"latestInvoices": latest,
		}, nil
	})
}
