package handler

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"invoice-dashboard-backend/internal/models"
	"invoice-dashboard-backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// csv columns: customer_email, amount (dollars), status, date
const importColumns = 4

var importDateLayouts = []string{"2006-01-02", "02-01-2006"}

func parseImportDate(s string) (t time.Time, err error) {
	for _, layout := range importDateLayouts {
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// ImportInvoices upserts invoices from an uploaded CSV file. Rows that do not
// parse or reference an unknown customer are skipped and counted.
func (h *Handler) ImportInvoices(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	if _, err := reader.Read(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read CSV header"})
		return
	}

	inserted, skipped, rowNum := 0, 0, 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			log.Warn().Err(err).Int("row", rowNum).Msg("skipping malformed csv row")
			skipped++
			continue
		}
		if len(record) < importColumns {
			skipped++
			continue
		}

		email := strings.TrimSpace(record[0])
		status := strings.ToLower(strings.TrimSpace(record[2]))
		amount, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil || !utils.ValidAmount(amount) || (status != models.InvoiceStatusPending && status != models.InvoiceStatusPaid) {
			log.Warn().Int("row", rowNum).Msg("skipping invoice row with invalid amount or status")
			skipped++
			continue
		}
		date, err := parseImportDate(strings.TrimSpace(record[3]))
		if err != nil {
			log.Warn().Int("row", rowNum).Str("date", record[3]).Msg("skipping invoice row with invalid date")
			skipped++
			continue
		}

		customer, err := h.store.Customers.FindCustomerByEmail(ctx, email)
		if err != nil {
			respondError(c, err)
			return
		}
		if customer == nil {
			log.Warn().Int("row", rowNum).Str("email", email).Msg("skipping invoice row for unknown customer")
			skipped++
			continue
		}

		if err := h.store.Invoices.CreateNewInvoice(ctx, customer.ID, utils.DollarsToCents(amount), status, date); err != nil {
			respondError(c, err)
			return
		}
		inserted++
	}

	log.Info().Str("file", header.Filename).Int("inserted", inserted).Int("skipped", skipped).Msg("invoice import finished")
	if inserted > 0 {
		if err := h.cache.Revalidate(ctx, invoicePaths...); err != nil {
			log.Warn().Err(err).Msg("revalidation after import failed")
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"file":          header.Filename,
		"invoicesAdded": inserted,
		"skipped":       skipped,
	})
}
