package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/katalika-invoicing/engine"
	"github.com/yourusername/katalika-invoicing/models"
	"github.com/yourusername/katalika-invoicing/store"
	"github.com/yourusername/katalika-invoicing/utils"
)

type ReportHandler struct {
	store store.Store
}

func NewReportHandler(s store.Store) *ReportHandler {
	return &ReportHandler{store: s}
}

const dateLayout = "2006-01-02"

// parseRange reads start_date/end_date query params (YYYY-MM-DD). Defaults:
// first day of the current month through today.
func parseRange(c *gin.Context, now time.Time) (models.DateRange, error) {
	rng := models.DateRange{
		Start: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		End:   now,
	}

	if s := c.Query("start_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, now.Location())
		if err != nil {
			return rng, fmt.Errorf("invalid start_date %q", s)
		}
		rng.Start = t
	}
	if s := c.Query("end_date"); s != "" {
		t, err := time.ParseInLocation(dateLayout, s, now.Location())
		if err != nil {
			return rng, fmt.Errorf("invalid end_date %q", s)
		}
		rng.End = t
	}
	return rng, nil
}

// GetReport aggregates the invoice collection for the requested range and
// status filter.
func (h *ReportHandler) GetReport(c *gin.Context) {
	now := time.Now()
	rng, err := parseRange(c, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := c.DefaultQuery("status", engine.StatusAll)

	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	c.JSON(http.StatusOK, engine.BuildReport(invoices, rng, status, now))
}

// ExportReport renders the same aggregation as a downloadable plain-text
// document.
func (h *ReportHandler) ExportReport(c *gin.Context) {
	now := time.Now()
	rng, err := parseRange(c, now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status := c.DefaultQuery("status", engine.StatusAll)

	invoices, err := h.store.GetInvoices()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch invoices"})
		return
	}

	report := engine.BuildReport(invoices, rng, status, now)
	filename := fmt.Sprintf("laporan-keuangan-%s-%s.txt",
		rng.Start.Format(dateLayout), rng.End.Format(dateLayout))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8",
		[]byte(utils.FormatReportText(report, rng, now)))
}
