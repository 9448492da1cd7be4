package handlers

import (
	"net/http"
	"time"

	"restaurant-pos-api/middleware"
	"restaurant-pos-api/services"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reports *services.ReportService
}

func NewReportHandler(reports *services.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// dateRange parses ?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to the
// last 30 days. The end date is inclusive, so one day is added before the
// half-open range query.
func dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if s := c.Query("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD", "kind": "validation"})
			return start, end, false
		}
		start = t
	}
	if e := c.Query("end"); e != "" {
		t, err := time.Parse("2006-01-02", e)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD", "kind": "validation"})
			return start, end, false
		}
		end = t.AddDate(0, 0, 1)
	}
	return start, end, true
}

// ItemFrequency reports how often each menu item sold
func (h *ReportHandler) ItemFrequency(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	rows, err := h.reports.ItemFrequency(middleware.Identity(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(rows), "items": rows})
}

// Revenue reports settled revenue broken down by method and day
func (h *ReportHandler) Revenue(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	report, err := h.reports.Revenue(middleware.Identity(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": report})
}

// OrderStatistics reports order volume over the range
func (h *ReportHandler) OrderStatistics(c *gin.Context) {
	start, end, ok := dateRange(c)
	if !ok {
		return
	}
	stats, err := h.reports.OrderStatistics(middleware.Identity(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statistics": stats})
}
