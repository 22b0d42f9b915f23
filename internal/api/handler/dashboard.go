package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"complaintdesk/backend/internal/export"
	"complaintdesk/backend/internal/models"
)

// DashboardStats answers the chart widgets with complaint aggregates.
func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.Stores.Stats(c.Request.Context())
	if err != nil {
		h.writeError(c, "dashboard", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stats})
}

// ExportComplaints streams the filtered complaint list as an XLSX
// workbook. The same search/page/limit parameters as the list query
// apply, so an operator exports exactly what the table shows.
func (h *Handler) ExportComplaints(c *gin.Context) {
	var filter models.Filter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.Stores.Complaints.FindPage(c.Request.Context(), filter)
	if err != nil {
		h.writeError(c, "complaint", err)
		return
	}

	file, err := export.Complaints(page.Items)
	if err != nil {
		h.log.Errorw("export build failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build export"})
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("complaints-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := file.Write(c.Writer); err != nil {
		h.log.Errorw("export write failed", "error", err)
	}
}
