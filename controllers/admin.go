// controllers/admin.go - Moderator listing and review actions
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"vote-monitor-api/models"
	"vote-monitor-api/services"
	"vote-monitor-api/utils"

	"github.com/gin-gonic/gin"
)

// AdminController serves the moderator surface: listing across all states
// and the approve/reject/delete actions.
type AdminController struct {
	reports *services.ReportService
	media   *services.MediaService
	audit   *services.AuditService
	salt    string
}

// NewAdminController builds the controller.
func NewAdminController(
	reports *services.ReportService,
	media *services.MediaService,
	audit *services.AuditService,
	salt string,
) *AdminController {
	return &AdminController{reports: reports, media: media, audit: audit, salt: salt}
}

// GetReports returns the moderator listing with per-status counts.
func (ctl *AdminController) GetReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	result, err := ctl.reports.List(services.ListFilters{
		District:     c.Query("district"),
		Constituency: c.Query("constituency"),
		Status:       c.Query("status"),
		Search:       utils.SanitizeInput(c.Query("search")),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		log.Printf("Admin reports error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Operation failed.",
		})
		return
	}

	stats, err := ctl.reports.StatusCounts()
	if err != nil {
		log.Printf("Admin stats error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Operation failed.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result.Reports,
		"stats":   stats,
		"pagination": gin.H{
			"current_page": result.Page,
			"total_pages":  result.TotalPages,
			"total_count":  result.TotalCount,
			"limit":        result.Limit,
		},
	})
}

type ReportActionRequest struct {
	ReportID int    `json:"report_id" binding:"required"`
	Action   string `json:"action" binding:"required"`
}

// UpdateReport applies a moderation action. approve and reject only succeed
// from under_review; delete is allowed from any state and purges the row.
func (ctl *AdminController) UpdateReport(c *gin.Context) {
	var req ReportActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "Report ID and action are required.",
		})
		return
	}

	adminID := c.GetInt("adminID")
	ipHash := utils.HashIdentity(utils.ClientIP(c.Request), ctl.salt)

	switch req.Action {
	case "approve", "reject":
		var report *models.Report
		var err error
		var auditAction string
		if req.Action == "approve" {
			report, err = ctl.reports.Approve(req.ReportID, adminID)
			auditAction = models.AuditActionApproveReport
		} else {
			report, err = ctl.reports.Reject(req.ReportID, adminID)
			auditAction = models.AuditActionRejectReport
		}
		if err != nil {
			ctl.renderActionError(c, err)
			return
		}

		ctl.audit.Log(&adminID, auditAction, &report.ReportID,
			map[string]interface{}{"new_status": report.Status}, ipHash)

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Report " + report.Status + " successfully.",
			"new_status": report.Status,
		})

	case "delete":
		report, err := ctl.reports.Delete(c.Request.Context(), req.ReportID)
		if err != nil {
			ctl.renderActionError(c, err)
			return
		}

		ctl.audit.Log(&adminID, models.AuditActionDeleteReport, &report.ReportID,
			map[string]interface{}{"previous_status": report.Status}, ipHash)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Report deleted successfully.",
		})

	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "Invalid action.",
		})
	}
}

// GetMediaURL issues a short-lived signed URL for a report's private media.
func (ctl *AdminController) GetMediaURL(c *gin.Context) {
	reportID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "Invalid report id.",
		})
		return
	}

	report, err := ctl.reports.Get(reportID)
	if err != nil {
		ctl.renderActionError(c, err)
		return
	}

	url, err := ctl.media.SignedMediaURL(c.Request.Context(), report.MediaKey, time.Hour)
	if err != nil {
		log.Printf("Signed URL error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Operation failed.",
		})
		return
	}

	response := gin.H{"success": true, "url": url}
	if report.MediaThumbnailKey != nil {
		if thumbURL, err := ctl.media.SignedMediaURL(c.Request.Context(), *report.MediaThumbnailKey, time.Hour); err == nil {
			response["thumbnail_url"] = thumbURL
		}
	}

	c.JSON(http.StatusOK, response)
}

func (ctl *AdminController) renderActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "Report not found.",
		})
	case errors.Is(err, services.ErrStaleState):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Authorization Failure",
			"message": "Report has already been reviewed.",
		})
	default:
		log.Printf("Admin action error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Operation failed.",
		})
	}
}
