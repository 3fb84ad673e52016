// controllers/reports.go - Public submission and listing endpoints
package controllers

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"vote-monitor-api/config"
	"vote-monitor-api/models"
	"vote-monitor-api/monitor"
	"vote-monitor-api/services"
	"vote-monitor-api/utils"

	"github.com/gin-gonic/gin"
)

// ReportController serves the anonymous public surface: report submission
// and the verified-only public listing.
type ReportController struct {
	settings config.Settings
	limiter  *services.RateLimiterService
	captcha  services.CaptchaVerifier
	reports  *services.ReportService
}

// NewReportController builds the controller.
func NewReportController(
	settings config.Settings,
	limiter *services.RateLimiterService,
	captcha services.CaptchaVerifier,
	reports *services.ReportService,
) *ReportController {
	return &ReportController{
		settings: settings,
		limiter:  limiter,
		captcha:  captcha,
		reports:  reports,
	}
}

// SubmitReport runs the full submission pipeline: admission control,
// captcha, validation, duplicate detection, media transformation and
// persistence, in that order.
func (ctl *ReportController) SubmitReport(c *gin.Context) {
	ipHash := utils.HashIdentity(utils.ClientIP(c.Request), ctl.settings.IPHashSalt)

	// Admission control comes first; it is the cheapest check.
	rateResult := ctl.limiter.Check(ipHash)
	c.Header("X-RateLimit-Limit", strconv.Itoa(ctl.limiter.Limit()))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(rateResult.Remaining))
	if !rateResult.Allowed {
		c.Header("X-RateLimit-Reset", rateResult.ResetTime.Format(time.RFC3339))
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonRateLimited).Inc()
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":      "Too Many Requests",
			"message":    "You have submitted too many reports. Please try again later.",
			"reset_time": rateResult.ResetTime,
		})
		return
	}

	fileHeader, err := c.FormFile("media")
	if err != nil {
		fileHeader = nil
	}

	input := utils.ReportInput{
		District:           c.PostForm("district"),
		Constituency:       c.PostForm("constituency"),
		VotingCenterNumber: c.PostForm("voting_center_number"),
		Description:        c.PostForm("description"),
		GPSLatitude:        c.PostForm("gps_latitude"),
		GPSLongitude:       c.PostForm("gps_longitude"),
		HasFile:            fileHeader != nil,
	}
	if fileHeader != nil {
		input.FileSize = fileHeader.Size
		input.MimeType = fileHeader.Header.Get("Content-Type")
	}

	// The captcha gate runs before any state-changing work.
	captchaToken := c.PostForm("recaptcha_token")
	if captchaToken == "" {
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonCaptcha).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "reCAPTCHA verification is required.",
		})
		return
	}
	if !ctl.captcha.Verify(c.Request.Context(), captchaToken) {
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonCaptcha).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "reCAPTCHA verification failed.",
		})
		return
	}

	if ok, reason := utils.ValidateReport(input, ctl.settings.Upload.MaxFileSize); !ok {
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonValidation).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": reason,
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, submissionFailure())
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(file, ctl.settings.Upload.MaxFileSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, submissionFailure())
		return
	}
	if int64(len(fileBytes)) > ctl.settings.Upload.MaxFileSize {
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonValidation).Inc()
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation Error",
			"message": "File size exceeds the maximum limit.",
		})
		return
	}

	report, err := ctl.reports.Submit(c.Request.Context(), services.SubmitInput{
		District:           input.District,
		Constituency:       input.Constituency,
		VotingCenterNumber: input.VotingCenterNumber,
		Description:        input.Description,
		GPSLatitude:        input.GPSLatitude,
		GPSLongitude:       input.GPSLongitude,
		FileBytes:          fileBytes,
		FileName:           fileHeader.Filename,
		MimeType:           input.MimeType,
		IPHash:             ipHash,
	})
	if err != nil {
		if errors.Is(err, services.ErrDuplicateContent) {
			monitor.ReportsRejected.WithLabelValues(monitor.ReasonDuplicate).Inc()
			c.JSON(http.StatusConflict, gin.H{
				"error":   "Duplicate File",
				"message": "This file has already been submitted.",
			})
			return
		}
		// Keep infrastructure detail out of the response
		log.Printf("Report submission error: %v", err)
		monitor.ReportsRejected.WithLabelValues(monitor.ReasonStorage).Inc()
		c.JSON(http.StatusInternalServerError, submissionFailure())
		return
	}

	monitor.ReportsAccepted.Inc()
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Report submitted successfully. It will be reviewed for verification.",
		"report_id":  report.ReportID,
		"created_at": report.CreatedAt,
	})
}

// GetReports returns the public listing. Only verified reports are ever
// served here regardless of the requested filters.
func (ctl *ReportController) GetReports(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 20
	}

	result, err := ctl.reports.List(services.ListFilters{
		District:     c.Query("district"),
		Constituency: c.Query("constituency"),
		Status:       models.StatusVerified,
		SortOldest:   c.DefaultQuery("sort_by", "latest") == "oldest",
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		log.Printf("Fetch reports error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Server Error",
			"message": "Failed to fetch reports.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    publicReports(result.Reports),
		"pagination": gin.H{
			"current_page": result.Page,
			"total_pages":  result.TotalPages,
			"total_count":  result.TotalCount,
			"limit":        result.Limit,
			"has_next":     result.Page < result.TotalPages,
			"has_prev":     result.Page > 1,
		},
	})
}

// publicReport is the submitter-safe projection of a report.
type publicReport struct {
	ReportID           int       `json:"report_id"`
	District           string    `json:"district"`
	Constituency       string    `json:"constituency"`
	VotingCenterNumber string    `json:"voting_center_number"`
	Description        *string   `json:"description,omitempty"`
	MediaURL           string    `json:"media_url"`
	MediaType          string    `json:"media_type"`
	MediaThumbnailURL  *string   `json:"media_thumbnail_url,omitempty"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func publicReports(reports []models.Report) []publicReport {
	out := make([]publicReport, 0, len(reports))
	for _, r := range reports {
		out = append(out, publicReport{
			ReportID:           r.ReportID,
			District:           r.District,
			Constituency:       r.Constituency,
			VotingCenterNumber: r.VotingCenterNumber,
			Description:        r.Description,
			MediaURL:           r.MediaURL,
			MediaType:          r.MediaType,
			MediaThumbnailURL:  r.MediaThumbnailURL,
			Status:             r.Status,
			CreatedAt:          r.CreatedAt,
		})
	}
	return out
}

func submissionFailure() gin.H {
	return gin.H{
		"error":   "Internal Server Error",
		"message": "Failed to submit report. Please try again later.",
	}
}
