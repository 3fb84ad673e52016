package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"vote-monitor-api/models"
	"vote-monitor-api/utils"

	"gorm.io/gorm"
)

// Pipeline outcomes surfaced to the HTTP layer.
var (
	ErrDuplicateContent = errors.New("this file has already been submitted")
	ErrReportNotFound   = errors.New("report not found")
	ErrStaleState       = errors.New("report has already been reviewed")
)

// SubmitInput is a validated, captcha-cleared submission ready for the
// dedup and media stages.
type SubmitInput struct {
	District           string
	Constituency       string
	VotingCenterNumber string
	Description        string
	GPSLatitude        string
	GPSLongitude       string
	FileBytes          []byte
	FileName           string
	MimeType           string
	IPHash             string
}

// ReportService runs the submission pipeline tail (duplicate detection,
// media transformation, persistence) and the moderation state machine.
type ReportService struct {
	db    *gorm.DB
	media *MediaService
}

// NewReportService builds the service over the given collaborators.
func NewReportService(db *gorm.DB, media *MediaService) *ReportService {
	return &ReportService{db: db, media: media}
}

// Submit fingerprints the original bytes, rejects duplicates, transforms
// and uploads the media, and persists the report in under_review state.
// The fingerprint is computed exactly once and serves both the duplicate
// check and the stored file_hash.
func (s *ReportService) Submit(ctx context.Context, in SubmitInput) (*models.Report, error) {
	fileHash := utils.FingerprintBytes(in.FileBytes)

	// Pre-check saves the transformation work; the unique index on
	// file_hash is the real enforcement.
	var count int64
	if err := s.db.Model(&models.Report{}).
		Where("file_hash = ?", fileHash).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateContent
	}

	media, err := s.media.Process(ctx, in.FileBytes, in.MimeType, in.FileName)
	if err != nil {
		return nil, err
	}

	report := models.Report{
		District:           in.District,
		Constituency:       in.Constituency,
		VotingCenterNumber: utils.SanitizeInput(in.VotingCenterNumber),
		MediaURL:           media.URL,
		MediaKey:           media.Key,
		MediaType:          media.ContentType,
		MediaThumbnailURL:  media.ThumbnailURL,
		MediaThumbnailKey:  media.ThumbnailKey,
		FileSizeBytes:      media.Size,
		FileHash:           fileHash,
		IPHash:             in.IPHash,
		Status:             models.StatusUnderReview,
	}

	if in.Description != "" {
		sanitized := utils.SanitizeInput(in.Description)
		report.Description = &sanitized
	}
	if in.GPSLatitude != "" && in.GPSLongitude != "" {
		lat, _ := strconv.ParseFloat(in.GPSLatitude, 64)
		lon, _ := strconv.ParseFloat(in.GPSLongitude, 64)
		report.GPSLatitude = &lat
		report.GPSLongitude = &lon
	}

	if err := s.db.Create(&report).Error; err != nil {
		// A racing duplicate may get past the pre-check; the unique index
		// catches it here. Either way no uploaded artifact stays linked.
		s.media.Cleanup(ctx, media)
		if isDuplicateKeyError(err) {
			return nil, ErrDuplicateContent
		}
		return nil, err
	}

	return &report, nil
}

// Approve moves an under_review report to verified.
func (s *ReportService) Approve(reportID, adminID int) (*models.Report, error) {
	return s.review(reportID, adminID, models.StatusVerified)
}

// Reject moves an under_review report to rejected.
func (s *ReportService) Reject(reportID, adminID int) (*models.Report, error) {
	return s.review(reportID, adminID, models.StatusRejected)
}

// review performs the guarded transition. The state guard lives in the
// WHERE clause so that of two racing moderator actions only one succeeds;
// the loser sees the stale-state error and must re-fetch.
func (s *ReportService) review(reportID, adminID int, newStatus string) (*models.Report, error) {
	now := time.Now()
	result := s.db.Model(&models.Report{}).
		Where("report_id = ? AND status = ?", reportID, models.StatusUnderReview).
		Updates(map[string]interface{}{
			"status":      newStatus,
			"reviewed_by": adminID,
			"reviewed_at": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var existing models.Report
		if err := s.db.First(&existing, "report_id = ?", reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrReportNotFound
			}
			return nil, err
		}
		return nil, ErrStaleState
	}

	return s.Get(reportID)
}

// Delete purges a report from any state and removes its stored media.
// Irreversible; the audit entry is the only remaining trace.
func (s *ReportService) Delete(ctx context.Context, reportID int) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "report_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&models.Report{}, "report_id = ?", reportID).Error; err != nil {
		return nil, err
	}

	// Best effort: the row is gone, orphaned objects only cost storage.
	if err := s.media.store.Delete(ctx, report.MediaKey); err != nil {
		log.Printf("Failed to delete media %s: %v", report.MediaKey, err)
	}
	if report.MediaThumbnailKey != nil {
		if err := s.media.store.Delete(ctx, *report.MediaThumbnailKey); err != nil {
			log.Printf("Failed to delete thumbnail %s: %v", *report.MediaThumbnailKey, err)
		}
	}

	return &report, nil
}

// Get loads one report by id.
func (s *ReportService) Get(reportID int) (*models.Report, error) {
	var report models.Report
	if err := s.db.First(&report, "report_id = ?", reportID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

// ListFilters narrows and pages a report listing.
type ListFilters struct {
	District     string
	Constituency string
	Status       string
	Search       string
	SortOldest   bool
	Page         int
	Limit        int
}

// ListResult is one page of reports plus pagination totals.
type ListResult struct {
	Reports    []models.Report
	TotalCount int64
	TotalPages int
	Page       int
	Limit      int
}

// List returns a filtered, paginated page of reports.
func (s *ReportService) List(f ListFilters) (*ListResult, error) {
	query := s.db.Model(&models.Report{})

	if f.Status != "" && f.Status != "all" {
		query = query.Where("status = ?", f.Status)
	}
	if f.District != "" && f.District != "all" {
		query = query.Where("district = ?", f.District)
	}
	if f.Constituency != "" && f.Constituency != "all" {
		query = query.Where("constituency = ?", f.Constituency)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		query = query.Where(
			"district LIKE ? OR constituency LIKE ? OR voting_center_number LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		return nil, err
	}

	order := "created_at DESC"
	if f.SortOldest {
		order = "created_at ASC"
	}

	offset := (f.Page - 1) * f.Limit
	var reports []models.Report
	if err := query.Order(order).Offset(offset).Limit(f.Limit).Find(&reports).Error; err != nil {
		return nil, err
	}

	totalPages := int((totalCount + int64(f.Limit) - 1) / int64(f.Limit))

	return &ListResult{
		Reports:    reports,
		TotalCount: totalCount,
		TotalPages: totalPages,
		Page:       f.Page,
		Limit:      f.Limit,
	}, nil
}

// StatusCounts returns per-status report counts for the moderator overview.
func (s *ReportService) StatusCounts() (map[string]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := s.db.Model(&models.Report{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := map[string]int64{
		models.StatusUnderReview: 0,
		models.StatusVerified:    0,
		models.StatusRejected:    0,
	}
	var total int64
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}
	counts["total"] = total
	return counts, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint")
}
