package models

import "time"

// Report statuses. A report is created in StatusUnderReview and may move to
// StatusVerified or StatusRejected exactly once. Deletion removes the row
// entirely and is not a status.
const (
	StatusUnderReview = "under_review"
	StatusVerified    = "verified"
	StatusRejected    = "rejected"
)

// Report represents the reports table: one citizen-submitted incident with
// its processed media. Only the ip_hash is stored, never a raw address.
type Report struct {
	ReportID           int        `gorm:"primaryKey;column:report_id" json:"report_id"`
	District           string     `gorm:"column:district" json:"district"`
	Constituency       string     `gorm:"column:constituency" json:"constituency"`
	VotingCenterNumber string     `gorm:"column:voting_center_number" json:"voting_center_number"`
	Description        *string    `gorm:"column:description" json:"description,omitempty"`
	MediaURL           string     `gorm:"column:media_url" json:"media_url"`
	MediaKey           string     `gorm:"column:media_key" json:"-"`
	MediaType          string     `gorm:"column:media_type" json:"media_type"`
	MediaThumbnailURL  *string    `gorm:"column:media_thumbnail_url" json:"media_thumbnail_url,omitempty"`
	MediaThumbnailKey  *string    `gorm:"column:media_thumbnail_key" json:"-"`
	FileSizeBytes      int64      `gorm:"column:file_size_bytes" json:"file_size_bytes"`
	FileHash           string     `gorm:"column:file_hash;uniqueIndex" json:"-"`
	IPHash             string     `gorm:"column:ip_hash" json:"-"`
	GPSLatitude        *float64   `gorm:"column:gps_latitude" json:"gps_latitude,omitempty"`
	GPSLongitude       *float64   `gorm:"column:gps_longitude" json:"gps_longitude,omitempty"`
	Status             string     `gorm:"column:status" json:"status"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ReviewedBy         *int       `gorm:"column:reviewed_by" json:"reviewed_by,omitempty"`
	ReviewedAt         *time.Time `gorm:"column:reviewed_at" json:"reviewed_at,omitempty"`

	// Relations
	Reviewer *Admin `gorm:"foreignKey:ReviewedBy" json:"reviewer,omitempty"`
}

// TableName overrides
func (Report) TableName() string {
	return "reports"
}

// IsTerminal reports whether the report has already been reviewed.
func (r *Report) IsTerminal() bool {
	return r.Status == StatusVerified || r.Status == StatusRejected
}
