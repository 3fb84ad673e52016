package models

import "time"

// Moderation and authentication actions recorded in the audit log.
const (
	AuditActionLogin         = "login"
	AuditActionFailedLogin   = "failed_login"
	AuditActionApproveReport = "approve_report"
	AuditActionRejectReport  = "reject_report"
	AuditActionDeleteReport  = "delete_report"
)

// AuditLog is an append-only record of a security-relevant action. Rows are
// never updated or deleted. Actors are identified by admin id where known
// and always by a hashed network identity, never a raw address.
type AuditLog struct {
	AuditID   int       `gorm:"primaryKey;column:audit_id" json:"audit_id"`
	AdminID   *int      `gorm:"column:admin_id;index" json:"admin_id,omitempty"`
	Action    string    `gorm:"column:action;index" json:"action"`
	ReportID  *int      `gorm:"column:report_id;index" json:"report_id,omitempty"`
	Details   string    `gorm:"column:details;type:json" json:"details"`
	IPHash    string    `gorm:"column:ip_hash" json:"-"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (AuditLog) TableName() string {
	return "audit_logs"
}
