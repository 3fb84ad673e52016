package services

import (
	"encoding/json"
	"log"

	"vote-monitor-api/models"

	"gorm.io/gorm"
)

// AuditService appends entries to the audit log. The log is write-only from
// the pipeline's point of view; entries are never updated or deleted.
type AuditService struct {
	db *gorm.DB
}

// NewAuditService builds an audit writer over the given database handle.
func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Log appends one entry. adminID is nil for anonymous or system actions;
// ipHash is always a hashed identity, never a raw address. A failed append
// is logged but does not fail the action that produced it.
func (a *AuditService) Log(adminID *int, action string, reportID *int, details map[string]interface{}, ipHash string) {
	payload, err := json.Marshal(details)
	if err != nil {
		payload = []byte("{}")
	}

	entry := models.AuditLog{
		AdminID:  adminID,
		Action:   action,
		ReportID: reportID,
		Details:  string(payload),
		IPHash:   ipHash,
	}

	if err := a.db.Create(&entry).Error; err != nil {
		log.Printf("Audit log error: %v", err)
	}
}
