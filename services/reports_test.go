package services

import (
	"context"
	"errors"
	"testing"

	"vote-monitor-api/models"
)

func newTestReportService(t *testing.T) (*ReportService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	media := NewMediaService(store, testWatermark)
	return NewReportService(newTestDB(t), media), store
}

func validSubmitInput(t *testing.T) SubmitInput {
	return SubmitInput{
		District:           "Dhaka",
		Constituency:       "Dhaka-1",
		VotingCenterNumber: "DH-1",
		Description:        "peaceful line",
		FileBytes:          testJPEG(t, 800, 600),
		FileName:           "evidence.jpg",
		MimeType:           "image/jpeg",
		IPHash:             "hashed-identity",
	}
}

func TestSubmitCreatesPendingReport(t *testing.T) {
	svc, _ := newTestReportService(t)

	report, err := svc.Submit(context.Background(), validSubmitInput(t))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if report.ReportID == 0 {
		t.Fatal("report should have an id")
	}
	if report.Status != models.StatusUnderReview {
		t.Fatalf("status = %q, want %q", report.Status, models.StatusUnderReview)
	}
	if report.FileHash == "" {
		t.Fatal("file hash must be stored")
	}
	if report.MediaURL == "" || report.MediaThumbnailURL == nil {
		t.Fatal("processed media references must be stored")
	}
	if report.ReviewedBy != nil || report.ReviewedAt != nil {
		t.Fatal("a new report must not carry review fields")
	}
	if report.Description == nil || *report.Description != "peaceful line" {
		t.Fatalf("plain-text description should survive unchanged, got %v", report.Description)
	}
}

func TestSubmitRejectsDuplicateBytes(t *testing.T) {
	svc, store := newTestReportService(t)

	in := validSubmitInput(t)
	if _, err := svc.Submit(context.Background(), in); err != nil {
		t.Fatalf("first submit failed: %v", err)
	}

	uploadsAfterFirst := store.putCount

	// Same bytes, different metadata: still a duplicate.
	in.District = "Khulna"
	in.Constituency = "Khulna-2"
	_, err := svc.Submit(context.Background(), in)
	if !errors.Is(err, ErrDuplicateContent) {
		t.Fatalf("second submit: err = %v, want ErrDuplicateContent", err)
	}

	if store.putCount != uploadsAfterFirst {
		t.Fatal("duplicate must be rejected before media transformation")
	}

	var count int64
	if err := svc.db.Model(&models.Report{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 report, got %d", count)
	}
}

func TestSubmitStoresGPSWhenProvided(t *testing.T) {
	svc, _ := newTestReportService(t)

	in := validSubmitInput(t)
	in.GPSLatitude = "23.8"
	in.GPSLongitude = "90.4"

	report, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if report.GPSLatitude == nil || *report.GPSLatitude != 23.8 {
		t.Fatalf("latitude not stored: %v", report.GPSLatitude)
	}
	if report.GPSLongitude == nil || *report.GPSLongitude != 90.4 {
		t.Fatalf("longitude not stored: %v", report.GPSLongitude)
	}
}

func TestSubmitUploadFailureLeavesNoRecord(t *testing.T) {
	svc, store := newTestReportService(t)
	store.failAfter = 1

	_, err := svc.Submit(context.Background(), validSubmitInput(t))
	if err == nil {
		t.Fatal("submit must fail when the store is unavailable")
	}
	if errors.Is(err, ErrDuplicateContent) {
		t.Fatalf("unexpected duplicate error: %v", err)
	}

	var count int64
	if err := svc.db.Model(&models.Report{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatal("no report row may reference a failed upload")
	}
}

func TestApproveTransitionsOnce(t *testing.T) {
	svc, _ := newTestReportService(t)

	created, err := svc.Submit(context.Background(), validSubmitInput(t))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	approved, err := svc.Approve(created.ReportID, 42)
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if approved.Status != models.StatusVerified {
		t.Fatalf("status = %q, want %q", approved.Status, models.StatusVerified)
	}
	if approved.ReviewedBy == nil || *approved.ReviewedBy != 42 {
		t.Fatal("reviewer must be recorded")
	}
	if approved.ReviewedAt == nil {
		t.Fatal("review time must be recorded")
	}

	// Terminal states are immutable except by deletion.
	if _, err := svc.Approve(created.ReportID, 42); !errors.Is(err, ErrStaleState) {
		t.Fatalf("second approve: err = %v, want ErrStaleState", err)
	}
	if _, err := svc.Reject(created.ReportID, 42); !errors.Is(err, ErrStaleState) {
		t.Fatalf("reject after approve: err = %v, want ErrStaleState", err)
	}
}

func TestRejectTransitionsOnce(t *testing.T) {
	svc, _ := newTestReportService(t)

	created, err := svc.Submit(context.Background(), validSubmitInput(t))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	rejected, err := svc.Reject(created.ReportID, 7)
	if err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if rejected.Status != models.StatusRejected {
		t.Fatalf("status = %q, want %q", rejected.Status, models.StatusRejected)
	}

	if _, err := svc.Approve(created.ReportID, 7); !errors.Is(err, ErrStaleState) {
		t.Fatalf("approve after reject: err = %v, want ErrStaleState", err)
	}
}

func TestModerationOnMissingReport(t *testing.T) {
	svc, _ := newTestReportService(t)

	if _, err := svc.Approve(9999, 1); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("approve: err = %v, want ErrReportNotFound", err)
	}
	if _, err := svc.Delete(context.Background(), 9999); !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("delete: err = %v, want ErrReportNotFound", err)
	}
}

func TestDeletePurgesRowAndMedia(t *testing.T) {
	svc, store := newTestReportService(t)

	created, err := svc.Submit(context.Background(), validSubmitInput(t))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Approve(created.ReportID, 1); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	// delete is allowed from any state, verified included
	deleted, err := svc.Delete(context.Background(), created.ReportID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted.Status != models.StatusVerified {
		t.Fatalf("deleted report should report its previous status, got %q", deleted.Status)
	}

	if _, err := svc.Get(created.ReportID); !errors.Is(err, ErrReportNotFound) {
		t.Fatal("deleted report must be gone")
	}
	if len(store.objects) != 0 {
		t.Fatalf("stored objects must be removed, %d left", len(store.objects))
	}
}

func TestListFiltersAndPaginates(t *testing.T) {
	svc, _ := newTestReportService(t)

	in := validSubmitInput(t)
	first, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	in2 := validSubmitInput(t)
	in2.District = "Sylhet"
	in2.Constituency = "Sylhet-3"
	in2.FileBytes = testJPEG(t, 801, 600)
	if _, err := svc.Submit(context.Background(), in2); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if _, err := svc.Approve(first.ReportID, 1); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	verified, err := svc.List(ListFilters{Status: models.StatusVerified, Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if verified.TotalCount != 1 || len(verified.Reports) != 1 {
		t.Fatalf("verified listing: total=%d len=%d, want 1/1", verified.TotalCount, len(verified.Reports))
	}
	if verified.Reports[0].ReportID != first.ReportID {
		t.Fatal("wrong report in verified listing")
	}

	byDistrict, err := svc.List(ListFilters{District: "Sylhet", Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if byDistrict.TotalCount != 1 {
		t.Fatalf("district filter: total=%d, want 1", byDistrict.TotalCount)
	}

	all, err := svc.List(ListFilters{Status: "all", Page: 1, Limit: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if all.TotalCount != 2 || all.TotalPages != 2 || len(all.Reports) != 1 {
		t.Fatalf("paging: total=%d pages=%d len=%d", all.TotalCount, all.TotalPages, len(all.Reports))
	}
}

func TestStatusCounts(t *testing.T) {
	svc, _ := newTestReportService(t)

	in := validSubmitInput(t)
	first, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	in2 := validSubmitInput(t)
	in2.FileBytes = testJPEG(t, 802, 600)
	if _, err := svc.Submit(context.Background(), in2); err != nil {
		t.Fatalf("second submit failed: %v", err)
	}

	if _, err := svc.Approve(first.ReportID, 1); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	counts, err := svc.StatusCounts()
	if err != nil {
		t.Fatalf("status counts failed: %v", err)
	}
	if counts[models.StatusVerified] != 1 {
		t.Fatalf("verified = %d, want 1", counts[models.StatusVerified])
	}
	if counts[models.StatusUnderReview] != 1 {
		t.Fatalf("under_review = %d, want 1", counts[models.StatusUnderReview])
	}
	if counts["total"] != 2 {
		t.Fatalf("total = %d, want 2", counts["total"])
	}
}

func TestSubmitEscapesDescriptionMarkup(t *testing.T) {
	svc, _ := newTestReportService(t)

	in := validSubmitInput(t)
	in.Description = "crowd pushing & shoving"

	report, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if report.Description == nil || *report.Description != "crowd pushing &amp; shoving" {
		t.Fatalf("description should be markup-escaped, got %v", report.Description)
	}
}
