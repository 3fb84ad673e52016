// utils/validator.go - Report input validation
package utils

import (
	"html"
	"regexp"
	"strconv"
	"strings"

	"vote-monitor-api/data"
)

// Bangladesh approximate bounds
// Latitude: 20.5 to 26.6 N, Longitude: 88.0 to 92.7 E
const (
	MinLatitude  = 20.5
	MaxLatitude  = 26.6
	MinLongitude = 88.0
	MaxLongitude = 92.7
)

const MaxDescriptionLength = 300

var votingCenterRegex = regexp.MustCompile(`^[A-Za-z0-9-]{1,20}$`)

// Script injection attempts rejected in descriptions.
var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)on\w+\s*=`), // onclick=, onerror=, etc.
	regexp.MustCompile(`(?i)<iframe`),
	regexp.MustCompile(`(?i)<object`),
	regexp.MustCompile(`(?i)<embed`),
}

// AllowedMediaTypes lists the accepted upload MIME types.
var AllowedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"video/mp4":  true,
}

// ReportInput carries the submitted fields checked by ValidateReport.
type ReportInput struct {
	District           string
	Constituency       string
	VotingCenterNumber string
	Description        string
	GPSLatitude        string
	GPSLongitude       string
	HasFile            bool
	FileSize           int64
	MimeType           string
}

// ValidateReport applies every submission check in order and returns the
// first violation as a user-facing reason string. It has no side effects.
func ValidateReport(in ReportInput, maxFileSize int64) (bool, string) {
	if in.District == "" || in.Constituency == "" || in.VotingCenterNumber == "" || !in.HasFile {
		return false, "District, constituency, voting center number, and media file are required."
	}

	if !data.IsDistrict(in.District) {
		return false, "Invalid district selected."
	}

	if !data.IsConstituency(in.District, in.Constituency) {
		return false, "Invalid constituency for the selected district."
	}

	if !votingCenterRegex.MatchString(in.VotingCenterNumber) {
		return false, "Invalid voting center number format."
	}

	// GPS is optional as a pair: absence of both is fine, anything else must
	// parse and fall inside the bounding box.
	if in.GPSLatitude != "" || in.GPSLongitude != "" {
		if !validGPS(in.GPSLatitude, in.GPSLongitude) {
			return false, "Invalid GPS coordinates."
		}
	}

	if in.Description != "" && !validDescription(in.Description) {
		return false, "Invalid description. Please check length and content."
	}

	if in.FileSize > maxFileSize {
		return false, "File size exceeds the maximum limit."
	}

	if !AllowedMediaTypes[in.MimeType] {
		return false, "Invalid file type. Only JPG, PNG, and MP4 are allowed."
	}

	return true, ""
}

func validGPS(lat, lon string) bool {
	latNum, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return false
	}
	lonNum, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return false
	}

	return latNum >= MinLatitude && latNum <= MaxLatitude &&
		lonNum >= MinLongitude && lonNum <= MaxLongitude
}

func validDescription(description string) bool {
	if len(description) > MaxDescriptionLength {
		return false
	}

	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(description) {
			return false
		}
	}
	return true
}

// SanitizeInput strips control characters and escapes markup so stored text
// is inert when rendered.
func SanitizeInput(input string) string {
	// Remove null bytes and other control characters
	input = strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, input)

	input = html.EscapeString(input)

	return strings.TrimSpace(input)
}
