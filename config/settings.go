package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// RateLimitSettings bounds accepted submissions per hashed identity.
type RateLimitSettings struct {
	Window      time.Duration
	MaxRequests int
}

// UploadSettings constrains incoming media files.
type UploadSettings struct {
	MaxFileSize int64
}

// S3Settings identifies the object storage bucket.
type S3Settings struct {
	Bucket string
	Region string
}

// Settings is the explicit pipeline configuration, built once at startup so
// no component reads the environment on its own.
type Settings struct {
	RateLimit       RateLimitSettings
	Upload          UploadSettings
	S3              S3Settings
	IPHashSalt      string
	RecaptchaSecret string
	WatermarkText   string
	AllowedOrigins  []string
}

// LoadSettings reads the environment into a Settings value, applying the
// documented defaults for anything unset.
func LoadSettings() Settings {
	settings := Settings{
		RateLimit: RateLimitSettings{
			Window:      envDuration("RATE_LIMIT_WINDOW_MS", time.Hour),
			MaxRequests: envInt("RATE_LIMIT_MAX_REQUESTS", 3),
		},
		Upload: UploadSettings{
			MaxFileSize: envInt64("MAX_FILE_SIZE", 20*1024*1024),
		},
		S3: S3Settings{
			Bucket: os.Getenv("S3_BUCKET_NAME"),
			Region: os.Getenv("AWS_REGION"),
		},
		IPHashSalt:      os.Getenv("IP_HASH_SALT"),
		RecaptchaSecret: os.Getenv("RECAPTCHA_SECRET_KEY"),
		WatermarkText:   os.Getenv("WATERMARK_TEXT"),
	}

	if settings.IPHashSalt == "" {
		log.Println("Warning: IP_HASH_SALT not set, using insecure default")
		settings.IPHashSalt = "default-salt-change-in-production"
	}
	if settings.WatermarkText == "" {
		settings.WatermarkText = "Citizen Submitted – Unverified"
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				settings.AllowedOrigins = append(settings.AllowedOrigins, origin)
			}
		}
	}

	return settings
}

func envInt(key string, fallback int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil && value > 0 {
		return value
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && value > 0 {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if ms, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil && ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
