package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Image processing targets, matching the published evidence format.
const (
	maxImageWidth    = 1920
	maxImageHeight   = 1080
	imageQuality     = 85
	thumbnailWidth   = 400
	thumbnailHeight  = 300
	thumbnailQuality = 80
)

// ProcessedMedia describes the artifacts produced for one upload.
type ProcessedMedia struct {
	URL          string
	Key          string
	ContentType  string
	ThumbnailURL *string
	ThumbnailKey *string
	Size         int64
}

// MediaService normalizes accepted uploads: images are optimized,
// watermarked and given a thumbnail; videos pass through unchanged.
type MediaService struct {
	store         ObjectStore
	watermarkText string
}

// NewMediaService builds the transform pipeline over the given store.
func NewMediaService(store ObjectStore, watermarkText string) *MediaService {
	return &MediaService{store: store, watermarkText: watermarkText}
}

// Process transforms and uploads one validated, non-duplicate upload.
// A failed watermark degrades to the optimized image; a failed optimization
// or upload fails the submission, and nothing partial stays reachable.
func (m *MediaService) Process(ctx context.Context, data []byte, mimeType, originalName string) (*ProcessedMedia, error) {
	if !strings.HasPrefix(mimeType, "image/") {
		obj, err := m.store.Put(ctx, data, mimeType, originalName)
		if err != nil {
			return nil, err
		}
		return &ProcessedMedia{
			URL:         obj.URL,
			Key:         obj.Key,
			ContentType: mimeType,
			Size:        int64(len(data)),
		}, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("optimize image: %w", err)
	}

	// Fit scales down only; smaller images are never upscaled.
	optimized := imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)

	var final image.Image = optimized
	if watermarked, err := watermarkImage(optimized, m.watermarkText); err != nil {
		// Losing the watermark is acceptable; losing the report is not.
		log.Printf("Watermark failed, keeping unwatermarked image: %v", err)
	} else {
		final = watermarked
	}

	primary, err := encodeJPEG(final, imageQuality)
	if err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}

	thumb := imaging.Fill(final, thumbnailWidth, thumbnailHeight, imaging.Center, imaging.Lanczos)
	thumbBytes, err := encodeJPEG(thumb, thumbnailQuality)
	if err != nil {
		return nil, fmt.Errorf("encode thumbnail: %w", err)
	}

	thumbObj, err := m.store.Put(ctx, thumbBytes, "image/jpeg", "thumb_"+jpegName(originalName))
	if err != nil {
		return nil, err
	}

	mainObj, err := m.store.Put(ctx, primary, "image/jpeg", jpegName(originalName))
	if err != nil {
		// Don't leave an orphaned thumbnail behind
		if cleanupErr := m.store.Delete(ctx, thumbObj.Key); cleanupErr != nil {
			log.Printf("Failed to clean up thumbnail %s: %v", thumbObj.Key, cleanupErr)
		}
		return nil, err
	}

	return &ProcessedMedia{
		URL:          mainObj.URL,
		Key:          mainObj.Key,
		ContentType:  "image/jpeg",
		ThumbnailURL: &thumbObj.URL,
		ThumbnailKey: &thumbObj.Key,
		Size:         int64(len(primary)),
	}, nil
}

// Cleanup removes the stored artifacts of a processed upload. Used when a
// later pipeline stage fails after the media was already uploaded.
func (m *MediaService) Cleanup(ctx context.Context, media *ProcessedMedia) {
	if err := m.store.Delete(ctx, media.Key); err != nil {
		log.Printf("Failed to clean up media %s: %v", media.Key, err)
	}
	if media.ThumbnailKey != nil {
		if err := m.store.Delete(ctx, *media.ThumbnailKey); err != nil {
			log.Printf("Failed to clean up thumbnail %s: %v", *media.ThumbnailKey, err)
		}
	}
}

// SignedMediaURL exposes the store's signing capability for moderator access
// to private artifacts.
func (m *MediaService) SignedMediaURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	return m.store.SignedURL(ctx, key, ttl)
}

// watermarkImage overlays the semi-transparent label near the bottom of the
// frame. It fails when the frame cannot host the label, in which case the
// caller keeps the unwatermarked image.
func watermarkImage(src image.Image, text string) (image.Image, error) {
	bounds := src.Bounds()
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil()
	if width >= bounds.Dx() || bounds.Dy() < 4*face.Height {
		return nil, fmt.Errorf("image %dx%d too small for watermark", bounds.Dx(), bounds.Dy())
	}

	out := imaging.Clone(src)
	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: 180}),
		Face: face,
		Dot: fixed.P(
			bounds.Min.X+(bounds.Dx()-width)/2,
			bounds.Min.Y+bounds.Dy()*95/100,
		),
	}
	drawer.DrawString(text)

	return out, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jpegName swaps the extension, since images are always re-encoded as JPEG.
func jpegName(originalName string) string {
	if dot := strings.LastIndex(originalName, "."); dot > 0 {
		originalName = originalName[:dot]
	}
	return originalName + ".jpg"
}
