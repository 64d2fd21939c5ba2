package images

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"alwantayf_backend/internals/configs"
)

// WebPOptions bounds the recompression pass applied to large images before
// they go to storage.
type WebPOptions struct {
	MaxW     int     // resize bound (keep aspect)
	MaxH     int
	Quality  float32 // initial lossy quality
	MinQ     float32 // floor for the quality walk
	TargetKB int     // stop early once under this size; 0 = single pass
}

func DefaultWebPOptions() WebPOptions {
	return WebPOptions{
		MaxW:     configs.GetEnvInt("IMAGE_WEBP_MAX_W", 1920),
		MaxH:     configs.GetEnvInt("IMAGE_WEBP_MAX_H", 1920),
		Quality:  float32(configs.GetEnvInt("IMAGE_WEBP_QUALITY", 80)),
		MinQ:     float32(configs.GetEnvInt("IMAGE_WEBP_MIN_Q", 45)),
		TargetKB: configs.GetEnvInt("IMAGE_WEBP_TARGET_KB", 900),
	}
}

// IsImage sniffs the payload (not the client header, which lies).
func IsImage(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	return strings.HasPrefix(http.DetectContentType(head), "image/")
}

// CompressToWebP decodes jpeg/png/webp bytes, fits them inside the
// configured bound and re-encodes as lossy WebP, stepping quality down
// until the target size (or the quality floor) is reached. Returns the
// webp bytes; callers keep the original on error.
func CompressToWebP(data []byte, opt WebPOptions) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		// imaging has no webp codec; fall back to the webp decoder
		img, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
	}

	bounds := img.Bounds()
	if bounds.Dx() > opt.MaxW || bounds.Dy() > opt.MaxH {
		img = imaging.Fit(img, opt.MaxW, opt.MaxH, imaging.Lanczos)
	}

	q := opt.Quality
	var out []byte
	for {
		var buf bytes.Buffer
		if err := webp.Encode(&buf, img, &webp.Options{Quality: q}); err != nil {
			return nil, fmt.Errorf("encode webp: %w", err)
		}
		out = buf.Bytes()
		if opt.TargetKB <= 0 || len(out) <= opt.TargetKB*1024 || q <= opt.MinQ {
			break
		}
		q -= 10
		if q < opt.MinQ {
			q = opt.MinQ
		}
	}
	return out, nil
}
