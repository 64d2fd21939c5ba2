package storage

import "fmt"

// SizeLimitError rejects a file before any storage call is attempted.
// The message is user-facing and localized (ar default, en on request).
type SizeLimitError struct {
	Size int64
	Max  int64
	Lang string
}

func (e *SizeLimitError) Error() string {
	sizeMB := float64(e.Size) / 1024 / 1024
	maxMB := e.Max / 1024 / 1024
	if e.Lang == "en" {
		return fmt.Sprintf("File too large: %.2fMB. Maximum is %dMB.", sizeMB, maxMB)
	}
	return fmt.Sprintf("الملف كبير جداً: %.2f ميجابايت. الحد الأقصى %d ميجابايت.", sizeMB, maxMB)
}

// CheckSize returns a *SizeLimitError when size exceeds max.
func CheckSize(size, max int64, lang string) error {
	if size > max {
		return &SizeLimitError{Size: size, Max: max, Lang: lang}
	}
	return nil
}
