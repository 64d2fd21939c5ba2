package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"alwantayf_backend/internals/constants"
	"alwantayf_backend/internals/features/admissions/dto"
	"alwantayf_backend/internals/features/admissions/model"
	helper "alwantayf_backend/internals/helpers"
	"alwantayf_backend/internals/helpers/storage"
)

// FileInput is one document taken off the multipart form.
type FileInput struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// FileResult is the per-field upload outcome. Exactly one of the three
// states holds: URL set (uploaded), Skipped (field absent), Err set
// (failed; the application is still created with a null URL).
type FileResult struct {
	Field   string
	URL     string
	Err     error
	Skipped bool
}

type AdmissionService struct {
	repo        AdmissionRepository
	uploader    storage.Uploader
	maxFileSize int64
}

func NewAdmissionService(repo AdmissionRepository, uploader storage.Uploader, maxFileSize int64) *AdmissionService {
	return &AdmissionService{repo: repo, uploader: uploader, maxFileSize: maxFileSize}
}

// Submit builds one application from the form fields plus whatever
// documents uploaded successfully. Uploads run concurrently and are all
// awaited before the insert; a failed upload is logged and leaves its URL
// null rather than aborting the submission (documents can be supplied
// out-of-band later).
func (s *AdmissionService) Submit(ctx context.Context, req dto.CreateAdmissionRequest, files []FileInput) (*model.AdmissionModel, []FileResult, error) {
	rec := req.ToModel()
	rec.Status = constants.AdmissionStatusPending

	results := s.uploadAll(ctx, files)
	for _, res := range results {
		if res.Err != nil {
			log.Printf("[WARN] admission upload %s failed: %v", res.Field, res.Err)
			continue
		}
		if res.URL != "" {
			dto.SetFileURL(&rec, res.Field, res.URL)
		}
	}

	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, results, err
	}
	return &rec, results, nil
}

// uploadAll fans out one goroutine per present document and aggregates a
// result per known field, absent ones included.
func (s *AdmissionService) uploadAll(ctx context.Context, files []FileInput) []FileResult {
	byField := make(map[string]int, len(files))
	for i, f := range files {
		byField[f.Field] = i
	}

	results := make([]FileResult, len(dto.FileFields))
	var wg sync.WaitGroup
	for i, field := range dto.FileFields {
		results[i].Field = field
		idx, ok := byField[field]
		if !ok || len(files[idx].Data) == 0 {
			results[i].Skipped = true
			continue
		}

		wg.Add(1)
		go func(i int, f FileInput) {
			defer wg.Done()
			results[i].URL, results[i].Err = s.uploadOne(ctx, f)
		}(i, files[idx])
	}
	wg.Wait()
	return results
}

func (s *AdmissionService) uploadOne(ctx context.Context, f FileInput) (string, error) {
	if err := storage.CheckSize(int64(len(f.Data)), s.maxFileSize, "ar"); err != nil {
		return "", err
	}
	objectPath := fmt.Sprintf("%s/%s", constants.AdmissionsFolder, helper.GenerateObjectName(f.Filename))
	return s.uploader.UploadBytes(ctx, constants.DocumentsBucket, objectPath, f.ContentType, f.Data)
}

// List returns applications newest-first with optional status/search filters.
func (s *AdmissionService) List(ctx context.Context, status, search string) ([]model.AdmissionModel, error) {
	return s.repo.FindAll(ctx, status, search)
}

func (s *AdmissionService) Get(ctx context.Context, id string) (*model.AdmissionModel, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateStatus overwrites the status unconditionally (re-approving or
// re-rejecting a decided application is allowed, last write wins) and
// refreshes the update timestamp.
func (s *AdmissionService) UpdateStatus(ctx context.Context, id, status string) (*model.AdmissionModel, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Status = status
	m.UpdatedAt = time.Now()
	if err := s.repo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *AdmissionService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
