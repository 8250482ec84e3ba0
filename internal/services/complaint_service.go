package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/repo"
	"evcharge-dashboard-server/internal/store"
	"evcharge-dashboard-server/internal/utils"
)

type ComplaintService struct {
	complaints *repo.ComplaintRepo
}

func NewComplaintService(complaints *repo.ComplaintRepo) *ComplaintService {
	return &ComplaintService{complaints: complaints}
}

func (s *ComplaintService) List(ctx context.Context) ([]models.Complaint, error) {
	items, err := s.complaints.List(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return items, nil
}

func (s *ComplaintService) Create(ctx context.Context, name, email, issue string) (*models.Complaint, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(issue) == "" {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "name & issue required", nil)
	}

	created, err := s.complaints.Create(ctx, name, email, issue)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return created, nil
}

func (s *ComplaintService) UpdateStatus(ctx context.Context, id int64, status *string) (*models.Complaint, error) {
	if status != nil && !models.ValidStatus(*status) {
		return nil, utils.NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", "unknown status value", *status)
	}

	updated, err := s.complaints.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, utils.NewAppError(http.StatusNotFound, "NOT_FOUND", "complaint not found", nil)
		}
		return nil, mapStoreError(err)
	}
	return updated, nil
}

func (s *ComplaintService) Delete(ctx context.Context, id int64) error {
	if err := s.complaints.Delete(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func mapStoreError(err error) error {
	if errors.Is(err, store.ErrPersist) {
		return utils.NewAppError(http.StatusInternalServerError, "STORAGE_ERROR", "could not persist data", nil)
	}
	return utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error", nil)
}
