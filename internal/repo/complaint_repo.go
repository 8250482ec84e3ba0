package repo

import (
	"context"
	"time"

	"evcharge-dashboard-server/internal/models"
	"evcharge-dashboard-server/internal/store"
)

type ComplaintRepo struct {
	store *store.Store
}

func NewComplaintRepo(s *store.Store) *ComplaintRepo {
	return &ComplaintRepo{store: s}
}

// List returns all complaints, most recently created first. Creation prepends,
// so the stored order is already newest-first.
func (r *ComplaintRepo) List(ctx context.Context) ([]models.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src := r.store.Snapshot().Complaints
	out := make([]models.Complaint, len(src))
	copy(out, src)
	return out, nil
}

// Create assigns a time-derived id, stamps the record and prepends it.
func (r *ComplaintRepo) Create(ctx context.Context, name, email, issue string) (*models.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var created models.Complaint
	err := r.store.Update(func(doc *store.Document) error {
		created = models.Complaint{
			ID:        nextComplaintID(doc),
			Name:      name,
			Email:     email,
			Issue:     issue,
			Status:    models.StatusSubmitted,
			CreatedAt: time.Now().UTC(),
		}
		doc.Complaints = append([]models.Complaint{created}, doc.Complaints...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateStatus overwrites the status when one is provided and always refreshes
// updated_at. Unknown ids fail with ErrNotFound.
func (r *ComplaintRepo) UpdateStatus(ctx context.Context, id int64, status *string) (*models.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var updated models.Complaint
	err := r.store.Update(func(doc *store.Document) error {
		for i := range doc.Complaints {
			if doc.Complaints[i].ID != id {
				continue
			}

			record := doc.Complaints[i]
			if status != nil {
				record.Status = *status
			}
			now := time.Now().UTC()
			record.UpdatedAt = &now

			doc.Complaints[i] = record
			updated = record
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the matching record. Deleting an unknown id is a no-op, not
// an error.
func (r *ComplaintRepo) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return r.store.Update(func(doc *store.Document) error {
		kept := doc.Complaints[:0:0]
		for _, c := range doc.Complaints {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		doc.Complaints = kept
		return nil
	})
}

// nextComplaintID derives the id from the current time, bumped past the
// existing maximum so two creates in the same millisecond stay distinct.
func nextComplaintID(doc *store.Document) int64 {
	id := time.Now().UnixMilli()
	for _, c := range doc.Complaints {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	return id
}
