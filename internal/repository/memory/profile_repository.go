package memory

import (
	"context"
	"sort"
	"time"

	"chat-space-be/internal/entity"
	"chat-space-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ProfileRepository struct {
	store *Store
}

func (r *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.AddProfile(profile)
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for i, p := range r.store.profiles {
		if p.Id == profile.Id {
			r.store.profiles[i] = profile
			return nil
		}
	}
	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	kept := r.store.profiles[:0]
	for _, p := range r.store.profiles {
		if p.Id != id {
			kept = append(kept, p)
		}
	}
	r.store.profiles = kept
	return nil
}

func (r *ProfileRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *ProfileRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Profile, error) {
	if r.store.ForcedErr != nil {
		return nil, r.store.ForcedErr
	}
	filters, order := splitSpecs(specs)

	var results []*entity.Profile
	for _, p := range r.store.Profiles() {
		if matchProfile(p, filters) {
			results = append(results, p)
		}
	}
	if order != nil {
		switch order.Field {
		case "full_name":
			sort.SliceStable(results, func(i, j int) bool {
				if order.Desc {
					return results[i].FullName > results[j].FullName
				}
				return results[i].FullName < results[j].FullName
			})
		default:
			sortByCreatedAt(results, func(p *entity.Profile) time.Time { return p.CreatedAt }, order.Desc)
		}
	}
	return results, nil
}

func (r *ProfileRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	results, err := r.FindAll(ctx, specs...)
	if err != nil {
		return 0, err
	}
	return int64(len(results)), nil
}

func (r *ProfileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.profiles {
		if p.Id == id {
			p.Role = entity.ProfileRole(role)
			p.UpdatedAt = time.Now()
		}
	}
	return nil
}

func (r *ProfileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if r.store.ForcedErr != nil {
		return r.store.ForcedErr
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, p := range r.store.profiles {
		if p.Id == id {
			p.Status = entity.ProfileStatus(status)
			p.LastSeen = time.Now()
		}
	}
	return nil
}

func matchProfile(p *entity.Profile, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if p.Id != s.ID {
				return false
			}
		case specification.ByEmail:
			if p.Email != s.Email {
				return false
			}
		}
	}
	return true
}
