package jsonstore

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"clubsite/internal/domain"
)

// memberDocument is the persisted shape of teams.json.
type memberDocument struct {
	Members []*domain.Member `json:"members"`
}

type memberRepository struct {
	path string

	mu      sync.RWMutex
	members []*domain.Member
}

// NewMemberRepository loads dataDir/teams.json and returns a repository
// backed by it.
func NewMemberRepository(dataDir string) (domain.MemberRepository, error) {
	r := &memberRepository{path: filepath.Join(dataDir, "teams.json")}
	var doc memberDocument
	if err := loadDocument(r.path, &doc); err != nil {
		return nil, err
	}
	r.members = doc.Members
	return r, nil
}

func (r *memberRepository) flushLocked() error {
	return saveDocument(r.path, memberDocument{Members: r.members})
}

func (r *memberRepository) List(ctx context.Context) ([]*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Member, len(r.members))
	copy(out, r.members)
	return out, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.members = append(r.members, member)
	return r.flushLocked()
}

// Update applies the patch to a clone and swaps the stored pointer, so
// records handed out by earlier reads are never written to.
func (r *memberRepository) Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.ID == id {
			updated := *m
			patch.Apply(&updated)
			updated.UpdatedAt = time.Now().UTC()
			r.members[i] = &updated
			if err := r.flushLocked(); err != nil {
				return nil, err
			}
			return &updated, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.members {
		if m.ID == id {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return r.flushLocked()
		}
	}
	return domain.ErrNotFound
}
