package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"clubsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMemberRepo struct {
	members []*domain.Member
}

func (f *fakeMemberRepo) List(ctx context.Context) ([]*domain.Member, error) {
	out := make([]*domain.Member, len(f.members))
	copy(out, f.members)
	return out, nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) Create(ctx context.Context, m *domain.Member) error {
	f.members = append(f.members, m)
	return nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error) {
	for _, m := range f.members {
		if m.ID == id {
			patch.Apply(m)
			return m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) Delete(ctx context.Context, id string) error {
	for i, m := range f.members {
		if m.ID == id {
			f.members = append(f.members[:i], f.members[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newTeamServiceAt(repo *fakeMemberRepo, now time.Time) *teamService {
	return &teamService{
		memberRepo:     repo,
		contextTimeout: time.Second,
		now:            func() time.Time { return now },
	}
}

func TestCreateMember_Defaults(t *testing.T) {
	repo := &fakeMemberRepo{}
	svc := newTeamServiceAt(repo, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	member := &domain.Member{Name: "Asha", Type: "President"} // not a valid type
	require.NoError(t, svc.CreateMember(context.Background(), member))

	assert.NotEmpty(t, member.ID)
	assert.Equal(t, domain.MemberTypeExecutive, member.Type)
	assert.Equal(t, 2026, member.MemberYear)
}

func TestCreateMember_MissingName(t *testing.T) {
	svc := newTeamServiceAt(&fakeMemberRepo{}, time.Now())

	err := svc.CreateMember(context.Background(), &domain.Member{Type: domain.MemberTypeMentor})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateMember_KeepsExplicitYearAndValidType(t *testing.T) {
	repo := &fakeMemberRepo{}
	svc := newTeamServiceAt(repo, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	member := &domain.Member{Name: "Ravi", Type: domain.MemberTypeAlumni, MemberYear: 2023}
	require.NoError(t, svc.CreateMember(context.Background(), member))

	assert.Equal(t, domain.MemberTypeAlumni, member.Type)
	assert.Equal(t, 2023, member.MemberYear)
}

func TestUpdateMember_SanitizesType(t *testing.T) {
	repo := &fakeMemberRepo{members: []*domain.Member{
		{ID: "m1", Name: "Asha", Type: domain.MemberTypeMentor},
	}}
	svc := newTeamServiceAt(repo, time.Now())

	bogus := "Supreme Leader"
	got, err := svc.UpdateMember(context.Background(), "m1", domain.MemberPatch{Type: &bogus})
	require.NoError(t, err)
	assert.Equal(t, domain.MemberTypeExecutive, got.Type)
}

func TestListArchive(t *testing.T) {
	repo := &fakeMemberRepo{}
	for year := 2020; year <= 2026; year++ {
		repo.members = append(repo.members, &domain.Member{
			ID:         fmt.Sprintf("m%d", year),
			Name:       fmt.Sprintf("Member %d", year),
			MemberYear: year,
		})
	}
	svc := newTeamServiceAt(repo, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	// 2020..2025 are archived; 2026 is the current committee.
	members, total, err := svc.ListArchive(context.Background(), domain.PaginationParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, members, 6)
	assert.Equal(t, 2020, members[0].MemberYear)
	assert.Equal(t, 2025, members[5].MemberYear)
}

func TestListArchive_Pagination(t *testing.T) {
	repo := &fakeMemberRepo{}
	for year := 2020; year <= 2025; year++ {
		repo.members = append(repo.members, &domain.Member{
			ID:         fmt.Sprintf("m%d", year),
			MemberYear: year,
		})
	}
	svc := newTeamServiceAt(repo, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))

	page2, total, err := svc.ListArchive(context.Background(), domain.PaginationParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	require.Len(t, page2, 2)
	assert.Equal(t, 2022, page2[0].MemberYear)
	assert.Equal(t, 2023, page2[1].MemberYear)

	// A page past the end is empty, not an error.
	beyond, total, err := svc.ListArchive(context.Background(), domain.PaginationParams{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 6, total)
	assert.Empty(t, beyond)
}

func TestDeleteMember(t *testing.T) {
	repo := &fakeMemberRepo{members: []*domain.Member{{ID: "m1", Name: "Asha"}}}
	svc := newTeamServiceAt(repo, time.Now())

	require.NoError(t, svc.DeleteMember(context.Background(), "m1"))
	assert.ErrorIs(t, svc.DeleteMember(context.Background(), "m1"), domain.ErrNotFound)
}
