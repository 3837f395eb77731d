package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/domain"
)

type teamService struct {
	memberRepo     domain.MemberRepository
	contextTimeout time.Duration
	now            func() time.Time
}

func NewTeamService(memberRepo domain.MemberRepository, timeout time.Duration) domain.TeamService {
	return &teamService{
		memberRepo:     memberRepo,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *teamService) ListMembers(ctx context.Context) ([]*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.memberRepo.List(ctx)
}

func (s *teamService) GetMember(ctx context.Context, id string) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.memberRepo.GetByID(ctx, id)
}

func (s *teamService) CreateMember(ctx context.Context, member *domain.Member) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if member.Name == "" {
		return domain.ErrInvalidInput
	}

	member.ID = uuid.NewString()
	member.Type = domain.SanitizeMemberType(member.Type)
	if member.MemberYear == 0 {
		member.MemberYear = s.now().Year()
	}
	now := s.now().UTC()
	member.CreatedAt = now
	member.UpdatedAt = now

	return s.memberRepo.Create(ctx, member)
}

func (s *teamService) UpdateMember(ctx context.Context, id string, patch domain.MemberPatch) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.memberRepo.Update(ctx, id, patch)
}

func (s *teamService) DeleteMember(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.memberRepo.Delete(ctx, id)
}

// ListArchive returns past committee members (MemberYear before the current
// year), oldest committee first, cut to the requested page. total is the
// archive size before pagination so callers can derive page counts.
func (s *teamService) ListArchive(ctx context.Context, params domain.PaginationParams) ([]*domain.Member, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	currentYear := s.now().Year()
	archive := make([]*domain.Member, 0, len(members))
	for _, m := range members {
		if m.MemberYear < currentYear {
			archive = append(archive, m)
		}
	}
	sort.SliceStable(archive, func(i, j int) bool {
		return archive[i].MemberYear < archive[j].MemberYear
	})

	total := len(archive)
	start := (params.Page - 1) * params.Limit
	if start >= total {
		return []*domain.Member{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return archive[start:end], total, nil
}
