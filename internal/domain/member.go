package domain

import (
	"context"
	"time"
)

// Member types. Anything outside this set is coerced to Executive on input.
const (
	MemberTypeExecutive      = "Executive"
	MemberTypeFacultyAdvisor = "Faculty Advisor"
	MemberTypeMentor         = "Mentor"
	MemberTypeAlumni         = "Alumni"
)

// SanitizeMemberType returns t if it is a valid member type, Executive otherwise.
func SanitizeMemberType(t string) string {
	switch t {
	case MemberTypeExecutive, MemberTypeFacultyAdvisor, MemberTypeMentor, MemberTypeAlumni:
		return t
	default:
		return MemberTypeExecutive
	}
}

// Socials holds a member's social links.
type Socials struct {
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	GitHub    string `json:"github,omitempty"`
	Website   string `json:"website,omitempty"`
}

// Member represents one team/committee member. MemberYear is the committee
// year; members with MemberYear before the current year belong to the archive.
// swagger:model Member
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	CollegeYear int `json:"college_year,omitempty"` // 1-4
	MemberYear  int `json:"member_year"`            // e.g. 2025

	Type  string `json:"type"`
	Title string `json:"title,omitempty"`

	Email string `json:"email,omitempty"`
	Photo string `json:"photo,omitempty"`

	Socials *Socials `json:"socials,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MemberPatch is a partial member update; only non-nil fields are applied.
type MemberPatch struct {
	Name        *string  `json:"name"`
	CollegeYear *int     `json:"college_year"`
	MemberYear  *int     `json:"member_year"`
	Type        *string  `json:"type"`
	Title       *string  `json:"title"`
	Email       *string  `json:"email"`
	Photo       *string  `json:"photo"`
	Socials     *Socials `json:"socials"`
}

// Apply overwrites m's fields with the patch's non-nil fields. Type is
// sanitized on the way in.
func (p MemberPatch) Apply(m *Member) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.CollegeYear != nil {
		m.CollegeYear = *p.CollegeYear
	}
	if p.MemberYear != nil {
		m.MemberYear = *p.MemberYear
	}
	if p.Type != nil {
		m.Type = SanitizeMemberType(*p.Type)
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Photo != nil {
		m.Photo = *p.Photo
	}
	if p.Socials != nil {
		m.Socials = p.Socials
	}
}

// PaginationParams holds a validated page/limit pair.
type PaginationParams struct {
	Page  int
	Limit int
}

// MemberRepository defines the interface for team member storage.
type MemberRepository interface {
	List(ctx context.Context) ([]*Member, error)
	GetByID(ctx context.Context, id string) (*Member, error)
	Create(ctx context.Context, member *Member) error
	Update(ctx context.Context, id string, patch MemberPatch) (*Member, error)
	Delete(ctx context.Context, id string) error
}

// TeamService defines the business logic for current committee members and
// the committee archive.
type TeamService interface {
	ListMembers(ctx context.Context) ([]*Member, error)
	GetMember(ctx context.Context, id string) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, id string, patch MemberPatch) (*Member, error)
	DeleteMember(ctx context.Context, id string) error
	// ListArchive returns members whose MemberYear is before the current year,
	// oldest first, paginated. total is the archive size before pagination.
	ListArchive(ctx context.Context, params PaginationParams) (members []*Member, total int, err error)
}
