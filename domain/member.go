package domain

import (
	"context"
	"time"
)

const (
	GenderUnanswered = ""
	GenderMale       = "男性"
	GenderFemale     = "女性"
)

type Member struct {
	ID            int       `json:"id"`
	LastName      string    `json:"last_name"`
	FirstName     string    `json:"first_name"`
	KanaLastName  string    `json:"kana_last_name"`
	KanaFirstName string    `json:"kana_first_name"`
	Gender        string    `json:"gender"`
	BirthDate     string    `json:"birth_date"`
	Age           int       `json:"age"`
	PostCode      string    `json:"post_code"`
	Address       string    `json:"address"`
	Tel           string    `json:"tel"`
	Profile       string    `json:"profile"`
	PMYears       int       `json:"pm_years"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MemberForm is the raw form submission: every field arrives as a string and
// the postal code is still split in two. Normalization turns this into a
// Member before anything reaches the database.
type MemberForm struct {
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	KanaLastName  string `json:"kana_last_name"`
	KanaFirstName string `json:"kana_first_name"`
	Gender        string `json:"gender"`
	BirthDate     string `json:"birth_date"`
	PostCode1     string `json:"post_code_1"`
	PostCode2     string `json:"post_code_2"`
	Address       string `json:"address"`
	Tel           string `json:"tel"`
	Profile       string `json:"profile"`
	PMYears       string `json:"pm_years"`
}

// MemberFilter holds the optional list-view search parameters. Empty string
// means the filter is absent.
type MemberFilter struct {
	Kana   string `json:"kana"`
	AgeMin string `json:"ageMin"`
	AgeMax string `json:"ageMax"`
	Tel    string `json:"tel"`
}

type MemberRepo interface {
	FetchMembers(ctx context.Context, filter MemberFilter) (*[]Member, error)
	GetMemberByID(ctx context.Context, id int) (*Member, error)
	CreateMember(ctx context.Context, member *Member) error
	UpdateMember(ctx context.Context, member *Member) error
	DeleteMember(ctx context.Context, id int) error
}

type MemberUseCase interface {
	FetchMembersUC(ctx context.Context, filter MemberFilter) (*[]Member, error)
	GetMemberByIDUC(ctx context.Context, id int) (*Member, error)
	CreateMemberUC(ctx context.Context, form *MemberForm) (map[string]string, error)
	UpdateMemberUC(ctx context.Context, id int, form *MemberForm) (map[string]string, error)
	DeleteMemberUC(ctx context.Context, id int) error
}
