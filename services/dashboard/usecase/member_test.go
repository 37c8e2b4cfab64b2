package usecase

import (
	"context"
	"dashboard/domain"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMemberRepo struct {
	members     []domain.Member
	created     *domain.Member
	updated     *domain.Member
	deletedID   int
	lastFilter  domain.MemberFilter
	fetchCalled bool
	err         error
}

func (s *stubMemberRepo) FetchMembers(ctx context.Context, filter domain.MemberFilter) (*[]domain.Member, error) {
	s.fetchCalled = true
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	return &s.members, nil
}

func (s *stubMemberRepo) GetMemberByID(ctx context.Context, id int) (*domain.Member, error) {
	if s.err != nil {
		return nil, s.err
	}
	for i := range s.members {
		if s.members[i].ID == id {
			return &s.members[i], nil
		}
	}
	return nil, errors.New("member not found")
}

func (s *stubMemberRepo) CreateMember(ctx context.Context, member *domain.Member) error {
	if s.err != nil {
		return s.err
	}
	s.created = member
	return nil
}

func (s *stubMemberRepo) UpdateMember(ctx context.Context, member *domain.Member) error {
	if s.err != nil {
		return s.err
	}
	s.updated = member
	return nil
}

func (s *stubMemberRepo) DeleteMember(ctx context.Context, id int) error {
	if s.err != nil {
		return s.err
	}
	s.deletedID = id
	return nil
}

func TestCreateMemberUC_ValidationFailure(t *testing.T) {
	repo := &stubMemberRepo{}
	uc := NewMemberUseCase(repo, time.Second)

	form := validMemberForm()
	form.Tel = "12345"

	fieldErrors, err := uc.CreateMemberUC(context.Background(), form)
	require.NoError(t, err)
	assert.Contains(t, fieldErrors, "tel")
	assert.Nil(t, repo.created, "no statement should be issued on validation failure")
}

func TestCreateMemberUC_NormalizesBeforeWrite(t *testing.T) {
	repo := &stubMemberRepo{}
	uc := NewMemberUseCase(repo, time.Second)

	form := validMemberForm()
	form.BirthDate = "1990/01/01"
	form.PMYears = ""

	fieldErrors, err := uc.CreateMemberUC(context.Background(), form)
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	require.NotNil(t, repo.created)
	assert.Equal(t, "1990-01-01", repo.created.BirthDate)
	assert.Equal(t, "123-4567", repo.created.PostCode)
	assert.Equal(t, 0, repo.created.PMYears)

	wantAge, err := ComputeAge("1990-01-01", time.Now())
	require.NoError(t, err)
	assert.Equal(t, wantAge, repo.created.Age)
}

func TestCreateMemberUC_RepoError(t *testing.T) {
	repo := &stubMemberRepo{err: errors.New("failed to create member")}
	uc := NewMemberUseCase(repo, time.Second)

	fieldErrors, err := uc.CreateMemberUC(context.Background(), validMemberForm())
	assert.Error(t, err)
	assert.Empty(t, fieldErrors)
}

func TestUpdateMemberUC_SetsID(t *testing.T) {
	repo := &stubMemberRepo{}
	uc := NewMemberUseCase(repo, time.Second)

	fieldErrors, err := uc.UpdateMemberUC(context.Background(), 42, validMemberForm())
	require.NoError(t, err)
	assert.Empty(t, fieldErrors)

	require.NotNil(t, repo.updated)
	assert.Equal(t, 42, repo.updated.ID)
}

func TestFetchMembersUC_PassesFilterThrough(t *testing.T) {
	repo := &stubMemberRepo{members: []domain.Member{{ID: 1}, {ID: 2}}}
	uc := NewMemberUseCase(repo, time.Second)

	filter := domain.MemberFilter{Kana: "やまだ", AgeMin: "20", AgeMax: "30", Tel: "090"}
	members, err := uc.FetchMembersUC(context.Background(), filter)
	require.NoError(t, err)

	assert.True(t, repo.fetchCalled)
	assert.Equal(t, filter, repo.lastFilter)
	assert.Len(t, *members, 2)
}

func TestDeleteMemberUC(t *testing.T) {
	repo := &stubMemberRepo{}
	uc := NewMemberUseCase(repo, time.Second)

	err := uc.DeleteMemberUC(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, repo.deletedID)
}
