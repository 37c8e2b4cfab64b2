package usecase

import (
	"context"
	"dashboard/domain"
	"time"
)

type memberUC struct {
	memberRepo domain.MemberRepo
	TimeOut    time.Duration
}

func NewMemberUseCase(repo domain.MemberRepo, timeOut time.Duration) domain.MemberUseCase {
	return &memberUC{
		memberRepo: repo,
		TimeOut:    timeOut,
	}
}

func (mUC *memberUC) FetchMembersUC(ctx context.Context, filter domain.MemberFilter) (*[]domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	members, err := mUC.memberRepo.FetchMembers(ctx, filter)
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (mUC *memberUC) GetMemberByIDUC(ctx context.Context, id int) (*domain.Member, error) {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	member, err := mUC.memberRepo.GetMemberByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return member, nil
}

// CreateMemberUC validates the raw form first; when the returned map is
// non-empty no statement was issued.
func (mUC *memberUC) CreateMemberUC(ctx context.Context, form *domain.MemberForm) (map[string]string, error) {
	if fieldErrors := ValidateMemberForm(form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	member, err := normalizeMemberForm(form)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	if err := mUC.memberRepo.CreateMember(ctx, member); err != nil {
		return nil, err
	}
	return nil, nil
}

func (mUC *memberUC) UpdateMemberUC(ctx context.Context, id int, form *domain.MemberForm) (map[string]string, error) {
	if fieldErrors := ValidateMemberForm(form); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	member, err := normalizeMemberForm(form)
	if err != nil {
		return nil, err
	}
	member.ID = id

	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	if err := mUC.memberRepo.UpdateMember(ctx, member); err != nil {
		return nil, err
	}
	return nil, nil
}

func (mUC *memberUC) DeleteMemberUC(ctx context.Context, id int) error {
	ctx, cancel := context.WithTimeout(ctx, mUC.TimeOut)
	defer cancel()

	err := mUC.memberRepo.DeleteMember(ctx, id)
	if err != nil {
		return err
	}
	return nil
}
