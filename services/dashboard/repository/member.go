package repository

import (
	"context"
	"dashboard/config"
	"dashboard/domain"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var log = config.GetLogrusInstance()

type memberRepository struct {
	db *pgxpool.Pool
}

func NewMemberRepository(database *pgxpool.Pool) domain.MemberRepo {
	return &memberRepository{
		db: database,
	}
}

// buildMemberFilter turns the optional search parameters into a WHERE
// clause with numbered placeholders. Filters combine with AND; an age
// bound that does not parse as an integer is dropped, not rejected.
func buildMemberFilter(filter domain.MemberFilter) (string, []any) {
	where := "WHERE TRUE"
	var args []any

	if filter.Kana != "" {
		args = append(args, "%"+filter.Kana+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (kana_last_name ILIKE $%d OR kana_first_name ILIKE $%d)", n, n)
	}

	if filter.AgeMin != "" {
		if min, err := strconv.Atoi(filter.AgeMin); err == nil {
			args = append(args, min)
			where += fmt.Sprintf(" AND age >= $%d", len(args))
		}
	}

	if filter.AgeMax != "" {
		if max, err := strconv.Atoi(filter.AgeMax); err == nil {
			args = append(args, max)
			where += fmt.Sprintf(" AND age <= $%d", len(args))
		}
	}

	if filter.Tel != "" {
		args = append(args, "%"+filter.Tel+"%")
		where += fmt.Sprintf(" AND tel ILIKE $%d", len(args))
	}

	return where, args
}

func (mr *memberRepository) FetchMembers(ctx context.Context, filter domain.MemberFilter) (*[]domain.Member, error) {
	where, args := buildMemberFilter(filter)

	query := `
		SELECT id, last_name, first_name, kana_last_name, kana_first_name,
		gender, birth_date, age, post_code, address, tel, profile, pm_years,
		created_at, updated_at
		FROM members
		` + where + `
		ORDER BY id DESC;
	`

	rows, err := mr.db.Query(ctx, query, args...)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch members")
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var member domain.Member
		var birthDate time.Time

		err := rows.Scan(&member.ID, &member.LastName, &member.FirstName, &member.KanaLastName, &member.KanaFirstName,
			&member.Gender, &birthDate, &member.Age, &member.PostCode, &member.Address, &member.Tel, &member.Profile, &member.PMYears,
			&member.CreatedAt, &member.UpdatedAt)
		if err != nil {
			log.Errorf("Database error: %v", err)
			return nil, errors.New("failed to fetch members")
		}

		member.BirthDate = birthDate.Format("2006-01-02")
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch members")
	}

	return &members, nil
}

func (mr *memberRepository) GetMemberByID(ctx context.Context, id int) (*domain.Member, error) {
	query := `
		SELECT id, last_name, first_name, kana_last_name, kana_first_name,
		gender, birth_date, age, post_code, address, tel, profile, pm_years,
		created_at, updated_at
		FROM members
		WHERE id = $1
		LIMIT 1;
	`

	var member domain.Member
	var birthDate time.Time

	err := mr.db.QueryRow(ctx, query, id).Scan(&member.ID, &member.LastName, &member.FirstName, &member.KanaLastName, &member.KanaFirstName,
		&member.Gender, &birthDate, &member.Age, &member.PostCode, &member.Address, &member.Tel, &member.Profile, &member.PMYears,
		&member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		if err.Error() == "no rows in result set" {
			return nil, fmt.Errorf("member not found")
		}
		log.Errorf("Database error: %v", err)
		return nil, errors.New("failed to fetch member")
	}

	member.BirthDate = birthDate.Format("2006-01-02")

	return &member, nil
}

func (mr *memberRepository) CreateMember(ctx context.Context, member *domain.Member) error {
	query := `
		INSERT INTO members (
		last_name, first_name, kana_last_name, kana_first_name,
		age, gender, birth_date, post_code, address, tel,
		profile, pm_years, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id;
	`

	now := time.Now()

	var id int
	err := mr.db.QueryRow(ctx, query,
		member.LastName, member.FirstName, member.KanaLastName, member.KanaFirstName,
		member.Age, member.Gender, member.BirthDate, member.PostCode, member.Address, member.Tel,
		member.Profile, member.PMYears, now, now).Scan(&id)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to create member")
	}

	member.ID = id
	member.CreatedAt = now
	member.UpdatedAt = now

	return nil
}

func (mr *memberRepository) UpdateMember(ctx context.Context, member *domain.Member) error {
	query := `
		UPDATE members SET
		last_name = $1, first_name = $2, kana_last_name = $3, kana_first_name = $4,
		gender = $5, birth_date = $6, age = $7, post_code = $8, address = $9,
		tel = $10, profile = $11, pm_years = $12, updated_at = $13
		WHERE id = $14;
	`

	now := time.Now()
	_, err := mr.db.Exec(ctx, query,
		member.LastName, member.FirstName, member.KanaLastName, member.KanaFirstName,
		member.Gender, member.BirthDate, member.Age, member.PostCode, member.Address,
		member.Tel, member.Profile, member.PMYears, now, member.ID)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to update member")
	}

	member.UpdatedAt = now
	return nil
}

// Deleting an id that no longer exists affects zero rows and is not an error.
func (mr *memberRepository) DeleteMember(ctx context.Context, id int) error {
	query := `DELETE FROM members WHERE id = $1;`

	_, err := mr.db.Exec(ctx, query, id)
	if err != nil {
		log.Errorf("Database error: %v", err)
		return errors.New("failed to delete member")
	}

	return nil
}
