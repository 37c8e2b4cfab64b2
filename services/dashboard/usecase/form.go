package usecase

import (
	"dashboard/domain"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var eightDigitDate = regexp.MustCompile(`^\d{8}$`)

// NormalizeBirthDate converts user input into the canonical YYYY-MM-DD form.
// Accepted inputs are 8 contiguous digits, YYYY/MM/DD, and the canonical
// form itself, which passes through unchanged.
func NormalizeBirthDate(raw string) string {
	birthDate := strings.TrimSpace(raw)
	if eightDigitDate.MatchString(birthDate) {
		return fmt.Sprintf("%s-%s-%s", birthDate[0:4], birthDate[4:6], birthDate[6:8])
	}
	return strings.ReplaceAll(birthDate, "/", "-")
}

// ComputeAge returns the age in full years at the given day. The age is a
// snapshot: it is stored at write time and never recomputed on read.
func ComputeAge(birthDate string, today time.Time) (int, error) {
	birth, err := time.Parse("2006-01-02", birthDate)
	if err != nil {
		return 0, fmt.Errorf("could not parse birth date: %v", err)
	}

	age := today.Year() - birth.Year()
	if today.Month() < birth.Month() ||
		(today.Month() == birth.Month() && today.Day() < birth.Day()) {
		age--
	}
	return age, nil
}

// JoinPostCode joins the two form segments into the single persisted form.
func JoinPostCode(postCode1, postCode2 string) string {
	return postCode1 + "-" + postCode2
}

// ParsePMYears coerces the optional years-of-experience field. Blank input
// means zero.
func ParsePMYears(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// normalizeMemberForm reshapes a validated form into the write-record shape,
// stamping the derived age from the host clock.
func normalizeMemberForm(form *domain.MemberForm) (*domain.Member, error) {
	birthDate := NormalizeBirthDate(form.BirthDate)

	age, err := ComputeAge(birthDate, time.Now())
	if err != nil {
		return nil, err
	}

	pmYears, err := ParsePMYears(form.PMYears)
	if err != nil {
		return nil, fmt.Errorf("could not parse pm_years: %v", err)
	}

	return &domain.Member{
		LastName:      form.LastName,
		FirstName:     form.FirstName,
		KanaLastName:  form.KanaLastName,
		KanaFirstName: form.KanaFirstName,
		Gender:        form.Gender,
		BirthDate:     birthDate,
		Age:           age,
		PostCode:      JoinPostCode(form.PostCode1, form.PostCode2),
		Address:       form.Address,
		Tel:           form.Tel,
		Profile:       form.Profile,
		PMYears:       pmYears,
	}, nil
}
