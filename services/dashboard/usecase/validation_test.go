package usecase

import (
	"dashboard/domain"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMemberForm() *domain.MemberForm {
	return &domain.MemberForm{
		LastName:      "山田",
		FirstName:     "太郎",
		KanaLastName:  "やまだ",
		KanaFirstName: "たろう",
		Gender:        domain.GenderMale,
		BirthDate:     "1990/01/01",
		PostCode1:     "123",
		PostCode2:     "4567",
		Address:       "東京都千代田区1-1",
		Tel:           "09012345678",
		Profile:       "よろしくお願いします",
		PMYears:       "",
	}
}

func TestValidateMemberForm_Valid(t *testing.T) {
	errors := ValidateMemberForm(validMemberForm())
	assert.Empty(t, errors)
}

func TestValidateMemberForm_LastName(t *testing.T) {
	form := validMemberForm()
	form.LastName = strings.Repeat("a", 21)
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "last_name")

	// Half-width Latin fails the charset rule even at valid length
	form.LastName = "Yamada"
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "last_name")

	form.LastName = "山田"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "last_name")

	form.LastName = ""
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "last_name")
}

func TestValidateMemberForm_KanaFields(t *testing.T) {
	form := validMemberForm()

	// Katakana is not accepted in the reading fields
	form.KanaLastName = "ヤマダ"
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "kana_last_name")

	// Long-vowel mark is allowed
	form.KanaLastName = "やまだー"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "kana_last_name")

	form.KanaFirstName = ""
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "kana_first_name")
}

func TestValidateMemberForm_Gender(t *testing.T) {
	form := validMemberForm()
	form.Gender = ""
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "gender")
}

func TestValidateMemberForm_BirthDate(t *testing.T) {
	form := validMemberForm()

	form.BirthDate = "1990-01-01" // hyphens are not the form format
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "birth_date")

	form.BirthDate = "2999/01/01"
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "birth_date")

	form.BirthDate = "1990/01/01"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "birth_date")
}

func TestValidateMemberForm_PostCode(t *testing.T) {
	form := validMemberForm()

	form.PostCode1 = "12"
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "post_code")

	form.PostCode1 = "123"
	form.PostCode2 = "45678"
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "post_code")

	form.PostCode2 = "4567"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "post_code")
}

func TestValidateMemberForm_Address(t *testing.T) {
	form := validMemberForm()

	form.Address = strings.Repeat("あ", 100)
	errors := ValidateMemberForm(form)
	assert.NotContains(t, errors, "address")

	form.Address = strings.Repeat("あ", 101)
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "address")

	// Address is not required
	form.Address = ""
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "address")
}

func TestValidateMemberForm_Tel(t *testing.T) {
	form := validMemberForm()

	form.Tel = "12345"
	errors := ValidateMemberForm(form)
	assert.Contains(t, errors, "tel")

	form.Tel = "09012345678"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "tel")

	form.Tel = "0901234567"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "tel")
}

func TestValidateMemberForm_Profile(t *testing.T) {
	form := validMemberForm()

	// No minimum length is enforced
	form.Profile = ""
	errors := ValidateMemberForm(form)
	assert.NotContains(t, errors, "profile")

	form.Profile = strings.Repeat("あ", 201)
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "profile")
}

func TestValidateMemberForm_PMYears(t *testing.T) {
	form := validMemberForm()

	form.PMYears = ""
	errors := ValidateMemberForm(form)
	assert.NotContains(t, errors, "pm_years")

	form.PMYears = "10"
	errors = ValidateMemberForm(form)
	assert.NotContains(t, errors, "pm_years")

	form.PMYears = "abc"
	errors = ValidateMemberForm(form)
	assert.Contains(t, errors, "pm_years")
}

// Every rule runs even after one fails.
func TestValidateMemberForm_CollectsAllErrors(t *testing.T) {
	errors := ValidateMemberForm(&domain.MemberForm{})

	for _, field := range []string{
		"last_name", "first_name", "kana_last_name", "kana_first_name",
		"gender", "birth_date", "post_code", "tel",
	} {
		assert.Contains(t, errors, field)
	}
	assert.NotContains(t, errors, "address")
	assert.NotContains(t, errors, "profile")
	assert.NotContains(t, errors, "pm_years")
}
