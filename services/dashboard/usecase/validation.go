package usecase

import (
	"dashboard/domain"
	"regexp"
	"time"

	"github.com/asaskevich/govalidator"
)

var (
	// Kanji, hiragana, katakana and full-width Latin letters.
	nameRegex = regexp.MustCompile(`^[\x{4E00}-\x{9FFF}\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{FF21}-\x{FF3A}\x{FF41}-\x{FF5A}]+$`)
	// Hiragana plus the long-vowel mark.
	kanaRegex = regexp.MustCompile(`^[\x{3040}-\x{309F}ー]+$`)
	dateRegex = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
	telRegex  = regexp.MustCompile(`^\d{10,11}$`)
)

// ValidateMemberForm checks every field of the raw submission and returns a
// field-to-message map. Every rule runs even after one fails; an empty map
// means the form is valid and no statement has been issued yet.
func ValidateMemberForm(form *domain.MemberForm) map[string]string {
	errors := map[string]string{}

	if form.LastName == "" || !govalidator.StringLength(form.LastName, "1", "20") || !nameRegex.MatchString(form.LastName) {
		errors["last_name"] = "姓は必須です。姓は20文字以下で入力してください。登録できない文字が含まれています。"
	}
	if form.FirstName == "" || !govalidator.StringLength(form.FirstName, "1", "20") || !nameRegex.MatchString(form.FirstName) {
		errors["first_name"] = "名は必須です。名は20文字以下で入力してください。登録できない文字が含まれています。"
	}

	if form.KanaLastName == "" || !govalidator.StringLength(form.KanaLastName, "1", "20") || !kanaRegex.MatchString(form.KanaLastName) {
		errors["kana_last_name"] = "氏名ふりがなは必須項目です。姓は20文字以下で入力してください。登録できない文字が含まれています。"
	}
	if form.KanaFirstName == "" || !govalidator.StringLength(form.KanaFirstName, "1", "20") || !kanaRegex.MatchString(form.KanaFirstName) {
		errors["kana_first_name"] = "氏名ふりがなは必須項目です。名は20文字以下で入力してください。登録できない文字が含まれています。"
	}

	if form.Gender == "" {
		errors["gender"] = "性別を選択してください。"
	}

	if form.BirthDate == "" || !dateRegex.MatchString(form.BirthDate) {
		errors["birth_date"] = "未来の日付は登録できません。正しい形式で入力してください。"
	} else {
		inputDate, err := time.Parse("2006-01-02", NormalizeBirthDate(form.BirthDate))
		if err != nil || inputDate.After(time.Now()) {
			errors["birth_date"] = "未来の日付は入力できません"
		}
	}

	if !govalidator.Matches(form.PostCode1, `^\d{3}$`) || !govalidator.Matches(form.PostCode2, `^\d{4}$`) {
		errors["post_code"] = "正しい形式で入力してください。"
	}

	if !govalidator.StringLength(form.Address, "0", "100") {
		errors["address"] = "住所は100文字以内で入力してください"
	}

	if form.Tel == "" || !telRegex.MatchString(form.Tel) {
		errors["tel"] = "電話番号は必須項目です。電話番号は10〜11桁の半角数字で入力してください"
	}

	if !govalidator.StringLength(form.Profile, "0", "200") {
		errors["profile"] = "プロフィールは200文字以内で入力してください"
	}

	if form.PMYears != "" && !govalidator.IsNumeric(form.PMYears) {
		errors["pm_years"] = "PM経験年数は半角数字で入力してください"
	}

	return errors
}
