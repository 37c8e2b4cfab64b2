package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBirthDate(t *testing.T) {
	assert.Equal(t, "1990-01-01", NormalizeBirthDate("19900101"))
	assert.Equal(t, "1990-01-01", NormalizeBirthDate("1990/01/01"))
	assert.Equal(t, "2005-12-31", NormalizeBirthDate(" 20051231 "))
}

func TestNormalizeBirthDate_Idempotent(t *testing.T) {
	once := NormalizeBirthDate("19900101")
	assert.Equal(t, once, NormalizeBirthDate(once))
	assert.Equal(t, "1990-01-01", NormalizeBirthDate("1990-01-01"))
}

func TestComputeAge(t *testing.T) {
	today := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	// Birthday already passed this year
	age, err := ComputeAge("1990-01-01", today)
	require.NoError(t, err)
	assert.Equal(t, 36, age)

	// Birthday not yet reached this year
	age, err = ComputeAge("1990-12-31", today)
	require.NoError(t, err)
	assert.Equal(t, 35, age)

	// Birthday is today
	age, err = ComputeAge("1990-08-31", today)
	require.NoError(t, err)
	assert.Equal(t, 36, age)

	// Day before and day after, same month
	age, err = ComputeAge("1990-08-30", today)
	require.NoError(t, err)
	assert.Equal(t, 36, age)

	age, err = ComputeAge("1990-09-01", today)
	require.NoError(t, err)
	assert.Equal(t, 35, age)
}

func TestComputeAge_InvalidDate(t *testing.T) {
	_, err := ComputeAge("not-a-date", time.Now())
	assert.Error(t, err)
}

func TestJoinPostCode(t *testing.T) {
	assert.Equal(t, "123-4567", JoinPostCode("123", "4567"))
}

func TestParsePMYears(t *testing.T) {
	years, err := ParsePMYears("")
	require.NoError(t, err)
	assert.Equal(t, 0, years)

	years, err = ParsePMYears("5")
	require.NoError(t, err)
	assert.Equal(t, 5, years)

	_, err = ParsePMYears("abc")
	assert.Error(t, err)
}
