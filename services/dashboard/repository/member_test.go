package repository

import (
	"dashboard/domain"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMemberFilter_NoFilters(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{})

	assert.Equal(t, "WHERE TRUE", where)
	assert.Empty(t, args)
}

func TestBuildMemberFilter_Kana(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{Kana: "やまだ"})

	assert.Equal(t, "WHERE TRUE AND (kana_last_name ILIKE $1 OR kana_first_name ILIKE $1)", where)
	assert.Equal(t, []any{"%やまだ%"}, args)
}

func TestBuildMemberFilter_AgeBounds(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{AgeMin: "20", AgeMax: "30"})

	assert.Equal(t, "WHERE TRUE AND age >= $1 AND age <= $2", where)
	assert.Equal(t, []any{20, 30}, args)
}

// Inverted bounds are composed as-is; the query simply matches nothing.
func TestBuildMemberFilter_InvertedAgeBounds(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{AgeMin: "30", AgeMax: "25"})

	assert.Equal(t, "WHERE TRUE AND age >= $1 AND age <= $2", where)
	assert.Equal(t, []any{30, 25}, args)
}

// A bound that does not parse is dropped, not an error.
func TestBuildMemberFilter_UnparsableAgeDropped(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{AgeMin: "abc", AgeMax: "30"})

	assert.Equal(t, "WHERE TRUE AND age <= $1", where)
	assert.Equal(t, []any{30}, args)
}

func TestBuildMemberFilter_Tel(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{Tel: "090"})

	assert.Equal(t, "WHERE TRUE AND tel ILIKE $1", where)
	assert.Equal(t, []any{"%090%"}, args)
}

func TestBuildMemberFilter_AllFilters(t *testing.T) {
	where, args := buildMemberFilter(domain.MemberFilter{
		Kana:   "たなか",
		AgeMin: "20",
		AgeMax: "65",
		Tel:    "03",
	})

	assert.Equal(t,
		"WHERE TRUE AND (kana_last_name ILIKE $1 OR kana_first_name ILIKE $1) AND age >= $2 AND age <= $3 AND tel ILIKE $4",
		where)
	assert.Equal(t, []any{"%たなか%", 20, 65, "%03%"}, args)
}
