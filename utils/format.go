package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCurrency converts an integer-cents amount into a display string such
// as "$1,234.56". Amounts are stored in cents everywhere; this is the only
// place the division happens.
func FormatCurrency(cents int64) string {
	negative := cents < 0
	if negative {
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	grouped := groupThousands(whole)

	if negative {
		return fmt.Sprintf("-$%s.%02d", grouped, frac)
	}
	return fmt.Sprintf("$%s.%02d", grouped, frac)
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatDateToLocal renders a date the way the list views display it,
// e.g. "Jan 2, 2026".
func FormatDateToLocal(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// GeneratePagination returns the page labels for the pagination widget:
// every page when there are 7 or fewer, otherwise the edges with "..."
// around the current page.
func GeneratePagination(currentPage, totalPages int) []string {
	pages := func(nums ...int) []string {
		out := make([]string, 0, len(nums))
		for _, n := range nums {
			out = append(out, strconv.Itoa(n))
		}
		return out
	}

	if totalPages <= 7 {
		all := make([]int, 0, totalPages)
		for i := 1; i <= totalPages; i++ {
			all = append(all, i)
		}
		return pages(all...)
	}

	if currentPage <= 3 {
		return []string{"1", "2", "3", "...", strconv.Itoa(totalPages - 1), strconv.Itoa(totalPages)}
	}

	if currentPage >= totalPages-2 {
		return []string{"1", "2", "...", strconv.Itoa(totalPages - 2), strconv.Itoa(totalPages - 1), strconv.Itoa(totalPages)}
	}

	return []string{
		"1", "...",
		strconv.Itoa(currentPage - 1), strconv.Itoa(currentPage), strconv.Itoa(currentPage + 1),
		"...", strconv.Itoa(totalPages),
	}
}
