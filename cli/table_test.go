package cli

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPadRight(t *testing.T) {
	assert.Equal(t, "abc  ", padRight("abc", 5))
	assert.Equal(t, "abc", padRight("abc", 3))
	assert.Equal(t, "abcdef", padRight("abcdef", 3))
	// Wide runes occupy two cells each.
	assert.Equal(t, "日本 ", padRight("日本", 5))
}

func TestPadLeft(t *testing.T) {
	assert.Equal(t, "  $1.00", padLeft("$1.00", 7))
	assert.Equal(t, "$1.00", padLeft("$1.00", 5))
	assert.Equal(t, "$100.00", padLeft("$100.00", 3))
}

func TestColumnWidths(t *testing.T) {
	header := []string{"TYPE", "AMOUNT"}
	rows := [][]string{
		{"DEPOSIT", "$1.00"},
		{"INITIAL_DEPOSIT", "$500.00"},
	}

	widths := columnWidths(header, rows)
	assert.Equal(t, []int{15, 7}, widths)
}

func TestColumnWidthsHeaderOnly(t *testing.T) {
	widths := columnWidths([]string{"TIME", "TYPE"}, nil)
	assert.Equal(t, []int{4, 4}, widths)
}
