package core_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/ceknomor/internal/core"
)

func TestNormalizeDigits(t *testing.T) {
	assert.Equal(t, "081234567890", core.NormalizeDigits("0812-3456-7890"))
	assert.Equal(t, "6281234567890", core.NormalizeDigits("+62 812 3456 7890"))
	assert.Equal(t, "", core.NormalizeDigits("abc"))
	// non-ASCII digits are not digits here
	assert.Equal(t, "12", core.NormalizeDigits("1٣2"))
}

func TestParsePhoneDigits(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    core.PhoneDigits
		wantErr bool
	}{
		{"ten digits", "0812345678", "0812345678", false},
		{"thirteen digits", "0812345678901", "0812345678901", false},
		{"formatted input", "0812-3456-7890", "081234567890", false},
		{"nine digits", "081234567", "", true},
		{"fourteen digits", "08123456789012", "", true},
		{"empty", "", "", true},
		{"letters only", "nomor saya", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.ParsePhoneDigits(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, core.ErrInvalidInput)
				assert.Equal(t, "Nomor telepon tidak valid. Masukkan 10-13 digit angka.", core.UserMessage(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatForDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"081234567890", "0812-3456-7890"},
		{"0812345678901", "0812-3456-78901"},
		// fewer than twelve digits leave a leading zero number untouched
		{"08123456789", "08123456789"},
		{"6281234567890", "+62 812-3456-7890"},
		{"628123456789", "+62 8123456789"},
		{"81234567890", "812-3456-7890"},
		{"8123456789012", "812-3456-789012"},
		{"7123456789", "7123456789"},
		{"0812 3456 7890", "0812-3456-7890"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, core.FormatForDisplay(tt.in))
		})
	}
}

func TestFormatInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"81", "81"},
		{"812", "812"},
		{"8123", "812-3"},
		{"8123456", "812-3456"},
		{"81234567", "812-3456-7"},
		{"81234567890", "812-3456-7890"},
		{"812-3456-78901", "812-3456-78901"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := core.FormatInput(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, core.NormalizeDigits(tt.in), strings.ReplaceAll(got, "-", ""))
		})
	}
}
