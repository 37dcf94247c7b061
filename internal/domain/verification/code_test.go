package verification

import (
	"strings"
	"testing"

	domainerrors "portal/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCode_GoldenValues(t *testing.T) {
	tests := []struct {
		name string
		want int
	}{
		{name: "JOHN", want: 153416},
		{name: "AB", want: 120482},
		{name: "A", want: 109023},
		{name: "Alice Smith", want: 313817},
		{name: "Ms. Priya Raman", want: 427863},
		{name: "straße", want: 215287},
		{name: "STRASSE", want: 215287},
		{name: "ﬁne", want: 151909},
		{name: "Ärzte", want: 174142},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveCode(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveCode_CaseInsensitive(t *testing.T) {
	upper, err := DeriveCode("JOHN")
	require.NoError(t, err)

	lower, err := DeriveCode("john")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
}

func TestDeriveCode_PositionSensitive(t *testing.T) {
	forward, err := DeriveCode("JOHN")
	require.NoError(t, err)

	reversed, err := DeriveCode("NHOJ")
	require.NoError(t, err)

	assert.Equal(t, 153100, reversed)
	assert.NotEqual(t, forward, reversed)
}

func TestDeriveCode_Deterministic(t *testing.T) {
	first, err := DeriveCode("Maria Garcia")
	require.NoError(t, err)

	for range 100 {
		again, err := DeriveCode("Maria Garcia")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestDeriveCode_InRangeForASCIINames(t *testing.T) {
	names := []string{" ", "x", "Zz", "~~~~~~~~", strings.Repeat("W", 200), "0123456789", "O'Brien-Smythe Jr."}
	for c := byte(32); c < 127; c++ {
		names = append(names, strings.Repeat(string(c), int(c%13)+1))
	}

	for _, name := range names {
		code, err := DeriveCode(name)
		require.NoError(t, err, name)
		assert.GreaterOrEqual(t, code, MinCode, name)
		assert.LessOrEqual(t, code, MaxCode, name)
	}
}

func TestDeriveCode_EmptyName(t *testing.T) {
	_, err := DeriveCode("")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestDeriveCodeString(t *testing.T) {
	got, err := DeriveCodeString("AB")

	require.NoError(t, err)
	assert.Equal(t, "120482", got)
}

func TestDeriveCode_NameLength(t *testing.T) {
	_, err := DeriveCode(strings.Repeat("Z", MaxNameLength))
	require.NoError(t, err)

	_, err = DeriveCode(strings.Repeat("Z", MaxNameLength+1))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = DeriveCode(strings.Repeat("Z", 1_000_000))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
