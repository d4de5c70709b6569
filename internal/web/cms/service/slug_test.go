package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "Hello World", "hello-world"},
		{"punctuation run", "Hello,   World!!!", "hello-world"},
		{"edge junk trimmed", "  --Hello--  ", "hello"},
		{"accents kept", "Café déjà-vu", "café-déjà-vu"},
		{"cjk kept", "你好 世界", "你好-世界"},
		{"digits kept", "Top 10 Tips", "top-10-tips"},
		{"only junk", "!!! ???", ""},
		{"empty", "", ""},
		{"underscores are junk", "snake_case_title", "snake-case-title"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatSlug(tc.raw))
		})
	}
}

func TestFormatSlugIdempotent(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"Hello, World!", "Café déjà-vu", "你好 世界", "a--b"} {
		once := FormatSlug(raw)
		require.Equal(t, once, FormatSlug(once), "raw %q", raw)
	}
}

func TestStripDateSuffix(t *testing.T) {
	t.Parallel()

	require.Equal(t, "hello-world", StripDateSuffix("hello-world-20260901"))
	require.Equal(t, "hello-world", StripDateSuffix("hello-world"))
	// only exactly eight trailing digits count as a date suffix
	require.Equal(t, "top-10", StripDateSuffix("top-10"))
	require.Equal(t, "release-123456789", StripDateSuffix("release-123456789"))
}

func TestDeriveSlug(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	require.Equal(t, "hello-world-20260901", DeriveSlug("Hello, World!", now))
	require.Equal(t, "café-déjà-vu-20260901", DeriveSlug("Café déjà-vu", now))

	// re-deriving from an already suffixed slug swaps the date instead of
	// stacking a second one
	later := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)
	require.Equal(t, "hello-world-20261002",
		DeriveSlug(DeriveSlug("Hello, World!", now), later))
}
