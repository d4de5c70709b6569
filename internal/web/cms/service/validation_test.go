package service

import (
	"strings"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

func TestSanitizeRequiredText(t *testing.T) {
	t.Parallel()

	got, err := sanitizeRequiredText("  hello  ", 10, "title")
	require.NoError(t, err)
	require.Equal(t, "hello", got)

	_, err = sanitizeRequiredText("   ", 10, "title")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = sanitizeRequiredText("bad\x00byte", 10, "title")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = sanitizeRequiredText(strings.Repeat("x", 11), 10, "title")
	require.ErrorIs(t, err, model.ErrValidation)

	// length is counted in runes, not bytes
	got, err = sanitizeRequiredText(strings.Repeat("é", 10), 10, "title")
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("é", 10), got)
}

func TestSanitizeStatus(t *testing.T) {
	t.Parallel()

	status, err := sanitizeStatus(" Published ")
	require.NoError(t, err)
	require.Equal(t, model.StatusPublished, status)

	status, err = sanitizeStatus("")
	require.NoError(t, err)
	require.Empty(t, status)

	_, err = sanitizeStatus("archived")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestParseObjectID(t *testing.T) {
	t.Parallel()

	oid, err := parseObjectID("", "category")
	require.NoError(t, err)
	require.True(t, oid.IsZero())

	oid, err = parseObjectID("none", "category")
	require.NoError(t, err)
	require.True(t, oid.IsZero())

	want := primitive.NewObjectID()
	oid, err = parseObjectID(want.Hex(), "category")
	require.NoError(t, err)
	require.Equal(t, want, oid)

	_, err = parseObjectID("not-a-hex-id", "category")
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = parseRequiredObjectID("", "post")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestParseObjectIDs(t *testing.T) {
	t.Parallel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	oids, err := parseObjectIDs([]string{a.Hex(), "", b.Hex()}, "tag")
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{a, b}, oids)

	_, err = parseObjectIDs([]string{a.Hex(), "junk"}, "tag")
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestParseMonthRange(t *testing.T) {
	t.Parallel()

	start, end, err := parseMonthRange("2026-02")
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), end)

	// december rolls over into the next year
	start, end, err = parseMonthRange("2025-12")
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)

	_, _, err = parseMonthRange("2026/02")
	require.True(t, errors.Is(err, model.ErrValidation))
}
