package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

func TestApplyStatusPublish(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	sched := now.Add(time.Hour)
	p := &model.Post{Status: model.StatusScheduled, ScheduledAt: &sched}

	require.NoError(t, applyStatus(p, model.StatusPublished, nil, now))
	require.Equal(t, model.StatusPublished, p.Status)
	require.NotNil(t, p.PublishedAt)
	require.Equal(t, now, *p.PublishedAt)
	require.Nil(t, p.ScheduledAt)
}

func TestApplyStatusRepublishRestamps(t *testing.T) {
	t.Parallel()

	old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	p := &model.Post{Status: model.StatusPublished, PublishedAt: &old}

	require.NoError(t, applyStatus(p, model.StatusPublished, nil, now))
	require.Equal(t, now, *p.PublishedAt)
}

func TestApplyStatusSchedule(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(time.Minute)
	pub := now.Add(-time.Hour)
	p := &model.Post{Status: model.StatusPublished, PublishedAt: &pub}

	require.NoError(t, applyStatus(p, model.StatusScheduled, &future, now))
	require.Equal(t, model.StatusScheduled, p.Status)
	require.Equal(t, future, *p.ScheduledAt)
	require.Nil(t, p.PublishedAt)
}

func TestApplyStatusScheduleRejected(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	pub := now.Add(-time.Hour)

	cases := []struct {
		name        string
		scheduledAt *time.Time
	}{
		{"missing time", nil},
		{"past time", timePtr(now.Add(-time.Minute))},
		{"exactly now", timePtr(now)},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p := &model.Post{Status: model.StatusPublished, PublishedAt: &pub}
			err := applyStatus(p, model.StatusScheduled, tc.scheduledAt, now)
			require.ErrorIs(t, err, model.ErrInvalidSchedule)

			// a rejected transition leaves the post untouched
			require.Equal(t, model.StatusPublished, p.Status)
			require.Equal(t, pub, *p.PublishedAt)
			require.Nil(t, p.ScheduledAt)
		})
	}
}

func TestApplyStatusTrashAndDraftClearTimestamps(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range []model.Status{model.StatusTrash, model.StatusDraft} {
		pub, sched := now.Add(-time.Hour), now.Add(time.Hour)
		p := &model.Post{Status: model.StatusPublished, PublishedAt: &pub, ScheduledAt: &sched}

		require.NoError(t, applyStatus(p, status, nil, now))
		require.Equal(t, status, p.Status)
		require.Nil(t, p.PublishedAt)
		require.Nil(t, p.ScheduledAt)
	}
}

func TestApplyStatusUnknown(t *testing.T) {
	t.Parallel()

	p := new(model.Post)
	err := applyStatus(p, model.Status("archived"), nil, time.Now())
	require.ErrorIs(t, err, model.ErrValidation)
}

func timePtr(t time.Time) *time.Time { return &t }

func TestBuildPostQueryEmpty(t *testing.T) {
	t.Parallel()

	query, err := buildPostQuery(&dto.PostFilter{})
	require.NoError(t, err)
	require.Empty(t, query)
}

func TestBuildPostQueryStatusWinsOverStatusNe(t *testing.T) {
	t.Parallel()

	query, err := buildPostQuery(&dto.PostFilter{Status: "draft", StatusNe: "trash"})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "status", Value: model.StatusDraft}}, query)

	query, err = buildPostQuery(&dto.PostFilter{StatusNe: "trash"})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "status",
		Value: bson.D{{Key: "$ne", Value: model.StatusTrash}}}}, query)
}

func TestBuildPostQueryQuotesUserInput(t *testing.T) {
	t.Parallel()

	query, err := buildPostQuery(&dto.PostFilter{AuthorName: "a.b*"})
	require.NoError(t, err)
	require.Len(t, query, 1)

	re, ok := query[0].Value.(primitive.Regex)
	require.True(t, ok)
	require.Equal(t, `a\.b\*`, re.Pattern)
	require.Equal(t, "i", re.Options)
}

func TestBuildPostQuerySearch(t *testing.T) {
	t.Parallel()

	query, err := buildPostQuery(&dto.PostFilter{Search: "golang"})
	require.NoError(t, err)
	require.Len(t, query, 1)
	require.Equal(t, "$or", query[0].Key)

	alts, ok := query[0].Value.(bson.A)
	require.True(t, ok)
	require.Len(t, alts, 2)
}

func TestBuildPostQueryMonth(t *testing.T) {
	t.Parallel()

	query, err := buildPostQuery(&dto.PostFilter{Month: "2026-09"})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "created_at", Value: bson.D{
		{Key: "$gte", Value: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{Key: "$lt", Value: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)},
	}}}, query)

	_, err = buildPostQuery(&dto.PostFilter{Month: "september"})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestBuildPostQueryCategoryIn(t *testing.T) {
	t.Parallel()

	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	query, err := buildPostQuery(&dto.PostFilter{CategoryIn: a.Hex() + "," + b.Hex()})
	require.NoError(t, err)
	require.Equal(t, bson.D{{Key: "category",
		Value: bson.D{{Key: "$in", Value: []primitive.ObjectID{a, b}}}}}, query)

	_, err = buildPostQuery(&dto.PostFilter{CategoryIn: "junk"})
	require.ErrorIs(t, err, model.ErrValidation)
}

func TestPostFieldsKeepsAuthorWhenEmpty(t *testing.T) {
	t.Parallel()

	p := &model.Post{AuthorName: "alice"}
	postFields(p, &dto.PostRequest{}, "title", "content", primitive.NilObjectID, nil)
	require.Equal(t, "alice", p.AuthorName)

	postFields(p, &dto.PostRequest{AuthorName: " bob "}, "title", "content", primitive.NilObjectID, nil)
	require.Equal(t, "bob", p.AuthorName)
}
