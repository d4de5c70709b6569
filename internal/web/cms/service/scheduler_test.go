package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

func TestDueScheduledQuery(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, bson.D{
		{Key: "status", Value: model.StatusScheduled},
		{Key: "scheduled_at", Value: bson.D{{Key: "$lte", Value: now}}},
		{Key: "published_at", Value: nil},
	}, dueScheduledQuery(now))
}

func TestPromotionUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	update := promotionUpdate(now)

	set, ok := update["$set"].(bson.M)
	require.True(t, ok)
	require.Equal(t, model.StatusPublished, set["status"])
	require.Equal(t, now, set["published_at"])
	require.Nil(t, set["scheduled_at"])
	require.Equal(t, now, set["updated_at"])
}
