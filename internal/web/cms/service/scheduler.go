package service

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

// dueScheduledQuery matches posts whose scheduled time has elapsed and that
// have not been published yet. The published_at guard makes a second
// promotion of an already promoted post a no-op match-miss, so overlapping
// sweeps are harmless.
func dueScheduledQuery(now time.Time) bson.D {
	return bson.D{
		{Key: "status", Value: model.StatusScheduled},
		{Key: "scheduled_at", Value: bson.D{{Key: "$lte", Value: now}}},
		{Key: "published_at", Value: nil},
	}
}

// promotionUpdate stamps a due post published. Every post of one sweep gets
// the same captured now.
func promotionUpdate(now time.Time) bson.M {
	return bson.M{"$set": bson.M{
		"status":       model.StatusPublished,
		"published_at": now,
		"scheduled_at": nil,
		"updated_at":   now,
	}}
}

// PublishDuePosts runs a single sweep. Candidates are promoted one by one;
// a failed write is logged and skipped, the rest of the batch continues.
func (s *Service) PublishDuePosts(ctx context.Context) (promoted int, err error) {
	now := gutils.Clock.GetUTCNow()

	cur, err := s.dao.PostsCol().Find(ctx, dueScheduledQuery(now))
	if err != nil {
		return 0, errors.Wrap(err, "find due posts")
	}
	defer cur.Close(ctx) //nolint:errcheck

	for cur.Next(ctx) {
		post := new(model.Post)
		if err := cur.Decode(post); err != nil {
			s.logger.Error("decode due post", zap.Error(err))
			continue
		}

		if _, err := s.dao.PostsCol().
			UpdateByID(ctx, post.ID, promotionUpdate(now)); err != nil {
			s.logger.Error("publish scheduled post",
				zap.Error(err),
				zap.String("post", post.ID.Hex()))
			continue
		}

		promoted++
		s.logger.Info("published scheduled post",
			zap.String("post", post.ID.Hex()),
			zap.String("title", post.Title))
	}

	if err := cur.Err(); err != nil {
		return promoted, errors.Wrap(err, "iterate due posts")
	}

	return promoted, nil
}

// RunScheduledPublisher promotes due scheduled posts on a fixed cadence. It
// blocks until ctx is done, so callers run it on its own goroutine. A failed
// sweep is logged and retried on the next tick; posts it missed still match
// the query then.
func (s *Service) RunScheduledPublisher(ctx context.Context, interval time.Duration) {
	logger := s.logger.Named("scheduler")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("start scheduled publisher", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("scheduled publisher stopped")
			return
		case <-ticker.C:
		}

		if n, err := s.PublishDuePosts(ctx); err != nil {
			logger.Error("publish due posts", zap.Error(err))
		} else if n > 0 {
			logger.Info("sweep done", zap.Int("promoted", n))
		}
	}
}
