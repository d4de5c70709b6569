package service

import (
	"context"
	"testing"

	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/lantern-cms/lantern/internal/web/cms/dao"
	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

// mockedDB adapts an mtest database to the handle the dao expects.
type mockedDB struct {
	db *mongoLib.Database
}

func (d *mockedDB) Close(ctx context.Context) error         { return nil }
func (d *mockedDB) CurrentDB() *mongoLib.Database           { return d.db }
func (d *mockedDB) GetCol(name string) *mongoLib.Collection { return d.db.Collection(name) }

func newMockedService(mt *mtest.T) *Service {
	return &Service{
		logger: glog.Shared,
		dao:    dao.New(glog.Shared, &mockedDB{db: mt.DB}),
	}
}

func commandNames(mt *mtest.T) (names []string) {
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}

	return names
}

// An id-less publish is a create and must issue an insert; a replace keyed on
// a fresh id matches nothing and would report success while writing no
// document.
func TestPublishPostWithoutIDInserts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("insert on create", func(mt *mtest.T) {
		mt.AddMockResponses(
			// slug uniqueness pre-check finds nothing
			mtest.CreateCursorResponse(0, "cms.posts", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		svc := newMockedService(mt)
		p, err := svc.PublishPost(context.Background(), &dto.PostRequest{
			Title:   "Hello",
			Content: "world",
			Status:  "published",
		})
		require.NoError(mt, err)
		require.False(mt, p.ID.IsZero())
		require.Equal(mt, model.StatusPublished, p.Status)
		require.NotNil(mt, p.PublishedAt)

		names := commandNames(mt)
		require.Contains(mt, names, "insert")
		require.NotContains(mt, names, "update")
	})
}

func TestPublishPostWithIDUpdatesInPlace(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replace matched", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "cms.posts", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: id},
				{Key: "title", Value: "Old"},
				{Key: "content", Value: "old body"},
				{Key: "slug", Value: "old-20260101"},
				{Key: "status", Value: "draft"},
			}),
			// slug uniqueness pre-check excluding the post itself
			mtest.CreateCursorResponse(0, "cms.posts", mtest.FirstBatch),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		svc := newMockedService(mt)
		p, err := svc.PublishPost(context.Background(), &dto.PostRequest{
			ID:      id.Hex(),
			Title:   "New",
			Content: "new body",
			Status:  "published",
		})
		require.NoError(mt, err)
		require.Equal(mt, id, p.ID)

		require.Contains(mt, commandNames(mt), "update")
	})
}

// A replace that matches no document means the post vanished between load and
// save; that must surface as not-found, not as a silent success.
func TestSavePostVanishedDocument(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("zero matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		svc := newMockedService(mt)
		err := svc.savePost(context.Background(), &model.Post{
			ID:   primitive.NewObjectID(),
			Slug: "gone-20260901",
		})
		require.ErrorIs(mt, err, model.ErrNotFound)
	})

	mt.Run("one match", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		svc := newMockedService(mt)
		err := svc.savePost(context.Background(), &model.Post{
			ID:   primitive.NewObjectID(),
			Slug: "still-here-20260901",
		})
		require.NoError(mt, err)
	})
}
