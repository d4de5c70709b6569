// Package dao contains the data access objects of the cms module.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lantern-cms/lantern/library/db/mongo"
)

// CMS dao type
type CMS struct {
	logger glog.Logger
	db     mongo.DB
}

// New create new dao
func New(logger glog.Logger, db mongo.DB) *CMS {
	return &CMS{
		logger: logger,
		db:     db,
	}
}

// PostsCol get posts collection
func (d *CMS) PostsCol() *mongoLib.Collection {
	return d.db.GetCol("posts")
}

// CategoriesCol get categories collection
func (d *CMS) CategoriesCol() *mongoLib.Collection {
	return d.db.GetCol("categories")
}

// TagsCol get tags collection
func (d *CMS) TagsCol() *mongoLib.Collection {
	return d.db.GetCol("tags")
}

// ImagesCol get images collection
func (d *CMS) ImagesCol() *mongoLib.Collection {
	return d.db.GetCol("images")
}

// UsersCol get users collection
func (d *CMS) UsersCol() *mongoLib.Collection {
	return d.db.GetCol("users")
}

// caseInsensitive compares strings ignoring case; diacritics still count
// (strength 2).
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// SetupIndexes creates the unique constraints the services rely on. The slug
// index is the authoritative guard against concurrent duplicate creates; the
// pre-checks in the services only give friendlier errors.
func (d *CMS) SetupIndexes(ctx context.Context) error {
	for _, idx := range []struct {
		col   *mongoLib.Collection
		model mongoLib.IndexModel
		name  string
	}{
		{
			col: d.PostsCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
			},
			name: "posts slug",
		},
		{
			col: d.CategoriesCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
			},
			name: "categories slug",
		},
		{
			col: d.TagsCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "name", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
			},
			name: "tags name",
		},
		{
			col: d.TagsCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetUnique(true).SetCollation(caseInsensitive),
			},
			name: "tags slug",
		},
		{
			col: d.UsersCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "username", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			name: "users username",
		},
		{
			col: d.UsersCol(),
			model: mongoLib.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			name: "users email",
		},
	} {
		if _, err := idx.col.Indexes().CreateOne(ctx, idx.model); err != nil {
			return errors.Wrapf(err, "create index for %s", idx.name)
		}
	}

	return nil
}
