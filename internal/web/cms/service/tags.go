package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
	mongoSDK "github.com/lantern-cms/lantern/library/db/mongo"
)

// ensureUniqueTag rejects a tag whose name OR slug collides
// case-insensitively with another tag.
func (s *Service) ensureUniqueTag(ctx context.Context, name, slug string, exclude primitive.ObjectID) error {
	query := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "name", Value: name}},
		bson.D{{Key: "slug", Value: slug}},
	}}}
	if !exclude.IsZero() {
		query = append(query, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: exclude}}})
	}

	n, err := s.dao.TagsCol().CountDocuments(ctx, query,
		options.Count().SetCollation(caseInsensitive))
	if err != nil {
		return errors.Wrapf(err, "count tags named %q", name)
	}
	if n != 0 {
		return errors.Wrapf(model.ErrDuplicateSlug, "tag name or slug %q", name)
	}

	return nil
}

func tagSlug(req *dto.TagRequest) string {
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		return strings.ToLower(slug)
	}

	return FormatSlug(req.Name)
}

// CreateTag inserts a new tag.
func (s *Service) CreateTag(ctx context.Context, req *dto.TagRequest) (*model.Tag, error) {
	name, err := sanitizeRequiredText(req.Name, maxNameLength, "tag name")
	if err != nil {
		return nil, err
	}

	slug := tagSlug(req)
	if err = s.ensureUniqueTag(ctx, name, slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	tag := &model.Tag{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Name:        name,
		Slug:        slug,
		Description: strings.TrimSpace(req.Description),
	}

	if _, err = s.dao.TagsCol().InsertOne(ctx, tag); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrDuplicateSlug, "tag name or slug %q", name)
		}

		return nil, errors.Wrap(err, "insert tag")
	}

	s.logger.Info("created tag",
		zap.String("tag", tag.ID.Hex()),
		zap.String("name", tag.Name))
	return tag, nil
}

// UpdateTag mutates an existing tag.
func (s *Service) UpdateTag(ctx context.Context, rawID string, req *dto.TagRequest) (*model.Tag, error) {
	id, err := parseRequiredObjectID(rawID, "tag")
	if err != nil {
		return nil, err
	}

	name, err := sanitizeRequiredText(req.Name, maxNameLength, "tag name")
	if err != nil {
		return nil, err
	}

	tag, err := s.loadTag(ctx, id)
	if err != nil {
		return nil, err
	}

	slug := tagSlug(req)
	if err = s.ensureUniqueTag(ctx, name, slug, id); err != nil {
		return nil, err
	}

	tag.UpdatedAt = gutils.Clock.GetUTCNow()
	tag.Name = name
	tag.Slug = slug
	tag.Description = strings.TrimSpace(req.Description)

	if _, err = s.dao.TagsCol().
		ReplaceOne(ctx, bson.M{"_id": tag.ID}, tag); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrDuplicateSlug, "tag name or slug %q", name)
		}

		return nil, errors.Wrapf(err, "save tag %q", tag.ID.Hex())
	}

	s.logger.Info("updated tag", zap.String("tag", tag.ID.Hex()))
	return tag, nil
}

func (s *Service) loadTag(ctx context.Context, id primitive.ObjectID) (*model.Tag, error) {
	tag := new(model.Tag)
	if err := s.dao.TagsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(tag); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(model.ErrNotFound, "tag %q", id.Hex())
		}

		return nil, errors.Wrapf(err, "load tag %q", id.Hex())
	}

	return tag, nil
}

// GetTag fetches a single tag by id.
func (s *Service) GetTag(ctx context.Context, rawID string) (*model.Tag, error) {
	id, err := parseRequiredObjectID(rawID, "tag")
	if err != nil {
		return nil, err
	}

	return s.loadTag(ctx, id)
}

// ListTags returns all tags that are not soft-deleted.
func (s *Service) ListTags(ctx context.Context) (tags []*model.Tag, err error) {
	cur, err := s.dao.TagsCol().Find(ctx, bson.D{{Key: "is_deleted", Value: false}})
	if err != nil {
		return nil, errors.Wrap(err, "find tags")
	}
	defer cur.Close(ctx) //nolint:errcheck

	tags = []*model.Tag{}
	if err = cur.All(ctx, &tags); err != nil {
		return nil, errors.Wrap(err, "load tags")
	}

	return tags, nil
}

// DeleteTag soft-deletes a tag. The record stays behind for existing posts
// that still reference it.
func (s *Service) DeleteTag(ctx context.Context, rawID string) error {
	id, err := parseRequiredObjectID(rawID, "tag")
	if err != nil {
		return err
	}

	res, err := s.dao.TagsCol().UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"is_deleted": true,
		"updated_at": gutils.Clock.GetUTCNow(),
	}})
	if err != nil {
		return errors.Wrapf(err, "delete tag %q", id.Hex())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(model.ErrNotFound, "tag %q", id.Hex())
	}

	s.logger.Info("deleted tag", zap.String("tag", id.Hex()))
	return nil
}
