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

// categorySlug derives the category slug: the explicit slug when given,
// otherwise the normalized name. Categories carry no date suffix.
func categorySlug(req *dto.CategoryRequest) string {
	if slug := strings.TrimSpace(req.Slug); slug != "" {
		return strings.ToLower(slug)
	}

	return FormatSlug(req.Name)
}

// categoryFields copies the validated request onto cate. The request is the
// full new value; blanks clear the stored field.
func categoryFields(cate *model.Category, req *dto.CategoryRequest,
	name, slug string, parent primitive.ObjectID) {
	cate.Name = name
	cate.Slug = slug
	cate.ParentCategory = parent
	cate.Description = strings.TrimSpace(req.Description)
	cate.Keywords = strings.TrimSpace(req.Keywords)
}

// ensureUniqueCategorySlug rejects case-insensitive slug collisions among
// categories, excluding the category itself on update.
func (s *Service) ensureUniqueCategorySlug(ctx context.Context, slug string, exclude primitive.ObjectID) error {
	query := bson.D{{Key: "slug", Value: slug}}
	if !exclude.IsZero() {
		query = append(query, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: exclude}}})
	}

	n, err := s.dao.CategoriesCol().CountDocuments(ctx, query,
		options.Count().SetCollation(caseInsensitive))
	if err != nil {
		return errors.Wrapf(err, "count categories with slug %q", slug)
	}
	if n != 0 {
		return errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
	}

	return nil
}

// validateParentCategory checks the parent exists when one is given.
func (s *Service) validateParentCategory(ctx context.Context, raw string) (primitive.ObjectID, error) {
	parent, err := parseObjectID(raw, "parent category")
	if err != nil {
		return primitive.NilObjectID, err
	}
	if parent.IsZero() {
		return primitive.NilObjectID, nil
	}

	n, err := s.dao.CategoriesCol().
		CountDocuments(ctx, bson.D{{Key: "_id", Value: parent}})
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(err, "count parent category %q", parent.Hex())
	}
	if n == 0 {
		return primitive.NilObjectID, errors.Wrapf(model.ErrValidation,
			"parent category %q does not exist", parent.Hex())
	}

	return parent, nil
}

// CreateCategory inserts a new category.
func (s *Service) CreateCategory(ctx context.Context, req *dto.CategoryRequest) (*model.Category, error) {
	name, err := sanitizeRequiredText(req.Name, maxNameLength, "category name")
	if err != nil {
		return nil, err
	}

	parent, err := s.validateParentCategory(ctx, req.ParentCategory)
	if err != nil {
		return nil, err
	}

	slug := categorySlug(req)
	if err = s.ensureUniqueCategorySlug(ctx, slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	cate := &model.Category{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	categoryFields(cate, req, name, slug, parent)

	if _, err = s.dao.CategoriesCol().InsertOne(ctx, cate); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
		}

		return nil, errors.Wrap(err, "insert category")
	}

	s.logger.Info("created category",
		zap.String("category", cate.ID.Hex()),
		zap.String("slug", cate.Slug))
	return cate, nil
}

// UpdateCategory mutates an existing category, same checks as create but
// excluding the category itself from the uniqueness scans.
func (s *Service) UpdateCategory(ctx context.Context, rawID string, req *dto.CategoryRequest) (*model.Category, error) {
	id, err := parseRequiredObjectID(rawID, "category")
	if err != nil {
		return nil, err
	}

	name, err := sanitizeRequiredText(req.Name, maxNameLength, "category name")
	if err != nil {
		return nil, err
	}

	cate := new(model.Category)
	if err = s.dao.CategoriesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(cate); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(model.ErrNotFound, "category %q", id.Hex())
		}

		return nil, errors.Wrapf(err, "load category %q", id.Hex())
	}

	parent, err := s.validateParentCategory(ctx, req.ParentCategory)
	if err != nil {
		return nil, err
	}

	slug := categorySlug(req)
	if err = s.ensureUniqueCategorySlug(ctx, slug, id); err != nil {
		return nil, err
	}

	cate.UpdatedAt = gutils.Clock.GetUTCNow()
	categoryFields(cate, req, name, slug, parent)

	if _, err = s.dao.CategoriesCol().
		ReplaceOne(ctx, bson.M{"_id": cate.ID}, cate); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
		}

		return nil, errors.Wrapf(err, "save category %q", cate.ID.Hex())
	}

	s.logger.Info("updated category", zap.String("category", cate.ID.Hex()))
	return cate, nil
}

// GetCategory fetches a single category by id.
func (s *Service) GetCategory(ctx context.Context, rawID string) (*model.Category, error) {
	id, err := parseRequiredObjectID(rawID, "category")
	if err != nil {
		return nil, err
	}

	cate := new(model.Category)
	if err = s.dao.CategoriesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(cate); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(model.ErrNotFound, "category %q", id.Hex())
		}

		return nil, errors.Wrapf(err, "load category %q", id.Hex())
	}

	return cate, nil
}

// ListCategories returns all categories.
func (s *Service) ListCategories(ctx context.Context) (cates []*model.Category, err error) {
	cur, err := s.dao.CategoriesCol().Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find categories")
	}
	defer cur.Close(ctx) //nolint:errcheck

	cates = []*model.Category{}
	if err = cur.All(ctx, &cates); err != nil {
		return nil, errors.Wrap(err, "load categories")
	}

	return cates, nil
}
