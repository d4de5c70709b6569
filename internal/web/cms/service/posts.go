package service

import (
	"context"
	"regexp"
	"strings"
	"time"

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

// applyStatus enforces the lifecycle state machine shared by every entry
// point. Publishing always restamps published_at, even for an already
// published post; scheduling demands a strictly future time; draft and trash
// clear both timestamps. The post is only mutated on success.
func applyStatus(p *model.Post, status model.Status, scheduledAt *time.Time, now time.Time) error {
	switch status {
	case model.StatusPublished:
		ts := now
		p.PublishedAt = &ts
		p.ScheduledAt = nil
	case model.StatusScheduled:
		if scheduledAt == nil {
			return errors.Wrap(model.ErrInvalidSchedule, "scheduled date/time required")
		}
		if !scheduledAt.After(now) {
			return errors.WithStack(model.ErrInvalidSchedule)
		}
		ts := scheduledAt.UTC()
		p.ScheduledAt = &ts
		p.PublishedAt = nil
	case model.StatusDraft, model.StatusTrash:
		p.PublishedAt = nil
		p.ScheduledAt = nil
	default:
		return errors.Wrapf(model.ErrValidation, "unknown status %q", status)
	}

	p.Status = status
	return nil
}

// ensureUniqueSlug rejects case-insensitive slug collisions with any other
// post, trashed ones included. The unique index remains the authoritative
// guard against the check-then-insert race; this only gives a friendlier
// error in the common case.
func (s *Service) ensureUniqueSlug(ctx context.Context, slug string, exclude primitive.ObjectID) error {
	query := bson.D{{Key: "slug", Value: slug}}
	if !exclude.IsZero() {
		query = append(query, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: exclude}}})
	}

	n, err := s.dao.PostsCol().CountDocuments(ctx, query,
		options.Count().SetCollation(caseInsensitive))
	if err != nil {
		return errors.Wrapf(err, "count posts with slug %q", slug)
	}
	if n != 0 {
		return errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
	}

	return nil
}

// postFields copies the validated content fields of req onto p. Lifecycle
// fields (status and timestamps) are handled separately by applyStatus.
func postFields(p *model.Post, req *dto.PostRequest,
	title, content string,
	category primitive.ObjectID, tags []primitive.ObjectID) {
	if author := strings.TrimSpace(req.AuthorName); author != "" {
		p.AuthorName = author
	}
	p.Title = title
	p.Content = content
	p.Summary = strings.TrimSpace(req.Summary)
	p.MetaTitle = strings.TrimSpace(req.MetaTitle)
	p.MetaDescription = strings.TrimSpace(req.MetaDescription)
	p.MetaKeywords = req.MetaKeywords
	p.FeatureImage = req.FeatureImage
	p.Category = category
	p.Tags = tags
}

// validatePostRefs parses the category and tag references of a request.
func validatePostRefs(req *dto.PostRequest) (category primitive.ObjectID, tags []primitive.ObjectID, err error) {
	if category, err = parseObjectID(req.Category, "category"); err != nil {
		return category, nil, err
	}
	if tags, err = parseObjectIDs(req.Tags, "tag"); err != nil {
		return category, nil, err
	}

	return category, tags, nil
}

// CreatePost inserts a new post. Only the title is required; the status
// defaults to draft. The slug is derived from the explicit slug when given,
// otherwise from the title.
func (s *Service) CreatePost(ctx context.Context, req *dto.PostRequest) (*model.Post, error) {
	title, err := sanitizeRequiredText(req.Title, maxPostTitleLength, "title")
	if err != nil {
		return nil, err
	}

	status, err := sanitizeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == "" {
		status = model.StatusDraft
	}

	category, tags, err := validatePostRefs(req)
	if err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = title
	}
	slug := DeriveSlug(base, now)

	if err = s.ensureUniqueSlug(ctx, slug, primitive.NilObjectID); err != nil {
		return nil, err
	}

	p := &model.Post{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Slug:      slug,
		Status:    model.StatusDraft,
	}
	postFields(p, req, title, strings.TrimSpace(req.Content), category, tags)

	if err = applyStatus(p, status, req.ScheduledAt, now); err != nil {
		return nil, err
	}

	if _, err = s.dao.PostsCol().InsertOne(ctx, p); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
		}

		return nil, errors.Wrap(err, "insert post")
	}

	s.logger.Info("created post",
		zap.String("post", p.ID.Hex()),
		zap.String("slug", p.Slug),
		zap.String("status", string(p.Status)))
	return p, nil
}

// PublishPost is the combined create-or-update entry point keyed on the
// presence of an id. Title, content and status are required unconditionally.
func (s *Service) PublishPost(ctx context.Context, req *dto.PostRequest) (*model.Post, error) {
	title, err := sanitizeRequiredText(req.Title, maxPostTitleLength, "title")
	if err != nil {
		return nil, err
	}
	content, err := sanitizeRequiredText(req.Content, maxPostContentLength, "content")
	if err != nil {
		return nil, err
	}
	status, err := sanitizeStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, errors.Wrap(model.ErrValidation, "status is required")
	}

	category, tags, err := validatePostRefs(req)
	if err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = title
	}
	slug := DeriveSlug(base, now)

	var p *model.Post
	creating := strings.TrimSpace(req.ID) == ""
	if creating {
		if err = s.ensureUniqueSlug(ctx, slug, primitive.NilObjectID); err != nil {
			return nil, err
		}

		p = &model.Post{
			ID:        primitive.NewObjectID(),
			CreatedAt: now,
		}
	} else {
		// update-in-place path
		id, err := parseRequiredObjectID(req.ID, "post")
		if err != nil {
			return nil, err
		}
		if p, err = s.loadPost(ctx, id); err != nil {
			return nil, err
		}
		if err = s.ensureUniqueSlug(ctx, slug, p.ID); err != nil {
			return nil, err
		}
	}

	p.UpdatedAt = now
	p.Slug = slug
	postFields(p, req, title, content, category, tags)

	if err = applyStatus(p, status, req.ScheduledAt, now); err != nil {
		return nil, err
	}

	// a brand-new post must be inserted; a replace on a fresh id matches
	// nothing and silently writes nothing
	if creating {
		if _, err = s.dao.PostsCol().InsertOne(ctx, p); err != nil {
			if mongoSDK.Duplicated(err) {
				return nil, errors.Wrapf(model.ErrDuplicateSlug, "%q", slug)
			}

			return nil, errors.Wrap(err, "insert post")
		}
	} else if err = s.savePost(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("published post",
		zap.String("post", p.ID.Hex()),
		zap.String("slug", p.Slug),
		zap.String("status", string(p.Status)))
	return p, nil
}

// UpdatePost mutates an existing post, load-then-replace. Moving a post to
// trash, or restoring a trashed post to draft, only touches lifecycle fields
// and therefore skips the title/content requirement entirely.
func (s *Service) UpdatePost(ctx context.Context, rawID string, req *dto.PostRequest) (*model.Post, error) {
	id, err := parseRequiredObjectID(rawID, "post")
	if err != nil {
		return nil, err
	}

	status, err := sanitizeStatus(req.Status)
	if err != nil {
		return nil, err
	}

	p, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()

	// trash and restore only touch lifecycle fields
	if status == model.StatusTrash ||
		(p.Status == model.StatusTrash && status == model.StatusDraft) {
		if err = applyStatus(p, status, nil, now); err != nil {
			return nil, err
		}
		p.UpdatedAt = now

		if err = s.savePost(ctx, p); err != nil {
			return nil, err
		}

		s.logger.Info("moved post",
			zap.String("post", p.ID.Hex()),
			zap.String("status", string(p.Status)))
		return p, nil
	}

	title, err := sanitizeRequiredText(req.Title, maxPostTitleLength, "title")
	if err != nil {
		return nil, err
	}
	content, err := sanitizeRequiredText(req.Content, maxPostContentLength, "content")
	if err != nil {
		return nil, err
	}

	category, tags, err := validatePostRefs(req)
	if err != nil {
		return nil, err
	}

	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = title
	}
	slug := DeriveSlug(base, now)
	if err = s.ensureUniqueSlug(ctx, slug, p.ID); err != nil {
		return nil, err
	}

	p.UpdatedAt = now
	p.Slug = slug
	postFields(p, req, title, content, category, tags)

	// timestamps stay untouched unless the status is explicitly re-submitted
	if status != "" {
		if err = applyStatus(p, status, req.ScheduledAt, now); err != nil {
			return nil, err
		}
	}

	if err = s.savePost(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("updated post",
		zap.String("post", p.ID.Hex()),
		zap.String("slug", p.Slug))
	return p, nil
}

// loadPost fetches the whole document by id.
func (s *Service) loadPost(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	p := new(model.Post)
	if err := s.dao.PostsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(p); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(model.ErrNotFound, "post %q", id.Hex())
		}

		return nil, errors.Wrapf(err, "load post %q", id.Hex())
	}

	return p, nil
}

// savePost replaces the whole document, no partial patches. A replace that
// matches nothing means the post vanished between load and save; reporting
// success there would swallow the lost update.
func (s *Service) savePost(ctx context.Context, p *model.Post) error {
	res, err := s.dao.PostsCol().ReplaceOne(ctx, bson.M{"_id": p.ID}, p)
	if err != nil {
		if mongoSDK.Duplicated(err) {
			return errors.Wrapf(model.ErrDuplicateSlug, "%q", p.Slug)
		}

		return errors.Wrapf(err, "save post %q", p.ID.Hex())
	}
	if res.MatchedCount == 0 {
		return errors.Wrapf(model.ErrNotFound, "post %q", p.ID.Hex())
	}

	return nil
}

// buildPostQuery translates a list filter into a mongo query. User input is
// quoted before it reaches a regex, substring semantics only.
func buildPostQuery(f *dto.PostFilter) (bson.D, error) {
	query := bson.D{}

	switch {
	case f.Status != "":
		status, err := sanitizeStatus(f.Status)
		if err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: "status", Value: status})
	case f.StatusNe != "":
		status, err := sanitizeStatus(f.StatusNe)
		if err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: "status",
			Value: bson.D{{Key: "$ne", Value: status}}})
	}

	if f.AuthorName != "" {
		query = append(query, bson.E{Key: "author_name", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(f.AuthorName),
			Options: "i",
		}})
	}

	if f.Month != "" {
		start, end, err := parseMonthRange(f.Month)
		if err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: "created_at", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lt", Value: end},
		}})
	}

	if f.Search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Search), Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "content", Value: re}},
		}})
	}

	if f.CategoryIn != "" {
		cates, err := parseObjectIDs(strings.Split(f.CategoryIn, ","), "category")
		if err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: "category",
			Value: bson.D{{Key: "$in", Value: cates}}})
	}

	return query, nil
}

// ListPosts returns the posts matching the filter, newest created first.
func (s *Service) ListPosts(ctx context.Context, f *dto.PostFilter) (posts []*model.Post, err error) {
	query, err := buildPostQuery(f)
	if err != nil {
		return nil, err
	}

	cur, err := s.dao.PostsCol().Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	defer cur.Close(ctx) //nolint:errcheck

	posts = []*model.Post{}
	if err = cur.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "load posts")
	}

	return posts, nil
}

// GetPost fetches a single post by id. Trashed posts are not served through
// this path; they must be restored first.
func (s *Service) GetPost(ctx context.Context, rawID string) (*model.Post, error) {
	id, err := parseRequiredObjectID(rawID, "post")
	if err != nil {
		return nil, err
	}

	p, err := s.loadPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status == model.StatusTrash {
		return nil, errors.Wrapf(model.ErrTrashed, "post %q", id.Hex())
	}

	return p, nil
}

// DeletePost removes a post permanently, bypassing trash.
func (s *Service) DeletePost(ctx context.Context, rawID string) error {
	id, err := parseRequiredObjectID(rawID, "post")
	if err != nil {
		return err
	}

	res, err := s.dao.PostsCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete post %q", id.Hex())
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(model.ErrNotFound, "post %q", id.Hex())
	}

	s.logger.Info("deleted post", zap.String("post", id.Hex()))
	return nil
}
