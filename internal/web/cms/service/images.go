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

// mediaTypes are the kinds of stored media the cms tracks.
var mediaTypes = map[string]bool{
	"image":    true,
	"video":    true,
	"audio":    true,
	"document": true,
}

// RegisterImage records the metadata of an already-stored media file.
func (s *Service) RegisterImage(ctx context.Context, req *dto.ImageRegisterRequest) (*model.Image, error) {
	name, err := sanitizeRequiredText(req.Name, maxNameLength, "image name")
	if err != nil {
		return nil, err
	}

	url, err := sanitizeRequiredText(req.URL, maxNameLength, "image url")
	if err != nil {
		return nil, err
	}

	mediaType := strings.ToLower(strings.TrimSpace(req.Type))
	if mediaType == "" {
		mediaType = "image"
	}
	if !mediaTypes[mediaType] {
		return nil, errors.Wrapf(model.ErrValidation, "unknown media type %q", req.Type)
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = name
	}

	img := &model.Image{
		ID:         primitive.NewObjectID(),
		CreatedAt:  gutils.Clock.GetUTCNow(),
		Name:       name,
		Title:      title,
		URL:        url,
		Size:       req.Size,
		Dimensions: strings.TrimSpace(req.Dimensions),
		Format:     strings.ToLower(strings.TrimSpace(req.Format)),
		Type:       mediaType,
	}

	if _, err = s.dao.ImagesCol().InsertOne(ctx, img); err != nil {
		return nil, errors.Wrap(err, "insert image")
	}

	s.logger.Info("registered image",
		zap.String("image", img.ID.Hex()),
		zap.String("name", img.Name))
	return img, nil
}

// UpdateImage mutates the descriptive metadata of a media record. File facts
// like url and size are immutable once registered.
func (s *Service) UpdateImage(ctx context.Context, rawID string, req *dto.ImageRequest) (*model.Image, error) {
	id, err := parseRequiredObjectID(rawID, "image")
	if err != nil {
		return nil, err
	}

	img, err := s.loadImage(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(req.Title); title != "" {
		img.Title = title
	}
	img.AltText = strings.TrimSpace(req.AltText)
	img.Caption = strings.TrimSpace(req.Caption)
	img.Description = strings.TrimSpace(req.Description)

	if _, err = s.dao.ImagesCol().
		ReplaceOne(ctx, bson.M{"_id": img.ID}, img); err != nil {
		return nil, errors.Wrapf(err, "save image %q", img.ID.Hex())
	}

	s.logger.Info("updated image", zap.String("image", img.ID.Hex()))
	return img, nil
}

func (s *Service) loadImage(ctx context.Context, id primitive.ObjectID) (*model.Image, error) {
	img := new(model.Image)
	if err := s.dao.ImagesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(img); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrapf(model.ErrNotFound, "image %q", id.Hex())
		}

		return nil, errors.Wrapf(err, "load image %q", id.Hex())
	}

	return img, nil
}

// GetImage fetches a single media record by id.
func (s *Service) GetImage(ctx context.Context, rawID string) (*model.Image, error) {
	id, err := parseRequiredObjectID(rawID, "image")
	if err != nil {
		return nil, err
	}

	return s.loadImage(ctx, id)
}

// ListImages returns all media records, newest first.
func (s *Service) ListImages(ctx context.Context) (imgs []*model.Image, err error) {
	cur, err := s.dao.ImagesCol().Find(ctx, bson.D{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "find images")
	}
	defer cur.Close(ctx) //nolint:errcheck

	imgs = []*model.Image{}
	if err = cur.All(ctx, &imgs); err != nil {
		return nil, errors.Wrap(err, "load images")
	}

	return imgs, nil
}

// DeleteImage drops a media record. Only the metadata goes away; the stored
// binary behind the url is not touched.
func (s *Service) DeleteImage(ctx context.Context, rawID string) error {
	id, err := parseRequiredObjectID(rawID, "image")
	if err != nil {
		return err
	}

	res, err := s.dao.ImagesCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete image %q", id.Hex())
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(model.ErrNotFound, "image %q", id.Hex())
	}

	s.logger.Info("deleted image", zap.String("image", id.Hex()))
	return nil
}
