package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	gcrypto "github.com/Laisky/go-utils/v6/crypto"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lantern-cms/lantern/internal/web/cms/dto"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
	mongoSDK "github.com/lantern-cms/lantern/library/db/mongo"
)

const minPasswordLength = 8

// sanitizeUsername lowercases and validates a login name.
func sanitizeUsername(raw string) (string, error) {
	username, err := sanitizeRequiredText(raw, maxNameLength, "username")
	if err != nil {
		return "", err
	}

	return strings.ToLower(username), nil
}

func sanitizeEmail(raw string) (string, error) {
	email, err := sanitizeRequiredText(raw, maxNameLength, "email")
	if err != nil {
		return "", err
	}
	if _, err = mail.ParseAddress(email); err != nil {
		return "", errors.Wrapf(model.ErrValidation, "invalid email %q", email)
	}

	return strings.ToLower(email), nil
}

func hashPassword(raw string) (string, error) {
	if len(raw) < minPasswordLength {
		return "", errors.Wrapf(model.ErrValidation,
			"password must be at least %d characters", minPasswordLength)
	}

	hashed, err := gcrypto.PasswordHash([]byte(raw), gutils.HashTypeSha256)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}

	return hashed, nil
}

// CreateUser registers a new user with a hashed password.
func (s *Service) CreateUser(ctx context.Context, req *dto.UserRequest) (*model.User, error) {
	username, err := sanitizeUsername(req.Username)
	if err != nil {
		return nil, err
	}

	email, err := sanitizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:               primitive.NewObjectID(),
		Username:         username,
		Email:            email,
		Password:         hashed,
		FirstName:        strings.TrimSpace(req.FirstName),
		LastName:         strings.TrimSpace(req.LastName),
		Role:             strings.TrimSpace(req.Role),
		Language:         strings.TrimSpace(req.Language),
		SendNotification: req.SendNotification,
	}

	if _, err = s.dao.UsersCol().InsertOne(ctx, user); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrValidation,
				"username or email already taken")
		}

		return nil, errors.Wrap(err, "insert user")
	}

	s.logger.Info("created user",
		zap.String("user", user.ID.Hex()),
		zap.String("username", user.Username))
	return user, nil
}

// UpdateUser mutates an existing user. An empty password keeps the old hash.
func (s *Service) UpdateUser(ctx context.Context, rawID string, req *dto.UserRequest) (*model.User, error) {
	id, err := parseRequiredObjectID(rawID, "user")
	if err != nil {
		return nil, err
	}

	user, err := s.loadUser(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return nil, err
	}

	if user.Username, err = sanitizeUsername(req.Username); err != nil {
		return nil, err
	}
	if user.Email, err = sanitizeEmail(req.Email); err != nil {
		return nil, err
	}
	if req.Password != "" {
		if user.Password, err = hashPassword(req.Password); err != nil {
			return nil, err
		}
	}

	user.FirstName = strings.TrimSpace(req.FirstName)
	user.LastName = strings.TrimSpace(req.LastName)
	user.Role = strings.TrimSpace(req.Role)
	user.Language = strings.TrimSpace(req.Language)
	user.SendNotification = req.SendNotification

	if _, err = s.dao.UsersCol().
		ReplaceOne(ctx, bson.M{"_id": user.ID}, user); err != nil {
		if mongoSDK.Duplicated(err) {
			return nil, errors.Wrapf(model.ErrValidation,
				"username or email already taken")
		}

		return nil, errors.Wrapf(err, "save user %q", user.ID.Hex())
	}

	s.logger.Info("updated user", zap.String("user", user.ID.Hex()))
	return user, nil
}

func (s *Service) loadUser(ctx context.Context, query bson.D) (*model.User, error) {
	user := new(model.User)
	if err := s.dao.UsersCol().FindOne(ctx, query).Decode(user); err != nil {
		if mongoSDK.NotFound(err) {
			return nil, errors.Wrap(model.ErrNotFound, "user")
		}

		return nil, errors.Wrap(err, "load user")
	}

	return user, nil
}

// GetUser fetches a single user by id.
func (s *Service) GetUser(ctx context.Context, rawID string) (*model.User, error) {
	id, err := parseRequiredObjectID(rawID, "user")
	if err != nil {
		return nil, err
	}

	return s.loadUser(ctx, bson.D{{Key: "_id", Value: id}})
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) (users []*model.User, err error) {
	cur, err := s.dao.UsersCol().Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "find users")
	}
	defer cur.Close(ctx) //nolint:errcheck

	users = []*model.User{}
	if err = cur.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "load users")
	}

	return users, nil
}

// DeleteUser removes a user.
func (s *Service) DeleteUser(ctx context.Context, rawID string) error {
	id, err := parseRequiredObjectID(rawID, "user")
	if err != nil {
		return err
	}

	res, err := s.dao.UsersCol().DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrapf(err, "delete user %q", id.Hex())
	}
	if res.DeletedCount == 0 {
		return errors.Wrapf(model.ErrNotFound, "user %q", id.Hex())
	}

	s.logger.Info("deleted user", zap.String("user", id.Hex()))
	return nil
}

// ValidateLogin checks the password of a user. An unknown username and a wrong
// password both come back as ErrInvalidCredentials, never hinting which.
func (s *Service) ValidateLogin(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return nil, errors.Wrap(model.ErrInvalidCredentials, "empty username or password")
	}

	user, err := s.loadUser(ctx, bson.D{{Key: "username", Value: username}})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, errors.Wrap(model.ErrInvalidCredentials, "login")
		}

		return nil, err
	}

	if err = gcrypto.VerifyHashedPassword([]byte(password), user.Password); err != nil {
		return nil, errors.Wrap(model.ErrInvalidCredentials, "login")
	}

	return user, nil
}
