package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lantern-cms/lantern/internal/web/cms/model"
)

const (
	// maxPostTitleLength caps the length of post titles.
	maxPostTitleLength = 200
	// maxPostContentLength caps the length of post bodies.
	maxPostContentLength = 1 << 20
	// maxNameLength caps the length of category/tag/user names.
	maxNameLength = 200
	// maxAuthorNameLength caps the length of author name snapshots.
	maxAuthorNameLength = 100
	// monthLayout is the wire format of the month list filter.
	monthLayout = "2006-01"
)

// sanitizeOptionalText trims input, rejects null bytes, and enforces maxLen runes.
func sanitizeOptionalText(input string, maxLen int, field string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", nil
	}
	if strings.ContainsRune(trimmed, '\x00') {
		return "", errors.Wrapf(model.ErrValidation, "%s contains invalid null byte", field)
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", errors.Wrapf(model.ErrValidation, "%s exceeds max length %d", field, maxLen)
	}

	return trimmed, nil
}

// sanitizeRequiredText is sanitizeOptionalText that also rejects empty input.
func sanitizeRequiredText(input string, maxLen int, field string) (string, error) {
	trimmed, err := sanitizeOptionalText(input, maxLen, field)
	if err != nil {
		return "", err
	}
	if trimmed == "" {
		return "", errors.Wrapf(model.ErrValidation, "%s is required", field)
	}

	return trimmed, nil
}

// sanitizeStatus validates an optional status value.
func sanitizeStatus(raw string) (model.Status, error) {
	status := model.Status(strings.ToLower(strings.TrimSpace(raw)))
	if status == "" {
		return "", nil
	}
	if !status.Valid() {
		return "", errors.Wrapf(model.ErrValidation, "unknown status %q", raw)
	}

	return status, nil
}

// parseObjectID parses an optional hex id; empty input yields the zero id.
func parseObjectID(raw string, field string) (primitive.ObjectID, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || trimmed == "none" {
		return primitive.NilObjectID, nil
	}

	oid, err := primitive.ObjectIDFromHex(trimmed)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(model.ErrValidation, "invalid %s id %q", field, raw)
	}

	return oid, nil
}

// parseRequiredObjectID parses a hex id that must be present.
func parseRequiredObjectID(raw string, field string) (primitive.ObjectID, error) {
	oid, err := parseObjectID(raw, field)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid.IsZero() {
		return primitive.NilObjectID, errors.Wrapf(model.ErrValidation, "%s id is required", field)
	}

	return oid, nil
}

// parseObjectIDs parses a list of hex ids, skipping empty entries.
func parseObjectIDs(raw []string, field string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(raw))
	for _, r := range raw {
		oid, err := parseObjectID(r, field)
		if err != nil {
			return nil, err
		}
		if !oid.IsZero() {
			oids = append(oids, oid)
		}
	}

	return oids, nil
}

// parseMonthRange turns "YYYY-MM" into the [start, end) of that month in UTC.
func parseMonthRange(raw string) (start, end time.Time, err error) {
	start, err = time.ParseInLocation(monthLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return start, end, errors.Wrapf(model.ErrValidation, "invalid month %q, want YYYY-MM", raw)
	}

	return start, start.AddDate(0, 1, 0), nil
}
