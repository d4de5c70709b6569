// Package service is the service layer of the cms.
package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lantern-cms/lantern/internal/web/cms/dao"
)

// caseInsensitive matches the collation of the unique indexes, so the
// pre-checks and the constraints agree on what counts as a duplicate.
var caseInsensitive = &options.Collation{Locale: "en", Strength: 2}

// Service cms service
type Service struct {
	logger glog.Logger
	dao    *dao.CMS
}

// New new cms service
func New(ctx context.Context,
	logger glog.Logger,
	dao *dao.CMS) (*Service, error) {
	s := &Service{
		logger: logger,
		dao:    dao,
	}

	if err := dao.SetupIndexes(ctx); err != nil {
		return nil, errors.Wrap(err, "setup indexes")
	}

	return s, nil
}
