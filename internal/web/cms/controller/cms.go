// Package controller exposes the cms over REST.
package controller

import (
	"context"
	"time"

	"github.com/Laisky/zap"

	"github.com/lantern-cms/lantern/internal/web/cms/dao"
	"github.com/lantern-cms/lantern/internal/web/cms/model"
	"github.com/lantern-cms/lantern/internal/web/cms/service"
	"github.com/lantern-cms/lantern/library/log"
)

// Type cms controller
type Type struct {
	svc *service.Service
}

// New create new controller
func New(svc *service.Service) *Type {
	return &Type{svc: svc}
}

var Instance *Type

// Initialize connects the database and wires dao, service and controller.
func Initialize(ctx context.Context) {
	model.Initialize(ctx)

	logger := log.Logger.Named("cms")
	svc, err := service.New(ctx, logger, dao.New(logger, model.CmsDB))
	if err != nil {
		log.Logger.Panic("init cms service", zap.Error(err))
	}

	Instance = New(svc)
}

// RunScheduledPublisher promotes due scheduled posts until ctx is done.
func (t *Type) RunScheduledPublisher(ctx context.Context, interval time.Duration) {
	t.svc.RunScheduledPublisher(ctx, interval)
}
