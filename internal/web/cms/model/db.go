package model

import (
	"context"

	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"

	"github.com/lantern-cms/lantern/library/db/mongo"
	"github.com/lantern-cms/lantern/library/log"
)

var (
	CmsDB mongo.DB
)

func Initialize(ctx context.Context) {
	var err error
	if CmsDB, err = mongo.NewDB(ctx,
		mongo.DialInfo{
			Addr:   gconfig.Shared.GetString("settings.db.cms.addr"),
			DBName: gconfig.Shared.GetString("settings.db.cms.db"),
			User:   gconfig.Shared.GetString("settings.db.cms.user"),
			Pwd:    gconfig.Shared.GetString("settings.db.cms.pwd"),
		},
	); err != nil {
		log.Logger.Panic("connect to cms db", zap.Error(err))
	}
}
