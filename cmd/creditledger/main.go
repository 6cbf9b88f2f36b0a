package main

import (
	"context"
	"fmt"

	"github.com/shopcredit/creditledger/internal/adapter/clock"
	"github.com/shopcredit/creditledger/internal/adapter/config"
	"github.com/shopcredit/creditledger/internal/adapter/handler/http"
	"github.com/shopcredit/creditledger/internal/adapter/logger"
	"github.com/shopcredit/creditledger/internal/adapter/storage"
	"github.com/shopcredit/creditledger/internal/adapter/storage/repository"
	"github.com/shopcredit/creditledger/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(repo, clock.New(), log.Named("Service"))
	if err != nil {
		log.Error("credit service creating error", zap.Error(err))
		return
	}

	accountHandler, err := http.NewAccountHandler(svc, log.Named("Account handler"))
	if err != nil {
		log.Error("account handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, accountHandler, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
