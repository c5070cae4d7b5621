//go:build wireinject
// +build wireinject

package main

import (
	"smarttech/config"
	"smarttech/dao"
	"smarttech/handler"
	"smarttech/pkg/client"
	"smarttech/pkg/database"
	"smarttech/pkg/server"
	"smarttech/service"

	"github.com/google/wire"
)

func InitApp(conf *config.Config) *server.AppProvider {
	panic(wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideRazorpayConfig,
		config.ProvideUpiConfig,
		config.ProvideMailConfig,
		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
		wire.Struct(new(server.Handlers), "*"),
		server.NewGinEngine,
		wire.Struct(new(server.AppProvider), "*"),
	))
}
