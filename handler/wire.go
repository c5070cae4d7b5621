package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Product), "*"),
	wire.Struct(new(Cart), "*"),
	wire.Struct(new(Checkout), "*"),
	wire.Struct(new(Pay), "*"),
	wire.Struct(new(Order), "*"),
	wire.Struct(new(ServiceRequest), "*"),
	wire.Struct(new(Advertisement), "*"),
	wire.Struct(new(Dashboard), "*"),
	wire.Struct(new(Upload), "*"),
)
