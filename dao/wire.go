package dao

import (
	"smarttech/dao/cache"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProduct,
	NewOrder,
	NewCart,
	NewServiceRequest,
	NewAdvertisement,
	cache.NewCatalog,
	cache.NewSession,
)
