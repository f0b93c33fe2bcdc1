package adminapi

import (
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/store"
	"github.com/talkincode/catalogd/internal/webserver"
)

// registerProductRoutes registers product CRUD endpoints
//
//	GET    /api/products
//	GET    /api/products/:id
//	POST   /api/products       name, price required; category, description, stock optional
//	PATCH  /api/products/:id
//	DELETE /api/products/:id
func registerProductRoutes(s *webserver.Server, products *store.Collection[domain.Product]) {
	newResourceAPI(products).register(s, "/products")
}
