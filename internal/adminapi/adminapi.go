// Package adminapi exposes the catalog collections as JSON CRUD endpoints.
package adminapi

import (
	"github.com/talkincode/catalogd/internal/app"
	"github.com/talkincode/catalogd/internal/webserver"
)

// Init registers every resource route on s.
func Init(s *webserver.Server, appCtx app.CatalogProvider) {
	registerProductRoutes(s, appCtx.Products())
	registerUserRoutes(s, appCtx.Users())
}
