package adminapi

import (
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/store"
	"github.com/talkincode/catalogd/internal/webserver"
)

// registerUserRoutes registers user CRUD endpoints under /api/users.
// name and age are required on create.
func registerUserRoutes(s *webserver.Server, users *store.Collection[domain.User]) {
	newResourceAPI(users).register(s, "/users")
}
