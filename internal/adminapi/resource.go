package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/talkincode/catalogd/internal/store"
	"github.com/talkincode/catalogd/internal/webserver"
)

// resourceAPI serves the five CRUD endpoints of one collection.
type resourceAPI[T store.Entity] struct {
	kind  string
	items *store.Collection[T]
}

func newResourceAPI[T store.Entity](items *store.Collection[T]) *resourceAPI[T] {
	return &resourceAPI[T]{kind: strings.ToLower(items.Kind()), items: items}
}

// register mounts the collection routes under base, e.g. "/products".
func (a *resourceAPI[T]) register(s *webserver.Server, base string) {
	s.ApiGET(base, a.list)
	s.ApiGET(base+"/:id", a.get)
	s.ApiPOST(base, a.create)
	s.ApiPATCH(base+"/:id", a.update)
	s.ApiDELETE(base+"/:id", a.remove)
}

func (a *resourceAPI[T]) list(c echo.Context) error {
	return ok(c, a.items.List())
}

func (a *resourceAPI[T]) get(c echo.Context) error {
	rec, err := a.items.Get(c.Param("id"))
	if err != nil {
		return handleStoreError(c, err)
	}
	return ok(c, rec)
}

func (a *resourceAPI[T]) create(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
	}
	rec, err := a.items.Create(fields)
	if err != nil {
		return handleStoreError(c, err)
	}
	zap.L().Info(a.kind+" created", zap.String("id", rec.Key()))
	return created(c, rec)
}

func (a *resourceAPI[T]) update(c echo.Context) error {
	id := c.Param("id")
	// unknown ids are reported before the body is looked at
	if _, err := a.items.Get(id); err != nil {
		return handleStoreError(c, err)
	}
	fields, err := bindFields(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body")
	}
	rec, err := a.items.Update(id, fields)
	if err != nil {
		return handleStoreError(c, err)
	}
	zap.L().Info(a.kind+" updated", zap.String("id", id))
	return ok(c, rec)
}

func (a *resourceAPI[T]) remove(c echo.Context) error {
	id := c.Param("id")
	if err := a.items.Delete(id); err != nil {
		return handleStoreError(c, err)
	}
	zap.L().Info(a.kind+" deleted", zap.String("id", id))
	return c.NoContent(http.StatusNoContent)
}
