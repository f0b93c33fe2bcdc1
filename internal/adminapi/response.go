package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/store"
	"github.com/talkincode/catalogd/internal/webserver"
)

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func fail(c echo.Context, status int, code, message string) error {
	return c.JSON(status, webserver.ErrorResponse{Error: message, Code: code})
}

// handleStoreError maps store failures to client responses. Anything that is
// not a not-found or validation failure goes to the server error boundary.
func handleStoreError(c echo.Context, err error) error {
	var ve *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.As(err, &ve):
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", ve.Message)
	default:
		return err
	}
}

// bindFields decodes the JSON request body. An empty body yields no fields.
func bindFields(c echo.Context) (domain.Fields, error) {
	fields := domain.Fields{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
