package webserver

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

// jsonSerializer implements echo.JSONSerializer on top of json-iterator.
type jsonSerializer struct {
	api jsoniter.API
}

func newJSONSerializer() *jsonSerializer {
	return &jsonSerializer{api: jsoniter.ConfigCompatibleWithStandardLibrary}
}

func (s *jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := s.api.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (s *jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := s.api.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid JSON body").SetInternal(err)
	}
	return nil
}
