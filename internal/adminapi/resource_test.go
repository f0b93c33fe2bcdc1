package adminapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/catalogd/config"
	"github.com/talkincode/catalogd/internal/app"
	"github.com/talkincode/catalogd/internal/docs"
	"github.com/talkincode/catalogd/internal/domain"
	"github.com/talkincode/catalogd/internal/webserver"
)

type testEnv struct {
	app    *app.Application
	server *webserver.Server
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.DefaultAppConfig()
	a := app.NewApplication(cfg)
	s := webserver.NewServer(cfg.Web)
	Init(s, a)
	return &testEnv{app: a, server: s}
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.server.Echo().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestProducts_ExampleScenario(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/products", `{"name":"Ноутбук","price":75000}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[map[string]any](t, rec)
	id, _ := created["id"].(string)
	assert.Len(t, id, 6)
	assert.Equal(t, map[string]any{"id": id, "name": "Ноутбук", "price": 75000.0}, created)

	rec = env.do(http.MethodGet, "/api/products/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decode[map[string]any](t, rec))

	rec = env.do(http.MethodPatch, "/api/products/"+id, `{"price":70000}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]any{"id": id, "name": "Ноутбук", "price": 70000.0}, decode[map[string]any](t, rec))

	rec = env.do(http.MethodDelete, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = env.do(http.MethodGet, "/api/products/"+id, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decode[webserver.ErrorResponse](t, rec)
	assert.Equal(t, "Product not found", body.Error)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestProducts_ListOrderAndSize(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	var ids []string
	for _, name := range []string{"Ноутбук", "Смартфон", "Наушники", "Монитор"} {
		rec := env.do(http.MethodPost, "/api/products", `{"name":"`+name+`","price":1000}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		ids = append(ids, decode[domain.Product](t, rec).ID)
	}
	require.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/products/"+ids[1], "").Code)

	list := decode[[]domain.Product](t, env.do(http.MethodGet, "/api/products", ""))
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Ноутбук", "Наушники", "Монитор"}, []string{list[0].Name, list[1].Name, list[2].Name})
	assert.Equal(t, 3, env.app.Products().Len())
}

func TestProducts_CreateValidation(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing price", `{"name":"Ноутбук"}`, "price is required"},
		{"missing name", `{"price":100}`, "name is required"},
		{"empty object", `{}`, "name and price are required"},
		{"blank name", `{"name":"  ","price":1}`, "name must not be empty"},
		{"malformed price", `{"name":"A","price":"cheap"}`, "price is invalid"},
		{"list as name", `{"name":["A"],"price":1}`, "name is invalid"},
		{"stock out of range", `{"name":"A","price":1,"stock":1e30}`, "stock is invalid"},
		{"keys in other case", `{"Name":"x","PRICE":5}`, "name and price are required"},
		{"invalid json", `{"name":`, "Invalid JSON body"},
		{"not an object", `[1,2,3]`, "Invalid JSON body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(http.MethodPost, "/api/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[webserver.ErrorResponse](t, rec).Error, tt.want)
		})
	}

	rec := env.do(http.MethodPost, "/api/products", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Zero(t, env.app.Products().Len())
}

func TestProducts_CreateCoercesAndTrims(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/products",
		`{"id":"mine01","name":"  SSD Samsung 1TB ","category":" Комплектующие ","description":"NVMe M.2","price":"8000","stock":"25"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	p := decode[domain.Product](t, rec)
	assert.NotEqual(t, "mine01", p.ID)
	assert.Equal(t, "SSD Samsung 1TB", p.Name)
	assert.Equal(t, "Комплектующие", p.Category)
	assert.Equal(t, 8000.0, p.Price)
	require.NotNil(t, p.Stock)
	assert.Equal(t, 25, *p.Stock)
}

func TestProducts_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	require.Equal(t, http.StatusCreated, env.do(http.MethodPost, "/api/products", `{"name":"A","price":1}`).Code)

	for _, tc := range []struct{ method, body string }{
		{http.MethodGet, ""},
		{http.MethodPatch, `{"price":5}`},
		{http.MethodPatch, `{"price":`},
		{http.MethodDelete, ""},
	} {
		rec := env.do(tc.method, "/api/products/nope00", tc.body)
		assert.Equal(t, http.StatusNotFound, rec.Code, tc.method)
		assert.Equal(t, "Product not found", decode[webserver.ErrorResponse](t, rec).Error)
	}
	assert.Equal(t, 1, env.app.Products().Len())
}

func TestProducts_PatchPartial(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/products", `{"name":"Видеокарта RTX 4070","category":"Комплектующие","price":65000,"stock":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decode[domain.Product](t, rec)

	rec = env.do(http.MethodPatch, "/api/products/"+p.ID, `{"stock":1}`)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.Product](t, rec)
	assert.Equal(t, "Видеокарта RTX 4070", got.Name)
	assert.Equal(t, "Комплектующие", got.Category)
	assert.Equal(t, 65000.0, got.Price)
	assert.Equal(t, 1, *got.Stock)
}

func TestProducts_PatchNothingToUpdate(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(http.MethodPost, "/api/products", `{"name":"A","price":1}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	p := decode[domain.Product](t, rec)

	for _, body := range []string{"", `{}`, `{"colour":"red"}`, `{"name":null}`, `{"NAME":"b"}`} {
		rec := env.do(http.MethodPatch, "/api/products/"+p.ID, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.Equal(t, "Nothing to update", decode[webserver.ErrorResponse](t, rec).Error)
	}

	got, err := env.app.Products().Get(p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestUsers_CRUD(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/api/users", `{"name":" Анна ","age":"22"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	u := decode[domain.User](t, rec)
	assert.Equal(t, "Анна", u.Name)
	assert.Equal(t, 22, u.Age)

	rec = env.do(http.MethodPost, "/api/users", `{"name":"Иван"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "age is required", decode[webserver.ErrorResponse](t, rec).Error)

	rec = env.do(http.MethodPatch, "/api/users/"+u.ID, `{"name":"Анна Петрова"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.User{ID: u.ID, Name: "Анна Петрова", Age: 22}, decode[domain.User](t, rec))

	rec = env.do(http.MethodPatch, "/api/users/"+u.ID, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Nothing to update", decode[webserver.ErrorResponse](t, rec).Error)

	rec = env.do(http.MethodPatch, "/api/users/"+u.ID, `{"NAME":"b"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Nothing to update", decode[webserver.ErrorResponse](t, rec).Error)

	rec = env.do(http.MethodGet, "/api/users/zzzzzz", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "User not found", decode[webserver.ErrorResponse](t, rec).Error)

	assert.Equal(t, http.StatusNoContent, env.do(http.MethodDelete, "/api/users/"+u.ID, "").Code)
	assert.Equal(t, http.StatusNotFound, env.do(http.MethodDelete, "/api/users/"+u.ID, "").Code)
	assert.Zero(t, env.app.Users().Len())
}

func TestRoutes_UnmatchedIs404(t *testing.T) {
	env := newTestEnv(t)
	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodPut, "/api/products/abc123"},
		{http.MethodPost, "/api/products/abc123"},
		{http.MethodDelete, "/api/products"},
	} {
		rec := env.do(tc.method, tc.target, "")
		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.target)
		assert.Equal(t, "Not found", decode[webserver.ErrorResponse](t, rec).Error)
	}
}

func TestRoutes_Documented(t *testing.T) {
	env := newTestEnv(t)
	doc, err := docs.Load(context.Background())
	require.NoError(t, err)

	count := 0
	for _, r := range env.server.Echo().Routes() {
		if !strings.HasPrefix(r.Path, webserver.ApiPrefix+"/") {
			continue
		}
		count++
		p := strings.TrimPrefix(r.Path, webserver.ApiPrefix)
		p = strings.ReplaceAll(p, ":id", "{id}")
		item := doc.Paths.Value(p)
		if assert.NotNil(t, item, "route %s %s is not documented", r.Method, r.Path) {
			assert.NotNil(t, item.GetOperation(r.Method), "route %s %s is not documented", r.Method, r.Path)
		}
	}
	assert.Equal(t, 10, count)
}
