// Package docs holds the OpenAPI document of the catalog API and registers
// it with swag so echo-swagger can serve it.
package docs

import (
	"context"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/pkg/errors"
	"github.com/swaggo/swag"
)

const docTemplate = `{
  "openapi": "3.0.0",
  "info": {
    "title": "{{.Title}}",
    "description": "{{escape .Description}}",
    "version": "{{.Version}}"
  },
  "servers": [
    {"url": "{{.BasePath}}", "description": "catalogd"}
  ],
  "tags": [
    {"name": "Products"},
    {"name": "Users"}
  ],
  "paths": {
    "/products": {
      "get": {
        "summary": "List all products",
        "tags": ["Products"],
        "responses": {
          "200": {
            "description": "All products in insertion order",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/Product"}}}}
          }
        }
      },
      "post": {
        "summary": "Create a product",
        "tags": ["Products"],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductInput"}}}
        },
        "responses": {
          "201": {
            "description": "Created product",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}
          },
          "400": {"$ref": "#/components/responses/BadRequest"}
        }
      }
    },
    "/products/{id}": {
      "parameters": [{"$ref": "#/components/parameters/ID"}],
      "get": {
        "summary": "Get a product by id",
        "tags": ["Products"],
        "responses": {
          "200": {
            "description": "The product",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}
          },
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "patch": {
        "summary": "Update the supplied product fields",
        "tags": ["Products"],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ProductPatch"}}}
        },
        "responses": {
          "200": {
            "description": "Updated product",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Product"}}}
          },
          "400": {"$ref": "#/components/responses/BadRequest"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "delete": {
        "summary": "Delete a product",
        "tags": ["Products"],
        "responses": {
          "204": {"description": "Product deleted, no body"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      }
    },
    "/users": {
      "get": {
        "summary": "List all users",
        "tags": ["Users"],
        "responses": {
          "200": {
            "description": "All users in insertion order",
            "content": {"application/json": {"schema": {"type": "array", "items": {"$ref": "#/components/schemas/User"}}}}
          }
        }
      },
      "post": {
        "summary": "Create a user",
        "tags": ["Users"],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/UserInput"}}}
        },
        "responses": {
          "201": {
            "description": "Created user",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/User"}}}
          },
          "400": {"$ref": "#/components/responses/BadRequest"}
        }
      }
    },
    "/users/{id}": {
      "parameters": [{"$ref": "#/components/parameters/ID"}],
      "get": {
        "summary": "Get a user by id",
        "tags": ["Users"],
        "responses": {
          "200": {
            "description": "The user",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/User"}}}
          },
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "patch": {
        "summary": "Update the supplied user fields",
        "tags": ["Users"],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/UserPatch"}}}
        },
        "responses": {
          "200": {
            "description": "Updated user",
            "content": {"application/json": {"schema": {"$ref": "#/components/schemas/User"}}}
          },
          "400": {"$ref": "#/components/responses/BadRequest"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      },
      "delete": {
        "summary": "Delete a user",
        "tags": ["Users"],
        "responses": {
          "204": {"description": "User deleted, no body"},
          "404": {"$ref": "#/components/responses/NotFound"}
        }
      }
    }
  },
  "components": {
    "parameters": {
      "ID": {
        "name": "id",
        "in": "path",
        "required": true,
        "description": "Record id",
        "schema": {"type": "string"}
      }
    },
    "responses": {
      "BadRequest": {
        "description": "Missing, malformed or empty input",
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}
      },
      "NotFound": {
        "description": "No record with this id",
        "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Error"}}}
      }
    },
    "schemas": {
      "Error": {
        "type": "object",
        "required": ["error"],
        "properties": {
          "error": {"type": "string"},
          "code": {"type": "string"}
        },
        "example": {"error": "Product not found", "code": "NOT_FOUND"}
      },
      "Product": {
        "type": "object",
        "required": ["id", "name", "price"],
        "properties": {
          "id": {"type": "string", "description": "Generated 6 character id"},
          "name": {"type": "string"},
          "category": {"type": "string"},
          "description": {"type": "string"},
          "price": {"type": "number"},
          "stock": {"type": "integer"}
        },
        "example": {"id": "abc123", "name": "Ноутбук", "price": 75000}
      },
      "ProductInput": {
        "type": "object",
        "required": ["name", "price"],
        "properties": {
          "name": {"type": "string"},
          "category": {"type": "string"},
          "description": {"type": "string"},
          "price": {"type": "number"},
          "stock": {"type": "integer"}
        },
        "example": {"name": "Ноутбук", "price": 75000}
      },
      "ProductPatch": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "category": {"type": "string"},
          "description": {"type": "string"},
          "price": {"type": "number"},
          "stock": {"type": "integer"}
        },
        "example": {"price": 70000}
      },
      "User": {
        "type": "object",
        "required": ["id", "name", "age"],
        "properties": {
          "id": {"type": "string", "description": "Generated 6 character id"},
          "name": {"type": "string"},
          "age": {"type": "integer"}
        },
        "example": {"id": "abc123", "name": "Петр", "age": 25}
      },
      "UserInput": {
        "type": "object",
        "required": ["name", "age"],
        "properties": {
          "name": {"type": "string"},
          "age": {"type": "integer"}
        },
        "example": {"name": "Анна", "age": 22}
      },
      "UserPatch": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "age": {"type": "integer"}
        },
        "example": {"name": "Петр Петров", "age": 26}
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "catalogd API",
	Description:      "CRUD API for the product and user catalog",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// Load parses and validates the registered document.
func Load(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData([]byte(SwaggerInfo.ReadDoc()))
	if err != nil {
		return nil, errors.Wrap(err, "parse openapi document")
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, errors.Wrap(err, "validate openapi document")
	}
	return doc, nil
}
