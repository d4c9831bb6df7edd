// Package docs registers the OpenAPI description served under /swagger/.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/healthz": {
            "get": {
                "summary": "Health check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/login": {
            "post": {
                "description": "Authenticates a cashier and sets the session cookie",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credentials", "name": "creds", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/httpapi.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.loginResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "summary": "Logout",
                "responses": {"204": {"description": "No Content"}}
            }
        },
        "/menu": {
            "get": {
                "produces": ["application/json"],
                "summary": "Menu",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.menuResponse"}}
                }
            }
        },
        "/order": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "summary": "Current order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cashier.View"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "summary": "Start order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cashier.View"}}
                }
            }
        },
        "/order/items": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Add item",
                "parameters": [
                    {"description": "Catalog index and quantity", "name": "item", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/httpapi.takeOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cashier.View"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/order/items/{line}": {
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "summary": "Remove item",
                "parameters": [
                    {"type": "integer", "description": "0-based line index", "name": "line", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/cashier.View"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/order/complete": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "summary": "Complete order",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.receiptResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        },
        "/order/settle": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Settle payment",
                "parameters": [
                    {"description": "Tendered amount", "name": "payment", "in": "body", "required": true,
                     "schema": {"$ref": "#/definitions/httpapi.settleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/httpapi.settleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}},
                    "402": {"description": "Payment Required", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpapi.errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "cashier.View": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.LineItem"}},
                "lines": {"type": "array", "items": {"type": "string"}},
                "state": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "order.LineItem": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "unit_price": {"type": "string"}
            }
        },
        "order.MenuEntry": {
            "type": "object",
            "properties": {
                "index": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string"}
            }
        },
        "httpapi.errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "kind": {"type": "string"}
            }
        },
        "httpapi.loginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "httpapi.loginResponse": {
            "type": "object",
            "properties": {
                "cashier": {"type": "string"}
            }
        },
        "httpapi.menuResponse": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.MenuEntry"}},
                "lines": {"type": "array", "items": {"type": "string"}}
            }
        },
        "httpapi.receiptResponse": {
            "type": "object",
            "properties": {
                "lines": {"type": "array", "items": {"type": "string"}},
                "state": {"type": "string"},
                "tax": {"type": "string"},
                "tax_rate": {"type": "string"},
                "text": {"type": "string"},
                "total": {"type": "string"}
            }
        },
        "httpapi.settleRequest": {
            "type": "object",
            "properties": {
                "amount": {"type": "string"}
            }
        },
        "httpapi.settleResponse": {
            "type": "object",
            "properties": {
                "change": {"type": "string"},
                "change_text": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "httpapi.takeOrderRequest": {
            "type": "object",
            "required": ["index"],
            "properties": {
                "index": {"type": "integer"},
                "quantity": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "session_id", "in": "cookie"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8443",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cafe POS API",
	Description:      "Till API for taking orders, printing receipts and settling cash payments",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
