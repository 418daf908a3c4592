// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/verduleria-server/main.go
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
        "/vegetables": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vegetables"],
                "summary": "List the catalog",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/vegetable.Vegetable"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vegetables"],
                "summary": "Create a vegetable",
                "parameters": [
                    {"description": "vegetable", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/vegetable.CreateRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/vegetable.Vegetable"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/vegetables/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["vegetables"],
                "summary": "Get a vegetable",
                "parameters": [{"type": "string", "description": "vegetable id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vegetable.Vegetable"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["vegetables"],
                "summary": "Merge-update a vegetable",
                "parameters": [
                    {"type": "string", "description": "vegetable id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/vegetable.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/vegetable.Vegetable"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["vegetables"],
                "summary": "Delete a vegetable",
                "parameters": [{"type": "string", "description": "vegetable id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/main.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/customers/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Register a customer",
                "parameters": [
                    {"description": "customer", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/customer.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/customer.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/customers/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Get a customer",
                "parameters": [{"type": "string", "description": "customer id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/customer.Customer"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Update a customer profile",
                "parameters": [
                    {"type": "string", "description": "customer id", "name": "id", "in": "path", "required": true},
                    {"description": "fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/customer.UpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/customer.Customer"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/orders": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List all orders",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"description": "order", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.PlaceOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/order.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order",
                "parameters": [{"type": "string", "description": "order id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/orders/customer/{customerId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "List a customer's orders",
                "parameters": [{"type": "string", "description": "customer id", "name": "customerId", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/order.Order"}}}
                }
            }
        },
        "/orders/{id}/status": {
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Change an order's status",
                "parameters": [
                    {"type": "string", "description": "order id", "name": "id", "in": "path", "required": true},
                    {"description": "new status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/order.UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/order.Order"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/main.errorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/main.errorResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["stats"],
                "summary": "Dashboard figures",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stats.Summary"}}
                }
            }
        }
    },
    "definitions": {
        "main.errorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string", "example": "vegetable not found"}}
        },
        "main.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string", "example": "Vegetable deleted successfully"}}
        },
        "vegetable.Vegetable": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "unit": {"type": "string"},
                "stock": {"type": "integer"},
                "rating": {"type": "number"}
            }
        },
        "vegetable.CreateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Tomato"},
                "category": {"type": "string", "example": "Fruit Vegetables"},
                "description": {"type": "string", "example": "Fresh red tomatoes"},
                "price": {"type": "number", "example": 40},
                "unit": {"type": "string", "example": "kg"},
                "stock": {"type": "integer", "example": 10}
            }
        },
        "vegetable.UpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "category": {"type": "string"},
                "description": {"type": "string"},
                "price": {"type": "number"},
                "unit": {"type": "string"},
                "stock": {"type": "integer"},
                "rating": {"type": "number"}
            }
        },
        "customer.Customer": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"},
                "createdAt": {"type": "string"},
                "totalOrders": {"type": "integer"},
                "totalSpent": {"type": "number"}
            }
        },
        "customer.RegisterRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Asha Patel"},
                "email": {"type": "string", "example": "asha@example.com"},
                "phone": {"type": "string", "example": "+919876543210"},
                "address": {"type": "string", "example": "12 Market Road"}
            }
        },
        "customer.UpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "address": {"type": "string"}
            }
        },
        "order.Item": {
            "type": "object",
            "properties": {
                "vegetableId": {"type": "string"},
                "name": {"type": "string"},
                "price": {"type": "number"},
                "quantity": {"type": "integer"}
            }
        },
        "order.Order": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customerId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.Item"}},
                "totalAmount": {"type": "number"},
                "deliveryAddress": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string", "example": "Pending"},
                "createdAt": {"type": "string"},
                "estimatedDelivery": {"type": "string"}
            }
        },
        "order.PlaceOrderItem": {
            "type": "object",
            "properties": {
                "vegetableId": {"type": "string"},
                "quantity": {"type": "integer", "example": 2}
            }
        },
        "order.PlaceOrderRequest": {
            "type": "object",
            "properties": {
                "customerId": {"type": "string"},
                "items": {"type": "array", "items": {"$ref": "#/definitions/order.PlaceOrderItem"}},
                "deliveryAddress": {"type": "string", "example": "12 Market Road"},
                "phone": {"type": "string", "example": "+919876543210"}
            }
        },
        "order.UpdateStatusRequest": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "Delivered"}}
        },
        "stats.Summary": {
            "type": "object",
            "properties": {
                "totalOrders": {"type": "integer"},
                "totalCustomers": {"type": "integer"},
                "totalRevenue": {"type": "number"},
                "pendingOrders": {"type": "integer"},
                "totalProducts": {"type": "integer"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-KEY", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Verdulería API",
	Description:      "Catalog, customers and orders of a neighbourhood vegetable shop.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
