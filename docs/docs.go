// Package docs holds the OpenAPI description served at /swagger.
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Root",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/invoke-agent/": {
            "post": {
                "description": "Routes a Korean message to the agent, which may create or cancel the user's reservation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Agent"],
                "summary": "Chat with the reservation agent",
                "parameters": [
                    {"description": "Message and user", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.invokeReq"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.invokeResp"}},
                    "400": {"description": "Missing or oversized fields", "schema": {"$ref": "#/definitions/http.errorResp"}},
                    "500": {"description": "Agent failure", "schema": {"$ref": "#/definitions/http.errorResp"}}
                }
            }
        },
        "/invoke-agent/history/{userId}": {
            "delete": {
                "tags": ["Agent"],
                "summary": "Forget a user's chat history",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "History store failure", "schema": {"$ref": "#/definitions/http.errorResp"}}
                }
            }
        },
        "/api/reservations": {
            "post": {
                "description": "Books a reservation for a user. A user holds at most one reservation.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Reservations"],
                "summary": "Create a reservation",
                "parameters": [
                    {"description": "Reservation data", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.createReq"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/http.reservationResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "409": {"description": "Conflict - reservation already exists", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/reservations/user/{userId}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Reservations"],
                "summary": "List reservations of a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.reservationResp"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            },
            "delete": {
                "tags": ["Reservations"],
                "summary": "Cancel every reservation of a user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "userId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        }
    },
    "definitions": {
        "http.invokeReq": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "7월 30일 오후 2시에 예약해줘"},
                "userId": {"type": "string", "example": "42"}
            }
        },
        "http.invokeResp": {
            "type": "object",
            "properties": {"response": {"type": "string"}}
        },
        "http.errorResp": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "http.createReq": {
            "type": "object",
            "properties": {
                "userId": {"type": "string", "example": "42"},
                "date": {"type": "string", "example": "2025-07-30"},
                "time": {"type": "string", "example": "14:00"},
                "purpose": {"type": "string", "example": "진료"}
            }
        },
        "http.reservationResp": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "date": {"type": "string"},
                "time": {"type": "string"},
                "purpose": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string", "example": "2025-07-01 09:00:00"},
                "updatedAt": {"type": "string", "example": "2025-07-01 09:00:00"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "details": {"type": "string"},
                "data": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Reservation Agent API",
	Description:      "Korean medical-appointment chat agent with a booking API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
