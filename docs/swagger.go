// Package docs registers the OpenAPI description served under /swagger.
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
        "/register": {
            "post": {
                "tags": ["Users"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["Users"],
                "summary": "Log in and receive a JWT",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/tasks": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "List tasks ordered by urgency, priority and due date",
                "parameters": [
                    {"name": "subject", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["Tasks"],
                "summary": "Create a task",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/calendar/{year}/{month}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Calendar"],
                "summary": "Month calendar with task buckets, colors and stats",
                "parameters": [
                    {"name": "year", "in": "path", "type": "integer", "required": true},
                    {"name": "month", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/study/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Study"],
                "summary": "Overall study stats, subject breakdown and streak",
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Study Task API",
	Description:      "API for managing study tasks, subjects, notes, study sessions and the due-date calendar.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
