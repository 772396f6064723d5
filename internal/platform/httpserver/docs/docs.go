// Package docs holds the swagger document served at /swagger/doc.json.
// Regenerate with `swag init` after changing route contracts.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/access/v1/landing": {
            "get": {
                "produces": ["application/json"],
                "summary": "Landing route for the current session",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Resolution error"}
                }
            }
        },
        "/api/access/v1/me": {
            "get": {
                "produces": ["application/json"],
                "summary": "Resolved principal and primary role",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthenticated"}
                }
            }
        },
        "/api/access/v1/organization": {
            "get": {
                "produces": ["application/json"],
                "summary": "Single-tenant organization context",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthenticated"},
                    "404": {"description": "Organization not found"},
                    "500": {"description": "Configuration missing"}
                }
            }
        },
        "/api/access/v1/organizations/{slug}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Organization context by slug",
                "parameters": [
                    {"type": "string", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Organization not found"}
                }
            }
        },
        "/api/access/v1/authorize": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Evaluate a requested scope for the current session",
                "responses": {
                    "200": {"description": "Allowed"},
                    "401": {"description": "Unauthenticated"},
                    "403": {"description": "Forbidden or feature disabled"},
                    "404": {"description": "Organization not found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Campus Access API",
	Description:      "Organization and role resolution decision API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
