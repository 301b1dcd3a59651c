// Package docs registers the OpenAPI document served under /swagger/.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/healthz": {"get": {"tags": ["health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}},
        "/readyz": {"get": {"tags": ["health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}, "503": {"description": "Storage unreachable"}}}},
        "/version": {"get": {"tags": ["health"], "summary": "Build version", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/catalog": {"get": {"tags": ["catalog"], "summary": "Game catalog", "responses": {"200": {"description": "OK"}}}},
        "/api/v1/format": {"get": {"tags": ["catalog"], "summary": "Format number",
            "parameters": [{"name": "n", "in": "query", "type": "number", "required": true}, {"name": "lang", "in": "query", "type": "string"}],
            "responses": {"200": {"description": "OK"}}}},
        "/api/v1/leaderboard": {"get": {"tags": ["leaderboard"], "summary": "Leaderboard",
            "parameters": [{"name": "limit", "in": "query", "type": "integer"}],
            "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid limit"}}}},
        "/api/v1/players/{playerID}/state": {"get": {"tags": ["game"], "summary": "Game state", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/players/{playerID}/click": {"post": {"tags": ["game"], "summary": "Click", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "403": {"description": "Click blocked"}}}},
        "/api/v1/players/{playerID}/upgrades/{upgradeID}/buy": {"post": {"tags": ["game"], "summary": "Buy upgrade",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "upgradeID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Locked or blocked"}, "404": {"description": "Unknown upgrade"}, "409": {"description": "Insufficient funds"}}}},
        "/api/v1/players/{playerID}/skins/{skinID}/buy": {"post": {"tags": ["game"], "summary": "Buy skin",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "skinID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Locked"}, "409": {"description": "Owned or unaffordable"}}}},
        "/api/v1/players/{playerID}/skins/{skinID}/apply": {"post": {"tags": ["game"], "summary": "Apply skin",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "skinID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "409": {"description": "Not owned"}}}},
        "/api/v1/players/{playerID}/cases/{tier}/open": {"post": {"tags": ["game"], "summary": "Open case",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "tier", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "403": {"description": "Tier locked"}, "409": {"description": "Insufficient funds"}}}},
        "/api/v1/players/{playerID}/wheel/spin": {"post": {"tags": ["game"], "summary": "Spin wheel", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "429": {"description": "On cooldown"}}}},
        "/api/v1/players/{playerID}/wheel": {"get": {"tags": ["game"], "summary": "Wheel cooldown", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/players/{playerID}/prestige": {
            "get": {"tags": ["game"], "summary": "Prestige preview", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["game"], "summary": "Prestige", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "409": {"description": "Not eligible"}}}
        },
        "/api/v1/players/{playerID}/anti-effects/{effectID}/fix": {"post": {"tags": ["game"], "summary": "Fix anti-effect",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "effectID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Not active"}, "409": {"description": "Insufficient funds"}}}},
        "/api/v1/players/{playerID}/name": {"put": {"tags": ["profile"], "summary": "Rename player", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid name"}}}},
        "/api/v1/players/{playerID}/settings": {"patch": {"tags": ["profile"], "summary": "Update settings", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid"}, "403": {"description": "Desktop locked"}}}},
        "/api/v1/players/{playerID}/themes": {"post": {"tags": ["profile"], "summary": "Save custom theme", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "400": {"description": "Invalid"}, "403": {"description": "Themes locked"}}}},
        "/api/v1/players/{playerID}/themes/{themeID}/apply": {"post": {"tags": ["profile"], "summary": "Apply custom theme",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "themeID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown theme"}}}},
        "/api/v1/players/{playerID}/themes/{themeID}": {"delete": {"tags": ["profile"], "summary": "Delete custom theme",
            "parameters": [{"$ref": "#/parameters/playerID"}, {"name": "themeID", "in": "path", "type": "string", "required": true}],
            "responses": {"200": {"description": "OK"}, "404": {"description": "Unknown theme"}}}},
        "/api/v1/players/{playerID}/save": {"post": {"tags": ["game"], "summary": "Save game", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}, "503": {"description": "Storage unavailable"}}}},
        "/api/v1/players/{playerID}/reset": {"post": {"tags": ["game"], "summary": "Reset game", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "OK"}}}},
        "/api/v1/players/{playerID}/events": {"get": {"tags": ["game"], "summary": "Notification stream (text/event-stream)", "parameters": [{"$ref": "#/parameters/playerID"}], "responses": {"200": {"description": "Event stream"}}}}
    },
    "parameters": {
        "playerID": {"name": "playerID", "in": "path", "type": "string", "required": true}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CyberClicker API",
	Description:      "Incremental clicker game server.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
