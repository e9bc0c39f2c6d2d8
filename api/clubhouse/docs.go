// Package clubhouse holds the Swagger document served at /swagger/.
package clubhouse

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {
			"name": "AussieBroadWAN Team",
			"url": "https://github.com/aussiebroadwan/clubhouse"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/livez": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Health Check Endpoint",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.HealthResponse"
						}
					}
				}
			}
		},
		"/readyz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Readiness Check Endpoint",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.HealthResponse"
						}
					},
					"503": {
						"description": "Service not ready",
						"schema": {
							"$ref": "#/definitions/clubsdk.HealthResponse"
						}
					}
				}
			}
		},
		"/v1/identities": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Identities"
				],
				"summary": "Sign up",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.SignUpRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.IdentityResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/me": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Identities"
				],
				"summary": "Current identity",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.IdentityResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Identities"
				],
				"summary": "Edit profile",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.UpdateProfileRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.IdentityResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/me/clubs": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "List my clubs",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListClubsResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/me/events": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "List my events",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListEventsResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/clubs": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "List active clubs",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListClubsResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "Create club",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/clubs/submissions": {
			"post": {
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "Submit club",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"429": {
						"description": "Too Many Requests",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/clubs/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "Get club",
				"parameters": [
					{
						"type": "string",
						"description": "Club id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "Edit club",
				"parameters": [
					{
						"type": "string",
						"description": "Club id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.UpdateClubRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ClubResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Clubs"
				],
				"summary": "Deactivate club",
				"parameters": [
					{
						"type": "string",
						"description": "Club id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/clubs/{id}/members": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Memberships"
				],
				"summary": "List members",
				"parameters": [
					{
						"type": "string",
						"description": "Club id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListMembersResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Memberships"
				],
				"summary": "Add member",
				"parameters": [
					{
						"type": "string",
						"description": "Club id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.AddMemberRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.MemberResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/memberships/{id}": {
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Memberships"
				],
				"summary": "Change position",
				"parameters": [
					{
						"type": "string",
						"description": "Membership id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.ChangePositionRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.MemberResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Memberships"
				],
				"summary": "Remove member",
				"parameters": [
					{
						"type": "string",
						"description": "Membership id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/events": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "List active events",
				"parameters": [
					{
						"type": "string",
						"description": "Only events of this club",
						"name": "club_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Only events created by this identity",
						"name": "created_by",
						"in": "query"
					},
					{
						"type": "string",
						"description": "upcoming, ongoing or completed",
						"name": "stage",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListEventsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "Create event",
				"parameters": [
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.EventRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.EventResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/events/{id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "Get event",
				"parameters": [
					{
						"type": "string",
						"description": "Event id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.EventResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "Edit event",
				"parameters": [
					{
						"type": "string",
						"description": "Event id",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"description": "Request body",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/clubsdk.UpdateEventRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.EventResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Events"
				],
				"summary": "Deactivate event",
				"parameters": [
					{
						"type": "string",
						"description": "Event id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/events/{id}/registrations": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Registrations"
				],
				"summary": "List registrations",
				"parameters": [
					{
						"type": "string",
						"description": "Event id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/clubsdk.ListRegistrationsResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Registrations"
				],
				"summary": "Register for event",
				"parameters": [
					{
						"type": "string",
						"description": "Event id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/clubsdk.RegistrationResponse"
						}
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"409": {
						"description": "Conflict",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		},
		"/v1/registrations/{id}": {
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"Registrations"
				],
				"summary": "Cancel registration",
				"parameters": [
					{
						"type": "string",
						"description": "Registration id",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"403": {
						"description": "Forbidden",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/clubsdk.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"clubsdk.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"error_description": {
					"type": "string"
				}
			}
		},
		"clubsdk.HealthChecks": {
			"type": "object",
			"properties": {
				"database": {
					"type": "string"
				},
				"keys": {
					"type": "string"
				}
			}
		},
		"clubsdk.HealthResponse": {
			"type": "object",
			"properties": {
				"checks": {
					"$ref": "#/definitions/clubsdk.HealthChecks"
				},
				"status": {
					"type": "string"
				},
				"uptime": {
					"type": "string"
				},
				"version": {
					"type": "string"
				}
			}
		},
		"clubsdk.SignUpRequest": {
			"type": "object",
			"required": [
				"display_name",
				"role"
			],
			"properties": {
				"department": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"year_of_study": {
					"type": "integer"
				}
			}
		},
		"clubsdk.UpdateProfileRequest": {
			"type": "object",
			"properties": {
				"department": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"year_of_study": {
					"type": "integer"
				}
			}
		},
		"clubsdk.IdentityResponse": {
			"type": "object",
			"properties": {
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"department": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"role": {
					"type": "string"
				},
				"year_of_study": {
					"type": "integer"
				}
			}
		},
		"clubsdk.ClubRequest": {
			"type": "object",
			"required": [
				"name"
			],
			"properties": {
				"contact_email": {
					"type": "string"
				},
				"contact_phone": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"established": {
					"type": "string",
					"format": "date-time"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clubsdk.UpdateClubRequest": {
			"type": "object",
			"properties": {
				"contact_email": {
					"type": "string"
				},
				"contact_phone": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"established": {
					"type": "string",
					"format": "date-time"
				},
				"name": {
					"type": "string"
				}
			}
		},
		"clubsdk.ClubResponse": {
			"type": "object",
			"properties": {
				"contact_email": {
					"type": "string"
				},
				"contact_phone": {
					"type": "string"
				},
				"department": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"established": {
					"type": "string",
					"format": "date-time"
				},
				"name": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"created_by": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"clubsdk.ListClubsResponse": {
			"type": "object",
			"properties": {
				"clubs": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clubsdk.ClubResponse"
					}
				}
			}
		},
		"clubsdk.AddMemberRequest": {
			"type": "object",
			"required": [
				"email",
				"position"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"position": {
					"type": "string"
				}
			}
		},
		"clubsdk.ChangePositionRequest": {
			"type": "object",
			"required": [
				"position"
			],
			"properties": {
				"position": {
					"type": "string"
				}
			}
		},
		"clubsdk.MemberResponse": {
			"type": "object",
			"properties": {
				"club_id": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"identity_id": {
					"type": "string"
				},
				"joined_at": {
					"type": "string",
					"format": "date-time"
				},
				"position": {
					"type": "string"
				}
			}
		},
		"clubsdk.ListMembersResponse": {
			"type": "object",
			"properties": {
				"members": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clubsdk.MemberResponse"
					}
				}
			}
		},
		"clubsdk.EventRequest": {
			"type": "object",
			"required": [
				"event_date",
				"title"
			],
			"properties": {
				"club_id": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"event_date": {
					"type": "string",
					"format": "date-time"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"registration_deadline": {
					"type": "string",
					"format": "date-time"
				},
				"title": {
					"type": "string"
				}
			}
		},
		"clubsdk.UpdateEventRequest": {
			"type": "object",
			"properties": {
				"description": {
					"type": "string"
				},
				"event_date": {
					"type": "string",
					"format": "date-time"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"registration_deadline": {
					"type": "string",
					"format": "date-time"
				},
				"title": {
					"type": "string"
				},
				"clear_max_participants": {
					"type": "boolean"
				},
				"clear_registration_deadline": {
					"type": "boolean"
				}
			}
		},
		"clubsdk.EventResponse": {
			"type": "object",
			"properties": {
				"club_id": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"event_date": {
					"type": "string",
					"format": "date-time"
				},
				"location": {
					"type": "string"
				},
				"max_participants": {
					"type": "integer"
				},
				"registration_deadline": {
					"type": "string",
					"format": "date-time"
				},
				"title": {
					"type": "string"
				},
				"created_at": {
					"type": "string",
					"format": "date-time"
				},
				"created_by": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"is_active": {
					"type": "boolean"
				},
				"stage": {
					"type": "string"
				},
				"updated_at": {
					"type": "string",
					"format": "date-time"
				}
			}
		},
		"clubsdk.ListEventsResponse": {
			"type": "object",
			"properties": {
				"events": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clubsdk.EventResponse"
					}
				}
			}
		},
		"clubsdk.RegistrationResponse": {
			"type": "object",
			"properties": {
				"cancelled_at": {
					"type": "string",
					"format": "date-time"
				},
				"event_id": {
					"type": "string"
				},
				"id": {
					"type": "string"
				},
				"identity_id": {
					"type": "string"
				},
				"registered_at": {
					"type": "string",
					"format": "date-time"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"clubsdk.ListRegistrationsResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer"
				},
				"registrations": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/clubsdk.RegistrationResponse"
					}
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "JWT access token. Format: \"Bearer {token}\".",
			"type": "apiKey",
			"name": "Authorization",
			"in": "header"
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "0.1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Clubhouse API",
	Description:      "Campus clubs, events and event registration.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
