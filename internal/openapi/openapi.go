// Package openapi assembles the hand-written OpenAPI document for the
// public API and serves it as JSON. The document is built once at
// startup; the handler only encodes it.
package openapi

import (
	"encoding/json"
	"net/http"
)

// Spec is an OpenAPI document fragment. The document is small enough
// that free-form maps beat a generator here.
type Spec = map[string]any

// Document returns the OpenAPI 3.1 description of the API.
func Document() Spec {
	return Spec{
		"openapi": "3.1.0",
		"info": Spec{
			"title":       "Unitip API",
			"description": "REST API for the Unitip campus service marketplace.",
			"version":     "1.0.0",
		},
		"components": Spec{
			"securitySchemes": Spec{
				"token": Spec{
					"type":   "http",
					"scheme": "bearer",
				},
			},
		},
		"paths": Spec{
			"/api/v1/offers":              offerPaths(),
			"/api/v1/accounts/profile":    profilePaths(),
			"/api/v1/jobs/{job_id}/apply": applyJobPath(),
		},
	}
}

func bearerSecurity() []any {
	return []any{Spec{"token": []any{}}}
}

func jsonBody(schema Spec) Spec {
	return Spec{
		"required": true,
		"content": Spec{
			"application/json": Spec{"schema": schema},
		},
	}
}

func jsonResponse(description string, schema Spec) Spec {
	return Spec{
		"description": description,
		"content": Spec{
			"application/json": Spec{"schema": schema},
		},
	}
}

func validationErrorResponse() Spec {
	return jsonResponse("Validation failed", Spec{
		"type": "object",
		"properties": Spec{
			"errors": Spec{
				"type": "array",
				"items": Spec{
					"type": "object",
					"properties": Spec{
						"path":    Spec{"type": "string"},
						"message": Spec{"type": "string"},
					},
				},
			},
		},
	})
}

func messageResponse(description string) Spec {
	return jsonResponse(description, Spec{
		"type": "object",
		"properties": Spec{
			"message": Spec{"type": "string"},
		},
	})
}

func offerSchema() Spec {
	return Spec{
		"type": "object",
		"properties": Spec{
			"id":              Spec{"type": "string"},
			"title":           Spec{"type": "string"},
			"description":     Spec{"type": "string"},
			"type":            Spec{"type": "string", "enum": []any{"antar-jemput", "jasa-titip"}},
			"pickup_area":     Spec{"type": "string"},
			"delivery_area":   Spec{"type": "string"},
			"available_until": Spec{"type": "string", "format": "date-time"},
			"price":           Spec{"type": "number"},
			"freelancer": Spec{
				"type": "object",
				"properties": Spec{
					"name": Spec{"type": "string"},
				},
			},
			"created_at": Spec{"type": "string", "format": "date-time"},
			"updated_at": Spec{"type": "string", "format": "date-time"},
		},
	}
}

func offerPaths() Spec {
	return Spec{
		"post": Spec{
			"tags":     []any{"offers"},
			"summary":  "Create a new offer",
			"security": bearerSecurity(),
			"requestBody": jsonBody(Spec{
				"type":     "object",
				"required": []any{"title", "description", "type", "available_until", "price"},
				"properties": Spec{
					"title":           Spec{"type": "string"},
					"description":     Spec{"type": "string"},
					"type":            Spec{"type": "string", "enum": []any{"antar-jemput", "jasa-titip"}},
					"available_until": Spec{"type": "string", "format": "date-time"},
					"price":           Spec{"type": "number", "minimum": 0},
					"pickup_area":     Spec{"type": "string"},
					"delivery_area":   Spec{"type": "string"},
				},
			}),
			"responses": Spec{
				"200": jsonResponse("Offer created", Spec{
					"type": "object",
					"properties": Spec{
						"success": Spec{"type": "boolean"},
						"id":      Spec{"type": "string"},
					},
				}),
				"400": validationErrorResponse(),
				"401": messageResponse("Invalid or missing authentication token"),
				"403": messageResponse("Customers may not create offers"),
				"500": messageResponse("Internal server error"),
			},
		},
		"get": Spec{
			"tags":     []any{"offers"},
			"summary":  "List offers",
			"security": bearerSecurity(),
			"parameters": []any{
				Spec{
					"name": "type",
					"in":   "query",
					"schema": Spec{
						"type":    "string",
						"enum":    []any{"all", "single", "multi"},
						"default": "all",
					},
				},
				Spec{
					"name":   "page",
					"in":     "query",
					"schema": Spec{"type": "integer", "default": 1},
				},
				Spec{
					"name":   "limit",
					"in":     "query",
					"schema": Spec{"type": "integer", "default": 10},
				},
			},
			"responses": Spec{
				"200": jsonResponse("A page of offers", Spec{
					"type": "object",
					"properties": Spec{
						"offers": Spec{
							"type":  "array",
							"items": offerSchema(),
						},
						"page_info": Spec{
							"type": "object",
							"properties": Spec{
								"count":       Spec{"type": "integer"},
								"page":        Spec{"type": "integer"},
								"total_pages": Spec{"type": "integer"},
							},
						},
					},
				}),
				"400": validationErrorResponse(),
				"401": messageResponse("Invalid or missing authentication token"),
				"500": messageResponse("Internal server error"),
			},
		},
	}
}

func profilePaths() Spec {
	return Spec{
		"get": Spec{
			"tags":     []any{"accounts"},
			"summary":  "Read the authenticated user's profile",
			"security": bearerSecurity(),
			"responses": Spec{
				"200": jsonResponse("The profile", Spec{
					"type": "object",
					"properties": Spec{
						"id":     Spec{"type": "string"},
						"name":   Spec{"type": "string"},
						"email":  Spec{"type": "string"},
						"token":  Spec{"type": "string"},
						"role":   Spec{"type": "string"},
						"gender": Spec{"type": "string", "enum": []any{"male", "female", ""}},
					},
				}),
				"401": messageResponse("Invalid or missing authentication token"),
				"500": messageResponse("Internal server error"),
			},
		},
		"patch": Spec{
			"tags":     []any{"accounts"},
			"summary":  "Update the authenticated user's profile",
			"security": bearerSecurity(),
			"requestBody": jsonBody(Spec{
				"type":     "object",
				"required": []any{"name"},
				"properties": Spec{
					"name":   Spec{"type": "string"},
					"gender": Spec{"type": "string", "enum": []any{"male", "female", ""}},
				},
			}),
			"responses": Spec{
				"200": jsonResponse("The updated profile", Spec{
					"type": "object",
					"properties": Spec{
						"id":     Spec{"type": "string"},
						"name":   Spec{"type": "string"},
						"gender": Spec{"type": "string"},
					},
				}),
				"400": validationErrorResponse(),
				"401": messageResponse("Invalid or missing authentication token"),
				"500": messageResponse("Internal server error"),
			},
		},
	}
}

func applyJobPath() Spec {
	return Spec{
		"post": Spec{
			"tags":     []any{"jobs"},
			"summary":  "Apply for a job",
			"security": bearerSecurity(),
			"parameters": []any{
				Spec{
					"name":     "job_id",
					"in":       "path",
					"required": true,
					"schema":   Spec{"type": "string"},
				},
			},
			"requestBody": jsonBody(Spec{
				"type":     "object",
				"required": []any{"price"},
				"properties": Spec{
					"price": Spec{"type": "number", "minimum": 0},
				},
			}),
			"responses": Spec{
				"200": jsonResponse("Application recorded", Spec{
					"type": "object",
					"properties": Spec{
						"success": Spec{"type": "boolean"},
						"id":      Spec{"type": "string"},
					},
				}),
				"400": validationErrorResponse(),
				"401": messageResponse("Invalid or missing authentication token"),
				"403": messageResponse("Customers may not apply for jobs"),
				"500": messageResponse("Internal server error"),
			},
		},
	}
}

// Handler serves the document as JSON. The document is marshalled once;
// requests only write the cached bytes.
func Handler() (http.HandlerFunc, error) {
	body, err := json.Marshal(Document())
	if err != nil {
		return nil, err
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}, nil
}
