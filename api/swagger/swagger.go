package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Kalpavruksha EduHub Admin API",
        "description": "Manage the study resources and live classes shown on the Kalpavruksha EduHub site.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Resources", "description": "Downloadable study material"},
        {"name": "Classes", "description": "Live and upcoming classes"},
        {"name": "Uploads", "description": "PDF upload sink"},
        {"name": "Dashboard", "description": "Catalog statistics"},
        {"name": "Export", "description": "CSV and PDF listings"}
    ],
    "paths": {
        "/resources": {
            "get": {
                "tags": ["Resources"],
                "summary": "List resources",
                "parameters": [
                    {"name": "university", "in": "query", "type": "string", "enum": ["all", "vtu", "autonomous"]},
                    {"name": "branch", "in": "query", "type": "string", "enum": ["all", "cse", "ece", "eee", "mech", "civil"]},
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string", "enum": ["all", "notes", "pyq", "handwritten", "syllabus", "important-questions"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Resource"}}},
                    "500": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Resources"],
                "summary": "Create resource",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResourceRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Resource"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Resources"],
                "summary": "Update resource",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResourceRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Resource"}},
                    "400": {"description": "Missing id or invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Resources"],
                "summary": "Delete resource",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Success"}},
                    "400": {"description": "Missing id", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/resources/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Export resources",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "university", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string"},
                    {"name": "type", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}},
                    "400": {"description": "Unknown format", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes": {
            "get": {
                "tags": ["Classes"],
                "summary": "List classes",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string", "enum": ["all", "ongoing", "upcoming"]},
                    {"name": "university", "in": "query", "type": "string"},
                    {"name": "branch", "in": "query", "type": "string"},
                    {"name": "semester", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Class"}}},
                    "500": {"description": "Store unavailable", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Classes"],
                "summary": "Create class",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Class"}},
                    "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Classes"],
                "summary": "Update class",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Class"}},
                    "400": {"description": "Missing id or invalid payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Classes"],
                "summary": "Delete class",
                "parameters": [
                    {"name": "id", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/Success"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/classes/export": {
            "get": {
                "tags": ["Export"],
                "summary": "Export classes",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File", "schema": {"type": "file"}}
                }
            }
        },
        "/upload": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload a PDF",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Stored", "schema": {"$ref": "#/definitions/UploadResult"}},
                    "400": {"description": "Missing file or not a PDF", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Upload failed", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Catalog statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/DashboardSummary"}}
                }
            }
        }
    },
    "definitions": {
        "Resource": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "subjectCode": {"type": "string"},
                "header": {"type": "string"},
                "university": {"type": "string", "enum": ["vtu", "autonomous"]},
                "scheme": {"type": "string", "enum": ["2018", "2021", "2022", "2025"]},
                "college": {"type": "string"},
                "branch": {"type": "string"},
                "semester": {"type": "string"},
                "type": {"type": "string"},
                "fileUrl": {"type": "string"},
                "uploadedAt": {"type": "string", "format": "date-time"}
            }
        },
        "ResourceRequest": {
            "type": "object",
            "required": ["name", "university", "type", "fileUrl"],
            "properties": {
                "name": {"type": "string"},
                "subjectCode": {"type": "string"},
                "header": {"type": "string"},
                "university": {"type": "string"},
                "scheme": {"type": "string"},
                "college": {"type": "string"},
                "branch": {"type": "string"},
                "semester": {"type": "string"},
                "type": {"type": "string"},
                "fileUrl": {"type": "string"}
            }
        },
        "Class": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "status": {"type": "string", "enum": ["ongoing", "upcoming"]},
                "schedule": {"type": "string"},
                "time": {"type": "string"},
                "university": {"type": "string"},
                "college": {"type": "string"},
                "branch": {"type": "string"},
                "semester": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "ClassRequest": {
            "type": "object",
            "required": ["name", "status", "schedule", "time", "university", "branch", "semester"],
            "properties": {
                "name": {"type": "string"},
                "status": {"type": "string"},
                "schedule": {"type": "string"},
                "time": {"type": "string"},
                "university": {"type": "string"},
                "college": {"type": "string"},
                "branch": {"type": "string"},
                "semester": {"type": "string"}
            }
        },
        "UploadResult": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "filename": {"type": "string"},
                "size": {"type": "integer"},
                "pages": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "CountBucket": {
            "type": "object",
            "properties": {
                "key": {"type": "string"},
                "label": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "DashboardSummary": {
            "type": "object",
            "properties": {
                "totalResources": {"type": "integer"},
                "totalClasses": {"type": "integer"},
                "ongoingClasses": {"type": "integer"},
                "upcomingClasses": {"type": "integer"},
                "byType": {"type": "array", "items": {"$ref": "#/definitions/CountBucket"}},
                "byUniversity": {"type": "array", "items": {"$ref": "#/definitions/CountBucket"}},
                "recentResources": {"type": "array", "items": {"$ref": "#/definitions/Resource"}}
            }
        },
        "Success": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
