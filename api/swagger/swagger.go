package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CLC Application API",
        "description": "College Leaving Certificate application, payment and receipt service",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http",
        "https"
    ],
    "tags": [
        {"name": "Students", "description": "Student session management"},
        {"name": "Applications", "description": "CLC application workflow"},
        {"name": "Files", "description": "Stored marksheet downloads"}
    ],
    "paths": {
        "/students/login": {
            "post": {
                "tags": ["Students"],
                "summary": "Student login",
                "description": "Matches the reference id and registered name exactly and sets the session cookie",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing credentials", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/me": {
            "get": {
                "tags": ["Students"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/students/logout": {
            "post": {
                "tags": ["Students"],
                "summary": "Logout",
                "description": "Revokes the session token and clears the cookie; succeeds even without a valid session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/submit": {
            "post": {
                "tags": ["Applications"],
                "summary": "Submit CLC application",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "village", "in": "formData", "required": true, "type": "string"},
                    {"name": "postOffice", "in": "formData", "required": true, "type": "string"},
                    {"name": "policeStation", "in": "formData", "required": true, "type": "string"},
                    {"name": "district", "in": "formData", "required": true, "type": "string"},
                    {"name": "state", "in": "formData", "required": true, "type": "string"},
                    {"name": "pinCode", "in": "formData", "required": true, "type": "string"},
                    {"name": "marksheet", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Missing fields or unsupported file type", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already submitted", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Upload failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/confirm-payment": {
            "post": {
                "tags": ["Applications"],
                "summary": "Confirm application payment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ConfirmPaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payment payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No application", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Already paid", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/my-application": {
            "get": {
                "tags": ["Applications"],
                "summary": "Get own application",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "402": {"description": "Payment required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No application", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/receipt": {
            "get": {
                "tags": ["Applications"],
                "summary": "Get fee receipt",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "402": {"description": "Payment required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No application", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/applications/receipt.pdf": {
            "get": {
                "tags": ["Applications"],
                "summary": "Download fee receipt PDF",
                "produces": ["application/pdf"],
                "responses": {
                    "200": {"description": "PDF document"},
                    "401": {"description": "No valid session", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "402": {"description": "Payment required", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "No application", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/files/marksheets/{token}": {
            "get": {
                "tags": ["Files"],
                "summary": "Download a stored marksheet",
                "parameters": [
                    {"name": "token", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "Marksheet image"},
                    "404": {"description": "Not found or token expired", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "referenceId": {"type": "string"},
                "studentName": {"type": "string"}
            },
            "required": ["referenceId", "studentName"]
        },
        "ConfirmPaymentRequest": {
            "type": "object",
            "properties": {
                "paymentId": {"type": "string"},
                "paymentAmount": {"type": "number"}
            },
            "required": ["paymentId", "paymentAmount"]
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "referenceId": {"type": "string"},
                "studentName": {"type": "string"},
                "fatherName": {"type": "string"},
                "motherName": {"type": "string"},
                "class": {"type": "string"},
                "classRollNo": {"type": "string"},
                "session": {"type": "string"},
                "examRollNo": {"type": "string"},
                "registrationNo": {"type": "string"},
                "registrationYear": {"type": "string"},
                "examType": {"type": "string"},
                "resultStatus": {"type": "string"},
                "passingYear": {"type": "string"},
                "passingDivisionGrade": {"type": "string"},
                "boardUnivName": {"type": "string"},
                "mobileNumber": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "Application": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "address": {"$ref": "#/definitions/Address"},
                "marksheetUrl": {"type": "string"},
                "paymentId": {"type": "string"},
                "paymentAmount": {"type": "number"},
                "paymentMode": {"type": "string"},
                "paymentDate": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "Address": {
            "type": "object",
            "properties": {
                "village": {"type": "string"},
                "postOffice": {"type": "string"},
                "policeStation": {"type": "string"},
                "district": {"type": "string"},
                "state": {"type": "string"},
                "pinCode": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
