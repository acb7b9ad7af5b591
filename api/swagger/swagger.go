package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Timetable Project API",
        "description": "Institutional timetable management backend",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Per-role signup and signin"},
        {"name": "Catalog", "description": "Faculty directory, courses and rooms"},
        {"name": "Timetable", "description": "Master timetable management"},
        {"name": "Faculty", "description": "Faculty-facing timetable views"},
        {"name": "Profile", "description": "Account maintenance"}
    ],
    "paths": {
        "/admin/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Improper Credentials"},
                    "409": {"description": "Admin already exists"}
                }
            }
        },
        "/admin/signin": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in as an admin",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/admin/addFaculty": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a faculty directory entry",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddFacultyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Faculty already exists"}
                }
            }
        },
        "/admin/addCourse": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a course",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCourseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Course already exists"}
                }
            }
        },
        "/admin/addRoom": {
            "post": {
                "tags": ["Catalog"],
                "summary": "Add a room",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddRoomRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"}
                }
            }
        },
        "/admin/master-timetable/upload": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Import the master timetable from an xlsx workbook",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "200": {"description": "Imported"},
                    "400": {"description": "Only .xlsx files are allowed"},
                    "500": {"description": "Error processing Excel file"}
                }
            }
        },
        "/admin/master-timetable/manual": {
            "post": {
                "tags": ["Timetable"],
                "summary": "Add one master timetable entry",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ManualEntryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Validation Error"}
                }
            }
        },
        "/admin/master-timetable/export": {
            "get": {
                "tags": ["Timetable"],
                "summary": "Export the master timetable as CSV or PDF",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported export format"}
                }
            }
        },
        "/faculty/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a faculty member",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Faculty already exists"}
                }
            }
        },
        "/faculty/signin": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in as a faculty member",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/faculty/mytimetable": {
            "get": {
                "tags": ["Faculty"],
                "summary": "View own timetable",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid token"}
                }
            }
        },
        "/faculty/masterTimetable": {
            "get": {
                "tags": ["Faculty"],
                "summary": "View the master timetable",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid token"}
                }
            }
        },
        "/faculty/courses": {
            "get": {
                "tags": ["Faculty"],
                "summary": "View assigned courses",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "No courses assigned to this faculty member."}
                }
            }
        },
        "/faculty/updateMyProfile": {
            "put": {
                "tags": ["Profile"],
                "summary": "Update faculty profile",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateProfileRequest"}}
                ],
                "responses": {
                    "200": {"description": "Profile updated successfully"},
                    "404": {"description": "Faculty not found"}
                }
            }
        },
        "/faculty/change-password": {
            "put": {
                "tags": ["Profile"],
                "summary": "Change faculty password",
                "parameters": [
                    {"name": "token", "in": "header", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ChangePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "Password changed successfully"},
                    "401": {"description": "Old password is incorrect"}
                }
            }
        },
        "/student/signup": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/StudentSignupRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Student already exists with the provided email or student ID"}
                }
            }
        },
        "/student/signin": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in as a student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/SigninRequest"}}
                ],
                "responses": {
                    "200": {"description": "Signed in"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        }
    },
    "definitions": {
        "SignupRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "password"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "StudentSignupRequest": {
            "type": "object",
            "required": ["firstName", "lastName", "email", "password", "studentId", "school", "program", "batch", "graduationLevel"],
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "studentId": {"type": "string"},
                "school": {"type": "string"},
                "program": {"type": "string"},
                "batch": {"type": "string"},
                "graduationLevel": {"type": "string", "enum": ["UG", "PG"]}
            }
        },
        "SigninRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "UpdateProfileRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"}
            }
        },
        "ChangePasswordRequest": {
            "type": "object",
            "required": ["oldPassword", "newPassword"],
            "properties": {
                "oldPassword": {"type": "string"},
                "newPassword": {"type": "string"}
            }
        },
        "AddFacultyRequest": {
            "type": "object",
            "required": ["facultyId", "facultyName", "school"],
            "properties": {
                "facultyId": {"type": "string"},
                "facultyName": {"type": "string"},
                "school": {"type": "string"}
            }
        },
        "AddCourseRequest": {
            "type": "object",
            "required": ["courseCode", "courseTitle", "basket", "credits"],
            "properties": {
                "courseCode": {"type": "string"},
                "courseTitle": {"type": "string"},
                "basket": {"type": "string"},
                "credits": {"type": "number"}
            }
        },
        "AddRoomRequest": {
            "type": "object",
            "required": ["roomNumber", "block", "roomType", "capacity"],
            "properties": {
                "roomNumber": {"type": "string"},
                "block": {"type": "string"},
                "roomType": {"type": "string"},
                "capacity": {"type": "integer"}
            }
        },
        "ManualEntryRequest": {
            "type": "object",
            "required": ["day", "timeSlot", "batch", "graduationLevel", "school", "program", "semester", "courseCode", "faculty", "room", "block"],
            "properties": {
                "day": {"type": "string"},
                "timeSlot": {"type": "string"},
                "batch": {"type": "string"},
                "graduationLevel": {"type": "string", "enum": ["UG", "PG"]},
                "school": {"type": "string"},
                "program": {"type": "string"},
                "semester": {"type": "string"},
                "courseCode": {"type": "string"},
                "faculty": {"type": "string"},
                "room": {"type": "string"},
                "block": {"type": "string"}
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
