package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "description": "Student Planner API Documentation",
        "title": "Student Planner API",
        "version": "1.0"
    },
    "host": "localhost:8080",
    "basePath": "/",
    "schemes": ["http"],
    "paths": {
        "/health": {
            "get": {
                "tags": ["Health"],
                "summary": "Health Check",
                "description": "Check if server is running",
                "responses": {
                    "200": {
                        "description": "Server is healthy"
                    }
                }
            }
        },
        "/api/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "Official holidays for a year",
                "description": "Fetch the official holidays for a year from the upstream provider",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "year",
                        "description": "Year to fetch",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Holiday list"
                    },
                    "400": {
                        "description": "Year parameter is required"
                    },
                    "500": {
                        "description": "Failed to fetch holidays"
                    }
                }
            }
        },
        "/api/v1/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks",
                "description": "List tasks filtered by period, search term and completion visibility",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "period",
                        "description": "all, today, week or month",
                        "type": "string"
                    },
                    {
                        "in": "query",
                        "name": "search",
                        "description": "Substring match on title and description",
                        "type": "string"
                    },
                    {
                        "in": "query",
                        "name": "include_completed",
                        "description": "Show completed tasks",
                        "type": "boolean"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Task list"
                    }
                }
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "task",
                        "description": "Task to create",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "title": {
                                    "type": "string",
                                    "example": "Essay draft"
                                },
                                "date": {
                                    "type": "string",
                                    "example": "2025-03-10"
                                },
                                "deadline": {
                                    "type": "string",
                                    "example": "2025-03-12"
                                },
                                "description": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Task created"
                    },
                    "400": {
                        "description": "Missing or invalid fields"
                    }
                }
            }
        },
        "/api/v1/tasks/{id}": {
            "get": {
                "tags": ["Tasks"],
                "summary": "Get a task",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Task"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            },
            "put": {
                "tags": ["Tasks"],
                "summary": "Update a task",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Task updated"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            },
            "delete": {
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Task deleted"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            }
        },
        "/api/v1/tasks/{id}/toggle": {
            "post": {
                "tags": ["Tasks"],
                "summary": "Toggle task completion",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Task with flipped completion state"
                    },
                    "404": {
                        "description": "Task not found"
                    }
                }
            }
        },
        "/api/v1/holidays": {
            "get": {
                "tags": ["Holidays"],
                "summary": "List holidays",
                "description": "Custom holidays merged with the year's official ones",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "query",
                        "name": "year",
                        "type": "integer"
                    },
                    {
                        "in": "query",
                        "name": "search",
                        "type": "string"
                    },
                    {
                        "in": "query",
                        "name": "type",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Holiday list"
                    }
                }
            },
            "post": {
                "tags": ["Holidays"],
                "summary": "Create a custom holiday",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "body",
                        "name": "holiday",
                        "required": true,
                        "schema": {
                            "type": "object",
                            "properties": {
                                "name": {
                                    "type": "string",
                                    "example": "Barrio Fiesta"
                                },
                                "date": {
                                    "type": "string",
                                    "example": "2025-05-02"
                                },
                                "type": {
                                    "type": "string",
                                    "example": "Festival"
                                },
                                "description": {
                                    "type": "string"
                                }
                            }
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Holiday created"
                    },
                    "400": {
                        "description": "Missing or invalid fields"
                    }
                }
            }
        },
        "/api/v1/holidays/{id}": {
            "put": {
                "tags": ["Holidays"],
                "summary": "Update a custom holiday",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Holiday updated"
                    },
                    "403": {
                        "description": "Official holidays are read-only"
                    },
                    "404": {
                        "description": "Holiday not found"
                    }
                }
            },
            "delete": {
                "tags": ["Holidays"],
                "summary": "Delete a custom holiday",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Holiday deleted"
                    },
                    "403": {
                        "description": "Official holidays are read-only"
                    },
                    "404": {
                        "description": "Holiday not found"
                    }
                }
            }
        },
        "/api/v1/calendar/{year}/{month}": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Calendar month view",
                "description": "42-slot grid with tasks and holidays attached per day",
                "produces": ["application/json"],
                "parameters": [
                    {
                        "in": "path",
                        "name": "year",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "in": "path",
                        "name": "month",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Month view"
                    },
                    "400": {
                        "description": "Invalid year or month"
                    }
                }
            }
        },
        "/api/v1/dashboard": {
            "get": {
                "tags": ["Dashboard"],
                "summary": "Dashboard counters",
                "produces": ["application/json"],
                "responses": {
                    "200": {
                        "description": "Task and holiday counters"
                    }
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Student Planner API",
	Description:      "Student Planner API Documentation",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
