// Package docs registra el documento Swagger de la API en swag.
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
        "/autenticacao/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["autenticacao"],
                "summary": "Login",
                "parameters": [
                    {"description": "Credenciales", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/sessions.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/autenticacao/refresh": {
            "put": {
                "produces": ["application/json"],
                "tags": ["autenticacao"],
                "summary": "Rotar tokens",
                "description": "Recibe el refresh token como Bearer y devuelve un par nuevo.",
                "parameters": [
                    {"type": "string", "description": "Bearer <refresh_token>", "name": "Authorization", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/auth.TokenPair"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/pets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar pets",
                "description": "Filtros por substring sin distinguir mayúsculas. size <= 0 devuelve todo en una página.",
                "parameters": [
                    {"type": "string", "description": "Filtro por nombre", "name": "nome", "in": "query"},
                    {"type": "string", "description": "Filtro por raza", "name": "raca", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Página (desde 0)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Tamaño de página", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.PetPage"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear pet",
                "parameters": [
                    {"description": "Datos del pet; nome es obligatorio", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.petRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/store.PetView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/pets/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener pet con sus tutores",
                "parameters": [
                    {"type": "integer", "description": "ID del pet", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Detail"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Actualizar pet",
                "description": "Reemplaza nome, raca e idade; los campos omitidos quedan vacíos.",
                "parameters": [
                    {"type": "integer", "description": "ID del pet", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del pet", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.petRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.PetView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["pets"],
                "summary": "Borrar pet",
                "description": "Borra el pet y lo desvincula de todos sus tutores.",
                "parameters": [
                    {"type": "integer", "description": "ID del pet", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/pets/{id}/fotos": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["fotos"],
                "summary": "Subir foto del pet",
                "parameters": [
                    {"type": "integer", "description": "ID del pet", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Imagen", "name": "foto", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/store.Anexo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/pets/{id}/fotos/{fotoId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["fotos"],
                "summary": "Borrar foto del pet",
                "parameters": [
                    {"type": "integer", "description": "ID del pet", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID de la foto", "name": "fotoId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/tutores": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tutores"],
                "summary": "Listar tutores",
                "parameters": [
                    {"type": "string", "description": "Filtro por nombre", "name": "nome", "in": "query"},
                    {"type": "integer", "default": 0, "description": "Página (desde 0)", "name": "page", "in": "query"},
                    {"type": "integer", "default": 10, "description": "Tamaño de página", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.TutorPage"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tutores"],
                "summary": "Crear tutor",
                "parameters": [
                    {"description": "nome y telefone obligatorios", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tutors.tutorRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/store.TutorView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/tutores/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tutores"],
                "summary": "Obtener tutor con sus pets",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/tutors.Detail"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["tutores"],
                "summary": "Actualizar tutor",
                "description": "Reemplaza todos los campos; los omitidos quedan vacíos.",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true},
                    {"description": "Datos del tutor", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/tutors.tutorRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/store.TutorView"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tutores"],
                "summary": "Borrar tutor",
                "description": "Borra el tutor y lo desvincula de todos sus pets.",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/tutores/{id}/fotos": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["fotos"],
                "summary": "Subir foto del tutor",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true},
                    {"type": "file", "description": "Imagen", "name": "foto", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/store.Anexo"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/tutores/{id}/fotos/{fotoId}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["fotos"],
                "summary": "Borrar foto del tutor",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID de la foto", "name": "fotoId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        },
        "/v1/tutores/{id}/pets/{petId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["tutores"],
                "summary": "Vincular pet a tutor",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID del pet", "name": "petId", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["tutores"],
                "summary": "Desvincular pet de tutor",
                "parameters": [
                    {"type": "integer", "description": "ID del tutor", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "ID del pet", "name": "petId", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/routing.Message"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/routing.Message"}}
                }
            }
        }
    },
    "definitions": {
        "auth.TokenPair": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "expires_in": {"type": "integer"},
                "refresh_expires_in": {"type": "integer"},
                "refresh_token": {"type": "string"}
            }
        },
        "pets.Detail": {
            "type": "object",
            "properties": {
                "foto": {"$ref": "#/definitions/store.Anexo"},
                "id": {"type": "integer"},
                "idade": {"type": "integer"},
                "nome": {"type": "string"},
                "raca": {"type": "string"},
                "tutores": {"type": "array", "items": {"$ref": "#/definitions/store.TutorView"}}
            }
        },
        "pets.petRequest": {
            "type": "object",
            "properties": {
                "idade": {"type": "integer"},
                "nome": {"type": "string"},
                "raca": {"type": "string"}
            }
        },
        "routing.Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "sessions.loginRequest": {
            "type": "object",
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "store.Anexo": {
            "type": "object",
            "properties": {
                "contentType": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "store.PetPage": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/store.PetView"}},
                "page": {"type": "integer"},
                "pageCount": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "store.PetView": {
            "type": "object",
            "properties": {
                "foto": {"$ref": "#/definitions/store.Anexo"},
                "id": {"type": "integer"},
                "idade": {"type": "integer"},
                "nome": {"type": "string"},
                "raca": {"type": "string"}
            }
        },
        "store.TutorPage": {
            "type": "object",
            "properties": {
                "content": {"type": "array", "items": {"$ref": "#/definitions/store.TutorView"}},
                "page": {"type": "integer"},
                "pageCount": {"type": "integer"},
                "size": {"type": "integer"},
                "total": {"type": "integer"}
            }
        },
        "store.TutorView": {
            "type": "object",
            "properties": {
                "cpf": {"type": "integer"},
                "email": {"type": "string"},
                "endereco": {"type": "string"},
                "foto": {"$ref": "#/definitions/store.Anexo"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "telefone": {"type": "string"}
            }
        },
        "tutors.Detail": {
            "type": "object",
            "properties": {
                "cpf": {"type": "integer"},
                "email": {"type": "string"},
                "endereco": {"type": "string"},
                "foto": {"$ref": "#/definitions/store.Anexo"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "pets": {"type": "array", "items": {"$ref": "#/definitions/store.PetView"}},
                "telefone": {"type": "string"}
            }
        },
        "tutors.tutorRequest": {
            "type": "object",
            "properties": {
                "cpf": {"type": "integer"},
                "email": {"type": "string"},
                "endereco": {"type": "string"},
                "nome": {"type": "string"},
                "telefone": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Bearer <access_token>",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Pet Registry API",
	Description:      "Pets, tutores, vínculos y fotos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
