// Package docs contiene el documento Swagger servido en /swagger/doc.json.
// Se mantiene a mano junto con las anotaciones godoc de los handlers.
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
        "/catalog": {
            "get": {
                "description": "Guía nutricional y catálogo de peligros, solo lectura, en orden de declaración.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nutrition"
                ],
                "summary": "Catálogo completo",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/nutrition.catalogResponse"
                        }
                    }
                }
            }
        },
        "/healthcheck": {
            "get": {
                "description": "Preguntas relevantes para las condiciones del perfil y las respuestas de esta semana, si ya se enviaron.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "healthcheck"
                ],
                "summary": "Checklist semanal",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/healthcheck.ChecklistDTO"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "description": "Guarda las respuestas de la semana actual. Reenviar reemplaza las anteriores.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "healthcheck"
                ],
                "summary": "Enviar checklist semanal",
                "parameters": [
                    {
                        "description": "Respuestas por ítem",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/healthcheck.SubmitRequestDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/healthcheck.SubmissionDTO"
                        }
                    },
                    "400": {
                        "description": "invalid json / ítems desconocidos",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/healthcheck/current": {
            "get": {
                "description": "Devuelve la submission de la semana actual del perfil.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "healthcheck"
                ],
                "summary": "Respuestas de esta semana",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/healthcheck.SubmissionDTO"
                        }
                    },
                    "404": {
                        "description": "profile not found / checklist submission not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/profile": {
            "get": {
                "description": "Devuelve el perfil de la mascota. 404 si todavía no se completó el onboarding.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Obtener perfil",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.RecordDTO"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "put": {
                "description": "Reemplaza el perfil completo (no hay actualización parcial). Crea el perfil en el primer guardado.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "profile"
                ],
                "summary": "Guardar perfil",
                "parameters": [
                    {
                        "description": "Perfil completo",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/profile.ProfileDTO"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/profile.RecordDTO"
                        }
                    },
                    "400": {
                        "description": "invalid json / reglas de validación",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/profile/hazards": {
            "get": {
                "description": "Venenos absolutos y precauciones de la raza (siempre completos) más las alergias declaradas, si hay.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nutrition"
                ],
                "summary": "Alimentos a evitar (luz roja)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/nutrition.HazardsView"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/profile/recommendations": {
            "get": {
                "description": "Nutrientes recomendados según las condiciones de salud del perfil. Sin condiciones devuelve articulaciones, piel y respiratorio (3 ítems c/u).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "nutrition"
                ],
                "summary": "Alimentos recomendados (luz verde)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/nutrition.recommendationsResponse"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/scans": {
            "post": {
                "description": "Envía la foto del rótulo al proveedor de análisis y clasifica cada ingrediente (Green/Yellow/Red) para el perfil actual. Un escaneo nuevo reemplaza al que siga en curso.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "scans"
                ],
                "summary": "Escanear rótulo de alimento",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Foto del rótulo (image/*)",
                        "name": "image",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/scan.ScanResponseDTO"
                        }
                    },
                    "400": {
                        "description": "imagen inválida / perfil inválido",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "404": {
                        "description": "profile not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "scan superseded",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "502": {
                        "description": "respuesta inválida del proveedor",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "503": {
                        "description": "analysis provider not configured",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "catalog.GuideEntry": {
            "type": "object",
            "properties": {
                "concern": {
                    "type": "string",
                    "enum": [
                        "joints",
                        "respiratory",
                        "skin",
                        "heart",
                        "dental"
                    ]
                },
                "display_name": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "prompt_label": {
                    "type": "string"
                }
            }
        },
        "catalog.HazardList": {
            "type": "object",
            "properties": {
                "display_name": {
                    "type": "string"
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "healthcheck.ChecklistDTO": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/healthcheck.Item"
                    }
                },
                "submitted": {
                    "type": "boolean"
                },
                "week": {
                    "type": "string"
                }
            }
        },
        "healthcheck.Item": {
            "type": "object",
            "properties": {
                "concern": {
                    "type": "string",
                    "enum": [
                        "joints",
                        "respiratory",
                        "skin",
                        "heart",
                        "dental"
                    ]
                },
                "id": {
                    "type": "string",
                    "enum": [
                        "coughing",
                        "limping",
                        "hairLoss",
                        "panting",
                        "badBreath"
                    ]
                },
                "question": {
                    "type": "string"
                }
            }
        },
        "healthcheck.SubmissionDTO": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "week": {
                    "type": "string"
                }
            }
        },
        "healthcheck.SubmitRequestDTO": {
            "type": "object",
            "properties": {
                "answers": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "boolean"
                    }
                }
            }
        },
        "nutrition.HazardSection": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "nutrition.HazardsView": {
            "type": "object",
            "properties": {
                "allergens": {
                    "$ref": "#/definitions/nutrition.HazardSection"
                },
                "cautions": {
                    "$ref": "#/definitions/nutrition.HazardSection"
                },
                "poisons": {
                    "$ref": "#/definitions/nutrition.HazardSection"
                }
            }
        },
        "nutrition.Recommendation": {
            "type": "object",
            "properties": {
                "concern": {
                    "type": "string",
                    "enum": [
                        "joints",
                        "respiratory",
                        "skin",
                        "heart",
                        "dental"
                    ]
                },
                "items": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                }
            }
        },
        "nutrition.catalogResponse": {
            "type": "object",
            "properties": {
                "cautions": {
                    "$ref": "#/definitions/catalog.HazardList"
                },
                "guide": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.GuideEntry"
                    }
                },
                "poisons": {
                    "$ref": "#/definitions/catalog.HazardList"
                }
            }
        },
        "nutrition.recommendationsResponse": {
            "type": "object",
            "properties": {
                "recommendations": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/nutrition.Recommendation"
                    }
                }
            }
        },
        "profile.HealthConditionsDTO": {
            "type": "object",
            "properties": {
                "alopecia_x": {
                    "type": "boolean"
                },
                "dental_issues": {
                    "type": "boolean"
                },
                "heart_disease": {
                    "type": "boolean"
                },
                "patellar_luxation": {
                    "type": "boolean"
                },
                "patellar_luxation_grade": {
                    "type": "integer",
                    "maximum": 4,
                    "minimum": 0
                },
                "tracheal_collapse": {
                    "type": "boolean"
                }
            }
        },
        "profile.ProfileDTO": {
            "type": "object",
            "properties": {
                "activity_level": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                },
                "age": {
                    "type": "number"
                },
                "current_food": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "health_conditions": {
                    "$ref": "#/definitions/profile.HealthConditionsDTO"
                },
                "known_allergies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "neuter_status": {
                    "type": "string",
                    "enum": [
                        "neutered",
                        "intact"
                    ]
                },
                "photo": {
                    "type": "string",
                    "format": "base64"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "profile.RecordDTO": {
            "type": "object",
            "properties": {
                "activity_level": {
                    "type": "string",
                    "enum": [
                        "low",
                        "medium",
                        "high"
                    ]
                },
                "age": {
                    "type": "number"
                },
                "created_at": {
                    "type": "string"
                },
                "current_food": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "health_conditions": {
                    "$ref": "#/definitions/profile.HealthConditionsDTO"
                },
                "id": {
                    "type": "string"
                },
                "known_allergies": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "name": {
                    "type": "string"
                },
                "neuter_status": {
                    "type": "string",
                    "enum": [
                        "neutered",
                        "intact"
                    ]
                },
                "photo": {
                    "type": "string",
                    "format": "base64"
                },
                "updated_at": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "scan.IngredientDTO": {
            "type": "object",
            "properties": {
                "category": {
                    "type": "string",
                    "enum": [
                        "Green",
                        "Yellow",
                        "Red"
                    ]
                },
                "name": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "scan.ScanResponseDTO": {
            "type": "object",
            "properties": {
                "attempt_id": {
                    "type": "string"
                },
                "ingredients": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/scan.IngredientDTO"
                    }
                },
                "state": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Nutrition Guide API",
	Description:      "Recomendaciones nutricionales, alimentos a evitar, checklist semanal y escaneo de ingredientes para pomeranias.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
