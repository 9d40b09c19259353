/*
Copyright 2026 the Bookstore Conformance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package fakeapi

// openAPIDocumentJSON is a trimmed copy of the live service's published
// document, enough for the discovery suites to parse and cross-check paths.
const openAPIDocumentJSON = `{
  "openapi": "3.0.1",
  "info": {
    "title": "FakeRestAPI.Web",
    "version": "v1"
  },
  "paths": {
    "/api/v1/Books": {
      "get": {
        "tags": ["Books"],
        "responses": {
          "200": {
            "description": "Success",
            "content": {
              "application/json; v=1.0": {
                "schema": {
                  "type": "array",
                  "items": {"$ref": "#/components/schemas/Book"}
                }
              }
            }
          }
        }
      },
      "post": {
        "tags": ["Books"],
        "requestBody": {
          "content": {
            "application/json; v=1.0": {
              "schema": {"$ref": "#/components/schemas/Book"}
            }
          }
        },
        "responses": {
          "200": {"description": "Success"}
        }
      }
    },
    "/api/v1/Books/{id}": {
      "get": {
        "tags": ["Books"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "responses": {
          "200": {
            "description": "Success",
            "content": {
              "application/json; v=1.0": {
                "schema": {"$ref": "#/components/schemas/Book"}
              }
            }
          }
        }
      },
      "put": {
        "tags": ["Books"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "requestBody": {
          "content": {
            "application/json; v=1.0": {
              "schema": {"$ref": "#/components/schemas/Book"}
            }
          }
        },
        "responses": {
          "200": {"description": "Success"}
        }
      },
      "delete": {
        "tags": ["Books"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "responses": {
          "200": {"description": "Success"}
        }
      }
    },
    "/api/v1/Authors": {
      "get": {
        "tags": ["Authors"],
        "responses": {
          "200": {
            "description": "Success",
            "content": {
              "application/json; v=1.0": {
                "schema": {
                  "type": "array",
                  "items": {"$ref": "#/components/schemas/Author"}
                }
              }
            }
          }
        }
      },
      "post": {
        "tags": ["Authors"],
        "requestBody": {
          "content": {
            "application/json; v=1.0": {
              "schema": {"$ref": "#/components/schemas/Author"}
            }
          }
        },
        "responses": {
          "200": {"description": "Success"}
        }
      }
    },
    "/api/v1/Authors/{id}": {
      "get": {
        "tags": ["Authors"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "responses": {
          "200": {
            "description": "Success",
            "content": {
              "application/json; v=1.0": {
                "schema": {"$ref": "#/components/schemas/Author"}
              }
            }
          }
        }
      },
      "put": {
        "tags": ["Authors"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "requestBody": {
          "content": {
            "application/json; v=1.0": {
              "schema": {"$ref": "#/components/schemas/Author"}
            }
          }
        },
        "responses": {
          "200": {"description": "Success"}
        }
      },
      "delete": {
        "tags": ["Authors"],
        "parameters": [
          {
            "name": "id",
            "in": "path",
            "required": true,
            "schema": {"type": "integer", "format": "int32"}
          }
        ],
        "responses": {
          "200": {"description": "Success"}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "Book": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id": {"type": "integer", "format": "int32"},
          "title": {"type": "string", "nullable": true},
          "description": {"type": "string", "nullable": true},
          "pageCount": {"type": "integer", "format": "int32"},
          "excerpt": {"type": "string", "nullable": true},
          "publishDate": {"type": "string", "format": "date-time"}
        }
      },
      "Author": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "id": {"type": "integer", "format": "int32"},
          "idBook": {"type": "integer", "format": "int32"},
          "firstName": {"type": "string", "nullable": true},
          "lastName": {"type": "string", "nullable": true}
        }
      }
    }
  }
}`
