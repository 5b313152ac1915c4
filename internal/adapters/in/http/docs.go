// Package http is the optional status API of the dispatch pipeline, built
// on github.com/labstack/echo/v4. Every route is read-only. Server
// implements the interface generated from api/openapi.yml into
// internal/generated/servers, and the same document is served by the
// Swagger UI under /docs.
package http
