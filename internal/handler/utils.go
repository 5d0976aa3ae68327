package handler

import (
	"net/http"

	"apridrive/internal/pkg/httputils"
)

type PongResponse struct {
	Message string `json:"message"`
}

// Ping
// @Summary Ping the server
// @Description Ping the server
// @Tags system
// @Produce json
// @Success 200 {object} PongResponse
// @Failure 404
// @Router /ping [get]
func Ping(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, 200, PongResponse{Message: "Pong"})
}

type IndexResponse struct {
	Name      string   `json:"name"`
	Endpoints []string `json:"endpoints"`
}

// Index
// @Summary API index
// @Description List the available endpoints
// @Tags system
// @Produce json
// @Success 200 {object} IndexResponse
// @Router / [get]
func Index(w http.ResponseWriter, r *http.Request) {
	httputils.ResponseJSON(w, 200, IndexResponse{
		Name: "apridrive",
		Endpoints: []string{
			"GET /api/forms",
			"POST /api/forms",
			"GET /api/forms/{id}",
			"PUT /api/forms/{id}",
			"DELETE /api/forms/{id}",
			"GET /api/files/preview/{fileId}",
			"GET /api/files/url/{fileId}",
			"GET /api/files/info/{fileId}",
			"GET /api/files/download/{fileId}",
		},
	})
}
