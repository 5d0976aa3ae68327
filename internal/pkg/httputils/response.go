package httputils

import (
	"encoding/json"
	"log"
	"net/http"

	"apridrive/api/response"
)

func ResponseError(w http.ResponseWriter, errorCode int, errorMessage string, details ...string) {
	resp := response.ErrorResponse{
		Error: errorMessage,
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	ResponseJSON(w, errorCode, resp)
}

func ResponseJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
