package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"apridrive/internal/pkg/httputils"
	"apridrive/internal/service"
)

type FileHandler struct {
	fileService service.FileService
	devMode     bool
}

func NewFileHandler(fileService service.FileService, devMode bool) *FileHandler {
	return &FileHandler{fileService: fileService, devMode: devMode}
}

func (h *FileHandler) RegisterRoutes(router *mux.Router) {
	// S3 object ids contain slashes, so the id segment must swallow them
	router.HandleFunc("/files/preview/{fileId:.+}", h.preview).Methods("GET", "OPTIONS")
	router.HandleFunc("/files/url/{fileId:.+}", h.publicURL).Methods("GET", "OPTIONS")
	router.HandleFunc("/files/info/{fileId:.+}", h.info).Methods("GET", "OPTIONS")
	router.HandleFunc("/files/download/{fileId:.+}", h.download).Methods("GET", "OPTIONS")
}

// @Summary Preview links
// @Description Resolve the preview descriptor for a remote file
// @ID preview-file
// @Tags files
// @Produce json
// @Param fileId path string true "Remote file ID"
// @Success 200 {object} model.PreviewDescriptor
// @Failure 404 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /files/preview/{fileId} [get]
func (h *FileHandler) preview(w http.ResponseWriter, r *http.Request) {
	descriptor, err := h.fileService.Preview(r.Context(), mux.Vars(r)["fileId"])
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, descriptor)
}

// @Summary Public URLs
// @Description Get the view and content links for a remote file
// @ID file-url
// @Tags files
// @Produce json
// @Param fileId path string true "Remote file ID"
// @Success 200 {object} model.FileURLs
// @Failure 404 {object} response.ErrorResponse
// @Router /files/url/{fileId} [get]
func (h *FileHandler) publicURL(w http.ResponseWriter, r *http.Request) {
	urls, err := h.fileService.PublicURL(r.Context(), mux.Vars(r)["fileId"])
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, urls)
}

// @Summary File metadata
// @Description Get the remote metadata of a file
// @ID file-info
// @Tags files
// @Produce json
// @Param fileId path string true "Remote file ID"
// @Success 200 {object} model.ObjectInfo
// @Failure 404 {object} response.ErrorResponse
// @Router /files/info/{fileId} [get]
func (h *FileHandler) info(w http.ResponseWriter, r *http.Request) {
	objectInfo, err := h.fileService.Info(r.Context(), mux.Vars(r)["fileId"])
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, objectInfo)
}

// @Summary Download file
// @Description Stream the content of a remote file
// @ID download-file
// @Tags files
// @Produce octet-stream
// @Param fileId path string true "Remote file ID"
// @Success 200
// @Failure 404 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /files/download/{fileId} [get]
func (h *FileHandler) download(w http.ResponseWriter, r *http.Request) {
	body, objectInfo, err := h.fileService.Download(r.Context(), mux.Vars(r)["fileId"])
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", objectInfo.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", objectInfo.Name))
	if objectInfo.SizeBytes > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(objectInfo.SizeBytes, 10))
	}

	if _, err := io.Copy(w, body); err != nil {
		log.Printf("Failed to stream file %s: %v", objectInfo.ID, err)
	}
}
