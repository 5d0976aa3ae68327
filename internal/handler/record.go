package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"apridrive/internal/apperr"
	"apridrive/internal/model"
	"apridrive/internal/pkg/httputils"
	"apridrive/internal/service"
	"apridrive/internal/stage"
)

const (
	maxBodySize   = 100 << 20 // multipart body cap
	maxFieldSize  = 25 << 20  // per text field
	maxMultiFiles = 10
)

type RecordHandler struct {
	recordService service.RecordService
	stage         *stage.Stage
	devMode       bool
}

func NewRecordHandler(recordService service.RecordService, st *stage.Stage, devMode bool) *RecordHandler {
	return &RecordHandler{recordService: recordService, stage: st, devMode: devMode}
}

func (h *RecordHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/forms", h.listRecords).Methods("GET", "OPTIONS")
	router.HandleFunc("/forms", h.createRecord).Methods("POST", "OPTIONS")
	router.HandleFunc("/forms/{id}", h.getRecord).Methods("GET", "OPTIONS")
	router.HandleFunc("/forms/{id}", h.updateRecord).Methods("PUT", "OPTIONS")
	router.HandleFunc("/forms/{id}", h.deleteRecord).Methods("DELETE", "OPTIONS")
}

// @Summary List records
// @Description List all form records
// @ID list-records
// @Tags forms
// @Produce json
// @Success 200 {object} []model.Record
// @Failure 500 {object} response.ErrorResponse
// @Router /forms [get]
func (h *RecordHandler) listRecords(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordService.List(r.Context())
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, records)
}

// @Summary Get record
// @Description Get a single form record by id
// @ID get-record
// @Tags forms
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} model.Record
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [get]
func (h *RecordHandler) getRecord(w http.ResponseWriter, r *http.Request) {
	record, err := h.recordService.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, record)
}

// @Summary Create record
// @Description Create a form record with optional attachments
// @ID create-record
// @Tags forms
// @Accept mpfd
// @Produce json
// @Param textField1 formData string true "First text field"
// @Param textField2 formData string true "Second text field"
// @Param file1 formData file false "First attachment"
// @Param file2 formData file false "Second attachment"
// @Param multipleFiles formData file false "Additional attachments (up to 10)"
// @Success 201 {object} model.Record
// @Failure 400 {object} response.ErrorResponse
// @Failure 502 {object} response.ErrorResponse
// @Router /forms [post]
func (h *RecordHandler) createRecord(w http.ResponseWriter, r *http.Request) {
	fields, slots, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	record, err := h.recordService.Create(r.Context(), fields, slots)
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusCreated, record)
}

// @Summary Update record
// @Description Update text fields and replace attachments of a record
// @ID update-record
// @Tags forms
// @Accept mpfd
// @Produce json
// @Param id path string true "Record ID"
// @Param textField1 formData string false "First text field"
// @Param textField2 formData string false "Second text field"
// @Param file1 formData file false "Replacement first attachment"
// @Param file2 formData file false "Replacement second attachment"
// @Param multipleFiles formData file false "Replacement additional attachments"
// @Success 200 {object} model.Record
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [put]
func (h *RecordHandler) updateRecord(w http.ResponseWriter, r *http.Request) {
	fields, slots, ok := h.parseForm(w, r)
	if !ok {
		return
	}

	record, err := h.recordService.Update(r.Context(), mux.Vars(r)["id"], fields, slots)
	if err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, record)
}

// @Summary Delete record
// @Description Delete a form record
// @ID delete-record
// @Tags forms
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /forms/{id} [delete]
func (h *RecordHandler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.recordService.Delete(r.Context(), id); err != nil {
		writeError(w, err, h.devMode)
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, map[string]string{"message": "record deleted"})
}

// parseForm enforces the multipart limits and stages every uploaded part.
// On failure it writes the error response itself, releases anything already
// staged and returns ok=false.
func (h *RecordHandler) parseForm(w http.ResponseWriter, r *http.Request) (service.Fields, model.Slots, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputils.ResponseError(w, http.StatusBadRequest, codeFileSize, "request body exceeds the 100 MiB limit")
		} else {
			httputils.ResponseError(w, http.StatusBadRequest, "invalid multipart request", err.Error())
		}
		return service.Fields{}, model.Slots{}, false
	}

	fields := service.Fields{
		TextField1: r.FormValue("textField1"),
		TextField2: r.FormValue("textField2"),
	}
	if len(fields.TextField1) > maxFieldSize || len(fields.TextField2) > maxFieldSize {
		httputils.ResponseError(w, http.StatusBadRequest, codeFieldValue, "text field exceeds the 25 MiB limit")
		return service.Fields{}, model.Slots{}, false
	}

	form := r.MultipartForm
	if len(form.File["file1"]) > 1 || len(form.File["file2"]) > 1 {
		httputils.ResponseError(w, http.StatusBadRequest, codeFileCount, "file1 and file2 accept a single file each")
		return service.Fields{}, model.Slots{}, false
	}
	if len(form.File["multipleFiles"]) > maxMultiFiles {
		httputils.ResponseError(w, http.StatusBadRequest, codeFileCount,
			fmt.Sprintf("multipleFiles accepts at most %d files", maxMultiFiles))
		return service.Fields{}, model.Slots{}, false
	}

	var slots model.Slots
	fail := func(err error) (service.Fields, model.Slots, bool) {
		for _, staged := range slots.Each() {
			h.stage.Release(staged)
		}
		writeError(w, err, h.devMode)
		return service.Fields{}, model.Slots{}, false
	}

	if headers := form.File["file1"]; len(headers) == 1 {
		staged, err := h.stageHeader("file1", headers[0])
		if err != nil {
			return fail(err)
		}
		slots.File1 = staged
	}
	if headers := form.File["file2"]; len(headers) == 1 {
		staged, err := h.stageHeader("file2", headers[0])
		if err != nil {
			return fail(err)
		}
		slots.File2 = staged
	}
	for _, header := range form.File["multipleFiles"] {
		staged, err := h.stageHeader("multipleFiles", header)
		if err != nil {
			return fail(err)
		}
		slots.MultipleFiles = append(slots.MultipleFiles, staged)
	}

	return fields, slots, true
}

func (h *RecordHandler) stageHeader(field string, header *multipart.FileHeader) (*model.StagedFile, error) {
	part, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open multipart file: %v", apperr.ErrIO, err)
	}
	defer part.Close()

	return h.stage.Save(field, header.Filename, header.Header.Get("Content-Type"), part)
}
