package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/domain"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
)

// ImportHandler handles import-related HTTP requests.
type ImportHandler struct {
	importService service.ImportServiceInterface
	maxUploadSize int64
}

// NewImportHandler creates a new ImportHandler. Bodies larger than
// maxUploadSize plus form overhead are cut off while reading.
func NewImportHandler(importService service.ImportServiceInterface, maxUploadSize int64) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		maxUploadSize: maxUploadSize,
	}
}

// ImportJobResponse represents an import job in the API response.
type ImportJobResponse struct {
	ID           string                 `json:"id"`
	Kind         string                 `json:"kind"`
	Status       string                 `json:"status"`
	FileName     string                 `json:"file_name"`
	TotalRecords int                    `json:"total_records"`
	Processed    int                    `json:"processed"`
	Successful   int                    `json:"successful"`
	Failed       int                    `json:"failed"`
	Progress     float64                `json:"progress"`
	Options      domain.ImportOptions   `json:"options"`
	Context      map[string]interface{} `json:"context,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	CompletedAt  *string                `json:"completed_at,omitempty"`
}

// toImportJobResponse converts a domain.ImportJob to an ImportJobResponse.
func toImportJobResponse(job *domain.ImportJob) ImportJobResponse {
	response := ImportJobResponse{
		ID:           job.ID,
		Kind:         string(job.Kind),
		Status:       string(job.Status),
		FileName:     job.FileName,
		TotalRecords: job.TotalRecords,
		Processed:    job.ProcessedRecords,
		Successful:   job.SuccessfulCount,
		Failed:       job.FailedCount,
		Progress:     job.Percentage(),
		Options:      job.Options,
		Context:      job.Context,
		CreatedAt:    job.CreatedAt.Format(TimeFormat),
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(TimeFormat)
		response.CompletedAt = &completedAt
	}
	return response
}

// SubmitStudents handles POST /api/v1/imports/students
func (h *ImportHandler) SubmitStudents(c *gin.Context) {
	h.submit(c, h.importService.SubmitStudents)
}

// SubmitScores handles POST /api/v1/imports/scores
func (h *ImportHandler) SubmitScores(c *gin.Context) {
	h.submit(c, h.importService.SubmitScores)
}

type submitFunc func(ctx context.Context, req service.SubmitRequest) (*domain.ImportJob, error)

func (h *ImportHandler) submit(c *gin.Context, submit submitFunc) {
	if h.maxUploadSize > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize+maxMultipartMemory)
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: fmt.Sprintf("upload exceeds the maximum size of %d bytes", h.maxUploadSize),
			})
			return
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "a multipart form with a file is required"})
		return
	}

	opts, err := parseOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	file, header, err := c.Request.FormFile(formFile)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "file could not be read"})
		return
	}

	job, err := submit(c.Request.Context(), service.SubmitRequest{
		TenantID:  middleware.GetTenantID(c),
		ActorID:   middleware.GetActorID(c),
		RequestID: middleware.GetRequestID(c),
		FileName:  header.Filename,
		MediaType: header.Header.Get("Content-Type"),
		Size:      header.Size,
		Data:      data,
		Options:   opts,
	})
	if err != nil {
		respondError(c, err, "process import request")
		return
	}

	c.Header("Location", "/api/v1/imports/"+job.ID)
	c.JSON(http.StatusAccepted, toImportJobResponse(job))
}

// parseOptions reads the optional import options of a submission form.
func parseOptions(c *gin.Context) (domain.ImportOptions, error) {
	var opts domain.ImportOptions

	if v := c.PostForm(formBatchSize); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("%s must be an integer", formBatchSize)
		}
		opts.BatchSize = n
	}
	for name, dst := range map[string]*bool{
		formSkipDuplicates: &opts.SkipDuplicates,
		formUpdateExisting: &opts.UpdateExisting,
	} {
		v := c.PostForm(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("%s must be true or false", name)
		}
		*dst = b
	}
	return opts, nil
}

// GetImport handles GET /api/v1/imports/:id
func (h *ImportHandler) GetImport(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	view, err := h.importService.GetJobStatus(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		respondError(c, err, "retrieve import job")
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetImportErrors handles GET /api/v1/imports/:id/errors
func (h *ImportHandler) GetImportErrors(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	limit := service.DefaultErrorCap
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	jobErrors, err := h.importService.GetJobErrors(c.Request.Context(), middleware.GetTenantID(c), id, limit)
	if err != nil {
		respondError(c, err, "retrieve import errors")
		return
	}
	if jobErrors == nil {
		jobErrors = []domain.JobError{}
	}

	c.JSON(http.StatusOK, gin.H{"job_id": id, "errors": jobErrors, "count": len(jobErrors)})
}

// CancelImport handles POST /api/v1/imports/:id/cancel
func (h *ImportHandler) CancelImport(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	job, err := h.importService.CancelJob(c.Request.Context(), middleware.GetTenantID(c), id)
	if err != nil {
		respondError(c, err, "cancel import job")
		return
	}

	c.JSON(http.StatusAccepted, toImportJobResponse(job))
}

// jobIDParam validates the :id path parameter.
func jobIDParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "id must be a valid UUID"})
		return "", false
	}
	return id, true
}
