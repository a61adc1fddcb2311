package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orlhatundji/schoolos-backend-sub000/internal/middleware"
	"github.com/orlhatundji/schoolos-backend-sub000/internal/service"
)

// TemplateHandler serves downloadable import templates.
type TemplateHandler struct {
	templateService service.TemplateServiceInterface
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateService service.TemplateServiceInterface) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// ScoreTemplate handles POST /api/v1/templates/scores
func (h *TemplateHandler) ScoreTemplate(c *gin.Context) {
	var req service.ScoreTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	buf, err := h.templateService.GenerateScoreTemplate(c.Request.Context(),
		middleware.GetTenantID(c), middleware.GetActorID(c), req)
	if err != nil {
		respondError(c, err, "generate score template")
		return
	}

	attachment(c, fmt.Sprintf("scores-%s.xlsx", req.ClassID), buf.Bytes())
}

// StudentTemplate handles GET /api/v1/templates/students
func (h *TemplateHandler) StudentTemplate(c *gin.Context) {
	buf, err := h.templateService.GenerateStudentTemplate(c.Request.Context())
	if err != nil {
		respondError(c, err, "generate student template")
		return
	}

	attachment(c, "students.xlsx", buf.Bytes())
}

func attachment(c *gin.Context, fileName string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, xlsxContentType, data)
}
