package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/disha-labs/disha-backend/internal/data/repos"
	"github.com/disha-labs/disha-backend/internal/http/response"
	"github.com/disha-labs/disha-backend/internal/services"
)

type CatalogHandler struct {
	catalogService services.CatalogService
}

func NewCatalogHandler(catalogService services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func queryLimit(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func (ch *CatalogHandler) ListColleges(c *gin.Context) {
	colleges, err := ch.catalogService.ListColleges(c.Request.Context(), repos.CollegeFilter{
		Type:   c.Query("type"),
		State:  c.Query("state"),
		Search: c.Query("search"),
		Limit:  queryLimit(c),
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, colleges)
}

func (ch *CatalogHandler) GetCollege(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	college, err := ch.catalogService.GetCollege(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, college)
}

func (ch *CatalogHandler) ListScholarships(c *gin.Context) {
	scholarships, err := ch.catalogService.ListScholarships(c.Request.Context(), repos.ScholarshipFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Limit:    queryLimit(c),
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, scholarships)
}

func (ch *CatalogHandler) GetScholarship(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	scholarship, err := ch.catalogService.GetScholarship(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, scholarship)
}

func (ch *CatalogHandler) ListCareerPaths(c *gin.Context) {
	careers, err := ch.catalogService.ListCareerPaths(c.Request.Context(), repos.CareerPathFilter{
		Search: c.Query("search"),
		Limit:  queryLimit(c),
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, careers)
}

func (ch *CatalogHandler) GetCareerPath(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, 400, "invalid_id", err)
		return
	}
	career, err := ch.catalogService.GetCareerPath(c.Request.Context(), id)
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, career)
}
