package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/disha-labs/disha-backend/internal/http/response"
	"github.com/disha-labs/disha-backend/internal/services"
)

type ProfileHandler struct {
	profileService services.ProfileService
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (ph *ProfileHandler) Get(c *gin.Context) {
	profile, err := ph.profileService.Get(c.Request.Context())
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, profile)
}

func (ph *ProfileHandler) Update(c *gin.Context) {
	var req struct {
		FullName          *string  `json:"full_name"`
		Phone             *string  `json:"phone"`
		PreferredLanguage *string  `json:"preferred_language"`
		EducationLevel    *string  `json:"education_level"`
		Interests         []string `json:"interests"`
		Location          *string  `json:"location"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, 400, "invalid_request", err)
		return
	}
	profile, err := ph.profileService.Update(c.Request.Context(), services.ProfileUpdate{
		FullName:          req.FullName,
		Phone:             req.Phone,
		PreferredLanguage: req.PreferredLanguage,
		EducationLevel:    req.EducationLevel,
		Interests:         req.Interests,
		Location:          req.Location,
	})
	if err != nil {
		response.RespondAppError(c, err)
		return
	}
	response.RespondOK(c, profile)
}
