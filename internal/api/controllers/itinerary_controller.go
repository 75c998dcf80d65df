package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"rionido/internal/models/request_models"
	"rionido/internal/models/response_models"
	"rionido/internal/services"
	"rionido/pkg/memcache"
	"rionido/pkg/utils"
)

const sessionTTL = 24 * time.Hour

type ItineraryController struct {
	itineraryService   services.ItineraryServiceInterface
	replacementService services.ReplacementServiceInterface
	conciergeService   services.ConciergeServiceInterface
	sessions           memcache.SessionStore
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	replacementService services.ReplacementServiceInterface,
	conciergeService services.ConciergeServiceInterface,
	sessions memcache.SessionStore,
) *ItineraryController {
	return &ItineraryController{
		itineraryService:   itineraryService,
		replacementService: replacementService,
		conciergeService:   conciergeService,
		sessions:           sessions,
	}
}

// GenerateItinerary godoc
// @Summary Generate a multi-day itinerary
// @Description Build a full trip plan from guest preferences
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Guest preferences"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessionID := uuid.New().String()
	i.sessions.Put(sessionID, itinerary, sessionTTL)

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(itinerary, sessionID), "Itinerary generated successfully")
}

// PlanSignatureDay godoc
// @Summary Plan a day around a signature experience
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.SignatureDayRequest true "Experience and preferences"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/signature-day [post]
func (i *ItineraryController) PlanSignatureDay(c *gin.Context) {
	var req request_models.SignatureDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ExperienceID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Experience ID is required")
		return
	}

	itinerary, err := i.itineraryService.PlanSignatureDay(c.Request.Context(), req.ExperienceID, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessionID := uuid.New().String()
	i.sessions.Put(sessionID, itinerary, sessionTTL)

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(itinerary, sessionID), "Signature day planned successfully")
}

// ReplaceActivity godoc
// @Summary Swap one activity for an alternative
// @Description Replaces the activity at the given day and position with an unused alternative of the same kind. Wine trails, shopping districts and signature experiences cannot be replaced.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param sessionId path string true "Itinerary session ID"
// @Param request body request_models.ReplaceActivityRequest true "Day and activity indexes"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /itineraries/{sessionId}/replace [post]
func (i *ItineraryController) ReplaceActivity(c *gin.Context) {
	sessionID := c.Param("sessionId")
	itinerary, ok := i.sessions.Get(sessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	var req request_models.ReplaceActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	swapped, err := i.replacementService.ReplaceActivity(c.Request.Context(), itinerary, req.DayIndex, req.ActivityIndex)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	resp := response_models.BuildItineraryResponse(itinerary, sessionID)
	resp.Swapped = &swapped

	message := "Activity replaced successfully"
	if !swapped {
		message = "No alternative available, itinerary unchanged"
	}
	utils.RespondSuccess(c, resp, message)
}

// EmailItinerary godoc
// @Summary Email the itinerary to the guest
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param sessionId path string true "Itinerary session ID"
// @Param request body request_models.EmailItineraryRequest true "Recipient address"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{sessionId}/email [post]
func (i *ItineraryController) EmailItinerary(c *gin.Context) {
	sessionID := c.Param("sessionId")
	itinerary, ok := i.sessions.Get(sessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	var req request_models.EmailItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		utils.RespondError(c, http.StatusBadRequest, "A recipient email is required")
		return
	}

	if err := i.conciergeService.EmailItinerary(c.Request.Context(), req.Email, itinerary); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Itinerary sent to "+req.Email)
}

// GetSession godoc
// @Summary Fetch a previously generated itinerary
// @Tags Itinerary
// @Produce json
// @Param sessionId path string true "Itinerary session ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Router /itineraries/{sessionId} [get]
func (i *ItineraryController) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	itinerary, ok := i.sessions.Get(sessionID)
	if !ok {
		utils.HandleServiceError(c, utils.ErrSessionNotFound)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryResponse(itinerary, sessionID), "Itinerary fetched successfully")
}
