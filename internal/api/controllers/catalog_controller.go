package controllers

import (
	"github.com/gin-gonic/gin"

	"rionido/internal/models/response_models"
	"rionido/internal/services"
	"rionido/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetExperiences godoc
// @Summary Browse the full experience catalog
// @Description Returns every partner business grouped by zone and category
// @Tags Catalog
// @Produce json
// @Success 200 {object} response_models.CatalogResponse
// @Router /catalog/experiences [get]
func (cc *CatalogController) GetExperiences(c *gin.Context) {
	catalog, err := cc.catalogService.Catalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildCatalogResponse(catalog), "Catalog fetched successfully")
}

// GetSignatureExperiences godoc
// @Summary List bookable signature experiences
// @Tags Catalog
// @Produce json
// @Success 200 {array} response_models.SignatureExperienceResponse
// @Router /catalog/signature-experiences [get]
func (cc *CatalogController) GetSignatureExperiences(c *gin.Context) {
	catalog, err := cc.catalogService.Catalog(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		response_models.BuildSignatureExperienceResponses(catalog.SignatureExperiences),
		"Signature experiences fetched successfully")
}

// ReloadCatalog godoc
// @Summary Reload the catalog from storage
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /catalog/reload [post]
func (cc *CatalogController) ReloadCatalog(c *gin.Context) {
	if err := cc.catalogService.Reload(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Catalog reloaded successfully")
}
