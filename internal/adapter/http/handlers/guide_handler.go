package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"lazarus_guide/internal/adapter/http/dto/request"
	"lazarus_guide/internal/adapter/http/dto/response"
	"lazarus_guide/internal/usecase"
	"lazarus_guide/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidStatusPayload = pkg.NewDomainErrorSimple("INVALID_STATUS_INPUT", "Invalid status payload", http.StatusBadRequest)

// GuideHandler handles the guide and procedure endpoints.
type GuideHandler struct {
	usecase usecase.IGuideUseCase
}

func NewGuideHandler(uc usecase.IGuideUseCase) *GuideHandler {
	return &GuideHandler{usecase: uc}
}

// ListGuides lists guides with pagination, search and type filter.
//
// @Summary      List guides
// @Tags         Guides
// @Security     ApiKeyAuth
// @Param        limit     query  int     false  "Page size (max 100)"
// @Param        offset    query  int     false  "Explicit offset; defaults from page"
// @Param        page      query  int     false  "1-based page"
// @Param        search    query  string  false  "Matches numeroGuiaPrestador, numeroCarteira or numeroGuiaOperadora"
// @Param        tipoGuia  query  string  false  "Exact guide-type filter"
// @Success      200  {object}  response.ListGuidesResponse
// @Router       /guides [get]
func (h *GuideHandler) ListGuides(c *gin.Context) {
	p := usecase.ListGuidesParams{
		Limit:    intQuery(c, "limit", 0),
		Page:     intQuery(c, "page", 0),
		Search:   c.Query("search"),
		TipoGuia: c.Query("tipoGuia"),
	}
	if raw, ok := c.GetQuery("offset"); ok {
		if offset, err := strconv.Atoi(raw); err == nil {
			p.Offset = &offset
		}
	}

	result, err := h.usecase.ListGuides(c.Request.Context(), p)
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaginatedGuides(result))
}

// GetGuideByID returns a single guide with its full procedure list.
//
// @Summary      Get guide by id
// @Tags         Guides
// @Security     ApiKeyAuth
// @Param        id  path  int  true  "Guide id"
// @Success      200  {object}  response.APIResponse
// @Router       /guides/{id} [get]
func (h *GuideHandler) GetGuideByID(c *gin.Context) {
	guide, err := h.usecase.GetGuideByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(guide))
}

// GetGuideProcedures lists a guide's procedures by provider-assigned number,
// each annotated with its current audit status.
//
// @Summary      List guide procedures
// @Tags         Guides
// @Security     ApiKeyAuth
// @Param        id      path   string  true   "Provider guide number (numeroGuiaPrestador)"
// @Param        limit   query  int     false  "Page size"
// @Param        offset  query  int     false  "Offset"
// @Success      200  {object}  response.APIResponse
// @Router       /guides/{id}/procedures [get]
func (h *GuideHandler) GetGuideProcedures(c *gin.Context) {
	procedures, err := h.usecase.GetGuideProcedures(
		c.Request.Context(),
		c.Param("id"),
		intQuery(c, "limit", 0),
		intQuery(c, "offset", 0),
	)
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if len(procedures) == 0 {
		appErr := pkg.NewDomainErrorSimple("GUIDE_NOT_FOUND", "Guide not found or has no procedures", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(procedures))
}

// GetProcedureByID returns one procedure plus a projection of its parent guide.
//
// @Summary      Get procedure by id
// @Tags         Guides
// @Security     ApiKeyAuth
// @Param        procedureId  path  int  true  "Procedure id"
// @Success      200  {object}  response.APIResponse
// @Router       /guides/procedures/{procedureId} [get]
func (h *GuideHandler) GetProcedureByID(c *gin.Context) {
	procedure, err := h.usecase.GetProcedureByID(c.Request.Context(), c.Param("procedureId"))
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(procedure))
}

// GetGuideStats returns count-by-type and total value for the tenant.
//
// @Summary      Guide statistics
// @Tags         Guides
// @Security     ApiKeyAuth
// @Success      200  {object}  response.APIResponse
// @Router       /guides/stats [get]
func (h *GuideHandler) GetGuideStats(c *gin.Context) {
	stats, err := h.usecase.GetGuideStats(c.Request.Context())
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OK(stats))
}

// UpdateProcedureStatus applies an audit decision to one procedure.
//
// @Summary      Update procedure status
// @Tags         Guides
// @Security     ApiKeyAuth
// @Param        procedureId  path  int                                    true  "Procedure id"
// @Param        payload      body  request.UpdateProcedureStatusRequest  true  "Audit decision"
// @Success      200  {object}  response.APIResponse
// @Router       /guides/procedures/{procedureId}/status [put]
func (h *GuideHandler) UpdateProcedureStatus(c *gin.Context) {
	var payload request.UpdateProcedureStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidStatusPayload.HTTPStatus, errInvalidStatusPayload.ToHTTPError())
		return
	}

	procedure, err := h.usecase.UpdateProcedureStatus(c.Request.Context(), c.Param("procedureId"), payload.ToInput())
	if err != nil {
		appErr := mapGuideError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.OKWithMessage(procedure, "Procedure status updated successfully"))
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

func mapGuideError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidGuideID):
		return pkg.NewDomainErrorSimple("INVALID_GUIDE_ID", "Invalid guide ID", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProcedureID):
		return pkg.NewDomainErrorSimple("INVALID_PROCEDURE_ID", "Invalid procedure ID", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidNumeroGuia):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "numeroGuiaPrestador is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid status. Must be one of: PENDING, APPROVED, REJECTED, FINALIZED", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMotivoRejeicaoRequired):
		return pkg.NewDomainErrorSimple("MOTIVO_REJEICAO_REQUIRED", "motivoRejeicao is required when rejecting a procedure", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGuideNotFound):
		return pkg.NewDomainErrorSimple("GUIDE_NOT_FOUND", "Guide not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProcedureNotFound):
		return pkg.NewDomainErrorSimple("PROCEDURE_NOT_FOUND", "Guide procedure not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
