package http

import (
	"errors"
	"net/http"
	"strconv"

	"econgov-portal/internal/portal/dto"
	"econgov-portal/internal/portal/service"
	"econgov-portal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ContentHandler handles HTTP requests for the content entities: articles,
// events, categories, staff, programs and resources.
type ContentHandler struct {
	contentService service.ContentService
	logger         *logger.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService, logger *logger.Logger) *ContentHandler {
	return &ContentHandler{contentService: contentService, logger: logger}
}

// RegisterRoutes registers the public read routes to the Echo group.
func (h *ContentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/articles", h.ListArticles)
	g.GET("/articles/:slug", h.GetArticle)
	g.GET("/events", h.ListEvents)
	g.GET("/events/:slug", h.GetEvent)
	g.GET("/categories", h.ListCategories)
	g.GET("/staff", h.ListStaff)
	g.GET("/staff/:id", h.GetStaff)
	g.GET("/programs", h.ListPrograms)
	g.GET("/resources", h.ListResources)
	g.GET("/resources/:id", h.GetResource)
}

// RegisterAdminRoutes registers the write routes to the admin Echo group.
func (h *ContentHandler) RegisterAdminRoutes(g *echo.Group) {
	g.PUT("/articles", h.UpsertArticle)
	g.DELETE("/articles/:slug", h.DeleteArticle)
	g.PUT("/events", h.UpsertEvent)
	g.DELETE("/events/:slug", h.DeleteEvent)
	g.PUT("/categories", h.UpsertCategory)
	g.DELETE("/categories/:slug", h.DeleteCategory)
	g.PUT("/staff", h.UpsertStaff)
	g.DELETE("/staff/:id", h.DeleteStaff)
	g.PUT("/programs", h.UpsertProgram)
	g.DELETE("/programs/:slug", h.DeleteProgram)
	g.PUT("/resources", h.UpsertResource)
	g.DELETE("/resources/:id", h.DeleteResource)
}

func contentFilter(c echo.Context) dto.ContentFilter {
	filter := dto.ContentFilter{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
		Tag:      c.QueryParam("tag"),
	}
	if raw := c.QueryParam("featured"); raw != "" {
		if featured, err := strconv.ParseBool(raw); err == nil {
			filter.Featured = &featured
		}
	}
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			filter.Limit = limit
		}
	}
	return filter
}

// writeError maps service errors to HTTP statuses: validation failures are
// 400, missing records 404, natural-key conflicts 409, anything else 500.
func (h *ContentHandler) writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConstraint):
		return c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	}
	h.logger.Error("Content request failed", logger.ErrorField(err))
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
}

// ListArticles godoc
// @Summary List articles
// @Tags content
// @Produce  json
// @Param   category query   string false   "Category slug"
// @Param   search   query   string false   "Free-text search"
// @Param   tag      query   string false   "Tag filter"
// @Param   featured query   bool   false   "Featured only"
// @Param   limit    query   int    false   "Max rows"
// @Success 200 {array} entity.Article
// @Failure 500 {object} dto.ErrorResponse
// @Router /articles [get]
func (h *ContentHandler) ListArticles(c echo.Context) error {
	articles, err := h.contentService.ListArticles(c.Request().Context(), contentFilter(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, articles)
}

// GetArticle godoc
// @Summary Get an article by slug
// @Tags content
// @Produce  json
// @Param   slug path   string true   "Article slug"
// @Success 200 {object} entity.Article
// @Failure 404 {object} dto.ErrorResponse
// @Router /articles/{slug} [get]
func (h *ContentHandler) GetArticle(c echo.Context) error {
	article, err := h.contentService.GetArticle(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// UpsertArticle godoc
// @Summary Create or update an article by slug
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertArticleRequest true "Article payload"
// @Success 200 {object} entity.Article
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/articles [put]
func (h *ContentHandler) UpsertArticle(c echo.Context) error {
	var req dto.UpsertArticleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	article, err := h.contentService.UpsertArticle(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, article)
}

// DeleteArticle godoc
// @Summary Delete an article by slug
// @Tags admin
// @Produce  json
// @Param   slug path   string true   "Article slug"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/articles/{slug} [delete]
func (h *ContentHandler) DeleteArticle(c echo.Context) error {
	if err := h.contentService.DeleteArticle(c.Request().Context(), c.Param("slug")); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListEvents godoc
// @Summary List events
// @Tags content
// @Produce  json
// @Param   search   query   string false   "Free-text search"
// @Param   featured query   bool   false   "Featured only"
// @Param   upcoming query   bool   false   "Only events starting now or later, soonest first"
// @Param   limit    query   int    false   "Max rows"
// @Success 200 {array} entity.Event
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [get]
func (h *ContentHandler) ListEvents(c echo.Context) error {
	filter := contentFilter(c)
	if upcoming, _ := strconv.ParseBool(c.QueryParam("upcoming")); upcoming {
		events, err := h.contentService.ListUpcomingEvents(c.Request().Context(), filter.Limit)
		if err != nil {
			return h.writeError(c, err)
		}
		return c.JSON(http.StatusOK, events)
	}
	events, err := h.contentService.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by slug
// @Tags content
// @Produce  json
// @Param   slug path   string true   "Event slug"
// @Success 200 {object} entity.Event
// @Failure 404 {object} dto.ErrorResponse
// @Router /events/{slug} [get]
func (h *ContentHandler) GetEvent(c echo.Context) error {
	event, err := h.contentService.GetEvent(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// UpsertEvent godoc
// @Summary Create or update an event by slug
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertEventRequest true "Event payload"
// @Success 200 {object} entity.Event
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/events [put]
func (h *ContentHandler) UpsertEvent(c echo.Context) error {
	var req dto.UpsertEventRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	event, err := h.contentService.UpsertEvent(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event by slug
// @Tags admin
// @Produce  json
// @Param   slug path   string true   "Event slug"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/events/{slug} [delete]
func (h *ContentHandler) DeleteEvent(c echo.Context) error {
	if err := h.contentService.DeleteEvent(c.Request().Context(), c.Param("slug")); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCategories godoc
// @Summary List categories
// @Tags content
// @Produce  json
// @Success 200 {array} entity.Category
// @Failure 500 {object} dto.ErrorResponse
// @Router /categories [get]
func (h *ContentHandler) ListCategories(c echo.Context) error {
	categories, err := h.contentService.ListCategories(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// UpsertCategory godoc
// @Summary Create or update a category by slug
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertCategoryRequest true "Category payload"
// @Success 200 {object} entity.Category
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/categories [put]
func (h *ContentHandler) UpsertCategory(c echo.Context) error {
	var req dto.UpsertCategoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	category, err := h.contentService.UpsertCategory(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete a category by slug
// @Description Fails with 409 while articles still reference the category
// @Tags admin
// @Produce  json
// @Param   slug path   string true   "Category slug"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /admin/categories/{slug} [delete]
func (h *ContentHandler) DeleteCategory(c echo.Context) error {
	if err := h.contentService.DeleteCategory(c.Request().Context(), c.Param("slug")); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListStaff godoc
// @Summary List staff members in display order
// @Tags content
// @Produce  json
// @Success 200 {array} entity.Staff
// @Failure 500 {object} dto.ErrorResponse
// @Router /staff [get]
func (h *ContentHandler) ListStaff(c echo.Context) error {
	staff, err := h.contentService.ListStaff(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// GetStaff godoc
// @Summary Get a staff member by id
// @Tags content
// @Produce  json
// @Param   id path   int true   "Staff id"
// @Success 200 {object} entity.Staff
// @Failure 404 {object} dto.ErrorResponse
// @Router /staff/{id} [get]
func (h *ContentHandler) GetStaff(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
	}
	staff, err := h.contentService.GetStaff(c.Request().Context(), uint(id))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// UpsertStaff godoc
// @Summary Create or update a staff member by name
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertStaffRequest true "Staff payload"
// @Success 200 {object} entity.Staff
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/staff [put]
func (h *ContentHandler) UpsertStaff(c echo.Context) error {
	var req dto.UpsertStaffRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	staff, err := h.contentService.UpsertStaff(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, staff)
}

// DeleteStaff godoc
// @Summary Delete a staff member by id
// @Tags admin
// @Produce  json
// @Param   id path   int true   "Staff id"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/staff/{id} [delete]
func (h *ContentHandler) DeleteStaff(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
	}
	if err := h.contentService.DeleteStaff(c.Request().Context(), uint(id)); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListPrograms godoc
// @Summary List programs
// @Tags content
// @Produce  json
// @Success 200 {array} entity.Program
// @Failure 500 {object} dto.ErrorResponse
// @Router /programs [get]
func (h *ContentHandler) ListPrograms(c echo.Context) error {
	programs, err := h.contentService.ListPrograms(c.Request().Context())
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, programs)
}

// UpsertProgram godoc
// @Summary Create or update a program by slug
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertProgramRequest true "Program payload"
// @Success 200 {object} entity.Program
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/programs [put]
func (h *ContentHandler) UpsertProgram(c echo.Context) error {
	var req dto.UpsertProgramRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	program, err := h.contentService.UpsertProgram(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, program)
}

// DeleteProgram godoc
// @Summary Delete a program by slug
// @Tags admin
// @Produce  json
// @Param   slug path   string true   "Program slug"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/programs/{slug} [delete]
func (h *ContentHandler) DeleteProgram(c echo.Context) error {
	if err := h.contentService.DeleteProgram(c.Request().Context(), c.Param("slug")); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListResources godoc
// @Summary List downloadable resources
// @Tags content
// @Produce  json
// @Param   category query   string false   "Category"
// @Param   search   query   string false   "Free-text search"
// @Param   tag      query   string false   "Tag filter"
// @Param   featured query   bool   false   "Featured only"
// @Param   limit    query   int    false   "Max rows"
// @Success 200 {array} entity.Resource
// @Failure 500 {object} dto.ErrorResponse
// @Router /resources [get]
func (h *ContentHandler) ListResources(c echo.Context) error {
	resources, err := h.contentService.ListResources(c.Request().Context(), contentFilter(c))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resources)
}

// GetResource godoc
// @Summary Get a resource by id
// @Tags content
// @Produce  json
// @Param   id path   int true   "Resource id"
// @Success 200 {object} entity.Resource
// @Failure 404 {object} dto.ErrorResponse
// @Router /resources/{id} [get]
func (h *ContentHandler) GetResource(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
	}
	resource, err := h.contentService.GetResource(c.Request().Context(), uint(id))
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resource)
}

// UpsertResource godoc
// @Summary Create or update a resource by file URL
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   request body dto.UpsertResourceRequest true "Resource payload"
// @Success 200 {object} entity.Resource
// @Failure 400 {object} dto.ErrorResponse
// @Router /admin/resources [put]
func (h *ContentHandler) UpsertResource(c echo.Context) error {
	var req dto.UpsertResourceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
	}
	resource, err := h.contentService.UpsertResource(c.Request().Context(), &req)
	if err != nil {
		return h.writeError(c, err)
	}
	return c.JSON(http.StatusOK, resource)
}

// DeleteResource godoc
// @Summary Delete a resource by id
// @Tags admin
// @Produce  json
// @Param   id path   int true   "Resource id"
// @Success 204 "deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Router /admin/resources/{id} [delete]
func (h *ContentHandler) DeleteResource(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
	}
	if err := h.contentService.DeleteResource(c.Request().Context(), uint(id)); err != nil {
		return h.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
