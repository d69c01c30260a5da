package http

import (
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/catalog"

	"github.com/labstack/echo/v4"
)

// GetCatalog handles GET /api/v1/catalog?genre=&event=. "Tous" or an empty
// value disables a filter.
func (s *Server) GetCatalog(c echo.Context) error {
	var genre *catalog.Genre
	if raw := c.QueryParam("genre"); raw != "" && raw != "Tous" {
		g := catalog.Genre(raw)
		genre = &g
	}
	var event *catalog.Event
	if raw := c.QueryParam("event"); raw != "" && raw != "Tous" {
		e := catalog.Event(raw)
		event = &e
	}

	query, err := queries.NewListCatalogQuery(genre, event)
	if err != nil {
		return s.failWith(c, err)
	}
	views, err := s.handlers.ListCatalog.Handle(c.Request().Context(), query)
	if err != nil {
		return s.failWith(c, err)
	}

	response := make([]CatalogItem, len(views))
	for i, v := range views {
		response[i] = CatalogItem{
			ID:          v.ID.String(),
			Title:       v.Title,
			Genre:       string(v.Genre),
			Event:       string(v.Event),
			Difficulty:  string(v.Difficulty),
			Fabric:      v.Fabric,
			Description: v.Description,
			ImageURLs:   v.ImageURLs,
			CoverImage:  v.CoverImage(),
			PatternLink: v.PatternLink,
		}
	}
	return c.JSON(http.StatusOK, response)
}

// AddCatalogModel handles POST /api/v1/catalog.
func (s *Server) AddCatalogModel(c echo.Context) error {
	var req NewCatalogItem
	if err := c.Bind(&req); err != nil {
		return s.fail(c, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewAddCatalogModelCommand(catalog.ModelParams{
		Title:       req.Title,
		Genre:       catalog.Genre(req.Genre),
		Event:       catalog.Event(req.Event),
		Difficulty:  catalog.Difficulty(req.Difficulty),
		Fabric:      req.Fabric,
		Description: req.Description,
		ImageURLs:   req.ImageURLs,
		PatternLink: req.PatternLink,
	})
	if err != nil {
		return s.failWith(c, err)
	}
	m, err := s.handlers.AddCatalogModel.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.failWith(c, err)
	}

	return c.JSON(http.StatusCreated, CatalogItem{
		ID:          m.ID().String(),
		Title:       m.Title(),
		Genre:       string(m.Genre()),
		Event:       string(m.Event()),
		Difficulty:  string(m.Difficulty()),
		Fabric:      m.Fabric(),
		Description: m.Description(),
		ImageURLs:   m.ImageURLs(),
		CoverImage:  m.CoverImage(),
		PatternLink: m.PatternLink(),
	})
}

// RemoveCatalogModel handles DELETE /api/v1/catalog/:id. Orders placed on the
// model stay and lose its title.
func (s *Server) RemoveCatalogModel(c echo.Context) error {
	modelID, err := parseID("model id", c.Param("id"))
	if err != nil {
		return s.failWith(c, err)
	}

	cmd, err := commands.NewRemoveCatalogModelCommand(modelID)
	if err != nil {
		return s.failWith(c, err)
	}
	if err = s.handlers.RemoveCatalogModel.Handle(c.Request().Context(), cmd); err != nil {
		return s.failWith(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
