package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/rubytopaz-glitch/universe/internal/app"
	"github.com/rubytopaz-glitch/universe/internal/domain"
	"github.com/rubytopaz-glitch/universe/internal/ports"
)

type Handler struct {
	svc   *app.RecommendService
	model string
}

func NewHandler(svc *app.RecommendService, model string) *Handler {
	return &Handler{svc: svc, model: model}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.POST("/v1/recommends", h.Recommend)
	e.GET("/v1/genres", h.Genres)
	e.GET("/v1/genres/:name/movies", h.GenreMovies)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	req.Message = strings.TrimSpace(req.Message)
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "message must not be empty"})
	}

	history := make([]ports.ChatMessage, len(req.History))
	for i, t := range req.History {
		history[i] = ports.ChatMessage{Role: t.Role, Content: t.Content}
	}

	result, err := h.svc.Recommend(c.Request().Context(), app.RecommendRequest{
		Message: req.Message,
		History: history,
	})
	if err != nil {
		return h.mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, RecommendResponse{
		Answer:             result.Answer,
		Filters:            toFilterResponse(result.Filter),
		Movies:             toMovieSummaries(result.Movies),
		RecommendedReasons: result.Reasons,
		Meta: MetaResponse{
			Model:     h.model,
			RequestID: requestID,
			LatencyMS: result.LatencyMS,
		},
	})
}

func (h *Handler) Genres(c echo.Context) error {
	return c.JSON(http.StatusOK, GenreListResponse{Genres: h.svc.Genres()})
}

func (h *Handler) GenreMovies(c echo.Context) error {
	name := c.Param("name")
	movies, err := h.svc.MoviesByGenre(c.Request().Context(), name)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(http.StatusOK, GenreMoviesResponse{
		Genre:   name,
		Results: toMovieSummaries(movies),
	})
}

func (h *Handler) mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnknownGenre):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
