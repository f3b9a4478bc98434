package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/vadimbarashkov/shortlink/internal/codegen"
	"github.com/vadimbarashkov/shortlink/internal/entity"
	"github.com/vadimbarashkov/shortlink/pkg/response"
)

const retryAfterSeconds = "1"

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type shortener interface {
	Shorten(ctx context.Context, originalURL string) (*entity.ShortURL, error)
}

type resolver interface {
	Resolve(ctx context.Context, code string) (string, error)
}

type statsProvider interface {
	Stats(ctx context.Context, code string) (*entity.URL, error)
}

type urlHandler struct {
	shortener     shortener
	resolver      resolver
	statsProvider statsProvider
	validate      *validator.Validate
}

func newURLHandler(uc UseCases) *urlHandler {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &urlHandler{
		shortener:     uc.Shorten,
		resolver:      uc.Redirect,
		statsProvider: uc.Stats,
		validate:      validate,
	}
}

func (h *urlHandler) shortenURL(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.urlHandler.shortenURL"

	var req shortenRequest

	if err := render.DecodeJSON(r.Body, &req); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.EmptyRequestBodyResponse)
			return
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.BadRequestResponse)
		return
	}

	if err := h.validate.Struct(req); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationErrorResponse(err))
		return
	}

	shortURL, err := h.shortener.Shorten(r.Context(), *req.URL)
	if err != nil {
		httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

		if errors.Is(err, entity.ErrMaxRetriesExceeded) {
			w.Header().Set("Retry-After", retryAfterSeconds)
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, response.ServiceUnavailableResponse)
			return
		}

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toShortenResponse(shortURL))
}

func (h *urlHandler) redirect(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.urlHandler.redirect"

	code := chi.URLParam(r, "code")
	if !codegen.IsValid(code) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.ResourceNotFoundResponse)
		return
	}

	originalURL, err := h.resolver.Resolve(r.Context(), code)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.ResourceNotFoundResponse)
			return
		}

		httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	// The stored URL goes out verbatim; it is not resolved against the request path.
	w.Header().Set("Location", originalURL)
	w.WriteHeader(http.StatusTemporaryRedirect)
}

func (h *urlHandler) getStats(w http.ResponseWriter, r *http.Request) {
	const op = "adapter.delivery.http.urlHandler.getStats"

	code := chi.URLParam(r, "code")
	if !codegen.IsValid(code) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.ResourceNotFoundResponse)
		return
	}

	url, err := h.statsProvider.Stats(r.Context(), code)
	if err != nil {
		if errors.Is(err, entity.ErrURLNotFound) {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.ResourceNotFoundResponse)
			return
		}

		httplog.LogEntrySetFields(r.Context(), map[string]any{"op": op, "err": err})

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.ServerErrorResponse)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toStatsResponse(url))
}
