package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/dsa-learning-backend/database"
)

// resourceStore is the catalog store surface one entity family exposes.
type resourceStore[T any] interface {
	FindByID(ctx context.Context, id int) (*T, error)
	FindBySlug(ctx context.Context, slug string) (*T, error)
	Add(ctx context.Context, rec *T) error
	Replace(ctx context.Context, id int, rec *T) error
	Delete(ctx context.Context, id int) error
}

// listFunc lists one page, reading any family-specific filter from query.
type listFunc[T any] func(ctx context.Context, page database.Page, query url.Values) ([]T, error)

// recordInput is a full-replacement request body for records of type T.
type recordInput[T any] interface {
	Record() T
}

// resourceHandler serves the six CRUD routes of one entity family. The
// families differ only in record type, body type and list filter.
type resourceHandler[T any, In recordInput[T]] struct {
	entity    string
	responder Responder
	logger    zerolog.Logger
	validate  *validator.Validate
	store     resourceStore[T]
	list      listFunc[T]
}

func newResourceHandler[T any, In recordInput[T]](entity string, store resourceStore[T], list listFunc[T], validate *validator.Validate) resourceHandler[T, In] {
	logger := log.With().Str("handlerName", entity+"Handler").Logger()

	return resourceHandler[T, In]{
		entity:    entity,
		responder: NewResponder(logger),
		logger:    logger,
		validate:  validate,
		store:     store,
		list:      list,
	}
}

// routes registers the family's routes on a sub-router.
func (h resourceHandler[T, In]) routes(r chi.Router) {
	r.Get("/", h.listRecords())
	r.Post("/", h.createRecord())
	r.Get("/slug/{slug}", h.getRecordBySlug())
	r.Get("/{id}", h.getRecord())
	r.Put("/{id}", h.replaceRecord())
	r.Delete("/{id}", h.deleteRecord())
}

// listRecords returns one page of records ordered by id.
//
// @Summary List records
// @Tags Catalog
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Param category_id query int false "Examples only: category id"
// @Param category query string false "Algorithms only: exact category label"
// @Success 200 {array} object
// @Failure 422 {object} ErrorResponse "Invalid query parameter"
// @Router /categories/ [get]
// @Router /examples/ [get]
// @Router /algorithms/ [get]
func (h resourceHandler[T, In]) listRecords() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		page, err := parsePage(query)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		records, err := h.list(r.Context(), page, query)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, records)
	}
}

// @Summary Get record by id
// @Tags Catalog
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 422 {object} ErrorResponse "Invalid id"
// @Router /categories/{id} [get]
// @Router /examples/{id} [get]
// @Router /algorithms/{id} [get]
func (h resourceHandler[T, In]) getRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		rec, err := h.store.FindByID(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, rec)
	}
}

// @Summary Get record by slug
// @Tags Catalog
// @Produce json
// @Param slug path string true "Record slug"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse "Record not found"
// @Router /categories/slug/{slug} [get]
// @Router /examples/slug/{slug} [get]
// @Router /algorithms/slug/{slug} [get]
func (h resourceHandler[T, In]) getRecordBySlug() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := h.store.FindBySlug(r.Context(), chi.URLParam(r, "slug"))
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, rec)
	}
}

// createRecord answers 200, not 201.
//
// @Summary Create record
// @Tags Catalog
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 409 {object} ErrorResponse "Duplicate unique field"
// @Failure 413 {object} ErrorResponse "Body too large"
// @Failure 422 {object} ErrorResponse "Invalid body"
// @Router /categories/ [post]
// @Router /examples/ [post]
// @Router /algorithms/ [post]
func (h resourceHandler[T, In]) createRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := h.readRecord(w, r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.store.Add(r.Context(), &rec); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		log.Ctx(r.Context()).Info().Str("entity", h.entity).Msg("record created")
		h.responder.WriteJSON(w, http.StatusOK, rec)
	}
}

// replaceRecord overwrites every field; omitted fields reset.
//
// @Summary Replace record
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "Duplicate unique field"
// @Failure 422 {object} ErrorResponse "Invalid body or id"
// @Router /categories/{id} [put]
// @Router /examples/{id} [put]
// @Router /algorithms/{id} [put]
func (h resourceHandler[T, In]) replaceRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		rec, err := h.readRecord(w, r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.store.Replace(r.Context(), id, &rec); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		log.Ctx(r.Context()).Info().Str("entity", h.entity).Int("id", id).Msg("record replaced")
		h.responder.WriteJSON(w, http.StatusOK, rec)
	}
}

// @Summary Delete record
// @Tags Catalog
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Record not found"
// @Failure 409 {object} ErrorResponse "Category still referenced by examples"
// @Router /categories/{id} [delete]
// @Router /examples/{id} [delete]
// @Router /algorithms/{id} [delete]
func (h resourceHandler[T, In]) deleteRecord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r)
		if err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		if err := h.store.Delete(r.Context(), id); err != nil {
			h.responder.WriteError(w, r, err)
			return
		}

		log.Ctx(r.Context()).Info().Str("entity", h.entity).Int("id", id).Msg("record deleted")
		h.responder.WriteJSON(w, http.StatusOK, MessageResponse{
			Message: fmt.Sprintf("%s deleted successfully", h.entity),
		})
	}
}

// readRecord decodes and validates a full-replacement body.
func (h resourceHandler[T, In]) readRecord(w http.ResponseWriter, r *http.Request) (T, error) {
	var in In
	var zero T
	if err := decodeJSON(w, r, &in); err != nil {
		return zero, err
	}
	if err := validateInput(h.validate, in); err != nil {
		return zero, err
	}
	return in.Record(), nil
}
