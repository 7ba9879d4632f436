package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/docschema/pkg/logger"
	"github.com/dmitrymomot/docschema/pkg/validator"
	"github.com/dmitrymomot/docschema/schema"
)

// Store persists validated records.
type Store interface {
	Insert(ctx context.Context, rec schema.Record) (string, error)
	Collection(rec schema.Record) string
}

// Created is the payload of a successful create request.
type Created struct {
	ID         string        `json:"id"`
	Collection string        `json:"collection"`
	Record     schema.Record `json:"record"`
}

// Records returns a router with one create endpoint per record kind:
//
//	POST /users
//	POST /products
//	POST /leads
//
// Bodies are validated before anything is written. Rejected input answers
// 422 with every field violation.
func Records(store Store, log *slog.Logger) chi.Router {
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("records"))

	r := chi.NewRouter()
	r.Post("/users", create[schema.User](store, log))
	r.Post("/products", create[schema.Product](store, log))
	r.Post("/leads", create[schema.Lead](store, log))
	return r
}

func create[T schema.Record](store Store, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		start := time.Now()

		raw, err := decodeRaw(w, r)
		if err != nil {
			log.DebugContext(ctx, "request body rejected", logger.Error(err))
			writeError(w, err)
			return
		}

		rec, err := schema.Validate[T](raw)
		if err != nil {
			model := rec.Model().Name
			if errs := validator.ExtractValidationErrors(err); errs != nil {
				log.InfoContext(ctx, "record rejected", logger.Model(model), logger.Fields(errs.Fields()))
			} else {
				log.ErrorContext(ctx, "record validation failed", logger.Model(model), logger.Error(err))
			}
			writeError(w, err)
			return
		}

		collection := store.Collection(rec)
		id, err := store.Insert(ctx, rec)
		if err != nil {
			log.ErrorContext(ctx, "failed to store record",
				logger.Model(rec.Model().Name),
				logger.Collection(collection),
				logger.Error(err),
			)
			writeError(w, err)
			return
		}

		log.InfoContext(ctx, "record stored",
			logger.Model(rec.Model().Name),
			logger.Collection(collection),
			logger.RecordID(id),
			logger.Duration(time.Since(start)),
		)
		writeJSON(w, http.StatusCreated, JSONResponse{Data: Created{
			ID:         id,
			Collection: collection,
			Record:     rec,
		}})
	}
}
