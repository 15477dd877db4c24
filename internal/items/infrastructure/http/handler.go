package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/otel-shop/internal/items/application"
	"github.com/dmehra2102/otel-shop/internal/items/domain"
	"github.com/dmehra2102/otel-shop/pkg/problem"
)

const NotFoundType = "urn:problem-type:item-not-found"

type Handler struct {
	log     *slog.Logger
	service *application.Service
	tracer  trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
		tracer:  otel.Tracer("items-http"),
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/items/{itemId}", h.getItem)
	return r
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	ctx, span := h.tracer.Start(r.Context(), "FindItem", trace.WithAttributes(attribute.String("item", id)))
	defer span.End()

	item, err := h.service.FindItem(ctx, id)
	if err != nil {
		var nf *domain.NotFoundError
		if errors.As(err, &nf) {
			span.SetStatus(codes.Error, nf.Error())
			problem.NotFound(w, r, NotFoundType, nf.Error())
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		problem.Internal(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(item)
}
