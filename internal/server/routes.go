package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"fba_scanner/internal/domain"
	"fba_scanner/pkg/errcodes"
	"fba_scanner/pkg/httpx/reply"
	"fba_scanner/pkg/rest"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			r.Route("/deals", func(r chi.Router) {
				r.Get("/pending", handler(s.getV1DealsPending))
				r.Post("/posted", handler(s.postV1DealsPosted))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			writeError(r.Context(), w, err)
		}
	}
}

// writeError maps store errors to HTTP statuses; everything else goes
// through the generic reply.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code, ok := domain.GetCode(err)
	if !ok {
		reply.Error(ctx, w, err)
		return
	}

	response := rest.Error{Code: rest.ErrorCode(code.String()), Message: err.Error()}

	switch code {
	case errcodes.DealNotFound, errcodes.NotFound:
		reply.JSON(ctx, w, http.StatusNotFound, response)
	case errcodes.InvalidPaging, errcodes.ValidationError:
		reply.JSON(ctx, w, http.StatusBadRequest, response)
	default:
		reply.Error(ctx, w, err)
	}
}
