package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"fba_scanner/internal/domain/entity"
	"fba_scanner/pkg/errcodes"
	"fba_scanner/pkg/httpx/reply"
	"fba_scanner/pkg/httpx/req"
	"fba_scanner/pkg/lox"
	"fba_scanner/pkg/rest"
)

const defaultPendingLimit = 25

//go:generate moq -rm -out deal_store_mock.gen.go . dealStore:DealStoreMock
type dealStore interface {
	ReadPending(ctx context.Context, limit int) ([]entity.Deal, error)
	MarkPosted(ctx context.Context, key entity.DealKey) error
}

// DealServer отдаёт хранилище сделок внешним распространителям.
type DealServer struct {
	store dealStore
}

func NewDealServer(store dealStore) DealServer {
	return DealServer{
		store: store,
	}
}

func (s DealServer) getV1DealsPending(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	limit := defaultPendingLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return failure.NewInvalidArgumentErrorFromError(
				fmt.Errorf("strconv.Atoi: %w", err),
				failure.WithCode(errcodes.InvalidPaging),
			)
		}

		limit = parsed
	}

	deals, err := s.store.ReadPending(ctx, limit)
	if err != nil {
		return fmt.Errorf("store.ReadPending: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.PendingDeals{
		Deals: lox.Map(deals, newRESTDeal),
	})

	return nil
}

func (s DealServer) postV1DealsPosted(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.DealKey

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	if err := s.store.MarkPosted(ctx, newDomainDealKey(request)); err != nil {
		return fmt.Errorf("store.MarkPosted: %w", err)
	}

	reply.OK(w)

	return nil
}
