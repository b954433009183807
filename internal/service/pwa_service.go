package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pages-alex-alex2006hw/gulliver/internal/model"
	"github.com/pages-alex-alex2006hw/gulliver/internal/repository"
)

// ListParams are the normalized listing parameters. Skip stays nil when
// the request carried no usable offset.
type ListParams struct {
	Skip  *int
	Limit int
	Sort  string
}

type PwaService interface {
	Get(ctx context.Context, id string) (model.PWA, error)
	List(ctx context.Context, params ListParams) ([]model.PWA, error)
}

type pwaService struct {
	pwas         repository.PwaRepository
	defaultLimit int
}

func NewPwaService(pwas repository.PwaRepository, defaultLimit int) PwaService {
	return &pwaService{pwas: pwas, defaultLimit: defaultLimit}
}

func (s *pwaService) Get(ctx context.Context, id string) (model.PWA, error) {
	if id == "" {
		return model.PWA{}, ErrInvalid
	}

	pwa, err := s.pwas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.PWA{}, fmt.Errorf("pwa %s: %w", id, ErrNotFound)
		}
		return model.PWA{}, err
	}

	return pwa, nil
}

func (s *pwaService) List(ctx context.Context, params ListParams) ([]model.PWA, error) {
	q := repository.ListQuery{
		Skip:  params.Skip,
		Limit: params.Limit,
		Sort:  normalizeSort(params.Sort),
	}
	if q.Limit <= 0 {
		q.Limit = s.defaultLimit
	}
	if q.Skip != nil && *q.Skip < 0 {
		q.Skip = nil
	}

	return s.pwas.List(ctx, q)
}

// Sort semantics belong to the store; anything it does not know
// collapses to newest, the same way an unknown format collapses to
// JSON at the dispatch layer.
func normalizeSort(sort string) string {
	switch sort {
	case repository.SortNewest, repository.SortOldest, repository.SortScore:
		return sort
	default:
		return repository.SortNewest
	}
}
