package services

import (
	"context"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

// Suppliers caches the organization's supplier credentials, newest first.
type Suppliers struct {
	Collection[models.Supplier]

	api client.Client
	log logging.Logger
}

func NewSuppliers(api client.Client, log logging.Logger) *Suppliers {
	return &Suppliers{api: api, log: sliceLogger(log, "suppliers")}
}

func (s *Suppliers) FetchAll(ctx context.Context) error {
	return s.fetchAll(ctx, s.log, "Failed to fetch suppliers", func(ctx context.Context) ([]models.Supplier, error) {
		var resp dataEnvelope[[]models.Supplier]
		if err := s.api.Get(ctx, "/get", nil, &resp); err != nil {
			return nil, err
		}
		return resp.Data, nil
	})
}

// FetchOne loads one supplier into the current slot.
func (s *Suppliers) FetchOne(ctx context.Context, id string) error {
	return s.run(ctx, s.log, "fetchOne", "Failed to fetch supplier", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[models.Supplier]
		if err := s.api.Get(ctx, idPath("/", id, ""), nil, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{apply: func(uint64) error {
			s.setCurrentLocked(resp.Data)
			return nil
		}}, nil
	})
}

func (s *Suppliers) Create(ctx context.Context, rec models.Supplier) error {
	if err := models.Validate(rec); err != nil {
		return err
	}

	return s.run(ctx, s.log, "create", "Failed to create supplier", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[models.Supplier]
		if err := s.api.Post(ctx, "/add", rec, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Supplier added successfully",
			apply: func(uint64) error {
				s.prependLocked(resp.Data)
				return nil
			},
		}, nil
	})
}

func (s *Suppliers) Update(ctx context.Context, id string, rec models.Supplier) error {
	if err := models.Validate(rec); err != nil {
		return err
	}

	return s.run(ctx, s.log, "update", "Failed to update supplier", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[models.Supplier]
		if err := s.api.Put(ctx, idPath("/", id, ""), rec, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Supplier updated successfully",
			apply: func(uint64) error {
				return s.replaceLocked(resp.Data)
			},
		}, nil
	})
}

func (s *Suppliers) Delete(ctx context.Context, id string) error {
	return s.run(ctx, s.log, "delete", "Failed to delete supplier", func(ctx context.Context) (outcome, error) {
		if err := s.api.Delete(ctx, idPath("/", id, ""), nil); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Supplier deleted successfully",
			apply: func(uint64) error {
				s.removeLocked(id)
				return nil
			},
		}, nil
	})
}
