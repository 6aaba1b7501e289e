package services

import (
	"context"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

// Configs caches the organization's API environment configs, newest first.
// The backend offers no delete for configs.
type Configs struct {
	Collection[models.APIConfig]

	api client.Client
	log logging.Logger
}

func NewConfigs(api client.Client, log logging.Logger) *Configs {
	return &Configs{api: api, log: sliceLogger(log, "configs")}
}

func (c *Configs) FetchAll(ctx context.Context) error {
	return c.fetchAll(ctx, c.log, "Failed to fetch configs", func(ctx context.Context) ([]models.APIConfig, error) {
		var resp dataEnvelope[[]models.APIConfig]
		if err := c.api.Get(ctx, "/get", nil, &resp); err != nil {
			return nil, err
		}
		return resp.Data, nil
	})
}

func (c *Configs) Create(ctx context.Context, rec models.APIConfig) error {
	if err := models.Validate(rec); err != nil {
		return err
	}

	return c.run(ctx, c.log, "create", "Failed to create config", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[models.APIConfig]
		if err := c.api.Post(ctx, "/create", rec, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Config created successfully",
			apply: func(uint64) error {
				c.prependLocked(resp.Data)
				return nil
			},
		}, nil
	})
}

// Search replaces the collection with the configs matching query. A blank
// query reloads the full list.
func (c *Configs) Search(ctx context.Context, query string) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.FetchAll(ctx)
	}

	return c.run(ctx, c.log, "search", "Failed to search configs", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[[]models.APIConfig]
		if err := c.api.Get(ctx, "/search/q", url.Values{"q": {query}}, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{apply: func(seq uint64) error {
			c.replaceAllLocked(seq, resp.Data)
			return nil
		}}, nil
	})
}

func (c *Configs) Update(ctx context.Context, id string, rec models.APIConfig) error {
	if err := models.Validate(rec); err != nil {
		return err
	}

	return c.run(ctx, c.log, "update", "Failed to update config", func(ctx context.Context) (outcome, error) {
		var resp dataEnvelope[models.APIConfig]
		if err := c.api.Put(ctx, idPath("/update/", id, ""), rec, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Config updated successfully",
			apply: func(uint64) error {
				return c.replaceLocked(resp.Data)
			},
		}, nil
	})
}

// ToggleStatus flips the cached config between active and inactive and
// saves it through Update.
func (c *Configs) ToggleStatus(ctx context.Context, id string) error {
	rec, ok := c.Find(id)
	if !ok {
		return ErrNotCached
	}
	rec.Status = rec.Status.Toggle()
	return c.Update(ctx, id, rec)
}
