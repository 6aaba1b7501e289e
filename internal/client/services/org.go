package services

import (
	"context"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

type orgEnvelope struct {
	Organization *models.Organization `json:"organization"`
}

// Org caches the single organization the session is scoped to.
type Org struct {
	tracker

	api client.Client
	log logging.Logger
	org *models.Organization
}

func NewOrg(api client.Client, log logging.Logger) *Org {
	return &Org{api: api, log: sliceLogger(log, "org")}
}

// Organization returns the cached organization.
func (o *Org) Organization() (models.Organization, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.org == nil {
		return models.Organization{}, false
	}
	return *o.org, true
}

func (o *Org) Fetch(ctx context.Context, id string) error {
	return o.run(ctx, o.log, "fetch", "Failed to fetch organization", func(ctx context.Context) (outcome, error) {
		var resp orgEnvelope
		if err := o.api.Get(ctx, idPath("/", id, ""), nil, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{apply: o.store(resp.Organization)}, nil
	})
}

func (o *Org) UpdateStatus(ctx context.Context, id string, status models.OrgStatus) error {
	return o.run(ctx, o.log, "updateStatus", "Failed to update status", func(ctx context.Context) (outcome, error) {
		var resp orgEnvelope
		if err := o.api.Patch(ctx, idPath("/", id, "/status"), status, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Organization status updated successfully",
			apply:   o.store(resp.Organization),
		}, nil
	})
}

func (o *Org) Update(ctx context.Context, id string, details models.OrgDetails) error {
	if err := models.Validate(details); err != nil {
		return err
	}

	return o.run(ctx, o.log, "update", "Failed to update organization", func(ctx context.Context) (outcome, error) {
		var resp orgEnvelope
		if err := o.api.Patch(ctx, idPath("/", id, "/update"), details, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Organization updated successfully",
			apply:   o.store(resp.Organization),
		}, nil
	})
}

// Delete removes the organization server-side and clears the cache.
func (o *Org) Delete(ctx context.Context, id string) error {
	return o.run(ctx, o.log, "delete", "Failed to delete organization", func(ctx context.Context) (outcome, error) {
		if err := o.api.Delete(ctx, idPath("/", id, "/delete"), nil); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Organization deleted successfully",
			apply: func(uint64) error {
				o.org = nil
				return nil
			},
		}, nil
	})
}

func (o *Org) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.resetLocked()
	o.org = nil
}

// store keeps the echoed organization. A response without one leaves the
// cache as it was.
func (o *Org) store(org *models.Organization) func(uint64) error {
	return func(uint64) error {
		if org != nil {
			cp := *org
			o.org = &cp
		}
		return nil
	}
}
