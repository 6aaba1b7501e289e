package services

import (
	"context"

	"github.com/dmitrijs2005/apiconsole/internal/client/client"
	"github.com/dmitrijs2005/apiconsole/internal/client/models"
	"github.com/dmitrijs2005/apiconsole/internal/logging"
)

type usersEnvelope struct {
	Users []models.User `json:"users"`
}

type subUserEnvelope struct {
	SubUser models.User `json:"subUser"`
}

type userEnvelope struct {
	User models.User `json:"user"`
}

// Users caches the organization's users. The main user is listed but can
// not be changed from here.
type Users struct {
	Collection[models.User]

	api client.Client
	log logging.Logger
}

func NewUsers(api client.Client, log logging.Logger) *Users {
	return &Users{api: api, log: sliceLogger(log, "users")}
}

func (u *Users) FetchAll(ctx context.Context) error {
	return u.fetchAll(ctx, u.log, "Failed to fetch users", func(ctx context.Context) ([]models.User, error) {
		var resp usersEnvelope
		if err := u.api.Get(ctx, "/", nil, &resp); err != nil {
			return nil, err
		}
		return resp.Users, nil
	})
}

// AddSubUser creates a sub-user and appends it to the collection.
func (u *Users) AddSubUser(ctx context.Context, input models.SubUserInput) error {
	if err := models.Validate(input); err != nil {
		return err
	}

	return u.run(ctx, u.log, "addSubUser", "Failed to add sub user", func(ctx context.Context) (outcome, error) {
		var resp subUserEnvelope
		if err := u.api.Post(ctx, "/add-sub-user", input, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Sub-user added successfully",
			apply: func(uint64) error {
				u.appendLocked(resp.SubUser)
				return nil
			},
		}, nil
	})
}

func (u *Users) UpdateStatus(ctx context.Context, id string, status models.Status) error {
	patch := models.UserStatusPatch{Status: status}
	if err := models.Validate(patch); err != nil {
		return err
	}
	if err := u.guard(id); err != nil {
		return err
	}

	return u.run(ctx, u.log, "updateStatus", "Failed to update status", func(ctx context.Context) (outcome, error) {
		var resp userEnvelope
		if err := u.api.Patch(ctx, idPath("/", id, "/status"), patch, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "User status updated",
			apply: func(uint64) error {
				return u.replaceLocked(resp.User)
			},
		}, nil
	})
}

func (u *Users) UpdateSubUser(ctx context.Context, id string, patch models.SubUserPatch) error {
	if err := models.Validate(patch); err != nil {
		return err
	}
	if err := u.guard(id); err != nil {
		return err
	}

	return u.run(ctx, u.log, "updateSubUser", "Failed to update sub user", func(ctx context.Context) (outcome, error) {
		var resp subUserEnvelope
		if err := u.api.Patch(ctx, idPath("/sub-user/", id, ""), patch, &resp); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Sub-user updated",
			apply: func(uint64) error {
				return u.replaceLocked(resp.SubUser)
			},
		}, nil
	})
}

func (u *Users) DeleteSubUser(ctx context.Context, id string) error {
	if err := u.guard(id); err != nil {
		return err
	}

	return u.run(ctx, u.log, "deleteSubUser", "Failed to delete sub user", func(ctx context.Context) (outcome, error) {
		if err := u.api.Delete(ctx, idPath("/sub-user/", id, ""), nil); err != nil {
			return outcome{}, err
		}
		return outcome{
			message: "Sub-user deleted",
			apply: func(uint64) error {
				u.removeLocked(id)
				return nil
			},
		}, nil
	})
}

func (u *Users) guard(id string) error {
	if user, ok := u.Find(id); ok && user.Role == models.RoleMain {
		return ErrMainUserProtected
	}
	return nil
}
