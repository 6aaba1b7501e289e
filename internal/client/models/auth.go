package models

import (
	"bytes"
	"encoding/json"
)

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration creates an organization together with its owning user.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	OrgName  string `json:"orgName" validate:"required"`
	Address  string `json:"address" validate:"required"`
}

// Ref is a reference the backend sends either as a bare id or as an
// embedded document carrying "_id". It always marshals as the bare id.
type Ref struct {
	ID string
}

func (r *Ref) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		r.ID = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &r.ID)
	}
	var doc struct {
		ID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}
	r.ID = doc.ID
	return nil
}

func (r Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ID)
}

// Identity is the authenticated actor as returned by the login endpoint.
type Identity struct {
	ID             string `json:"_id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           Role   `json:"role"`
	Status         Status `json:"status,omitempty"`
	OrgID          *Ref   `json:"orgId,omitempty"`
	Organization   *Ref   `json:"organization,omitempty"`
	OrganizationID *Ref   `json:"organizationId,omitempty"`
}

// OrganizationScope resolves the organization id from whichever reference
// the backend populated: orgId, then organization, then organizationId.
func (i Identity) OrganizationScope() string {
	for _, ref := range []*Ref{i.OrgID, i.Organization, i.OrganizationID} {
		if ref != nil && ref.ID != "" {
			return ref.ID
		}
	}
	return ""
}

// Session is the authenticated actor plus the credential authorizing its
// requests.
type Session struct {
	Identity Identity
	Token    string
	OrgID    string
}

// LoginResponse is the body of POST /auth/login.
type LoginResponse struct {
	User  Identity `json:"user"`
	Token string   `json:"token"`
}
