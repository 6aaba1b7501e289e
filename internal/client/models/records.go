// Package models defines the records exchanged with the admin API and the
// request payloads the console sends.
package models

// Record is anything kept in a slice collection, keyed by its server id.
type Record interface {
	RecordID() string
}

type Organization struct {
	ID              string `json:"_id,omitempty"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Active          bool   `json:"active"`
	MaintenanceMode bool   `json:"maintenanceMode"`
}

func (o Organization) RecordID() string { return o.ID }

// Supplier is a third-party integration credential. Password configures
// the integration; it never authenticates the console user.
type Supplier struct {
	ID           string  `json:"_id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Endpoint     string  `json:"endpoint" validate:"required"`
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	TargetBranch string  `json:"targetBranch"`
	PCC          string  `json:"pcc"`
	APIType      APIType `json:"apiType" validate:"required,oneof=sandbox production"`
	Status       Status  `json:"status,omitempty" validate:"omitempty,oneof=active inactive"`
	Priority     int     `json:"priority,omitempty" validate:"omitempty,min=1"`
}

func (s Supplier) RecordID() string { return s.ID }

// APIConfig has the supplier shape but lives in its own collection, and
// every field is mandatory.
type APIConfig struct {
	ID           string  `json:"_id,omitempty"`
	Name         string  `json:"name" validate:"required"`
	Endpoint     string  `json:"endpoint" validate:"required"`
	Username     string  `json:"username" validate:"required"`
	Password     string  `json:"password" validate:"required"`
	TargetBranch string  `json:"targetBranch" validate:"required"`
	PCC          string  `json:"pcc" validate:"required"`
	APIType      APIType `json:"apiType" validate:"required,oneof=sandbox production"`
	Status       Status  `json:"status" validate:"required,oneof=active inactive"`
	Priority     int     `json:"priority" validate:"min=1"`
}

func (c APIConfig) RecordID() string { return c.ID }

// NewAPIConfig returns a config carrying the form defaults: sandbox,
// active, priority 1.
func NewAPIConfig() APIConfig {
	return APIConfig{APIType: APITypeSandbox, Status: StatusActive, Priority: 1}
}

type User struct {
	ID     string `json:"_id,omitempty"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
}

func (u User) RecordID() string { return u.ID }

// SubUserInput creates a sub-user.
type SubUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// SubUserPatch edits a sub-user. An empty password keeps the current one.
type SubUserPatch struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type UserStatusPatch struct {
	Status Status `json:"status" validate:"required,oneof=active inactive"`
}

type OrgDetails struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type OrgStatus struct {
	Active          bool `json:"active"`
	MaintenanceMode bool `json:"maintenanceMode"`
}
