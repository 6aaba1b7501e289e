package models

import (
	"errors"
	"fmt"
)

var ErrInvalidEnum = errors.New("invalid enum value")

type Role string

const (
	RoleMain Role = "main"
	RoleSub  Role = "sub"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Toggle returns the opposite status. Anything other than active toggles
// to active.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

type APIType string

const (
	APITypeSandbox    APIType = "sandbox"
	APITypeProduction APIType = "production"
)

type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusFailure LogStatus = "failure"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(s); r {
	case RoleMain, RoleSub:
		return r, nil
	}
	return "", fmt.Errorf("%w: role %q", ErrInvalidEnum, s)
}

func ParseStatus(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusActive, StatusInactive:
		return st, nil
	}
	return "", fmt.Errorf("%w: status %q", ErrInvalidEnum, s)
}

func ParseAPIType(s string) (APIType, error) {
	switch t := APIType(s); t {
	case APITypeSandbox, APITypeProduction:
		return t, nil
	}
	return "", fmt.Errorf("%w: api type %q", ErrInvalidEnum, s)
}

func ParseLogStatus(s string) (LogStatus, error) {
	switch st := LogStatus(s); st {
	case LogStatusSuccess, LogStatusFailure:
		return st, nil
	}
	return "", fmt.Errorf("%w: log status %q", ErrInvalidEnum, s)
}
