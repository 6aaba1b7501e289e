package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity_OrganizationScope(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "orgId string", in: `{"orgId":"o1","organization":"o2"}`, want: "o1"},
		{name: "organization object", in: `{"organization":{"_id":"o2","name":"Acme"}}`, want: "o2"},
		{name: "organizationId", in: `{"organizationId":"o3"}`, want: "o3"},
		{name: "empty orgId falls through", in: `{"orgId":"","organizationId":"o3"}`, want: "o3"},
		{name: "null refs", in: `{"orgId":null}`, want: ""},
		{name: "absent", in: `{"role":"sub"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id Identity
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id.OrganizationScope())
		})
	}
}

func TestIdentity_RoundTripKeepsScope(t *testing.T) {
	var id Identity
	require.NoError(t, json.Unmarshal([]byte(`{"_id":"u1","name":"Ann","role":"main","organization":{"_id":"o9"}}`), &id))

	b, err := json.Marshal(id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"_id":"u1","name":"Ann","email":"","role":"main","organization":"o9"}`, string(b))

	var back Identity
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, "o9", back.OrganizationScope())
	assert.Equal(t, RoleMain, back.Role)
}
