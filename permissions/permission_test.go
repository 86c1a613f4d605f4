package permissions

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_EmbeddedTable(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	tests := []struct {
		method    string
		path      string
		wantSkip  bool
		allowed   []string
		forbidden []string
	}{
		{method: http.MethodPost, path: "/v1/webhooks/stripe", wantSkip: true},
		{method: http.MethodPost, path: "/v1/bookings/quote", wantSkip: true},
		{method: http.MethodGet, path: "/v1/pools/", wantSkip: true},
		{method: http.MethodPost, path: "/v1/pools/", allowed: []string{"host", "admin"}, forbidden: []string{"guest"}},
		{method: http.MethodPost, path: "/v1/bookings/", allowed: []string{"guest", "host", "admin"}},
		{method: http.MethodPost, path: "/v1/payments/intent", allowed: []string{"guest"}},
		{method: http.MethodGet, path: "/v1/users/", allowed: []string{"admin"}, forbidden: []string{"guest", "host"}},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			perm := data.FindPermissions(tt.path, tt.method)
			assert.Equal(t, tt.path, perm.Path)
			assert.Equal(t, tt.wantSkip, perm.Skip)

			for _, role := range tt.allowed {
				assert.True(t, perm.Allows(role), role)
			}

			for _, role := range tt.forbidden {
				assert.False(t, perm.Allows(role), role)
			}
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := Get()
	require.NotNil(t, data)

	perm := data.FindPermissions("/v1/nowhere", http.MethodGet)
	assert.Empty(t, perm.Path)
	assert.True(t, perm.Allows("guest"))
}

func TestFindPermissions_MethodIsCaseInsensitive(t *testing.T) {
	data := &PermissionData{Endpoints: []Permission{{Path: "/v1/pools/", Method: "post", Permissions: []string{"host"}}}}

	assert.Equal(t, "/v1/pools/", data.FindPermissions("/v1/pools/", http.MethodPost).Path)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "malformed json", raw: `{"endpoints":`},
		{name: "duplicate route", raw: `{"endpoints":[{"path":"/v1/pools/","method":"GET","skip":true},{"path":"/v1/pools/","method":"get"}]}`},
		{name: "relative path", raw: `{"endpoints":[{"path":"v1/pools/","method":"GET"}]}`},
		{name: "unknown role", raw: `{"endpoints":[{"path":"/v1/pools/","method":"POST","permissions":["owner"]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}
