package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"poolhire/shared/constant"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var knownRoles = []string{constant.RoleGuest, constant.RoleHost, constant.RoleAdmin}

// Permission lists the roles allowed on one chi route pattern. Skip makes the route public.
type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. An empty role list admits any signed-in user.
func (p Permission) Allows(role string) bool {
	return len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]int
}

func routeKey(method, path string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions returns the zero Permission for routes that are not listed.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	idx, ok := r.index[routeKey(method, path)]
	if !ok {
		return Permission{}
	}

	return r.Endpoints[idx]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]int, len(r.Endpoints))

	for i, endpoint := range r.Endpoints {
		r.index[routeKey(endpoint.Method, endpoint.Path)] = i
	}
}

// Validate rejects duplicate routes, relative paths and unknown roles.
func (r *PermissionData) Validate() error {
	seen := map[string]bool{}

	for _, endpoint := range r.Endpoints {
		key := routeKey(endpoint.Method, endpoint.Path)

		if !strings.HasPrefix(endpoint.Path, "/") {
			return fmt.Errorf("permission %q: path must be absolute", key)
		}

		if seen[key] {
			return fmt.Errorf("permission %q: declared twice", key)
		}

		seen[key] = true

		for _, role := range endpoint.Permissions {
			if !slices.Contains(knownRoles, role) {
				return fmt.Errorf("permission %q: unknown role %q", key, role)
			}
		}
	}

	return nil
}

func parse(raw []byte) (*PermissionData, error) {
	var data PermissionData

	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, err
	}

	data.buildIndex()

	return &data, nil
}

// Get loads the embedded permission table, or nil when it is malformed.
func Get() *PermissionData {
	data, err := parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(data.Endpoints)).Msg("loaded embedded permissions")

	return data
}
