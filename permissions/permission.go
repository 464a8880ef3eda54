package permissions

import (
	_ "embed"
	"encoding/json"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

type Decision int

const (
	Render Decision = iota
	RedirectLogin
	RedirectHome
)

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Group struct {
	Path  string   `json:"path"`
	Roles []string `json:"roles"`
}

// Policy is the single role table behind route guarding, restricted routes and the navigation filter.
type Policy struct {
	Login        string               `json:"login"`
	Homes        map[string]string    `json:"homes"`
	Groups       []Group              `json:"groups"`
	Restrictions map[string][]string  `json:"restrictions"`
	Nav          map[string][]NavItem `json:"nav"`
}

// Guard decides what a guarded area does for role.
func (p *Policy) Guard(allowed []string, role string) Decision {
	if role == "" {
		return RedirectLogin
	}

	if !slices.Contains(allowed, role) {
		return RedirectHome
	}

	return Render
}

// Home is the landing path of role; unknown roles land on the visitor home.
func (p *Policy) Home(role string) string {
	if role == "" {
		return p.Login
	}

	if home, ok := p.Homes[role]; ok {
		return home
	}

	return p.Homes["visitor"]
}

// GroupFor returns the protected group that owns urlPath, if any.
func (p *Policy) GroupFor(urlPath string) (Group, bool) {
	clean := path.Clean("/" + urlPath)

	for _, group := range p.Groups {
		if clean == group.Path || strings.HasPrefix(clean, group.Path+"/") {
			return group, true
		}
	}

	return Group{}, false
}

// Allowed applies the restriction table to a route. Any path segment naming a
// restricted screen denies it, so sub-routes such as /staff/schools/3/delete follow their screen.
func (p *Policy) Allowed(role, urlPath string) bool {
	restricted, ok := p.Restrictions[role]
	if !ok {
		return true
	}

	for _, segment := range strings.Split(path.Clean("/"+urlPath), "/") {
		if segment != "" && slices.Contains(restricted, segment) {
			return false
		}
	}

	return true
}

// FilterNav drops the entries restricted for role. Roles absent from the table keep everything.
func (p *Policy) FilterNav(items []NavItem, role string) []NavItem {
	filtered := make([]NavItem, 0, len(items))

	for _, item := range items {
		if p.Allowed(role, item.Path) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// NavFor returns the filtered navigation for role: the staff sidebar for staff roles, the visitor bar otherwise.
func (p *Policy) NavFor(role string) []NavItem {
	group := "visitor"
	if role == "admin" || role == "guide" {
		group = "staff"
	}

	return p.FilterNav(p.Nav[group], role)
}

var (
	policy     Policy
	policyOnce sync.Once
)

// Get decodes the embedded table once and returns the shared policy.
func Get() *Policy {
	policyOnce.Do(func() {
		err := json.Unmarshal(permissionsData, &policy)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
		}

		log.Info().Int("groups", len(policy.Groups)).Int("roles", len(policy.Restrictions)).Msg("Successfully loaded embedded permissions")
	})

	return &policy
}
