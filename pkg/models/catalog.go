package models

import (
	"strings"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// NamingCatalog holds the closed-set tables behind the device naming
// convention: the site prefixes and the access layer role prefixes.
type NamingCatalog struct {
	Sites       map[string]string `yaml:"sites" json:"sites"`
	AccessRoles []string          `yaml:"access_roles" json:"access_roles"`
}

// DefaultNamingCatalog returns a catalog populated with the compiled-in
// site and role tables
func DefaultNamingCatalog() NamingCatalog {
	sites := make(map[string]string, len(constants.DefaultSitePrefixes))
	for prefix, site := range constants.DefaultSitePrefixes {
		sites[prefix] = site
	}
	roles := make([]string, len(constants.DefaultAccessRolePrefixes))
	copy(roles, constants.DefaultAccessRolePrefixes)
	return NamingCatalog{Sites: sites, AccessRoles: roles}
}

// SiteFor resolves a two-character hostname prefix to its site name.
// Matching ignores case; ok is false for prefixes outside the catalog.
func (c NamingCatalog) SiteFor(prefix string) (site string, ok bool) {
	for key, name := range c.Sites {
		if strings.EqualFold(key, prefix) {
			return name, true
		}
	}
	return "", false
}

// IsAccessRole reports whether a role prefix classifies the device as an
// access layer switch
func (c NamingCatalog) IsAccessRole(role string) bool {
	return utils.ContainsFold(c.AccessRoles, role)
}
