package models

import (
	"fmt"
	"strings"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
)

// DeviceIdentity captures the fields encoded in a device hostname. The
// convention is SITE-ROLE-BUILDING-ROOM-INSTANCE, for example
// S1-AS-B1-R101-1.
type DeviceIdentity struct {
	Hostname string
	Site     string
	Role     string
	Building string
	Room     string
}

// ParseDeviceIdentity splits a hostname against the naming catalog. The
// hostname is uppercased before parsing. The site stays empty when the
// two-character prefix is not in the catalog; the role is access when the
// second segment is an access role prefix and router otherwise.
func ParseDeviceIdentity(hostname string, catalog NamingCatalog) (*DeviceIdentity, error) {
	hostname = strings.ToUpper(strings.TrimSpace(hostname))
	if hostname == "" {
		return nil, fmt.Errorf("%w: empty hostname", gcerrors.ErrMalformedHostname)
	}

	segments := strings.Split(hostname, "-")
	if len(segments) < 4 {
		return nil, fmt.Errorf("%w: %q has %d hyphenated segments, expected at least 4",
			gcerrors.ErrMalformedHostname, hostname, len(segments))
	}

	prefix := hostname
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	site, _ := catalog.SiteFor(prefix)

	role := constants.SwitchTypeRouter
	if catalog.IsAccessRole(segments[1]) {
		role = constants.SwitchTypeAccess
	}

	return &DeviceIdentity{
		Hostname: hostname,
		Site:     site,
		Role:     role,
		Building: segments[2],
		Room:     segments[3],
	}, nil
}

// Label returns the hostname without its site prefix segment, used for
// interface link descriptions
func (d *DeviceIdentity) Label() string {
	segments := strings.Split(d.Hostname, "-")
	if len(segments) < 2 {
		return d.Hostname
	}
	return strings.Join(segments[1:], "-")
}
