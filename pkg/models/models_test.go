package models

import (
	"errors"
	"testing"

	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
)

func TestParseDeviceIdentity(t *testing.T) {
	catalog := DefaultNamingCatalog()

	tests := []struct {
		name             string
		hostname         string
		expectedHostname string
		expectedSite     string
		expectedRole     string
		expectedBuilding string
		expectedRoom     string
	}{
		{
			name:             "access switch at site 1",
			hostname:         "S1-AS-B1-R101-1",
			expectedHostname: "S1-AS-B1-R101-1",
			expectedSite:     "site_1",
			expectedRole:     "access",
			expectedBuilding: "B1",
			expectedRoom:     "R101",
		},
		{
			name:             "lowercase hostname is uppercased",
			hostname:         "s2-en-b4-r22-2",
			expectedHostname: "S2-EN-B4-R22-2",
			expectedSite:     "site_2",
			expectedRole:     "access",
			expectedBuilding: "B4",
			expectedRoom:     "R22",
		},
		{
			name:             "service switch role",
			hostname:         "S3-SE-B2-R1-1",
			expectedHostname: "S3-SE-B2-R1-1",
			expectedSite:     "Site_3",
			expectedRole:     "access",
			expectedBuilding: "B2",
			expectedRoom:     "R1",
		},
		{
			name:             "router role prefix",
			hostname:         "S1-RT-B9-R5-1",
			expectedHostname: "S1-RT-B9-R5-1",
			expectedSite:     "site_1",
			expectedRole:     "router",
			expectedBuilding: "B9",
			expectedRoom:     "R5",
		},
		{
			name:             "unknown site prefix leaves site empty",
			hostname:         "S9-AS-B1-R1-1",
			expectedHostname: "S9-AS-B1-R1-1",
			expectedSite:     "",
			expectedRole:     "access",
			expectedBuilding: "B1",
			expectedRoom:     "R1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := ParseDeviceIdentity(tt.hostname, catalog)
			if err != nil {
				t.Fatalf("ParseDeviceIdentity(%q) returned error: %v", tt.hostname, err)
			}

			if identity.Hostname != tt.expectedHostname {
				t.Errorf("Hostname = %q, expected %q", identity.Hostname, tt.expectedHostname)
			}
			if identity.Site != tt.expectedSite {
				t.Errorf("Site = %q, expected %q", identity.Site, tt.expectedSite)
			}
			if identity.Role != tt.expectedRole {
				t.Errorf("Role = %q, expected %q", identity.Role, tt.expectedRole)
			}
			if identity.Building != tt.expectedBuilding {
				t.Errorf("Building = %q, expected %q", identity.Building, tt.expectedBuilding)
			}
			if identity.Room != tt.expectedRoom {
				t.Errorf("Room = %q, expected %q", identity.Room, tt.expectedRoom)
			}
		})
	}
}

func TestParseDeviceIdentityMalformed(t *testing.T) {
	catalog := DefaultNamingCatalog()

	tests := []struct {
		name     string
		hostname string
	}{
		{
			name:     "empty hostname",
			hostname: "",
		},
		{
			name:     "whitespace only",
			hostname: "   ",
		},
		{
			name:     "too few segments",
			hostname: "S1-AS-B1",
		},
		{
			name:     "no hyphens",
			hostname: "SWITCH01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeviceIdentity(tt.hostname, catalog)
			if err == nil {
				t.Fatalf("ParseDeviceIdentity(%q) expected error, got nil", tt.hostname)
			}
			if !errors.Is(err, gcerrors.ErrMalformedHostname) {
				t.Errorf("ParseDeviceIdentity(%q) error = %v, expected ErrMalformedHostname", tt.hostname, err)
			}
		})
	}
}

func TestDeviceIdentityLabel(t *testing.T) {
	tests := []struct {
		name     string
		hostname string
		expected string
	}{
		{
			name:     "five segments",
			hostname: "S1-EN-B1-R101-1",
			expected: "EN-B1-R101-1",
		},
		{
			name:     "four segments",
			hostname: "S2-IN-B2-R1",
			expected: "IN-B2-R1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := &DeviceIdentity{Hostname: tt.hostname}
			result := identity.Label()
			if result != tt.expected {
				t.Errorf("Label() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestNamingCatalogSiteFor(t *testing.T) {
	catalog := NamingCatalog{
		Sites: map[string]string{"S1": "site_1", "S2": "site_2"},
	}

	tests := []struct {
		name       string
		prefix     string
		expected   string
		expectedOk bool
	}{
		{
			name:       "exact match",
			prefix:     "S1",
			expected:   "site_1",
			expectedOk: true,
		},
		{
			name:       "lowercase prefix",
			prefix:     "s2",
			expected:   "site_2",
			expectedOk: true,
		},
		{
			name:       "unknown prefix",
			prefix:     "S9",
			expected:   "",
			expectedOk: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			site, ok := catalog.SiteFor(tt.prefix)
			if site != tt.expected || ok != tt.expectedOk {
				t.Errorf("SiteFor(%q) = (%q, %v), expected (%q, %v)",
					tt.prefix, site, ok, tt.expected, tt.expectedOk)
			}
		})
	}
}

func TestDefaultNamingCatalogIsolated(t *testing.T) {
	first := DefaultNamingCatalog()
	first.Sites["S9"] = "site_9"
	first.AccessRoles[0] = "XX"

	second := DefaultNamingCatalog()
	if _, ok := second.SiteFor("S9"); ok {
		t.Error("DefaultNamingCatalog() shares its site map between calls")
	}
	if !second.IsAccessRole("AS") {
		t.Error("DefaultNamingCatalog() shares its role slice between calls")
	}
}

func TestParameterModelFileNames(t *testing.T) {
	model := &ParameterModel{Hostname: "S1-AS-B1-R101-1"}

	if got := model.TemplateFileName(); got != "S1-AS-B1-R101-1.j2" {
		t.Errorf("TemplateFileName() = %q, expected %q", got, "S1-AS-B1-R101-1.j2")
	}

	if got := model.ConfigFileName("2026_08_23"); got != "S1-AS-B1-R101-1_2026_08_23.cfg" {
		t.Errorf("ConfigFileName() = %q, expected %q", got, "S1-AS-B1-R101-1_2026_08_23.cfg")
	}
}
