package models

import (
	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
)

// VlanEntry describes one VLAN from the legacy VLAN database
type VlanEntry struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// VlanTable indexes VLAN entries by their VLAN ID
type VlanTable map[string]VlanEntry

// ParameterModel is the consolidated render input for one device: scalar
// values for the template engine, condition tokens and block markers
// substituted into the template text before rendering.
type ParameterModel struct {
	Hostname   string
	Values     map[string]interface{}
	Conditions map[string]string
	Blocks     map[string]string
}

// TemplateFileName returns the per-device template name derived from the
// hostname
func (m *ParameterModel) TemplateFileName() string {
	return m.Hostname + constants.TemplateFileExt
}

// ConfigFileName returns the generated configuration file name for the
// given date stamp
func (m *ParameterModel) ConfigFileName(date string) string {
	return m.Hostname + "_" + date + constants.ConfigFileExt
}
