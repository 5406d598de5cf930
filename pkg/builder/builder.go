package builder

import (
	"fmt"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/scanner"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// Builder folds a completed scan into the consolidated parameter model
type Builder struct {
	logger *utils.Logger
}

// New creates a new builder
func New(logger *utils.Logger) *Builder {
	return &Builder{logger: logger}
}

// Build consolidates the scan result and the operator-supplied chassis ID
// into one parameter model. The mtu and gateway values appear only when
// the legacy configuration carried them; every other value key is always
// present, empty when unseen. Each block marker is always bound, empty
// when its directive never appeared.
func (b *Builder) Build(result *scanner.Result, chassisID string) (*models.ParameterModel, error) {
	if result == nil || result.Identity == nil {
		return nil, fmt.Errorf("%w: configuration contains no hostname directive", gcerrors.ErrMalformedHostname)
	}
	identity := result.Identity

	b.logger.Debug("Consolidating parameters for %s (%d VLANs)", identity.Hostname, len(result.Vlans))

	values := map[string]interface{}{
		"hostname":         identity.Hostname,
		"vlans":            vlanValues(result.Vlans),
		"source_interface": result.SourceInterface,
		"building":         identity.Building,
		"room":             identity.Room,
		"chassis_id":       chassisID,
	}
	if result.MTU != "" {
		values["mtu"] = result.MTU
	}
	if result.Gateway != "" {
		values["gateway"] = result.Gateway
	}

	conditions := map[string]string{
		constants.TokenSite:       identity.Site,
		constants.TokenSwitchType: identity.Role,
	}

	blocks := map[string]string{
		constants.MarkerVlanPriority: result.VlanPriority,
		constants.MarkerInterfaces:   result.Interfaces,
		constants.MarkerRouterConfig: result.RouterConfig,
		constants.MarkerRPAddress:    result.RPAddress,
		constants.MarkerIPRoute:      result.StaticRoutes,
		constants.MarkerLogging:      result.Logging,
	}

	return &models.ParameterModel{
		Hostname:   identity.Hostname,
		Values:     values,
		Conditions: conditions,
		Blocks:     blocks,
	}, nil
}

// vlanValues converts the typed VLAN table into the nested map shape the
// templates address as vlans.<id>.name. Unnamed VLANs keep an empty inner
// map so membership checks still see the ID.
func vlanValues(table models.VlanTable) map[string]map[string]string {
	out := make(map[string]map[string]string, len(table))
	for id, entry := range table {
		vlan := map[string]string{}
		if entry.Name != "" {
			vlan["name"] = entry.Name
		}
		out[id] = vlan
	}
	return out
}
