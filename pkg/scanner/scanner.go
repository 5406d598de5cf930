package scanner

import (
	"fmt"
	"strings"

	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// Hardening lines injected into switched virtual interface blocks that
// lack them
const (
	proxyArpGuard  = " no ip proxy-arp"
	redirectsGuard = " no ip redirects"
)

// Scanner extracts reusable parameters and configuration blocks from a
// legacy IOS configuration in one forward pass.
type Scanner struct {
	catalog models.NamingCatalog
	logger  *utils.Logger
}

// New creates a scanner bound to a naming catalog
func New(catalog models.NamingCatalog, logger *utils.Logger) *Scanner {
	return &Scanner{catalog: catalog, logger: logger}
}

// Result collects everything one pass extracts from a legacy configuration.
// Block fields hold verbatim configuration text ending in a newline, except
// RouterConfig whose instances end in a bare terminator so consecutive
// instances pack together.
type Result struct {
	// Identity is parsed from the hostname directive; the last one seen
	// wins. Nil when the configuration has no hostname directive.
	Identity *models.DeviceIdentity

	Vlans           models.VlanTable
	SourceInterface string
	MTU             string
	Gateway         string

	VlanPriority string
	Interfaces   string
	RouterConfig string
	StaticRoutes string
	Logging      string
	RPAddress    string
}

// Scan walks the configuration text line by line. Block directives hand
// the cursor to a nested loop that consumes through the block terminator;
// lines matching no directive are dropped.
func (s *Scanner) Scan(text string) (*Result, error) {
	cursor := newLineCursor(utils.SplitLines(text))
	result := &Result{Vlans: models.VlanTable{}}

	for {
		line, ok := cursor.Next()
		if !ok {
			break
		}

		switch {
		case strings.HasPrefix(line, "hostname"):
			if err := s.scanHostname(line, result); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "spanning-tree vlan"):
			result.VlanPriority = line
		case strings.HasPrefix(line, "vlan"):
			if err := scanVlanBlock(cursor, line, result.Vlans); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "interface"):
			result.Interfaces += scanInterfaceBlock(cursor, line)
		case strings.HasPrefix(line, "router "):
			result.RouterConfig += scanRouterBlock(cursor, line)
		case strings.HasPrefix(line, "ip route"):
			result.StaticRoutes += line + "\n"
		case strings.HasPrefix(line, "logging"):
			// buffered logging is dropped, the new standard replaces it
			if !strings.Contains(line, "buffered") {
				result.Logging += line + "\n"
			}
		case strings.HasPrefix(line, "ip tacacs source-interface"):
			result.SourceInterface = utils.LastField(line)
		case strings.HasPrefix(line, "ip pim rp-address"):
			result.RPAddress += line + "\n"
		case strings.HasPrefix(line, "system mtu"):
			result.MTU = utils.LastField(line)
		case strings.HasPrefix(line, "ip default-gateway"):
			result.Gateway = utils.LastField(line)
		}
	}

	return result, nil
}

func (s *Scanner) scanHostname(line string, result *Result) error {
	s.logger.Info("Getting the hostname ...")
	name := utils.Field(line, 1)
	if name == "" {
		return fmt.Errorf("%w: directive %q has no hostname", gcerrors.ErrMalformedHostname, line)
	}

	identity, err := models.ParseDeviceIdentity(name, s.catalog)
	if err != nil {
		return err
	}

	if identity.Site != "" {
		s.logger.Notice("This switch will be configured for the %s site!!", identity.Site)
	}
	s.logger.Info("Setting the location from the hostname ...")

	result.Identity = identity
	return nil
}

// scanVlanBlock consumes a VLAN database block through its terminator,
// recording the VLAN name when one appears. Re-declared VLAN IDs merge
// into the existing entry.
func scanVlanBlock(cursor *lineCursor, line string, vlans models.VlanTable) error {
	id := utils.Field(line, 1)
	if id == "" {
		return fmt.Errorf("%w: %q", gcerrors.ErrMalformedVlanLine, line)
	}

	entry := vlans[id]
	for {
		l, ok := cursor.Next()
		if !ok {
			break
		}
		if strings.HasPrefix(l, " name") {
			entry.Name = utils.LastField(l)
		} else if strings.HasPrefix(l, "!") {
			break
		}
	}
	vlans[id] = entry
	return nil
}

// scanInterfaceBlock copies an interface block verbatim through its
// terminator. Blocks for switched virtual interfaces that are missing the
// proxy-arp guard get the hardening lines spliced in ahead of every
// terminator in the block.
func scanInterfaceBlock(cursor *lineCursor, line string) string {
	block := line + "\n"
	for {
		l, ok := cursor.Next()
		if !ok {
			break
		}
		if strings.Contains(l, "!") {
			block += "!\n"
			break
		}
		block += l + "\n"
	}

	if strings.Contains(block, "interface Vlan") && !strings.Contains(block, proxyArpGuard) {
		block = strings.ReplaceAll(block, "!\n", proxyArpGuard+"\n"+redirectsGuard+"\n!\n")
	}
	return block
}

// scanRouterBlock copies a routing process block verbatim. The terminator
// is written without a trailing newline, so the next appended block starts
// on the same line as the closing bang.
func scanRouterBlock(cursor *lineCursor, line string) string {
	block := line + "\n"
	for {
		l, ok := cursor.Next()
		if !ok {
			break
		}
		if strings.Contains(l, "!") {
			block += "!"
			break
		}
		block += l + "\n"
	}
	return block
}
