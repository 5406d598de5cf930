package baseconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/renderer"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// Link description format for fabric underlay interfaces
const (
	underlayJoiner = "_TO_"
	underlaySuffix = " - Fabric Underlay"
)

// Generator synthesizes base configurations, border node adjacencies, and
// hostname documentation from link-topology rows.
type Generator struct {
	catalog   models.NamingCatalog
	renderer  *renderer.Renderer
	outputDir string
	docDir    string
	date      string
	logger    *utils.Logger
	dryRun    bool

	// hostnames grouped by resolved site, in first-seen order
	siteHostnames map[string][]string
	seen          map[string]bool
}

// New creates a base config generator writing under the given output and
// documentation directories
func New(catalog models.NamingCatalog, r *renderer.Renderer, outputDir, docDir, date string, logger *utils.Logger, dryRun bool) *Generator {
	return &Generator{
		catalog:       catalog,
		renderer:      r,
		outputDir:     outputDir,
		docDir:        docDir,
		date:          date,
		logger:        logger,
		dryRun:        dryRun,
		siteHostnames: make(map[string][]string),
		seen:          make(map[string]bool),
	}
}

// GenerateEdge renders one edge base configuration per topology row, then
// writes the per-site hostname documentation.
func (g *Generator) GenerateEdge(rows []models.TopologyRow) error {
	g.logger.Title("Building %d edge base configurations ...", len(rows))

	for _, row := range rows {
		edge, _, err := g.describeUnderlay(row)
		if err != nil {
			return err
		}

		rendered, err := g.renderer.RenderFile(constants.EdgeBaseTemplate, row)
		if err != nil {
			return fmt.Errorf("failed to render edge base config for %s: %w", edge.Hostname, err)
		}

		name := edge.Hostname + "_" + g.date + constants.ConfigFileExt
		if err := g.writeFile(filepath.Join(g.outputDir, name), rendered); err != nil {
			return err
		}
		g.logger.Success("Base configuration %s is created!", name)
	}

	return g.writeHostnameDocs()
}

// GenerateIntermediate renders one intermediate base configuration per
// topology row and appends each border node's half of the adjacency block
// to that node's dated adjacency file.
func (g *Generator) GenerateIntermediate(rows []models.TopologyRow) error {
	g.logger.Title("Building %d intermediate base configurations ...", len(rows))

	for _, row := range rows {
		_, in, err := g.describeUnderlay(row)
		if err != nil {
			return err
		}
		bn1, bn2, err := g.describeBorderNodes(row, in)
		if err != nil {
			return err
		}

		rendered, err := g.renderer.RenderFile(constants.IntermediateBaseTemplate, row)
		if err != nil {
			return fmt.Errorf("failed to render intermediate base config for %s: %w", in.Hostname, err)
		}

		name := in.Hostname + "_" + g.date + constants.ConfigFileExt
		if err := g.writeFile(filepath.Join(g.outputDir, name), rendered); err != nil {
			return err
		}
		g.logger.Success("Base configuration %s is created!", name)

		adjacency, err := g.renderer.RenderFile(constants.BorderAdjacencyTemplate, row)
		if err != nil {
			return fmt.Errorf("failed to render adjacency block for %s: %w", in.Hostname, err)
		}

		first, second := splitAdjacency(adjacency)
		if err := g.appendAdjacency(bn1, in, first); err != nil {
			return err
		}
		if err := g.appendAdjacency(bn2, in, second); err != nil {
			return err
		}
	}

	return g.writeHostnameDocs()
}

// describeUnderlay resolves both endpoint identities and writes the
// computed underlay description columns back into the row.
func (g *Generator) describeUnderlay(row models.TopologyRow) (edge, in *models.DeviceIdentity, err error) {
	edge, err = models.ParseDeviceIdentity(row[constants.ColEdgeHostname], g.catalog)
	if err != nil {
		return nil, nil, err
	}
	in, err = models.ParseDeviceIdentity(row[constants.ColInHostname], g.catalog)
	if err != nil {
		return nil, nil, err
	}

	row[constants.ColEdgeDescription] = underlayDescription(edge, in)
	row[constants.ColInDescription] = underlayDescription(in, edge)

	g.recordHostname(edge)
	g.recordHostname(in)
	return edge, in, nil
}

// describeBorderNodes resolves both border node identities and writes
// their description columns for the link down to the intermediate node.
func (g *Generator) describeBorderNodes(row models.TopologyRow, in *models.DeviceIdentity) (bn1, bn2 *models.DeviceIdentity, err error) {
	bn1, err = models.ParseDeviceIdentity(row[constants.ColBN1Hostname], g.catalog)
	if err != nil {
		return nil, nil, err
	}
	bn2, err = models.ParseDeviceIdentity(row[constants.ColBN2Hostname], g.catalog)
	if err != nil {
		return nil, nil, err
	}

	row[constants.ColBN1Description] = underlayDescription(bn1, in)
	row[constants.ColBN2Description] = underlayDescription(bn2, in)

	g.recordHostname(bn1)
	g.recordHostname(bn2)
	return bn1, bn2, nil
}

// underlayDescription builds the link label between two devices, for
// example EN-B1-R1-1_TO_IN-B1-R1-1 - Fabric Underlay
func underlayDescription(a, b *models.DeviceIdentity) string {
	return a.Label() + underlayJoiner + b.Label() + underlaySuffix
}

// splitAdjacency halves the combined border node block at the raw byte
// midpoint. Both halves together are exactly the rendered text.
func splitAdjacency(text string) (first, second string) {
	mid := len(text) / 2
	return text[:mid], text[mid:]
}

// appendAdjacency adds one half of the adjacency block to the border
// node's dated adjacency file, preceded by a banner naming the
// intermediate node the block faces.
func (g *Generator) appendAdjacency(bn, in *models.DeviceIdentity, half string) error {
	name := bn.Hostname + "_adjacency_" + g.date + constants.ConfigFileExt
	content := utils.Banner(in.Hostname, constants.BannerWidth) + half
	if err := g.appendFile(filepath.Join(g.outputDir, name), content); err != nil {
		return err
	}
	g.logger.Success("Adjacency for %s appended to %s!", in.Hostname, name)
	return nil
}

// recordHostname files a hostname under its resolved site for the
// documentation pass. Hostnames without a catalog site are skipped.
func (g *Generator) recordHostname(identity *models.DeviceIdentity) {
	if identity.Site == "" {
		g.logger.Warning("Hostname %s has no site in the naming catalog, skipping documentation", identity.Hostname)
		return
	}
	if g.seen[identity.Hostname] {
		return
	}
	g.seen[identity.Hostname] = true
	g.siteHostnames[identity.Site] = append(g.siteHostnames[identity.Site], identity.Hostname)
}

// writeHostnameDocs writes one dated hostname listing per site seen
// during generation
func (g *Generator) writeHostnameDocs() error {
	sites := make([]string, 0, len(g.siteHostnames))
	for site := range g.siteHostnames {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	for _, site := range sites {
		var doc strings.Builder
		doc.WriteString(utils.Banner(site, constants.BannerWidth))
		for _, hostname := range g.siteHostnames[site] {
			doc.WriteString(hostname + "\n")
		}

		name := site + "_hostnames_" + g.date + ".txt"
		if err := g.writeFile(filepath.Join(g.docDir, name), doc.String()); err != nil {
			return err
		}
		g.logger.Success("Hostname documentation %s is created!", name)
	}
	return nil
}

func (g *Generator) writeFile(path, content string) error {
	if g.dryRun {
		g.logger.DryRun("WRITE", "%s (%d bytes)", path, len(content))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (g *Generator) appendFile(path, content string) error {
	if g.dryRun {
		g.logger.DryRun("APPEND", "%s (%d bytes)", path, len(content))
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", filepath.Dir(path), err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}
	defer file.Close()
	if _, err := file.WriteString(content); err != nil {
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	return nil
}
