package renderer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

const testMaster = "hostname {{ hostname }}\n" +
	"config for $site as $switch_type\n" +
	"!!!Interfaces\n" +
	"!!!router_config\n" +
	"ip tacacs source-interface {{ source_interface }}\n"

func testModel() *models.ParameterModel {
	return &models.ParameterModel{
		Hostname: "S1-AS-B1-R101-1",
		Values: map[string]interface{}{
			"hostname":         "S1-AS-B1-R101-1",
			"source_interface": "Vlan101",
		},
		Conditions: map[string]string{
			"$site":        "site_1",
			"$switch_type": "access",
		},
		Blocks: map[string]string{
			"!!!Interfaces":    "interface Vlan101\n!\n",
			"!!!router_config": "router ospf 1\n!",
		},
	}
}

func newTestRenderer(t *testing.T, dryRun bool) (*Renderer, string, string, string) {
	t.Helper()
	dir := t.TempDir()
	templateDir := filepath.Join(dir, "Templates")
	outputDir := filepath.Join(dir, "New")
	archiveDir := filepath.Join(templateDir, "New_Templates")

	if err := os.MkdirAll(templateDir, 0o755); err != nil {
		t.Fatalf("Failed to create template dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(templateDir, "Switch_template.j2"), []byte(testMaster), 0o644); err != nil {
		t.Fatalf("Failed to write master template: %v", err)
	}

	return New(templateDir, outputDir, archiveDir, utils.NewLogger(dryRun), dryRun), templateDir, outputDir, archiveDir
}

func TestMaterialize(t *testing.T) {
	renderer, templateDir, outputDir, archiveDir := newTestRenderer(t, false)

	configPath, err := renderer.Materialize(testModel(), "2026_08_23")
	if err != nil {
		t.Fatalf("Materialize() returned error: %v", err)
	}

	expectedPath := filepath.Join(outputDir, "S1-AS-B1-R101-1_2026_08_23.cfg")
	if configPath != expectedPath {
		t.Errorf("Materialize() path = %q, expected %q", configPath, expectedPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read generated config: %v", err)
	}

	expected := "hostname S1-AS-B1-R101-1\n" +
		"config for site_1 as access\n" +
		"interface Vlan101\n!\n\n" +
		"router ospf 1\n!\n" +
		"ip tacacs source-interface Vlan101\n"
	if string(data) != expected {
		t.Errorf("Generated config = %q, expected %q", string(data), expected)
	}

	// The per-device template moves to the archive with conditions and
	// blocks substituted but render variables intact.
	if _, err := os.Stat(filepath.Join(templateDir, "S1-AS-B1-R101-1.j2")); !os.IsNotExist(err) {
		t.Error("Per-device template still present in the template directory after archiving")
	}

	archived, err := os.ReadFile(filepath.Join(archiveDir, "S1-AS-B1-R101-1.j2"))
	if err != nil {
		t.Fatalf("Failed to read archived template: %v", err)
	}
	expectedTemplate := "hostname {{ hostname }}\n" +
		"config for site_1 as access\n" +
		"interface Vlan101\n!\n\n" +
		"router ospf 1\n!\n" +
		"ip tacacs source-interface {{ source_interface }}\n"
	if string(archived) != expectedTemplate {
		t.Errorf("Archived template = %q, expected %q", string(archived), expectedTemplate)
	}

	// The master template itself is never modified.
	master, err := os.ReadFile(filepath.Join(templateDir, "Switch_template.j2"))
	if err != nil {
		t.Fatalf("Failed to read master template: %v", err)
	}
	if string(master) != testMaster {
		t.Error("Materialize() modified the master template")
	}
}

func TestMaterializeReplacesStaleArchive(t *testing.T) {
	renderer, _, _, archiveDir := newTestRenderer(t, false)

	if err := os.MkdirAll(archiveDir, 0o755); err != nil {
		t.Fatalf("Failed to create archive dir: %v", err)
	}
	stale := filepath.Join(archiveDir, "S1-AS-B1-R101-1.j2")
	if err := os.WriteFile(stale, []byte("stale content"), 0o644); err != nil {
		t.Fatalf("Failed to write stale template: %v", err)
	}

	if _, err := renderer.Materialize(testModel(), "2026_08_23"); err != nil {
		t.Fatalf("Materialize() returned error: %v", err)
	}

	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("Failed to read archived template: %v", err)
	}
	if string(data) == "stale content" {
		t.Error("Materialize() kept the stale archived template")
	}
}

func TestMaterializeDryRun(t *testing.T) {
	renderer, templateDir, outputDir, archiveDir := newTestRenderer(t, true)

	configPath, err := renderer.Materialize(testModel(), "2026_08_23")
	if err != nil {
		t.Fatalf("Materialize() returned error: %v", err)
	}
	if configPath == "" {
		t.Error("Materialize() returned an empty path in dry-run mode")
	}

	if _, err := os.Stat(outputDir); !os.IsNotExist(err) {
		t.Error("Materialize() created the output directory in dry-run mode")
	}
	if _, err := os.Stat(archiveDir); !os.IsNotExist(err) {
		t.Error("Materialize() created the archive directory in dry-run mode")
	}
	if _, err := os.Stat(filepath.Join(templateDir, "S1-AS-B1-R101-1.j2")); !os.IsNotExist(err) {
		t.Error("Materialize() wrote the per-device template in dry-run mode")
	}
}

func TestMaterializeMissingMaster(t *testing.T) {
	dir := t.TempDir()
	renderer := New(filepath.Join(dir, "Templates"), dir, dir, utils.NewLogger(false), false)

	if _, err := renderer.Materialize(testModel(), "2026_08_23"); err == nil {
		t.Error("Materialize() expected error for a missing master template")
	}
}

func TestMaterializeBadTemplateSyntax(t *testing.T) {
	renderer, templateDir, _, _ := newTestRenderer(t, false)
	if err := os.WriteFile(filepath.Join(templateDir, "Switch_template.j2"), []byte("{% if %}"), 0o644); err != nil {
		t.Fatalf("Failed to write master template: %v", err)
	}

	if _, err := renderer.Materialize(testModel(), "2026_08_23"); err == nil {
		t.Error("Materialize() expected error for a broken template")
	}
}

func TestRenderFile(t *testing.T) {
	renderer, templateDir, _, _ := newTestRenderer(t, false)

	template := "interface {{ edge_interface }}\n description {{ edge_description }}\n"
	if err := os.WriteFile(filepath.Join(templateDir, "Edge_Base_Template.j2"), []byte(template), 0o644); err != nil {
		t.Fatalf("Failed to write template: %v", err)
	}

	rendered, err := renderer.RenderFile("Edge_Base_Template.j2", map[string]string{
		"edge_interface":   "TenGigabitEthernet1/1/1",
		"edge_description": "EN-B1-R1-1_TO_IN-B1-R1-1 - Fabric Underlay",
	})
	if err != nil {
		t.Fatalf("RenderFile() returned error: %v", err)
	}

	expected := "interface TenGigabitEthernet1/1/1\n description EN-B1-R1-1_TO_IN-B1-R1-1 - Fabric Underlay\n"
	if rendered != expected {
		t.Errorf("RenderFile() = %q, expected %q", rendered, expected)
	}
}

func TestRenderFileMissingTemplate(t *testing.T) {
	renderer, _, _, _ := newTestRenderer(t, false)

	if _, err := renderer.RenderFile("Missing_Template.j2", nil); err == nil {
		t.Error("RenderFile() expected error for a missing template")
	}
}
