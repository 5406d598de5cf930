package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flosch/pongo2/v6"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// Renderer materializes parameter models into configuration files. It owns
// the template directory lifecycle: the per-device template is written next
// to the master template and archived once the configuration is rendered.
type Renderer struct {
	templateDir string
	outputDir   string
	archiveDir  string
	logger      *utils.Logger
	dryRun      bool
}

// New creates a renderer rooted at the given template, output, and archive
// directories
func New(templateDir, outputDir, archiveDir string, logger *utils.Logger, dryRun bool) *Renderer {
	return &Renderer{
		templateDir: templateDir,
		outputDir:   outputDir,
		archiveDir:  archiveDir,
		logger:      logger,
		dryRun:      dryRun,
	}
}

// Materialize renders one parameter model into its dated configuration
// file and returns the file path. Condition tokens are substituted into
// the master template text before block markers; the per-device template
// holding the substituted text is archived after rendering.
func (r *Renderer) Materialize(model *models.ParameterModel, date string) (string, error) {
	r.logger.Title("Copying the master template and setting the conditions ...")

	master := filepath.Join(r.templateDir, constants.SwitchMasterTemplate)
	data, err := os.ReadFile(master)
	if err != nil {
		return "", fmt.Errorf("failed to read master template %s: %w", master, err)
	}

	text := string(data)
	for token, value := range model.Conditions {
		text = strings.ReplaceAll(text, token, value)
	}
	for marker, block := range model.Blocks {
		text = strings.ReplaceAll(text, marker, block)
	}

	templatePath := filepath.Join(r.templateDir, model.TemplateFileName())
	if err := r.writeFile(templatePath, text); err != nil {
		return "", err
	}

	r.logger.Title("Rendering the new configuration ...")
	rendered, err := render(text, model.Values)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", model.TemplateFileName(), err)
	}

	configPath := filepath.Join(r.outputDir, model.ConfigFileName(date))
	if err := r.writeFile(configPath, rendered); err != nil {
		return "", err
	}

	if err := r.archiveTemplate(templatePath); err != nil {
		return "", err
	}
	return configPath, nil
}

// RenderFile renders a named template from the template directory with
// flat string values
func (r *Renderer) RenderFile(name string, values map[string]string) (string, error) {
	template, err := pongo2.FromFile(filepath.Join(r.templateDir, name))
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}

	context := make(pongo2.Context, len(values))
	for key, value := range values {
		context[key] = value
	}

	rendered, err := template.Execute(context)
	if err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return rendered, nil
}

func render(text string, values map[string]interface{}) (string, error) {
	template, err := pongo2.FromString(text)
	if err != nil {
		return "", err
	}
	return template.Execute(pongo2.Context(values))
}

// archiveTemplate moves the per-device template into the archive
// directory, replacing any stale copy of the same name
func (r *Renderer) archiveTemplate(templatePath string) error {
	archived := filepath.Join(r.archiveDir, filepath.Base(templatePath))
	if r.dryRun {
		r.logger.DryRun("MOVE", "%s -> %s", templatePath, archived)
		return nil
	}

	if err := os.MkdirAll(r.archiveDir, 0o755); err != nil {
		return fmt.Errorf("failed to create archive directory %s: %w", r.archiveDir, err)
	}
	if _, err := os.Stat(archived); err == nil {
		if err := os.Remove(archived); err != nil {
			return fmt.Errorf("failed to remove stale template %s: %w", archived, err)
		}
	}
	if err := os.Rename(templatePath, archived); err != nil {
		return fmt.Errorf("failed to archive template %s: %w", templatePath, err)
	}

	r.logger.Success("Template %s has been moved to %s!", filepath.Base(templatePath), r.archiveDir)
	return nil
}

func (r *Renderer) writeFile(path, content string) error {
	if r.dryRun {
		r.logger.DryRun("WRITE", "%s (%d bytes)", path, len(content))
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
