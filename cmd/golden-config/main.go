package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/jconwell3115/Golden-Config-Generator/internal/constants"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/baseconfig"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/builder"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/loader"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/renderer"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/scanner"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

var (
	dryRun      bool
	projectDir  string
	catalogFile string

	configFile string
	chassisID  string
	noInput    bool

	csvFile string
	role    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "golden-config",
		Short: "Golden Config Generator",
		Long:  `Generates new Cisco switch configurations from legacy configuration files and site topology data`,
	}

	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report output files without writing them")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", ".", "Base directory holding Configurations and Templates")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Naming catalog YAML file (built-in site and role tables when omitted)")

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new configuration from a legacy configuration file",
		RunE:  runGenerate,
	}
	generateCmd.Flags().StringVar(&configFile, "config-file", "", "Legacy configuration file (bare names resolve under Configurations/Old)")
	generateCmd.Flags().StringVar(&chassisID, "chassis-id", "", "ECN of the replacement switch")
	generateCmd.Flags().BoolVar(&noInput, "no-input", false, "Fail on locked input files instead of prompting to retry")

	baseConfigCmd := &cobra.Command{
		Use:   "base-config",
		Short: "Generate base configurations from a link-topology CSV",
		RunE:  runBaseConfig,
	}
	baseConfigCmd.Flags().StringVar(&csvFile, "csv", "", "Link-topology CSV file")
	baseConfigCmd.Flags().StringVar(&role, "role", constants.RoleEdge, "Node role to build: edge or intermediate")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(baseConfigCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(dryRun)

	if configFile == "" {
		logger.Error("--config-file is required", nil)
		return fmt.Errorf("missing required flag: --config-file")
	}
	if chassisID == "" && !noInput {
		fmt.Print("What is the ECN of the replacement switch? ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		chassisID = strings.TrimSpace(line)
	}

	baseDir, err := resolveProjectDir(projectDir, logger)
	if err != nil {
		logger.Error("Failed to resolve project directory", err)
		return err
	}

	dataLoader := loader.NewDataLoader(baseDir, logger)
	catalog, err := dataLoader.LoadNamingCatalog(catalogFile)
	if err != nil {
		logger.Error("Failed to load naming catalog", err)
		return err
	}

	oldConfig := configFile
	if !strings.ContainsAny(oldConfig, `/\`) {
		oldConfig = filepath.Join(constants.DirConfigurations, constants.DirOld, oldConfig)
	}

	date := time.Now().Format(constants.DateLayout)
	templateDir := filepath.Join(baseDir, constants.DirTemplates)
	outputDir := filepath.Join(baseDir, constants.DirConfigurations, constants.DirNew)
	archiveDir := filepath.Join(templateDir, constants.DirNewTemplates)
	configRenderer := renderer.New(templateDir, outputDir, archiveDir, logger, dryRun)

	for {
		err := generateOnce(dataLoader, configRenderer, catalog, oldConfig, date, logger)
		if errors.Is(err, gcerrors.ErrInputLocked) && !noInput {
			// a retry re-runs the whole pipeline with fresh state
			if confirmRetry(oldConfig) {
				continue
			}
		}
		if err != nil {
			logger.Error("Generation failed", err)
			return err
		}
		break
	}

	if dryRun {
		logger.Warning("DRY RUN COMPLETE: No files written")
	} else {
		logger.Success("GENERATION COMPLETE")
	}
	return nil
}

// generateOnce runs one full read, scan, build, render pass
func generateOnce(dataLoader *loader.DataLoader, configRenderer *renderer.Renderer, catalog models.NamingCatalog, oldConfig, date string, logger *utils.Logger) error {
	logger.Title("Reading the old configuration ...")
	text, err := dataLoader.LoadDeviceConfig(oldConfig)
	if err != nil {
		return err
	}

	result, err := scanner.New(catalog, logger).Scan(text)
	if err != nil {
		return err
	}

	model, err := builder.New(logger).Build(result, chassisID)
	if err != nil {
		return err
	}

	configPath, err := configRenderer.Materialize(model, date)
	if err != nil {
		return err
	}

	logger.Success("Configuration file %s is created!", configPath)
	return nil
}

func runBaseConfig(cmd *cobra.Command, args []string) error {
	logger := utils.NewLogger(dryRun)

	if csvFile == "" {
		logger.Error("--csv is required", nil)
		return fmt.Errorf("missing required flag: --csv")
	}
	if role != constants.RoleEdge && role != constants.RoleIntermediate {
		logger.Error("--role must be edge or intermediate", nil)
		return fmt.Errorf("unsupported role %q", role)
	}

	baseDir, err := resolveProjectDir(projectDir, logger)
	if err != nil {
		logger.Error("Failed to resolve project directory", err)
		return err
	}

	dataLoader := loader.NewDataLoader(baseDir, logger)
	catalog, err := dataLoader.LoadNamingCatalog(catalogFile)
	if err != nil {
		logger.Error("Failed to load naming catalog", err)
		return err
	}

	rows, err := dataLoader.LoadTopology(csvFile)
	if err != nil {
		logger.Error("Failed to load topology CSV", err)
		return err
	}
	if len(rows) == 0 {
		logger.Warning("No topology rows to process")
		return nil
	}

	date := time.Now().Format(constants.DateLayout)
	templateDir := filepath.Join(baseDir, constants.DirTemplates)
	outputDir := filepath.Join(baseDir, constants.DirConfigurations, constants.DirBase)
	docDir := filepath.Join(baseDir, constants.DirConfigurations, constants.DirDocumentation)
	archiveDir := filepath.Join(templateDir, constants.DirNewTemplates)

	baseRenderer := renderer.New(templateDir, outputDir, archiveDir, logger, dryRun)
	generator := baseconfig.New(catalog, baseRenderer, outputDir, docDir, date, logger, dryRun)

	if role == constants.RoleEdge {
		err = generator.GenerateEdge(rows)
	} else {
		err = generator.GenerateIntermediate(rows)
	}
	if err != nil {
		logger.Error("Base config generation failed", err)
		return err
	}

	if dryRun {
		logger.Warning("DRY RUN COMPLETE: No files written")
	} else {
		logger.Success("BASE CONFIG COMPLETE: %d rows processed", len(rows))
	}
	return nil
}

// confirmRetry asks the operator to release the locked file and try again
func confirmRetry(path string) bool {
	fmt.Printf("\nPlease close the following file.\n\n%s\n\nPress Enter to try again.", path)
	_, err := bufio.NewReader(os.Stdin).ReadString('\n')
	return err == nil
}

// resolveProjectDir determines the correct project directory to use. When
// the given directory has no Templates folder it falls back to a
// Golden_Config subdirectory holding one.
func resolveProjectDir(dir string, logger *utils.Logger) (string, error) {
	templatesPath := filepath.Join(dir, constants.DirTemplates)
	if _, err := os.Stat(templatesPath); err == nil {
		logger.Info("Using project directory: %s", dir)
		return dir, nil
	}

	fallback := filepath.Join(dir, "Golden_Config")
	if _, err := os.Stat(filepath.Join(fallback, constants.DirTemplates)); err == nil {
		logger.Warning("Templates/ not found in %q, falling back to %q", dir, fallback)
		return fallback, nil
	}

	return "", fmt.Errorf("no Templates directory found: checked %q and %q", dir, fallback)
}
