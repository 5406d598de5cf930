package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/jconwell3115/Golden-Config-Generator/pkg/gcerrors"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/models"
	"github.com/jconwell3115/Golden-Config-Generator/pkg/utils"
)

// DataLoader reads the generator inputs: legacy configuration files, the
// naming catalog, and topology CSVs
type DataLoader struct {
	basePath string
	logger   *utils.Logger
}

// NewDataLoader creates a new data loader
func NewDataLoader(basePath string, logger *utils.Logger) *DataLoader {
	return &DataLoader{
		basePath: basePath,
		logger:   logger,
	}
}

// LoadDeviceConfig reads one legacy configuration file into memory
func (dl *DataLoader) LoadDeviceConfig(path string) (string, error) {
	target := dl.resolve(path)
	data, err := os.ReadFile(target)
	if err != nil {
		return "", gcerrors.ClassifyReadError(target, err)
	}
	dl.logger.Debug("Read %d bytes from %s", len(data), target)
	return string(data), nil
}

// LoadNamingCatalog reads the site and role tables from a YAML file. An
// empty path selects the compiled-in defaults, and a file that declares
// only one of the two tables keeps the default for the other.
func (dl *DataLoader) LoadNamingCatalog(path string) (models.NamingCatalog, error) {
	catalog := models.DefaultNamingCatalog()
	if path == "" {
		dl.logger.Debug("Using the built-in naming catalog")
		return catalog, nil
	}

	target := dl.resolve(path)
	data, err := os.ReadFile(target)
	if err != nil {
		return models.NamingCatalog{}, gcerrors.ClassifyReadError(target, err)
	}

	var loaded models.NamingCatalog
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return models.NamingCatalog{}, fmt.Errorf("failed to parse naming catalog %s: %w", target, err)
	}

	if len(loaded.Sites) > 0 {
		catalog.Sites = loaded.Sites
	}
	if len(loaded.AccessRoles) > 0 {
		catalog.AccessRoles = loaded.AccessRoles
	}
	dl.logger.Debug("Loaded naming catalog from %s (%d sites, %d access roles)",
		target, len(catalog.Sites), len(catalog.AccessRoles))
	return catalog, nil
}

// LoadTopology reads link records from a CSV file whose first row names
// the columns. Rows shorter than the header read as empty fields; the
// column set itself is not validated here.
func (dl *DataLoader) LoadTopology(path string) ([]models.TopologyRow, error) {
	target := dl.resolve(path)
	data, err := os.ReadFile(target)
	if err != nil {
		return nil, gcerrors.ClassifyReadError(target, err)
	}
	if !utf8.Valid(data) || bytes.ContainsRune(data, 0) {
		return nil, fmt.Errorf("%w: %s", gcerrors.ErrMalformedCsvEncoding, target)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		dl.logger.Warning("No rows found in %s", target)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", gcerrors.ErrMalformedCsvEncoding, target, err)
	}

	colIndex := make(map[string]int, len(header))
	for i, col := range header {
		colIndex[strings.TrimSpace(col)] = i
	}

	var rows []models.TopologyRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", gcerrors.ErrMalformedCsvEncoding, target, err)
		}

		row := make(models.TopologyRow, len(colIndex))
		for col, i := range colIndex {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	dl.logger.Debug("Loaded %d topology rows from %s", len(rows), target)
	return rows, nil
}

// resolve joins relative paths onto the loader base path
func (dl *DataLoader) resolve(path string) string {
	if dl.basePath == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dl.basePath, path)
}
