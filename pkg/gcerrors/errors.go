package gcerrors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Sentinel errors for the generation pipeline. Callers match them with
// errors.Is after the pipeline wraps them with file context.
var (
	// ErrInputNotFound reports a legacy configuration, catalog, or CSV
	// path that does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInputLocked reports an input file held open by another process.
	ErrInputLocked = errors.New("input file is locked by another process")

	// ErrMalformedHostname reports a hostname that does not follow the
	// site-role-building-room-instance convention.
	ErrMalformedHostname = errors.New("malformed hostname")

	// ErrMalformedVlanLine reports a vlan directive with no VLAN ID.
	ErrMalformedVlanLine = errors.New("malformed vlan directive")

	// ErrMalformedCsvEncoding reports topology CSV content that is not
	// readable text.
	ErrMalformedCsvEncoding = errors.New("csv input is not readable text")
)

// ClassifyReadError maps a filesystem read failure onto the input error
// taxonomy. Errors that match neither category pass through unchanged.
func ClassifyReadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrInputNotFound, path)
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%w: %s", ErrInputLocked, path)
	}
	return err
}
