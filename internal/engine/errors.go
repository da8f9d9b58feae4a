package engine

import (
	"errors"
	"fmt"
)

// MalformedPackageError indicates an update file that is not well-shaped
// structured data or lacks an updateId. Nothing is mutated.
type MalformedPackageError struct {
	Err error
}

func (e *MalformedPackageError) Error() string {
	return fmt.Sprintf("malformed update package: %v", e.Err)
}

func (e *MalformedPackageError) Unwrap() error { return e.Err }

// DuplicateImportError indicates the updateId was already applied. This is a
// benign user-visible notice, not a fault; nothing is mutated.
type DuplicateImportError struct {
	UpdateID string
}

func (e *DuplicateImportError) Error() string {
	return fmt.Sprintf("update %s has already been imported", e.UpdateID)
}

// UnsupportedPackageError indicates the package requires a newer app version
// than the one running. Nothing is mutated.
type UnsupportedPackageError struct {
	MinAppVersion string
	AppVersion    string
}

func (e *UnsupportedPackageError) Error() string {
	return fmt.Sprintf("update requires app version %s or newer (running %s)",
		e.MinAppVersion, e.AppVersion)
}

// IsDuplicateImport reports whether err is a DuplicateImportError.
func IsDuplicateImport(err error) bool {
	var d *DuplicateImportError
	return errors.As(err, &d)
}

// IsMalformedPackage reports whether err is a MalformedPackageError.
func IsMalformedPackage(err error) bool {
	var m *MalformedPackageError
	return errors.As(err, &m)
}
