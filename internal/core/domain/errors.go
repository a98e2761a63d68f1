package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownLibrary is returned when a library token does not name a bundled icon library.
	ErrUnknownLibrary = zerr.New("unknown icon library")

	// ErrIconNotFound is returned when an icon name is not part of the requested library.
	ErrIconNotFound = zerr.New("icon not found in library")

	// ErrInvalidIconName is returned when an icon name is empty or contains the selection separator.
	ErrInvalidIconName = zerr.New("invalid icon name")

	// ErrManifestReadFailed is returned when an embedded icon manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read icon manifest")

	// ErrManifestParseFailed is returned when an embedded icon manifest cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse icon manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file holds out-of-range values.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrNotInteractive is returned when the interactive picker is started without a terminal.
	ErrNotInteractive = zerr.New("interactive picker requires a terminal")

	// ErrPickerFailed is returned when the interactive picker terminates abnormally.
	ErrPickerFailed = zerr.New("interactive picker failed")
)
