package domain

import "go.trai.ch/zerr"

var (
	// ErrGlobalInVirtualEnv is returned when a global cleanup is requested while a virtual environment is active.
	ErrGlobalInVirtualEnv = zerr.New("global cleanup refused: a virtual environment is active, run 'deactivate' first")

	// ErrLocalOutsideVirtualEnv is returned when a local cleanup is requested without an active virtual environment.
	ErrLocalOutsideVirtualEnv = zerr.New("local cleanup refused: no virtual environment is active")

	// ErrTargetRequired is returned when a removal mode is selected without --local or --global.
	ErrTargetRequired = zerr.New("removal requires a target, pass --local or --global")

	// ErrPackageQueryFailed is returned when the installed package list cannot be obtained.
	ErrPackageQueryFailed = zerr.New("failed to query installed packages")

	// ErrPackageListParseFailed is returned when the package manager output cannot be decoded.
	ErrPackageListParseFailed = zerr.New("failed to parse package list")

	// ErrUninstallFailed is returned when the package manager fails to uninstall a package.
	ErrUninstallFailed = zerr.New("failed to uninstall package")

	// ErrManagerInfoFailed is returned when the package manager version cannot be determined.
	ErrManagerInfoFailed = zerr.New("failed to query package manager version")

	// ErrInterpreterVersionFailed is returned when the interpreter version cannot be determined.
	ErrInterpreterVersionFailed = zerr.New("failed to query interpreter version")

	// ErrEmptyCommand is returned when a toolchain command is configured with no arguments.
	ErrEmptyCommand = zerr.New("command is empty")

	// ErrCommandFailed is returned when an external command exits unsuccessfully.
	ErrCommandFailed = zerr.New("command failed")

	// ErrConfirmationFailed is returned when the confirmation prompt cannot be read.
	ErrConfirmationFailed = zerr.New("failed to read confirmation")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrUnsupportedConfigVersion is returned when the config file declares an unknown version.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrInvalidBatchSize is returned when the configured batch size is below one.
	ErrInvalidBatchSize = zerr.New("batch size must be at least 1")

	// ErrInvalidSampleSize is returned when the report sample size is negative.
	ErrInvalidSampleSize = zerr.New("sample size must not be negative")

	// ErrReportInterrupted is returned when the environment report is canceled mid-probe.
	ErrReportInterrupted = zerr.New("environment report interrupted")

	// ErrInvalidProtectionRule is returned when a protected name or prefix is empty.
	ErrInvalidProtectionRule = zerr.New("protected names and prefixes must not be empty")
)
