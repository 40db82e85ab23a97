package messages

// Install, agent source, and report messages.
const (
	// InstallTargetRequired indicates a target directory is required for install.
	InstallTargetRequired = "install target is required"
	// InstallSystemRequired indicates system is required for install.
	InstallSystemRequired = "install system is required"
	InstallSourceRequired = "install source is required"

	InstallTargetUnavailable = "target unavailable"
	InstallSourceUnreadable  = "source unreadable"

	InstallResolveTargetFmt   = "failed to resolve %s: %w"
	InstallTargetNotDirFmt    = "%s exists and is not a directory"
	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallFailedStatFmt      = "failed to stat %s: %w"
	InstallFailedReadFmt      = "failed to read %s: %w"
	InstallFailedWriteFmt     = "failed to write %s: %w"

	// InstallCopyWord and InstallSkipWord are the per-item status words.
	InstallCopyWord     = "copy"
	InstallSkipWord     = "skip"
	InstallCopyLineFmt  = "  %s  %s\n"
	InstallSkipLineFmt  = "  %s  %s (already exists)\n"
	InstallDoneFmt      = "\n  Done. %d copied, %d skipped → %s\n\n"
	InstallForceDoneFmt = "\n  Done. %d files → %s\n\n"
	InstallGlobalTip    = "  Tip: run with --global to install to ~/.claude/agents/ (available in all projects)\n\n"

	// AgentsReadSourceFmt formats errors listing the bundled agent source.
	AgentsReadSourceFmt     = "failed to list agent source: %w"
	AgentsOpenSourceFmt     = "failed to open bundled agents: %w"
	AgentsReadCatalogFmt    = "failed to read %s: %w"
	AgentsInvalidCatalogFmt = "invalid agent catalog %s: %w"
)
