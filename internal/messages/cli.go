package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "agent-system"
	// RootShort is the short description for the root command.
	RootShort = "Install the agent-system workflow definitions"

	// HelpText is the static usage text printed by help, --help, -h, and a bare invocation.
	HelpText = `
  agent-system — 7-agent workflow for AI-assisted development

  Usage:
    agent-system init            Copy agents to ./agents/ in current project
    agent-system init --global   Copy agents to ~/.claude/agents/
    agent-system init --force    Overwrite agents that already exist in the target
    agent-system list            List available agents
    agent-system help            Show this help message

`

	// UnknownCommandFmt formats the error line for an unrecognized verb.
	UnknownCommandFmt = "  Unknown command: %s\n\n"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt  = "commit %s"
	VersionBuildFmt   = "built %s"
	VersionFullFmt    = "%s (%s)"
	VersionLineFmt    = "%s\n"
	VersionRequired   = "version is required"
	VersionInvalidFmt = "version %q must be in the form vX.Y.Z or X.Y.Z"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Copy the agent definitions into ./agents/ (or ~/.claude/agents/ with --global)"

	InitFlagGlobal = "Install to ~/.claude/agents/ instead of ./agents/"
	InitFlagForce  = "Overwrite agent files that already exist in the target"

	InitResolveHomeFmt = "resolve home dir: %w"
	InitResolveCwdFmt  = "resolve working dir: %w"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "List available agents"

	ListHeader  = "\n  Available agents:\n\n"
	ListLineFmt = "    %s %s\n"
)
