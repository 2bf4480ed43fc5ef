package hilite

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Highlight lines from stdin or a file"
	MsgVersionShort = "Print version information"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig     = "Path to the YAML config file (required)"
	MsgFlagFile       = "Path to the input file (defaults to stdin)"
	MsgFlagIgnoreCase = "Match keywords case-insensitively"
	MsgFlagColor      = "When to colorize output: auto, always, never"

	// Status messages
	MsgStdinHint = "(Info: Waiting for stdin... Press Ctrl+D to end)"

	// Error messages
	MsgErrMissingConfig = "missing config file, use --config <PATH>"
	MsgErrOpenInput     = "cannot open input file %s"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimSpace(msgRootExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
