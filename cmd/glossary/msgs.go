package glossary

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Render glossary terms in documents"
	MsgRenderShort     = "Render documents, resolving glossary shortcodes"
	MsgLookupShort     = "Print the definition of a term"
	MsgTableShort      = "Render the glossary table of the definitions file"
	MsgCheckShort      = "Report glossary terms without a definition"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgWroteFile       = "Wrote %s\n"
	MsgAllDefined      = "All %d glossary terms are defined.\n"
	MsgNoTerms         = "No glossary terms found.\n"
	MsgDocumentFailed  = "%s: %v\n"
	MsgCheckHeaderDoc  = "Document"
	MsgCheckHeaderLine = "Line"
	MsgCheckHeaderTerm = "Term"
	MsgCheckHeaderDef  = "Defined"
	MsgVersionFormat   = "glossary %s\n"

	// Error messages
	MsgErrLoadConfig     = "failed to load configuration"
	MsgErrReadDocument   = "failed to read %s"
	MsgErrRenderFailed   = "%d of %d documents failed to render"
	MsgErrUndefinedTerms = "%d glossary terms are undefined"
	MsgErrTermNotFound   = "term %q is not defined in %s"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDefinitions = "Definitions file (default from configuration: glossary.yml)"
	MsgFlagTo          = "Output backend: auto, html, markdown, docbook, term"
	MsgFlagOut         = "Directory to write rendered documents to (default: standard output)"
	MsgFlagStyle       = "Glamour style for terminal output (auto, dark, light, notty or a path)"
	MsgFlagPopup       = "Popup mode for interactive output: click or none"
	MsgFlagAll         = "List every term, not only the undefined ones"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimRight(msgRenderExampleRaw, "\n")

	//go:embed msgs/lookup-long.txt
	msgLookupLongRaw string
	MsgLookupLong    = strings.TrimSpace(msgLookupLongRaw)

	//go:embed msgs/table-long.txt
	msgTableLongRaw string
	MsgTableLong    = strings.TrimSpace(msgTableLongRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
