package cli

// User-facing message constants.
const (
	MsgRootShort = "A component catalog renderer"
	MsgRootLong  = `vitrine renders a filesystem tree of UI components: each directory
holding a view template becomes a component, splitter-named templates
become its variants, and config files supply contexts, statuses and
preview layouts. Entities render to markup through a pluggable
templating engine.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagSource  = "Component source root (overrides configuration)"
	MsgFlagConfig  = "Directory holding the vitrine config file"
	MsgFlagFormat  = "Output format: auto, term, text or json"

	MsgRenderShort = "Render an entity to markup"
	MsgRenderLong  = `Render a component or variant to markup and print it.

The selector is a handle, with or without the @ sigil: "@button"
renders the button component through its default variant, "@large"
finds a variant by handle. A field/value pair like "path button/button.tpl"
is also accepted.`
	MsgRenderExample = `  vitrine render @button                       # default variant
  vitrine render @button --layout              # wrapped in its preview layout
  vitrine render @large --context '{"label":"Go"}'`

	MsgPreviewShort = "Render an entity wrapped in its preview layout"

	MsgListShort = "List the component tree"

	MsgAssetsShort = "List every component's assets"

	MsgStatusShort = "Show component statuses"
	MsgStatusLong  = `Show the status of every component, or of one selected entity.

A component's displayed status aggregates its variants' statuses:
distinct handles collapse into the mixed record.`

	MsgDocsShort = "Show a component's readme"

	MsgInitShort   = "Write a starter vitrine.toml"
	MsgInitCreated = "Created %s\n"

	MsgVersionShort = "Print version information"

	MsgErrNoEntity     = "no entity matches %q"
	MsgErrNoReadme     = "component %q has no readme"
	MsgErrConfigExists = "%s already exists (use --force to overwrite)"
)
