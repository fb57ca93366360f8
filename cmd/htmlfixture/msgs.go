package htmlfixture

// Short messages (one-liners)
const (
	MsgRootShort    = "Inspect HTML test fixtures"
	MsgRootLong     = "htmlfixture lists, renders and checks the HTML fixture templates that tests mount into a document."
	MsgListShort    = "List fixture templates under the base path"
	MsgShowShort    = "Mount a fixture into a blank document and print it"
	MsgCheckShort   = "Load and clean up every fixture, reporting failures"
	MsgCheckLong    = "Check mounts every markup fixture, cleans it up and verifies the document is structurally unchanged. Data fixtures are decoded."
	MsgVersionShort = "Print version information"

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagBase    = "Fixture base path, relative to the project root"
	MsgFlagRoot    = "Project root (default $HTMLFIXTURE_ROOT or .)"

	MsgNoFixtures     = "No fixtures found under %s\n"
	MsgFixturesHeader = "Fixtures under %s:\n"
	MsgFixtureItem    = "  %s\n"
	MsgCheckOK        = "  ok    %s\n"
	MsgCheckFail      = "  FAIL  %s: %v\n"
	MsgCheckSummary   = "\n%d fixtures, %d failed\n"
	MsgVersionFormat  = "htmlfixture version %s\n  commit: %s\n  built:  %s\n"
)
