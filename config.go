package nav

// Parser names an extractor implementation.
type Parser string

// Supported extractors.
const (
	// ParserRegexp matches tags with text patterns. Entities are left as is.
	ParserRegexp Parser = "regexp"

	// ParserGoquery parses the document into a DOM. Entities are decoded.
	ParserGoquery Parser = "goquery"
)

// Defaults matching a run from the site root.
const (
	DefaultDir        = "pages"
	DefaultOutput     = "pages/pages.json"
	DefaultURLPrefix  = "pages"
	DefaultParser     = ParserRegexp
	DefaultConfigFile = ".navindex.yaml"
)

// Config holds the settings of an index run.
type Config struct {
	Dir       string `json:"dir"`
	Output    string `json:"output"`
	URLPrefix string `json:"urlPrefix"`
	Parser    Parser `json:"parser"`
	Lenient   bool   `json:"lenient"`
	Verbose   bool   `json:"verbose"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() Config {
	return Config{
		Dir:       DefaultDir,
		Output:    DefaultOutput,
		URLPrefix: DefaultURLPrefix,
		Parser:    DefaultParser,
	}
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return Errorf(EINVALID, "source directory required")
	}
	if c.Output == "" {
		return Errorf(EINVALID, "output path required")
	}
	switch c.Parser {
	case ParserRegexp, ParserGoquery:
	default:
		return Errorf(EINVALID, "unknown parser %q", c.Parser)
	}
	return nil
}
