package attributes

// DefaultSeparator joins the segments of an attribute key.
const DefaultSeparator = "."

// Option configures the codec functions.
type Option func(*config)

type config struct {
	separator          string
	recurseOnSequence  bool
	jsonStringSuffixes []string
}

func newConfig(opts []Option) *config {
	cfg := &config{separator: DefaultSeparator}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeparator sets the string that separates key segments. An empty
// separator is a programming error and panics.
func WithSeparator(separator string) Option {
	if separator == "" {
		panic("attributes: empty separator")
	}

	return func(c *config) {
		c.separator = separator
	}
}

// WithRecurseOnSequence makes Flatten expand sequences that contain
// mappings into indexed keys.
func WithRecurseOnSequence(recurse bool) Option {
	return func(c *config) {
		c.recurseOnSequence = recurse
	}
}

// WithJSONStringAttributes makes Flatten encode mappings whose key ends with
// one of the suffixes as a JSON string instead of descending into them.
func WithJSONStringAttributes(suffixes ...string) Option {
	return func(c *config) {
		c.jsonStringSuffixes = append(c.jsonStringSuffixes, suffixes...)
	}
}
