package domain

// FAQ is a single help-center entry. It is the record the search engine
// filters and ranks; fields missing from a catalog decode to zero values.
type FAQ struct {
	ID         int      `json:"id" toml:"id" yaml:"id"`
	Category   string   `json:"category" toml:"category" yaml:"category"`
	Question   string   `json:"question" toml:"question" yaml:"question"`
	Answer     string   `json:"answer" toml:"answer" yaml:"answer"`
	Tags       []string `json:"tags" toml:"tags" yaml:"tags"`
	Helpful    int      `json:"helpful" toml:"helpful" yaml:"helpful"`
	NotHelpful int      `json:"notHelpful" toml:"not_helpful" yaml:"notHelpful"`
}

// Catalog is an ordered FAQ collection together with where it came from
type Catalog struct {
	Source  string
	Entries []FAQ
}
