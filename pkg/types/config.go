package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmed-fetcher/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// EutilsConfig holds settings for the NCBI E-utilities client.
type EutilsConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the E-utilities root; esearch.fcgi and esummary.fcgi are
	// resolved against it.
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Tool and Email identify the caller to NCBI. Both are optional and
	// sent only when non-empty.
	Tool  string `json:"tool,omitempty" yaml:"tool,omitempty" mapstructure:"tool"`
	Email string `json:"email,omitempty" yaml:"email,omitempty" mapstructure:"email"`
}

// ClassifierConfig holds settings for the affiliation classifier.
type ClassifierConfig struct {
	// AcademicKeywords are matched case-insensitively as substrings of an
	// affiliation; any hit marks the affiliation as academic.
	AcademicKeywords []string `json:"academic_keywords" yaml:"academic_keywords" mapstructure:"academic_keywords"`
}

// OutputFormat selects the result file encoding.
type OutputFormat string

const (
	FormatCSV    OutputFormat = "csv"
	FormatJSON   OutputFormat = "json"
	FormatYAML   OutputFormat = "yaml"
	FormatSQLite OutputFormat = "sqlite"
)

// Valid reports whether f names a supported format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatCSV, FormatJSON, FormatYAML, FormatSQLite:
		return true
	}
	return false
}

// Extension returns the file extension, without dot, written for f.
func (f OutputFormat) Extension() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatSQLite:
		return "db"
	default:
		return "csv"
	}
}

// DefaultOutputFile returns the result file name used when none is given.
func DefaultOutputFile(f OutputFormat) string {
	return "papers." + f.Extension()
}

// OutputConfig holds settings for the writer stage.
type OutputConfig struct {
	// File is the destination path (default "papers.csv").
	File string `json:"file" yaml:"file" mapstructure:"file"`

	// Format selects the encoding (default csv).
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// FetchConfig groups all stage configurations for one run.
type FetchConfig struct {
	Eutils     EutilsConfig     `json:"eutils" yaml:"eutils" mapstructure:"eutils"`
	Classifier ClassifierConfig `json:"classifier" yaml:"classifier" mapstructure:"classifier"`
	Output     OutputConfig     `json:"output" yaml:"output" mapstructure:"output"`
}

// DefaultAcademicKeywords is the keyword list of the default classifier.
var DefaultAcademicKeywords = []string{"university", "college", "lab", "institute"}

// DefaultFetchConfig returns the configuration used when no config file,
// environment variable, or flag overrides a value.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Eutils: EutilsConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   60 * time.Second,
				UserAgent: "pubmed-fetcher/0.1",
			},
			BaseURL: "https://eutils.ncbi.nlm.nih.gov/entrez/eutils",
		},
		Classifier: ClassifierConfig{
			AcademicKeywords: append([]string(nil), DefaultAcademicKeywords...),
		},
		Output: OutputConfig{
			File:   DefaultOutputFile(FormatCSV),
			Format: FormatCSV,
		},
	}
}
