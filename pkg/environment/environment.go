// Package environment defines the application environment names used by the
// logger presets and normalises their common spellings.
package environment

// Environment represents an application environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Parse normalises an environment name, accepting the short spellings used
// in deployment configs. Unknown values map to Development.
func Parse(s string) Environment {
	switch s {
	case string(Production), "prod":
		return Production
	case string(Staging), "stage":
		return Staging
	default:
		return Development
	}
}

// IsProduction reports whether s names the production environment.
func IsProduction(s string) bool {
	return Parse(s) == Production
}
