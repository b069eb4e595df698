package advisories

// Config is the top-level structure of advisories.yaml.
type Config struct {
	Advisories []Entry `yaml:"advisories"`
}

// Entry is one advisory row. Carrier may be omitted to apply the
// warning to every carrier on the route.
type Entry struct {
	Carrier     string `yaml:"carrier,omitempty"`
	Origin      string `yaml:"origin"`
	Destination string `yaml:"destination"`
	Warning     string `yaml:"warning"`
}
