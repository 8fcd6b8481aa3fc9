package config

// Config represents the dropin.yaml configuration file.
type Config struct {
	Version      int          `yaml:"version"`
	SettingsFile string       `yaml:"settings_file,omitempty"`
	Deployments  []Deployment `yaml:"deployments"`
}

// Deployment defines one file to keep deployed in a privileged
// directory.
type Deployment struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	DestDir string `yaml:"dest_dir"`

	// Filename defaults to the basename of Source.
	Filename string `yaml:"filename,omitempty"`

	Version string `yaml:"version"`

	// SettingsKey defaults to the deployment name. The literal value
	// "none" disables persistence for this deployment.
	SettingsKey string `yaml:"settings_key,omitempty"`

	StrictTeardown bool `yaml:"strict_teardown,omitempty"`
}
