package logging

// Config is the "logging" section of cardvice.yml:
//
//	logging:
//	  level: debug
//	  file:
//	    path: /tmp/cardvice.log
//	  format:
//	    preset: json
//
// CARDVICE_LOG_LEVEL and CARDVICE_LOG_CALLER=true override Level and
// ReportCaller.
type Config struct {
	Level        string         `yaml:"level"`
	ReportCaller bool           `yaml:"report_caller"`
	File         FileSinkConfig `yaml:"file"`
	Format       FormatConfig   `yaml:"format"`
}

// FileSinkConfig is on by default and writes under the state directory
// unless Path is set.
type FileSinkConfig struct {
	Disabled bool   `yaml:"disabled"`
	Path     string `yaml:"path"`
	// Format is "text" or "json".
	Format string `yaml:"format,omitempty"`
}

type FormatConfig struct {
	// Preset is "default", "simple" or "json".
	Preset           string `yaml:"preset"`
	DisableTimestamp bool   `yaml:"disable_timestamp"`
	DisableComponent bool   `yaml:"disable_component"`
	// StructuredToStderr is "auto", "always" or "never". In auto mode
	// component logs reach stderr only when it is not a terminal or the
	// level is debug.
	StructuredToStderr string `yaml:"structured_to_stderr"`
	DisableColor       bool   `yaml:"disable_color"`
}
