package telemetry

type ExporterConfig struct {
	Name     string                 `json:"name" mapstructure:"name"`
	Settings map[string]interface{} `json:"settings" mapstructure:"settings"`
}
