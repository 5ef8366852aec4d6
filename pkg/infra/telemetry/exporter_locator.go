package telemetry

import (
	"fmt"

	"github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry"
)

type ExporterLocator struct {
	exporters map[string]telemetry.Exporter
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]telemetry.Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

// GetExporter returns a configured copy of the registered exporter named by cfg.
func (p *ExporterLocator) GetExporter(cfg telemetry.ExporterConfig) (telemetry.Exporter, error) {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := base.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(cfg.Settings)
}

func (p *ExporterLocator) ValidateExporter(cfg telemetry.ExporterConfig) error {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	return base.ValidateConfig(cfg.Settings)
}
