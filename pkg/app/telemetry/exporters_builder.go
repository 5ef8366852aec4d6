package telemetry

import (
	"fmt"

	domain "github.com/NeuralTrust/TrustProctor/pkg/domain/telemetry"
	factory "github.com/NeuralTrust/TrustProctor/pkg/infra/telemetry"
)

//go:generate mockery --name=ExportersBuilder --dir=. --output=./mocks --filename=exporters_builder_mock.go --case=underscore --with-expecter
type ExportersBuilder interface {
	Build(configs []domain.ExporterConfig) ([]domain.Exporter, error)
}

type exportersBuilder struct {
	locator *factory.ExporterLocator
}

func NewExportersBuilder(locator *factory.ExporterLocator) ExportersBuilder {
	return &exportersBuilder{
		locator: locator,
	}
}

// Build configures every exporter or none; exporters already built are closed on failure.
func (b *exportersBuilder) Build(configs []domain.ExporterConfig) ([]domain.Exporter, error) {
	exporters := make([]domain.Exporter, 0, len(configs))
	for _, cfg := range configs {
		exporter, err := b.locator.GetExporter(cfg)
		if err != nil {
			for _, built := range exporters {
				built.Close()
			}
			return nil, fmt.Errorf("failed to build %s exporter: %w", cfg.Name, err)
		}
		exporters = append(exporters, exporter)
	}
	return exporters, nil
}
