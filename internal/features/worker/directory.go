package worker

import (
	"context"

	"go-fieldops/internal/features/report"
)

type reportDirectory struct {
	service WorkerService
}

// NewReportDirectory exposes the worker directory to the report aggregations.
func NewReportDirectory(service WorkerService) report.WorkerDirectory {
	return &reportDirectory{service: service}
}

func (d *reportDirectory) LookupNames(ctx context.Context, cis []string) (map[string]report.WorkerRef, error) {
	workers, err := d.service.Lookup(ctx, cis)
	if err != nil {
		return nil, err
	}
	names := make(map[string]report.WorkerRef, len(workers))
	for ci, w := range workers {
		names[ci] = report.WorkerRef{CI: w.CI, Nombre: w.Nombre, Apellido: w.Apellido}
	}
	return names, nil
}
