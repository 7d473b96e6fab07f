package report

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"go-fieldops/pkg/timerange"

	"go.uber.org/zap"
)

// HoursForWorker sums the worked hours of every report in
// [fechaInicio, fechaFin] where ci is the leader or a member. Each report is
// counted once whatever role ci holds in it.
func (s *ReportServiceImpl) HoursForWorker(ctx context.Context, ci, fechaInicio, fechaFin string) (hours float64, err error) {
	start := time.Now()
	defer func() { s.observe("hours_for_worker", start, err) }()

	reports, err := s.ReportRepo.Find(ctx, ReportFilter{
		FechaInicio:     fechaInicio,
		FechaFin:        fechaFin,
		ParticipantCI:   ci,
		SkipAttachments: true,
	})
	if err != nil {
		return 0, err
	}

	total := 0
	for i := range reports {
		if !participates(&reports[i], ci) {
			continue
		}
		minutes, err := s.reportMinutes(&reports[i])
		if err != nil {
			return 0, err
		}
		total += minutes
	}

	s.Logger.Debug("hours computed",
		zap.String("ci", ci),
		zap.String("fecha_inicio", fechaInicio),
		zap.String("fecha_fin", fechaFin),
		zap.Int("reports", len(reports)),
	)
	return minutesToHours(total), nil
}

// HoursForAllWorkers credits each report's full duration to its leader and to
// every member (fan-out, never split), groups by CI keeping the first-seen
// name, and sorts by total hours descending. Ties keep first-seen order.
func (s *ReportServiceImpl) HoursForAllWorkers(ctx context.Context, fechaInicio, fechaFin string) (rows []WorkerHours, err error) {
	start := time.Now()
	defer func() { s.observe("hours_for_all_workers", start, err) }()

	reports, err := s.ReportRepo.Find(ctx, ReportFilter{
		FechaInicio:     fechaInicio,
		FechaFin:        fechaFin,
		SkipAttachments: true,
	})
	if err != nil {
		return nil, err
	}

	type workerTotal struct {
		row     WorkerHours
		minutes int
	}
	var order []string
	totals := make(map[string]*workerTotal)

	for i := range reports {
		minutes, err := s.reportMinutes(&reports[i])
		if err != nil {
			return nil, err
		}

		credited := make(map[string]bool)
		credit := func(w WorkerRef) {
			if w.CI == "" || credited[w.CI] {
				return
			}
			credited[w.CI] = true
			t, ok := totals[w.CI]
			if !ok {
				t = &workerTotal{row: WorkerHours{CI: w.CI, Nombre: w.Nombre, Apellido: w.Apellido}}
				totals[w.CI] = t
				order = append(order, w.CI)
			}
			t.minutes += minutes
		}

		credit(reports[i].Brigada.Lider)
		for _, member := range reports[i].Brigada.Integrantes {
			credit(member)
		}
	}

	rows = make([]WorkerHours, 0, len(order))
	for _, ci := range order {
		t := totals[ci]
		t.row.TotalHoras = minutesToHours(t.minutes)
		rows = append(rows, t.row)
	}
	s.applyDirectoryNames(ctx, rows)
	slices.SortStableFunc(rows, func(a, b WorkerHours) int {
		return cmp.Compare(b.TotalHoras, a.TotalHoras)
	})
	return rows, nil
}

// applyDirectoryNames replaces the names copied into reports with the worker
// directory's current ones. A directory failure keeps the report names.
func (s *ReportServiceImpl) applyDirectoryNames(ctx context.Context, rows []WorkerHours) {
	if s.Directory == nil || len(rows) == 0 {
		return
	}
	cis := make([]string, 0, len(rows))
	for _, r := range rows {
		cis = append(cis, r.CI)
	}
	names, err := s.Directory.LookupNames(ctx, cis)
	if err != nil {
		s.Logger.Warn("worker directory unavailable, keeping report names", zap.Error(err))
		return
	}
	for i := range rows {
		w, ok := names[rows[i].CI]
		if !ok || w.Nombre == "" {
			continue
		}
		rows[i].Nombre = w.Nombre
		rows[i].Apellido = w.Apellido
	}
}

// reportMinutes is the duration of one report. Negative ranges are kept, and
// logged so they can be traced back to the offending document.
func (s *ReportServiceImpl) reportMinutes(r *Report) (int, error) {
	fh := r.FechaHora
	minutes, err := timerange.DurationMinutes(fh.Fecha, fh.HoraInicio, fh.HoraFin)
	if err != nil {
		return 0, fmt.Errorf("report %s: %w", r.ID.Hex(), err)
	}
	if minutes < 0 {
		s.Logger.Warn("report has a negative time range",
			zap.String("report_id", r.ID.Hex()),
			zap.String("hora_inicio", fh.HoraInicio),
			zap.String("hora_fin", fh.HoraFin),
		)
	}
	return minutes, nil
}

func participates(r *Report, ci string) bool {
	if r.Brigada.Lider.CI == ci {
		return true
	}
	for _, member := range r.Brigada.Integrantes {
		if member.CI == ci {
			return true
		}
	}
	return false
}

// minutesToHours converts to hours rounded to 2 decimals.
func minutesToHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*100) / 100
}
