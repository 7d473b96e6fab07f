package report

import (
	"context"
	"time"

	"go-fieldops/pkg/quantity"

	"go.uber.org/zap"
)

// MaterialsForBrigade totals material consumption per codigo over the reports
// led by liderCI in the period. Reports where liderCI is only a member are not
// included.
func (s *ReportServiceImpl) MaterialsForBrigade(ctx context.Context, liderCI, fechaInicio, fechaFin, categoria string) (usage []MaterialUsage, err error) {
	start := time.Now()
	defer func() { s.observe("materials_for_brigade", start, err) }()

	reports, err := s.ReportRepo.Find(ctx, ReportFilter{
		FechaInicio:     fechaInicio,
		FechaFin:        fechaFin,
		LiderCI:         liderCI,
		SkipAttachments: true,
	})
	if err != nil {
		return nil, err
	}

	acc := newMaterialAccumulator(categoria)
	for i := range reports {
		if reports[i].Brigada.Lider.CI != liderCI {
			continue
		}
		acc.addReport(&reports[i])
	}
	return acc.list(), nil
}

// MaterialsForAllBrigades groups the period's reports by leader CI and totals
// each group independently with the same rules as MaterialsForBrigade.
func (s *ReportServiceImpl) MaterialsForAllBrigades(ctx context.Context, fechaInicio, fechaFin, categoria string) (groups []BrigadeMaterials, err error) {
	start := time.Now()
	defer func() { s.observe("materials_for_all_brigades", start, err) }()

	reports, err := s.ReportRepo.Find(ctx, ReportFilter{
		FechaInicio:     fechaInicio,
		FechaFin:        fechaFin,
		SkipAttachments: true,
	})
	if err != nil {
		return nil, err
	}

	type brigadeGroup struct {
		liderNombre string
		acc         *materialAccumulator
	}
	var order []string
	byLeader := make(map[string]*brigadeGroup)

	for i := range reports {
		lider := reports[i].Brigada.Lider
		if lider.CI == "" {
			s.Logger.Debug("report without leader skipped", zap.String("report_id", reports[i].ID.Hex()))
			continue
		}
		g, ok := byLeader[lider.CI]
		if !ok {
			g = &brigadeGroup{liderNombre: lider.Nombre, acc: newMaterialAccumulator(categoria)}
			byLeader[lider.CI] = g
			order = append(order, lider.CI)
		}
		g.acc.addReport(&reports[i])
	}

	groups = make([]BrigadeMaterials, 0, len(order))
	for _, ci := range order {
		g := byLeader[ci]
		groups = append(groups, BrigadeMaterials{
			LiderCI:     ci,
			LiderNombre: g.liderNombre,
			Materiales:  g.acc.list(),
		})
	}
	return groups, nil
}

// materialAccumulator sums cantidad per codigo, keeping the first-seen
// descripcion and um. Entries without codigo are skipped.
type materialAccumulator struct {
	categoria string
	order     []string
	byCode    map[string]*MaterialUsage
}

func newMaterialAccumulator(categoria string) *materialAccumulator {
	return &materialAccumulator{categoria: categoria, byCode: make(map[string]*MaterialUsage)}
}

func (a *materialAccumulator) addReport(r *Report) {
	for _, m := range r.Materiales {
		a.add(m)
	}
}

func (a *materialAccumulator) add(m Material) {
	if m.Codigo == "" {
		return
	}
	// source data tags the category inconsistently, descripcion is the fallback
	if a.categoria != "" && m.Categoria != a.categoria && m.Descripcion != a.categoria {
		return
	}

	usage, ok := a.byCode[m.Codigo]
	if !ok {
		usage = &MaterialUsage{Codigo: m.Codigo, Descripcion: m.Descripcion, UM: m.UM}
		a.byCode[m.Codigo] = usage
		a.order = append(a.order, m.Codigo)
	}
	usage.Cantidad += quantity.Parse(m.Cantidad)
}

func (a *materialAccumulator) list() []MaterialUsage {
	out := make([]MaterialUsage, 0, len(a.order))
	for _, code := range a.order {
		out = append(out, *a.byCode[code])
	}
	return out
}
