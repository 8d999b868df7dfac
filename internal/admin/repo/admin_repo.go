package repo

import (
	"context"

	"github.com/Marco16005/pag-web-web/internal/admin/entity"
	"github.com/Marco16005/pag-web-web/internal/gateway"
)

// AdminRepo reads the admin-only reports.
type AdminRepo struct {
	gw gateway.Gateway
}

func NewAdminRepo(gw gateway.Gateway) *AdminRepo { return &AdminRepo{gw: gw} }

func (r *AdminRepo) Statistics(ctx context.Context) ([]entity.Statistic, error) {
	rows := []entity.Statistic{}
	if err := r.gw.Invoke(ctx, &rows, gateway.ProcListStatistics); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *AdminRepo) Logs(ctx context.Context, f entity.LogFilter) ([]entity.LogEntry, error) {
	rows := []entity.LogEntry{}
	err := r.gw.Invoke(ctx, &rows, gateway.ProcListLogEntries,
		gateway.P("p_nombre_tabla", nullable(f.Table)),
		gateway.P("p_tipo_operacion_filter", nullable(f.Operation)),
		gateway.P("p_fecha_inicio", nullable(f.Start)),
		gateway.P("p_fecha_fin", nullable(f.End)),
		gateway.P("p_limit", f.Limit),
		gateway.P("p_offset", f.Offset),
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// nullable unwraps p so that a missing filter reaches the driver as an untyped nil.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
