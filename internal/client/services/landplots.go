package services

import (
	"context"

	"github.com/dmitrijs2005/locagri/internal/client/config"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"golang.org/x/sync/errgroup"
)

// LandPlotAggregator loads an operator's plots with their positions, in
// query order. Plots whose position cannot be resolved are left out.
type LandPlotAggregator interface {
	LoadForOwner(ctx context.Context, operatorID string) Result[[]models.LandPlot]
}

// NewLandPlotAggregator picks the strategy named by cfg.JoinStrategy.
func NewLandPlotAggregator(store Querier, cfg *config.Config, logger logging.Logger) LandPlotAggregator {
	logger = logger.With("module", "landplots")
	if cfg.JoinStrategy == config.JoinSequential {
		return &SequentialJoin{store: store, concurrency: max(cfg.FetchConcurrency, 1), logger: logger}
	}
	return &ServerJoin{store: store, logger: logger}
}

func plotsQuery(operatorID string) rpc.Query {
	return rpc.Query{Table: "land_plots", Columns: []string{"position_id", "area_sqm"}}.Eq("owner_cin", operatorID)
}

// ServerJoin asks the store to embed positions in a single query.
type ServerJoin struct {
	store  Querier
	logger logging.Logger
}

func (s *ServerJoin) LoadForOwner(ctx context.Context, operatorID string) Result[[]models.LandPlot] {
	rows, err := s.store.Query(ctx, plotsQuery(operatorID).Join("positions", "latitude", "longitude"))
	if err != nil {
		s.logger.Error(ctx, "error fetching land plots", "owner", operatorID, "error", err)
		return Failed[[]models.LandPlot](err)
	}

	plots := make([]models.LandPlot, 0, len(rows))
	for _, row := range rows {
		area, ok := number(row, "area_sqm")
		if !ok {
			continue
		}
		pos, ok := nested(row, "positions")
		if !ok {
			continue
		}
		p, ok := positionFromRow(pos)
		if !ok {
			continue
		}
		plots = append(plots, models.LandPlot{Position: p, AreaSqM: area})
	}
	if len(plots) == 0 {
		return Empty(plots)
	}
	return OK(plots)
}

// SequentialJoin queries the plots, then looks up each position with its
// own single-row query.
type SequentialJoin struct {
	store       Querier
	concurrency int
	logger      logging.Logger
}

func (s *SequentialJoin) LoadForOwner(ctx context.Context, operatorID string) Result[[]models.LandPlot] {
	rows, err := s.store.Query(ctx, plotsQuery(operatorID))
	if err != nil {
		s.logger.Error(ctx, "error fetching land plots", "owner", operatorID, "error", err)
		return Failed[[]models.LandPlot](err)
	}

	resolved := make([]*models.LandPlot, len(rows))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, row := range rows {
		area, ok := number(row, "area_sqm")
		if !ok || row["position_id"] == nil {
			continue
		}
		g.Go(func() error {
			q := rpc.Query{Table: "positions", Columns: []string{"latitude", "longitude"}, Single: true}.
				Eq("position_id", row["position_id"])
			pos, err := s.store.Query(ctx, q)
			if err != nil || len(pos) != 1 {
				s.logger.Warn(ctx, "error fetching position", "position_id", row["position_id"], "error", err)
				return nil
			}
			p, ok := positionFromRow(pos[0])
			if !ok {
				return nil
			}
			resolved[i] = &models.LandPlot{Position: p, AreaSqM: area}
			return nil
		})
	}
	_ = g.Wait()

	plots := make([]models.LandPlot, 0, len(rows))
	for _, p := range resolved {
		if p != nil {
			plots = append(plots, *p)
		}
	}
	if len(plots) == 0 {
		return Empty(plots)
	}
	return OK(plots)
}
