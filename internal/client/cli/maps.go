package cli

import (
	"context"
	"math"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/client/scope"
	"github.com/dmitrijs2005/locagri/internal/client/services"
)

// Region is the visible map area: a center and its span in degrees.
type Region struct {
	Latitude       float64
	Longitude      float64
	LatitudeDelta  float64
	LongitudeDelta float64
}

var DefaultRegion = Region{
	Latitude:       37.78825,
	Longitude:      -122.4324,
	LatitudeDelta:  0.0922,
	LongitudeDelta: 0.0421,
}

const (
	regionPadding  = 1.5
	minRegionDelta = 0.01
)

// FitRegion centers on the bounding box of plots with some padding. It
// returns DefaultRegion when there are no plots.
func FitRegion(plots []models.LandPlot) Region {
	if len(plots) == 0 {
		return DefaultRegion
	}

	minLat, maxLat := math.Inf(1), math.Inf(-1)
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, p := range plots {
		minLat = math.Min(minLat, p.Position.Latitude)
		maxLat = math.Max(maxLat, p.Position.Latitude)
		minLng = math.Min(minLng, p.Position.Longitude)
		maxLng = math.Max(maxLng, p.Position.Longitude)
	}

	return Region{
		Latitude:       (minLat + maxLat) / 2,
		Longitude:      (minLng + maxLng) / 2,
		LatitudeDelta:  math.Max((maxLat-minLat)*regionPadding, minRegionDelta),
		LongitudeDelta: math.Max((maxLng-minLng)*regionPadding, minRegionDelta),
	}
}

// Map opens the maps tab. With a cin it shows that operator's plots as
// markers and fits the region to them.
func (a *App) Map(ctx context.Context, cin string) error {
	sc, err := a.router.Navigate(router.ScreenMaps)
	if err != nil {
		return err
	}

	if cin == "" {
		a.printRegion(DefaultRegion)
		a.printf("No markers.\n")
		return nil
	}

	var plots services.Result[[]models.LandPlot]
	if !scope.Run(sc, func(ctx context.Context) services.Result[[]models.LandPlot] {
		return a.plots.LoadForOwner(ctx, cin)
	}, func(r services.Result[[]models.LandPlot]) { plots = r }) {
		return nil
	}

	if plots.Failed() {
		a.failure("Failed to load land plots: %s", plots.Err.Error())
	}
	a.printRegion(FitRegion(plots.Items()))
	for i, p := range plots.Items() {
		a.printf("  marker %d: %.6f, %.6f (%s m²)\n", i+1, p.Position.Latitude, p.Position.Longitude, formatArea(p.AreaSqM))
	}
	if len(plots.Items()) == 0 {
		a.printf("No markers.\n")
	}
	return nil
}

func (a *App) printRegion(r Region) {
	a.heading("Region %.5f, %.5f (Δlat %.4f, Δlng %.4f)", r.Latitude, r.Longitude, r.LatitudeDelta, r.LongitudeDelta)
}
