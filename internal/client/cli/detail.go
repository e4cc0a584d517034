package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/client/scope"
	"github.com/dmitrijs2005/locagri/internal/client/services"
	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/dmitrijs2005/locagri/internal/netx"
)

// probeImage is a test seam for netx.Probe.
var probeImage = netx.Probe

// Show opens the detail screen for the operator identified by cin.
func (a *App) Show(ctx context.Context, cin string) error {
	sc, err := a.router.Navigate(router.ScreenDetail)
	if err != nil {
		return err
	}

	o, ok := a.findOperator(sc, cin)
	if !ok {
		a.failure("Operator not found: %s", cin)
		return fmt.Errorf("operator %s: %w", cin, common.ErrorNotFound)
	}

	image := a.displayImage(sc, o)

	var plots services.Result[[]models.LandPlot]
	if !scope.Run(sc, func(ctx context.Context) services.Result[[]models.LandPlot] {
		return a.plots.LoadForOwner(ctx, cin)
	}, func(r services.Result[[]models.LandPlot]) { plots = r }) {
		return nil
	}

	a.printOperator(o, image)
	switch plots.Status {
	case services.StatusFailed:
		a.failure("Failed to load land plots: %s", plots.Err.Error())
	case services.StatusEmpty:
		a.printf("No land plots.\n")
	default:
		a.printPlots(plots.Value)
	}
	return nil
}

// displayImage checks that the resolved image loads and swaps in the
// default image when it does not.
func (a *App) displayImage(sc *scope.Scope, o models.Operator) string {
	if !a.config.ProbeImages || o.ImageURL == "" {
		return o.ImageURL
	}
	if err := probeImage(sc.Context(), a.http, o.ImageURL); err != nil {
		a.logger.Info(sc.Context(), "profile image failed to load, using default", "cin", o.CIN, "error", err)
		return a.images.DefaultURL(sc.Context())
	}
	return o.ImageURL
}

// Back leaves a stacked screen (detail returns to home).
func (a *App) Back(ctx context.Context) error {
	if !a.router.Back() {
		a.printf("Nothing to go back to.\n")
		return nil
	}
	a.printf("Back to %s.\n", a.router.Screen())
	return nil
}
