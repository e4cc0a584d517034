package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/client/scope"
	"github.com/dmitrijs2005/locagri/internal/client/services"
	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// loadOperators returns the directory, loading it within sc when there is
// no cached copy or reload is set. ok is false when nothing can be shown.
func (a *App) loadOperators(sc *scope.Scope, reload bool) (ops []models.Operator, ok bool) {
	a.mu.Lock()
	cached := a.operators
	a.mu.Unlock()
	if cached != nil && !reload {
		return cached.Value, true
	}

	var res services.Result[[]models.Operator]
	applied := scope.Run(sc, a.directory.LoadAll, func(r services.Result[[]models.Operator]) {
		res = r
		if r.Status == services.StatusOK {
			a.mu.Lock()
			a.operators = &r
			a.mu.Unlock()
		}
	})
	if !applied {
		return nil, false
	}

	switch res.Status {
	case services.StatusFailed:
		a.failure("Failed to load operators: %s", res.Err.Error())
		return nil, false
	case services.StatusEmpty:
		a.printf("No operators found.\n")
		return nil, false
	}
	return res.Value, true
}

func (a *App) List(ctx context.Context) error {
	sc, err := a.router.Navigate(router.ScreenHome)
	if err != nil {
		return err
	}
	if ops, ok := a.loadOperators(sc, false); ok {
		a.printOperators(ops)
	}
	return nil
}

// Search lists operators whose "last first" name contains text, ignoring case.
func (a *App) Search(ctx context.Context, text string) error {
	sc, err := a.router.Navigate(router.ScreenHome)
	if err != nil {
		return err
	}
	ops, ok := a.loadOperators(sc, false)
	if !ok {
		return nil
	}
	a.printOperators(filterOperators(ops, text))
	return nil
}

func filterOperators(ops []models.Operator, text string) []models.Operator {
	needle := fold.String(strings.TrimSpace(text))
	out := make([]models.Operator, 0, len(ops))
	for _, o := range ops {
		if strings.Contains(fold.String(o.FullName()), needle) {
			out = append(out, o)
		}
	}
	return out
}

func (a *App) Refresh(ctx context.Context) error {
	sc, err := a.router.Navigate(router.ScreenHome)
	if err != nil {
		return err
	}
	if ops, ok := a.loadOperators(sc, true); ok {
		a.success("Loaded %d operator(s)", len(ops))
	}
	return nil
}

func (a *App) findOperator(sc *scope.Scope, cin string) (models.Operator, bool) {
	ops, ok := a.loadOperators(sc, false)
	if !ok {
		return models.Operator{}, false
	}
	for _, o := range ops {
		if o.CIN == cin {
			return o, true
		}
	}
	return models.Operator{}, false
}
