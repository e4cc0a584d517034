package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	failureColor = color.New(color.FgRed)
	headingColor = color.New(color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

func (a *App) success(format string, args ...any) {
	successColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) failure(format string, args ...any) {
	failureColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) heading(format string, args ...any) {
	headingColor.Fprintf(a.out, format+"\n", args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printOperators(ops []models.Operator) {
	for _, o := range ops {
		a.printf("%-12s %-30s %-14s ", o.CIN, o.FullName(), o.TypeLabel)
		mutedColor.Fprintln(a.out, o.ImageURL)
	}
	a.printf("%d operator(s)\n", len(ops))
}

func (a *App) printOperator(o models.Operator, imageURL string) {
	a.heading("%s %s", o.LastName, o.FirstName)
	rows := [][2]string{
		{"CIN", o.CIN},
		{"Sexe", o.SexLabel()},
		{"Date de naissance", models.FormatDate(o.BirthDate)},
		{"Type", o.TypeLabel},
		{"Créé le", models.FormatDate(o.CreatedAt)},
		{"Image", imageURL},
	}
	for _, r := range rows {
		a.printf("  %-18s %s\n", r[0]+":", r[1])
	}
}

func (a *App) printPlots(plots []models.LandPlot) {
	a.heading("Exploitations (%d)", len(plots))
	for i, p := range plots {
		a.printf("  %d. %.6f, %.6f  %s m²\n", i+1, p.Position.Latitude, p.Position.Longitude, formatArea(p.AreaSqM))
	}
}

func formatArea(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
}
