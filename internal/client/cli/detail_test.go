package cli

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/client/router"
	"github.com/dmitrijs2005/locagri/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow_RendersDetail(t *testing.T) {
	fc := &fakeClient{
		session: sessionFor("u1"),
		queryFn: directoryFixture,
		urls:    map[string]string{"Agriculteur_PP/AB1.png": "http://s3/AB1.png"},
	}
	a, out := newTestApp(t, fc, testConfig(), "")

	require.NoError(t, a.Show(context.Background(), "AB1"))

	s := out.String()
	assert.Contains(t, s, "Alami Sara")
	assert.Contains(t, s, "Femme")
	assert.Contains(t, s, "12/05/1980")
	assert.Contains(t, s, "02/01/2024")
	assert.Contains(t, s, "Agriculteur")
	assert.Contains(t, s, "http://s3/AB1.png")
	assert.Contains(t, s, "Exploitations (2)")
	assert.Contains(t, s, "33.500000, -7.600000  1500 m²")
	assert.Contains(t, s, "250.5 m²")
	assert.Equal(t, router.ScreenDetail, a.router.Screen())

	require.NoError(t, a.Back(context.Background()))
	assert.Equal(t, router.ScreenHome, a.router.Screen())
}

func TestShow_NoPlots(t *testing.T) {
	fc := &fakeClient{session: sessionFor("u1"), queryFn: directoryFixture}
	a, out := newTestApp(t, fc, testConfig(), "")

	require.NoError(t, a.Show(context.Background(), "ZZ9"))
	assert.Contains(t, out.String(), "Homme")
	assert.Contains(t, out.String(), "No land plots.")
}

func TestShow_NotFound(t *testing.T) {
	fc := &fakeClient{session: sessionFor("u1"), queryFn: directoryFixture}
	a, out := newTestApp(t, fc, testConfig(), "")

	err := a.Show(context.Background(), "NOPE")
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.Contains(t, out.String(), "Operator not found: NOPE")
}

func TestShow_ProbeFallsBackToDefaultImage(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer broken.Close()

	fc := &fakeClient{
		session: sessionFor("u1"),
		queryFn: directoryFixture,
		urls: map[string]string{
			"Agriculteur_PP/AB1.png":     broken.URL + "/AB1.png",
			"Agriculteur_PP/Default.png": "http://s3/Default.png",
		},
	}
	cfg := testConfig()
	cfg.ProbeImages = true
	a, out := newTestApp(t, fc, cfg, "")

	require.NoError(t, a.Show(context.Background(), "AB1"))
	assert.Contains(t, out.String(), "http://s3/Default.png")
	assert.NotContains(t, out.String(), broken.URL)
}

func TestDisplayImage_ProbeSeam(t *testing.T) {
	orig := probeImage
	t.Cleanup(func() { probeImage = orig })

	fc := &fakeClient{session: sessionFor("u1"), urls: map[string]string{}}
	cfg := testConfig()
	cfg.ProbeImages = true
	a, _ := newTestApp(t, fc, cfg, "")
	sc := a.router.Scope()

	probeImage = func(context.Context, *http.Client, string) error { return nil }
	assert.Equal(t, "http://ok", a.displayImage(sc, operatorWithImage("http://ok")))

	probeImage = func(context.Context, *http.Client, string) error { return errors.New("404") }
	assert.Equal(t, "https://via.placeholder.com/100", a.displayImage(sc, operatorWithImage("http://bad")))
}

func operatorWithImage(url string) models.Operator {
	return models.Operator{CIN: "X", ImageURL: url}
}
