package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/locagri/internal/client/config"
	"github.com/dmitrijs2005/locagri/internal/client/models"
	"github.com/dmitrijs2005/locagri/internal/logging"
	"github.com/dmitrijs2005/locagri/internal/rpc"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Querier runs a record query against the remote store.
type Querier interface {
	Query(ctx context.Context, q rpc.Query) ([]rpc.Row, error)
}

type imageSource interface {
	Resolve(ctx context.Context, id string) string
}

var operatorsQuery = rpc.Query{
	Table:   "operators",
	Columns: []string{"cin_id", "last_name", "first_name", "sex", "birth_date", "created_at", "type_id"},
}.Join("operator_types", "label")

// DirectoryLoader fetches every operator with its type label and profile
// image URL, sorted by family name.
type DirectoryLoader struct {
	store       Querier
	images      imageSource
	concurrency int
	locale      language.Tag
	logger      logging.Logger
}

func NewDirectoryLoader(store Querier, images imageSource, cfg *config.Config, logger logging.Logger) *DirectoryLoader {
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		tag = language.French
	}
	n := cfg.FetchConcurrency
	if n < 1 {
		n = 1
	}
	return &DirectoryLoader{
		store:       store,
		images:      images,
		concurrency: n,
		locale:      tag,
		logger:      logger.With("module", "directory"),
	}
}

func (l *DirectoryLoader) LoadAll(ctx context.Context) Result[[]models.Operator] {
	rows, err := l.store.Query(ctx, operatorsQuery)
	if err != nil {
		l.logger.Error(ctx, "error fetching operators", "error", err)
		return Failed[[]models.Operator](err)
	}

	ops := make([]models.Operator, 0, len(rows))
	for _, row := range rows {
		o, err := operatorFromRow(row)
		if err != nil {
			l.logger.Warn(ctx, "skipping malformed operator row", "error", err)
			continue
		}
		ops = append(ops, o)
	}
	if len(ops) == 0 {
		return Empty([]models.Operator{})
	}

	var g errgroup.Group
	g.SetLimit(l.concurrency)
	for i := range ops {
		g.Go(func() error {
			ops[i].ImageURL = l.images.Resolve(ctx, ops[i].CIN)
			return nil
		})
	}
	_ = g.Wait()

	SortByFamilyName(ops, l.locale)
	return OK(ops)
}

// SortByFamilyName sorts ops in place by LastName using the collation
// rules of locale. Equal names keep their order.
func SortByFamilyName(ops []models.Operator, locale language.Tag) {
	c := collate.New(locale)
	sort.SliceStable(ops, func(i, j int) bool {
		return c.CompareString(ops[i].LastName, ops[j].LastName) < 0
	})
}
