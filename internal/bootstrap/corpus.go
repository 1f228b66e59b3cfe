package bootstrap

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"mindcare/internal/config"
	"mindcare/internal/corpus"
	"mindcare/internal/db"
	"mindcare/internal/repository"
)

// LoadCorpus arma la cadena de fuentes (Postgres, archivo, integrado) y carga el corpus.
// El corpus se lee una sola vez, así que el pool se cierra al terminar.
func LoadCorpus(ctx context.Context, cfg *config.Config, logger *zap.Logger) *corpus.Corpus {
	var (
		sources []corpus.Source
		pool    *pgxpool.Pool
	)

	if cfg.DatabaseURL != "" {
		p, err := db.OpenCorpusPool(ctx, cfg.DatabaseURL, 3*time.Second)
		if err != nil {
			logger.Warn("postgres unavailable, skipping postgres corpus", zap.Error(err))
		} else {
			pool = p
			sources = append(sources, repository.NewPgTemplateRepository(pool))
		}
	}
	if cfg.CorpusPath != "" {
		sources = append(sources, corpus.FileSource{Path: cfg.CorpusPath})
	}
	sources = append(sources, corpus.BuiltinSource{})

	if pool != nil {
		defer pool.Close()
	}
	return corpus.NewLoader(logger, sources...).Load(ctx)
}
