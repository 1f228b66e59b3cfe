package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

const corpusAppName = "mindcare-corpus"

// corpusPoolConfig arma la configuración del pool que lee el corpus.
// Las sesiones quedan en solo lectura: el servicio nunca escribe plantillas.
func corpusPoolConfig(databaseURL string) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	// Solo se lee el corpus al arrancar: pocas conexiones alcanzan.
	poolCfg.MaxConns = 4
	poolCfg.MinConns = 0
	poolCfg.MaxConnLifetime = 30 * time.Minute
	poolCfg.MaxConnIdleTime = time.Minute
	poolCfg.HealthCheckPeriod = time.Minute
	poolCfg.ConnConfig.ConnectTimeout = 5 * time.Second

	params := poolCfg.ConnConfig.RuntimeParams
	params["default_transaction_read_only"] = "on"
	if params["application_name"] == "" {
		params["application_name"] = corpusAppName
	}
	return poolCfg, nil
}

// OpenCorpusPool abre el pool y verifica la conexión antes de devolverlo.
// Si el ping falla el pool se cierra y se devuelve el error.
func OpenCorpusPool(ctx context.Context, databaseURL string, pingTimeout time.Duration) (*pgxpool.Pool, error) {
	poolCfg, err := corpusPoolConfig(databaseURL)
	if err != nil {
		return nil, err
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open corpus pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping corpus db: %w", err)
	}
	return pool, nil
}
