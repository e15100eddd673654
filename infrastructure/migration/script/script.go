package main

import (
	"context"
	"database/sql"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-advisor-api/internal/config"
	"golang.org/x/crypto/bcrypt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            SERIAL PRIMARY KEY,
		name          VARCHAR(255) NOT NULL,
		email         VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		active        BOOLEAN NOT NULL DEFAULT TRUE,
		role_id       INTEGER NOT NULL DEFAULT 3,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS adset_status (
		adset_id   VARCHAR(64) PRIMARY KEY,
		is_active  BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS adset_decisions (
		id                BIGSERIAL PRIMARY KEY,
		run_id            VARCHAR(32) NOT NULL,
		cycle             SMALLINT NOT NULL,
		adset_id          VARCHAR(64) NOT NULL,
		source_key        VARCHAR(512) NOT NULL,
		sub_source_key    VARCHAR(512) NOT NULL,
		day               VARCHAR(10) NOT NULL DEFAULT '',
		action            VARCHAR(32) NOT NULL,
		reason            TEXT NOT NULL,
		suggestion        TEXT NOT NULL,
		budget_change_pct INTEGER NOT NULL,
		priority          INTEGER NOT NULL,
		cpc_rate          VARCHAR(32) NOT NULL DEFAULT '',
		cost              DOUBLE PRECISION NOT NULL,
		roi               DOUBLE PRECISION NOT NULL,
		cluster           INTEGER NOT NULL,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, adset_id, day)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_adset_decisions_run ON adset_decisions (run_id)`,
}

func applySchema(tx *sql.Tx) error {
	for i, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			logrus.WithFields(logrus.Fields{
				"statement": i + 1,
				"error":     err.Error(),
			}).Error("ERRO ao aplicar schema")
			return err
		}
	}
	logrus.Infof("Schema aplicado: %d comandos", len(schema))
	return nil
}

// seedAdmin cria o usuário administrador quando ADMIN_EMAIL e ADMIN_PASSWORD estão definidos
func seedAdmin(tx *sql.Tx) error {
	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("ADMIN_EMAIL/ADMIN_PASSWORD não definidos, usuário administrador não criado")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	res, err := tx.Exec(
		`INSERT INTO users (name, email, password_hash, active, role_id) VALUES ($1, $2, $3, TRUE, 1) ON CONFLICT (email) DO NOTHING`,
		"Administrador", email, string(hash),
	)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		logrus.WithField("email", email).Info("Usuário administrador já existe")
	} else {
		logrus.WithField("email", email).Info("Usuário administrador criado")
	}
	return nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao carregar configuração")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := applySchema(tx); err != nil {
			return err
		}
		return seedAdmin(tx)
	})
	if err != nil {
		logrus.WithError(err).Fatal("ERRO na migração, transação desfeita")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
