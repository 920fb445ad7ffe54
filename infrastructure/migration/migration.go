// Package migration aplica os scripts SQL embutidos no binário, em ordem de nome.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vendor-dashboard-api/infrastructure/database/postgres"
)

//go:embed sql/*.up.sql
var scripts embed.FS

const createVersionTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
    version    VARCHAR(255) PRIMARY KEY,
    applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
)`

// Files lista os scripts embutidos em ordem de aplicação
func Files() ([]string, error) {
	entries, err := fs.ReadDir(scripts, "sql")
	if err != nil {
		return nil, fmt.Errorf("migration: erro ao ler scripts: %w", err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".up.sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	return files, nil
}

// Run aplica os scripts que ainda não constam em schema_migrations.
// Cada script roda na sua própria transação.
func Run(ctx context.Context, conn postgres.Conn) (int, error) {
	if _, err := conn.Exec(ctx, createVersionTable); err != nil {
		return 0, fmt.Errorf("migration: erro ao criar tabela de versões: %w", err)
	}

	files, err := Files()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, name := range files {
		var exists bool
		err := conn.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)", name).Scan(&exists)
		if err != nil {
			return applied, fmt.Errorf("migration: erro ao verificar versão %s: %w", name, err)
		}
		if exists {
			continue
		}

		content, err := scripts.ReadFile("sql/" + name)
		if err != nil {
			return applied, fmt.Errorf("migration: erro ao ler %s: %w", name, err)
		}

		err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, string(content)); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES ($1)", name)
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("migration: erro ao aplicar %s: %w", name, err)
		}

		logrus.Infof("Migração aplicada: %s", name)
		applied++
	}

	return applied, nil
}
