package cli

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-sales-api/internal/config"
	"github.com/vfg2006/vehicle-sales-api/internal/domain"
)

func memoryConfig() (*config.Config, error) {
	return &config.Config{
		Data: config.Data{Source: config.DataSourceMemory, Seed: 42, VehicleCount: 10},
	}, nil
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand(&RootOptions{loadConfig: memoryConfig})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "salesctl", cmd.Use)

	for _, name := range []string{"report", "seed"} {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			assert.Equal(t, name, subCmd.Name())
		})
	}

	verbose := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestReportCommand(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantPrefix string
		wantParts  []string
	}{
		{
			name:       "Texto é o padrão",
			args:       []string{"report"},
			wantPrefix: "Vehicle Sales Dashboard Report",
			wantParts:  []string{"Executive Summary", "Top 10 Brand Performance"},
		},
		{
			name:       "CSV",
			args:       []string{"report", "--format", "csv"},
			wantPrefix: "Vehicle Sales Dashboard Report",
			wantParts:  []string{"Year,Units Sold,Revenue ($M),Growth Rate (%)", "Brand,Units Sold,Revenue ($M),Market Share (%)"},
		},
		{
			name:       "JSON",
			args:       []string{"report", "-f", "json", "--seed", "7"},
			wantPrefix: "{",
			wantParts:  []string{`"executive_summary"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(out, tt.wantPrefix), out)
			for _, part := range tt.wantParts {
				assert.Contains(t, out, part)
			}
		})
	}
}

func TestReportCommand_JSONIsDecodable(t *testing.T) {
	out, err := execute(t, "report", "--format", "json")
	require.NoError(t, err)

	var report domain.SalesReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Yearly, 3)
	assert.LessOrEqual(t, len(report.Brands), 10)
}

func TestReportCommand_Errors(t *testing.T) {
	_, err := execute(t, "report", "--format", "pdf")
	assert.ErrorContains(t, err, "formato inválido")

	_, err = execute(t, "report", "--source", "csv")
	assert.ErrorIs(t, err, config.ErrInvalidDataSource)
}

type fakeSeedConn struct {
	closed bool
	err    error
}

func (f *fakeSeedConn) RunInTransaction(context.Context, func(*sql.Tx) error) error {
	return f.err
}

func (f *fakeSeedConn) Close() error {
	f.closed = true
	return nil
}

func TestSeedCommand(t *testing.T) {
	previous := connectSeedDatabase
	t.Cleanup(func() { connectSeedDatabase = previous })

	t.Run("Grava os dados gerados", func(t *testing.T) {
		conn := &fakeSeedConn{}
		connectSeedDatabase = func(context.Context, config.Database) (seedConn, error) {
			return conn, nil
		}

		out, err := execute(t, "seed", "--batch-size", "50")
		require.NoError(t, err)

		assert.Contains(t, out, "10 veículos gravados")
		assert.True(t, conn.closed)
	})

	t.Run("Falha de conexão", func(t *testing.T) {
		connectSeedDatabase = func(context.Context, config.Database) (seedConn, error) {
			return nil, errors.New("connection refused")
		}

		_, err := execute(t, "seed")
		assert.ErrorContains(t, err, "connection refused")
	})

	t.Run("Falha na transação", func(t *testing.T) {
		conn := &fakeSeedConn{err: errors.New("deadlock")}
		connectSeedDatabase = func(context.Context, config.Database) (seedConn, error) {
			return conn, nil
		}

		_, err := execute(t, "seed")
		assert.ErrorContains(t, err, "deadlock")
		assert.True(t, conn.closed)
	})
}
