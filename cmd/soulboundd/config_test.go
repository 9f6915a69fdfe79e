package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iov-one/soulbound/errors"
	"github.com/iov-one/soulbound/soulboundtest/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		return path
	}

	cases := map[string]struct {
		path    string
		env     map[string]string
		wantErr *errors.Error
		check   func(t *testing.T, c *Config)
	}{
		"defaults": {
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "soulbound-local", c.ChainID)
				assert.Equal(t, "info", c.LogLevel)
				assert.Equal(t, filepath.Join(defaultHome(), "data", "soulbound.db"), c.DBPath())
			},
		},
		"yaml file": {
			path: write("full.yml", "home: /tmp/sb\nchain_id: main\nlog_level: debug\nclock_offset: 90s\n"),
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "/tmp/sb", c.Home)
				assert.Equal(t, "main", c.ChainID)
				assert.Equal(t, "debug", c.LogLevel)
				assert.Equal(t, 90*time.Second, c.ClockOffset)
			},
		},
		"environment overrides the file": {
			path: write("env.yml", "chain_id: main\n"),
			env:  map[string]string{"SOULBOUND_CHAIN_ID": "staging", "SOULBOUND_DEBUG": "true"},
			check: func(t *testing.T, c *Config) {
				assert.Equal(t, "staging", c.ChainID)
				assert.Equal(t, true, c.Debug)
			},
		},
		"unknown log level": {
			path:    write("level.yml", "log_level: verbose\n"),
			wantErr: errors.ErrInput,
		},
		"empty chain id": {
			env:     map[string]string{"SOULBOUND_CHAIN_ID": ""},
			wantErr: errors.ErrInput,
		},
		"missing file": {
			path:    filepath.Join(dir, "nope.yml"),
			wantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			c, err := LoadConfig(tc.path, nil)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
				return
			}
			require.NoError(t, err)
			tc.check(t, c)
		})
	}
}

func TestBlockTimeOffset(t *testing.T) {
	c := &Config{ClockOffset: -time.Hour}
	assert.Equal(t, true, c.BlockTime().Before(time.Now().Add(-59*time.Minute)))
}
