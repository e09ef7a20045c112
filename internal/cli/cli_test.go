package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/franciscosanchezn/pizzeria-api/internal/cli"
	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := cli.NewRootCmdForTest()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func openDB(t *testing.T, path string) *gorm.DB {
	t.Helper()
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestCreateClientCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pizzeria.sqlite")

	out, err := run(t, "create-client", "--sqlite", dbPath, "--role", "admin", "--id", "ops-client", "--secret", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Client ID: ops-client")
	assert.Contains(t, out, "Client Secret: s3cret")
	assert.Contains(t, out, "Role: admin (user admin@pizzeria.local)")

	db := openDB(t, dbPath)
	var client models.OAuthClient
	require.NoError(t, db.First(&client, "id = ?", "ops-client").Error)
	assert.NotEqual(t, "s3cret", client.Secret, "secret is stored hashed")
	assert.True(t, client.VerifyPassword("s3cret"))
	assert.Equal(t, "client_credentials", client.GrantTypes)
	assert.Equal(t, "pizzas:read pizzas:write", client.Scopes)

	var owner models.User
	require.NoError(t, db.First(&owner, client.UserID).Error)
	assert.Equal(t, models.RoleAdmin, owner.Role)
}

func TestCreateClientCmd_GeneratesCredentials(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pizzeria.sqlite")

	out, err := run(t, "create-client", "--sqlite", dbPath, "--role", "user")
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`Client ID: user-client-[0-9a-f]{8}\n`), out)
	assert.Regexp(t, regexp.MustCompile(`Client Secret: [0-9a-f-]{36}\n`), out)
}

func TestCreateClientCmd_Rejects(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pizzeria.sqlite")

	_, err := run(t, "create-client", "--sqlite", dbPath, "--role", "chef")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")

	_, err = run(t, "create-client", "--sqlite", dbPath, "--id", "dup", "--secret", "one")
	require.NoError(t, err)
	_, err = run(t, "create-client", "--sqlite", dbPath, "--id", "dup", "--secret", "two")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = run(t, "create-client", "--sqlite", dbPath, "--role", "user", "--email", "admin@pizzeria.local")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `already exists with role "admin"`)
}

func TestSeedCmd(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pizzeria.sqlite")
	seedPath := filepath.Join(dir, "menu.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`pizzas:
  - name: Diavola
    description: Spicy salami
    price: "13.40"
  - name: Bianca
    description: No tomato
    price: "9.00"
    available: false
customers:
  - id: "42"
    name: Ana
    email: ana@example.com
    phone_number: "600000042"
`), 0644))

	out, err := run(t, "seed", "--sqlite", dbPath, "--file", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 2 pizzas and 1 customers")

	out, err = run(t, "seed", "--sqlite", dbPath, "--file", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "nothing seeded")

	_, err = run(t, "seed", "--sqlite", dbPath, "--file", seedPath, "--force")
	require.NoError(t, err)

	db := openDB(t, dbPath)
	var pizzas, customers int64
	require.NoError(t, db.Model(&models.Pizza{}).Count(&pizzas).Error)
	require.NoError(t, db.Model(&models.Customer{}).Count(&customers).Error)
	assert.Equal(t, int64(4), pizzas, "force appends the pizzas again")
	assert.Equal(t, int64(1), customers, "customers are upserted by id")
}

func TestSeedCmd_MissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "seed", "--sqlite", filepath.Join(dir, "pizzeria.sqlite"), "--file", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading seed file")
}

func TestPurgeTokensCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pizzeria.sqlite")
	_, err := run(t, "seed", "--sqlite", dbPath)
	require.NoError(t, err)

	db := openDB(t, dbPath)
	now := time.Now().UTC()
	require.NoError(t, db.Create(&models.OAuthToken{ClientID: "c", AccessToken: "stale", ExpiresAt: now.Add(-time.Hour)}).Error)
	require.NoError(t, db.Create(&models.OAuthToken{ClientID: "c", AccessToken: "live", ExpiresAt: now.Add(time.Hour)}).Error)

	out, err := run(t, "purge-tokens", "--sqlite", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 1 expired tokens")

	var remaining []models.OAuthToken
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "live", remaining[0].AccessToken)
}
