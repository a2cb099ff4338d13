package dump

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/pgsplit/internal/engine"
	"github.com/vvka-141/pgsplit/internal/logging"
	"github.com/vvka-141/pgsplit/internal/testinfra"
)

const integrationSeed = `CREATE SCHEMA app;

CREATE TABLE app.users (
    id integer NOT NULL,
    email text
);

ALTER TABLE ONLY app.users
    ADD CONSTRAINT users_pkey PRIMARY KEY (id);

CREATE INDEX users_email_idx ON app.users (email);

CREATE VIEW app.active_users AS SELECT id, email FROM app.users;

CREATE FUNCTION app.touch() RETURNS trigger LANGUAGE plpgsql AS $$ BEGIN RETURN NEW; END; $$;

CREATE TRIGGER users_touch BEFORE UPDATE ON app.users FOR EACH ROW EXECUTE FUNCTION app.touch();
`

// TestIntegration_SplitLiveDump dumps a seeded server with the real pg_dump
// and splits the output. It needs Docker and a pg_dump binary on PATH, so it
// only runs with PGSPLIT_INTEGRATION=1.
func TestIntegration_SplitLiveDump(t *testing.T) {
	if !testinfra.IntegrationEnabled() {
		t.Skipf("set %s=1 to run integration tests", testinfra.IntegrationEnvVar)
	}
	if _, err := exec.LookPath(DefaultBinary); err != nil {
		t.Skipf("%s not found on PATH", DefaultBinary)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	ctr, err := testinfra.StartPostgres(ctx, integrationSeed)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctr.Terminate(context.Background()) })

	logger := logging.NewConsoleLogger(testing.Verbose())
	out, err := NewRunner(logger).Run(ctx, Options{Conninfo: ctr.ConnString})
	require.NoError(t, err)
	require.NotEmpty(t, out)

	eng := engine.New(logger)
	tree, err := eng.Split(out)
	require.NoError(t, err)

	paths := tree.Paths()
	assert.Contains(t, paths, "SCHEMAS/app.sql")
	assert.Contains(t, paths, "app/TABLES/users.sql")
	assert.Contains(t, paths, "app/VIEWS/active_users.sql")
	assert.Contains(t, paths, "app/TRIGGER_FUNCTIONS/touch.sql")
	assert.Contains(t, paths, "app/TRIGGERS/users_touch.sql")
	assert.Contains(t, paths, "index.sql")

	// A second dump of the same untouched server splits to the identical
	// tree, which is the whole point of the tool.
	out2, err := NewRunner(logger).Run(ctx, Options{Conninfo: ctr.ConnString})
	require.NoError(t, err)
	tree2, err := eng.Split(out2)
	require.NoError(t, err)
	assert.Equal(t, eng.Checksum(tree), eng.Checksum(tree2))
}
