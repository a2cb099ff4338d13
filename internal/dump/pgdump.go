package dump

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/joho/godotenv"
	"github.com/vvka-141/pgsplit/pkg/pgsplit"
)

// DefaultBinary is the pg_dump executable name resolved via PATH when no
// explicit binary is configured.
const DefaultBinary = "pg_dump"

// maxStderrLines caps how much subprocess stderr is retained for error
// reporting. pg_dump failures are short; anything longer is noise.
const maxStderrLines = 40

// Options configure one dump run.
type Options struct {
	// Binary is the pg_dump executable; defaults to DefaultBinary.
	Binary string

	// Conninfo is a libpq connection string or URI, passed to pg_dump via
	// --dbname. It is validated with pgconn.ParseConfig before the
	// subprocess starts, so malformed conninfo fails fast with a local
	// error instead of a cryptic subprocess one.
	Conninfo string

	// EnvFile, when non-empty, is a dotenv file loaded into the subprocess
	// environment before invocation. Lets PGPASSWORD and friends live
	// outside the shell history.
	EnvFile string
}

// Runner invokes pg_dump and returns the dump text.
type Runner struct {
	log pgsplit.Logger
}

// NewRunner creates a Runner. Panics if log is nil.
func NewRunner(log pgsplit.Logger) *Runner {
	if log == nil {
		panic("log cannot be nil")
	}
	return &Runner{log: log}
}

// Run executes pg_dump with --schema-only and returns its stdout. The
// context bounds the whole subprocess lifetime; cancellation kills it.
func (r *Runner) Run(ctx context.Context, opts Options) ([]byte, error) {
	binary := opts.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cfg, err := pgconn.ParseConfig(opts.Conninfo)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid conninfo: %v", pgsplit.ErrInvalidConfig, err)
	}

	env := os.Environ()
	if opts.EnvFile != "" {
		fileEnv, err := godotenv.Read(opts.EnvFile)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to read env file %s: %v", pgsplit.ErrInvalidConfig, opts.EnvFile, err)
		}
		for k, v := range fileEnv {
			env = append(env, k+"="+v)
		}
		r.log.Verbose("loaded %d variables from %s", len(fileEnv), opts.EnvFile)
	}

	runID := uuid.NewString()
	r.log.Verbose("[%s] dumping %s@%s:%d/%s with %s",
		runID, cfg.User, cfg.Host, cfg.Port, cfg.Database, binary)

	cmd := exec.CommandContext(ctx, binary,
		"--schema-only",
		"--no-sync",
		"--dbname", opts.Conninfo,
	)
	cmd.Env = env
	cmd.Stdin = nil

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &Error{Binary: binary, Cause: err}
	}

	if err := cmd.Start(); err != nil {
		return nil, &Error{Binary: binary, Cause: err}
	}

	// Drain stderr concurrently. pg_dump can emit a lot of warnings; a
	// full pipe would deadlock the subprocess.
	stderrLines := make(chan []string, 1)
	go func() {
		var lines []string
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			lines = append(lines, sc.Text())
			if len(lines) > maxStderrLines {
				lines = lines[1:]
			}
		}
		stderrLines <- lines
	}()

	waitErr := cmd.Wait()
	lines := <-stderrLines

	if waitErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, &Error{Binary: binary, Cause: ctxErr, Stderr: lines}
		}
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return nil, &Error{Binary: binary, ExitCode: exitErr.ExitCode(), Stderr: lines}
		}
		return nil, &Error{Binary: binary, Cause: waitErr, Stderr: lines}
	}

	for _, line := range lines {
		r.log.Verbose("[%s] pg_dump: %s", runID, line)
	}
	r.log.Verbose("[%s] dump complete, %d bytes", runID, stdout.Len())

	return stdout.Bytes(), nil
}
