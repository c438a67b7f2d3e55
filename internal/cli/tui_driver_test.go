package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/tubepile/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to shellModel internals.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the shell over app and drains its initial load.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newShellModel(context.Background(), app)
	d := teatest.New(t, m, teatest.WithSize(140, 60))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) shell() shellModel {
	return d.Model.(shellModel)
}

func (d *TestDriver) Mode() shellMode {
	return d.shell().mode
}

func (d *TestDriver) EditingID() string {
	return d.shell().editingID
}

func (d *TestDriver) Cursor() int {
	return d.shell().cursor
}

// IsQuitting reports a quit from either the model or the runtime.
func (d *TestDriver) IsQuitting() bool {
	return d.shell().quitting || d.Quitting
}
