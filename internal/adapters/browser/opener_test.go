package browser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	name string
	args []string
	err  error
}

func (r *recorder) start(name string, args ...string) error {
	r.name = name
	r.args = args
	return r.err
}

func TestOpen_CLIBrowserWins(t *testing.T) {
	t.Setenv("MUXDECK_BROWSER", "envbrowser")
	rec := &recorder{}
	o := &Opener{start: rec.start}

	require.NoError(t, o.Open("http://localhost:5000/terminal/1", "mybrowser"))

	assert.Equal(t, "mybrowser", rec.name)
	assert.Equal(t, []string{"http://localhost:5000/terminal/1"}, rec.args)
}

func TestOpen_EnvPrecedence(t *testing.T) {
	t.Setenv("MUXDECK_BROWSER", "envbrowser")
	t.Setenv("BROWSER", "generic")
	rec := &recorder{}
	o := &Opener{start: rec.start}

	require.NoError(t, o.Open("https://box.lan:7681", ""))
	assert.Equal(t, "envbrowser", rec.name)

	t.Setenv("MUXDECK_BROWSER", "")
	require.NoError(t, o.Open("https://box.lan:7681", ""))
	assert.Equal(t, "generic", rec.name)
}

func TestOpen_RejectsNonWebAddress(t *testing.T) {
	o := &Opener{start: (&recorder{}).start}

	assert.Error(t, o.Open("", "x"))
	assert.Error(t, o.Open("file:///etc/passwd", "x"))
	assert.Error(t, o.Open("localhost:5000", "x"))
}

func TestOpen_StartFailure(t *testing.T) {
	rec := &recorder{err: errors.New("exec: not found")}
	o := &Opener{start: rec.start}

	err := o.Open("http://localhost:5000", "nope")

	assert.ErrorContains(t, err, "failed to start browser")
}
