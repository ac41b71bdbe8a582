package editor

import (
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOpener(available map[string]bool) (*Opener, *[]*exec.Cmd) {
	var ran []*exec.Cmd
	o := &Opener{
		lookPath: func(name string) (string, error) {
			if available[name] {
				return "/usr/bin/" + name, nil
			}
			return "", exec.ErrNotFound
		},
		run: func(cmd *exec.Cmd) error {
			ran = append(ran, cmd)
			return nil
		},
	}
	return o, &ran
}

func TestOpen_Priority(t *testing.T) {
	tests := []struct {
		name      string
		cliEditor string
		env       map[string]string
		want      []string
	}{
		{
			name:      "flag wins",
			cliEditor: "hx",
			env:       map[string]string{"MUXDECK_EDITOR": "emacs", "EDITOR": "vi"},
			want:      []string{"hx", "/tmp/settings.json"},
		},
		{
			name: "muxdeck editor before visual",
			env:  map[string]string{"MUXDECK_EDITOR": "code --wait", "VISUAL": "vim"},
			want: []string{"code", "--wait", "/tmp/settings.json"},
		},
		{
			name: "visual before editor",
			env:  map[string]string{"VISUAL": "vim", "EDITOR": "nano"},
			want: []string{"vim", "/tmp/settings.json"},
		},
		{
			name: "editor",
			env:  map[string]string{"EDITOR": "nano"},
			want: []string{"nano", "/tmp/settings.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, k := range []string{"MUXDECK_EDITOR", "VISUAL", "EDITOR"} {
				t.Setenv(k, tt.env[k])
			}
			o, ran := newTestOpener(nil)

			require.NoError(t, o.Open("/tmp/settings.json", tt.cliEditor))

			require.Len(t, *ran, 1)
			assert.Equal(t, tt.want, (*ran)[0].Args)
		})
	}
}

func TestOpen_NoEditor(t *testing.T) {
	for _, k := range []string{"MUXDECK_EDITOR", "VISUAL", "EDITOR"} {
		t.Setenv(k, "")
	}
	o, ran := newTestOpener(nil)

	err := o.Open("/tmp/settings.json", "")

	assert.ErrorContains(t, err, "no suitable editor found")
	assert.Empty(t, *ran)
}

func TestOpen_EmptyPath(t *testing.T) {
	o, _ := newTestOpener(nil)
	assert.Error(t, o.Open("", "vim"))
}

func TestOpen_EditorFailure(t *testing.T) {
	o, _ := newTestOpener(nil)
	o.run = func(*exec.Cmd) error { return errors.New("exit status 1") }

	err := o.Open("/tmp/settings.json", "vim")

	assert.ErrorContains(t, err, "editor vim failed")
}
