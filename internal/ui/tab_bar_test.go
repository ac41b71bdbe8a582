package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/muxdeck/internal/domain"
	"github.com/renato0307/muxdeck/internal/multiplexer"
)

func sessionTabs(names ...string) []multiplexer.SessionTab {
	tabs := make([]multiplexer.SessionTab, len(names))
	for i, name := range names {
		tabs[i] = multiplexer.SessionTab{Key: domain.NewSessionKey("local", name), Windows: 1}
	}
	return tabs
}

func TestRenderSessionTabs_NumbersAndMarks(t *testing.T) {
	tabs := sessionTabs("build", "test", "docs")
	tabs[0].Attached = true
	tabs[1].Pending = true
	tabs[2].Warm = true

	row := renderSessionTabs(multiplexer.View{SessionTabs: tabs}, "~", 200)

	assert.Contains(t, row, "1 build*")
	assert.Contains(t, row, "~ ")
	assert.Contains(t, row, "2 test")
	assert.Contains(t, row, warmMark+" ")
	assert.Contains(t, row, "3 docs")
}

func TestRenderSessionTabs_ListErrorReplacesTabs(t *testing.T) {
	v := multiplexer.View{ListError: "backend down", SessionTabs: sessionTabs("build")}

	row := renderSessionTabs(v, "~", 200)

	assert.Contains(t, row, "Failed to load sessions: backend down")
	assert.NotContains(t, row, "build")
}

func TestRenderSessionTabs_Empty(t *testing.T) {
	assert.Contains(t, renderSessionTabs(multiplexer.View{}, "~", 80), "no sessions")
}

func TestRenderSessionTabs_NarrowKeepsActiveInView(t *testing.T) {
	var names []string
	for i := range 12 {
		names = append(names, "session-"+string(rune('a'+i)))
	}
	tabs := sessionTabs(names...)
	tabs[10].Active = true

	row := renderSessionTabs(multiplexer.View{SessionTabs: tabs}, "~", 60)

	assert.Contains(t, row, "session-k")
	assert.Contains(t, row, "‹")
	assert.NotContains(t, row, "session-a")
}

func TestRenderHostTabs(t *testing.T) {
	row := renderHostTabs([]multiplexer.HostTab{
		{Active: true, Count: 2, HostID: "local", Name: "Local"},
		{Count: 1, HostID: "srv1", Name: "Server 1"},
	})

	assert.Contains(t, row, "Local")
	assert.Contains(t, row, "Server 1")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "build", truncate("build", 10))
	assert.Equal(t, "bui…", truncate("building", 4))
	assert.Equal(t, "…", truncate("building", 1))
	assert.Equal(t, 10, len([]rune(truncate(strings.Repeat("x", 40), 10))))
}
