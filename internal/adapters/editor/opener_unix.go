//go:build !windows

package editor

// Terminal editors first; GUI editors need their wait flag
var defaultEditors = [][]string{
	{"nano"},
	{"vim"},
	{"vi"},
	{"code", "--wait"},
}
