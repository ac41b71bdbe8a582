//go:build windows

package editor

var defaultEditors = [][]string{
	{"code.cmd", "--wait"},
	{"notepad.exe"},
}
