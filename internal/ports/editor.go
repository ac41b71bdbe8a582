package ports

// EditorOpener opens a file in an editor and returns once it exits
type EditorOpener interface {
	// Open edits path
	// cliEditor is the editor specified via CLI flag (takes precedence)
	Open(path string, cliEditor string) error
}
