package ports

// BrowserOpener opens terminal addresses in an external browser
type BrowserOpener interface {
	// Open opens the address
	// cliBrowser is the browser specified via CLI flag (takes precedence)
	Open(address string, cliBrowser string) error
}
