package cmd

// SessionsCmd manages tmux sessions through the backend
type SessionsCmd struct {
	Create SessionsAddCmd    `cmd:"create" aliases:"add" help:"Create a session on a host"`
	Delete SessionsDelCmd    `cmd:"delete" aliases:"del" help:"Kill a session"`
	List   SessionsListCmd   `cmd:"list" help:"List sessions of every enabled host" default:"1"`
	Rename SessionsRenameCmd `cmd:"rename" help:"Rename a session"`
}
