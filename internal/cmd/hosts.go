package cmd

// HostsCmd manages the remote hosts the backend enumerates sessions on
type HostsCmd struct {
	Add    HostsAddCmd    `cmd:"add" help:"Register a remote host"`
	Delete HostsDelCmd    `cmd:"delete" aliases:"del" help:"Remove a remote host"`
	Export HostsExportCmd `cmd:"export" help:"Write every remote host to a YAML file"`
	Import HostsImportCmd `cmd:"import" help:"Add hosts from a YAML file, skipping known ones"`
	List   HostsListCmd   `cmd:"list" help:"List hosts" default:"1"`
	Update HostsUpdateCmd `cmd:"update" help:"Change a remote host"`
}
