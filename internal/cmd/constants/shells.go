package constants

// Shells the completion command can generate scripts for.
const (
	ShellBash       = "bash"
	ShellZsh        = "zsh"
	ShellFish       = "fish"
	ShellPowerShell = "powershell"
)

// Shells returns the supported shells in help order.
func Shells() []string {
	return []string{ShellBash, ShellZsh, ShellFish, ShellPowerShell}
}
