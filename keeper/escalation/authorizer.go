package escalation

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/pkg/util"
)

// Authorizer turns a command into the OS-native prompt that runs it elevated, and recognises a
// declined prompt in the result.
type Authorizer interface {
	Wrap(cmd domain.Command) domain.Command
	Denied(res *domain.CommandResult) bool
}

func DefaultAuthorizer() Authorizer {
	return AuthorizerFor(runtime.GOOS)
}

func AuthorizerFor(goos string) Authorizer {
	if goos == "darwin" {
		return AppleScriptAuthorizer{}
	}
	return PolkitAuthorizer{}
}

// AppleScriptAuthorizer uses "do shell script ... with administrator privileges".
type AppleScriptAuthorizer struct{}

func (AppleScriptAuthorizer) Wrap(cmd domain.Command) domain.Command {
	src := fmt.Sprintf("do shell script %s with administrator privileges", util.AppleScriptString(shellLine(cmd)))
	return domain.NewCommand("osascript", "-e", src).WithDir(cmd.Dir)
}

// Denied matches error -128, which osascript reports when the dialog is cancelled.
func (AppleScriptAuthorizer) Denied(res *domain.CommandResult) bool {
	if res.Success() {
		return false
	}
	return strings.Contains(res.Stderr, "(-128)") || strings.Contains(res.Stderr, "User canceled")
}

// PolkitAuthorizer uses pkexec.
type PolkitAuthorizer struct{}

func (PolkitAuthorizer) Wrap(cmd domain.Command) domain.Command {
	if cmd.Script != "" {
		return domain.NewCommand("pkexec", "sh", "-c", shellLine(cmd)).WithDir(cmd.Dir)
	}
	args := append([]string{cmd.Program}, cmd.Args...)
	return domain.NewCommand("pkexec", args...).WithDir(cmd.Dir)
}

// Denied matches pkexec's exit codes for a dismissed dialog (126) and failed authentication (127).
func (PolkitAuthorizer) Denied(res *domain.CommandResult) bool {
	return res.ExitCode == 126 || res.ExitCode == 127
}

func shellLine(cmd domain.Command) string {
	line := util.ShellJoin(cmd.Program, cmd.Args...)
	if cmd.Script == "" {
		return line
	}
	return "printf '%s' " + util.ShellQuote(cmd.Script) + " | " + line
}
