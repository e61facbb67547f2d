package domain

import (
	"slices"
	"strconv"
	"strings"
	"time"
)

// Command describes one external invocation. It is a value: the With* helpers return modified
// copies and never share the argument slice with the receiver.
type Command struct {
	Program    string
	Args       []string
	Script     string
	Dir        string
	Env        []string
	Timeout    time.Duration
	Privileged bool
}

func NewCommand(program string, args ...string) Command {
	return Command{Program: program, Args: slices.Clone(args)}
}

// WithEnv adds KEY=value pairs on top of the inherited environment.
func (c Command) WithEnv(kv ...string) Command {
	c.Args = slices.Clone(c.Args)
	c.Env = append(slices.Clone(c.Env), kv...)
	return c
}

func (c Command) WithTimeout(timeout time.Duration) Command {
	c.Args = slices.Clone(c.Args)
	c.Timeout = timeout
	return c
}

func (c Command) WithDir(dir string) Command {
	c.Args = slices.Clone(c.Args)
	c.Dir = dir
	return c
}

// WithScript sets a body that is fed to the program on stdin.
func (c Command) WithScript(script string) Command {
	c.Args = slices.Clone(c.Args)
	c.Script = script
	return c
}

func (c Command) Elevated() Command {
	c.Args = slices.Clone(c.Args)
	c.Privileged = true
	return c
}

// String renders the command line for logs. Script bodies are not included.
func (c Command) String() string {
	var b strings.Builder
	b.WriteString(c.Program)
	for _, arg := range c.Args {
		b.WriteByte(' ')
		if arg == "" || strings.ContainsAny(arg, " \t\"'\\") {
			b.WriteString(strconv.Quote(arg))
			continue
		}
		b.WriteString(arg)
	}
	return b.String()
}

// CommandResult is produced exactly once per completed execution.
type CommandResult struct {
	Command   Command
	Stdout    string
	Stderr    string
	ExitCode  int
	StartedAt time.Time
	Duration  time.Duration
	Truncated bool
}

func (r *CommandResult) Success() bool {
	return r != nil && r.ExitCode == 0
}

// RequireSuccess turns a non-zero exit into a CommandError of kind ErrCommandFailed.
func RequireSuccess(res *CommandResult) error {
	if res.Success() {
		return nil
	}
	return &CommandError{
		Kind:     ErrCommandFailed,
		Command:  res.Command.String(),
		ExitCode: res.ExitCode,
		Stderr:   strings.TrimSpace(res.Stderr),
	}
}
