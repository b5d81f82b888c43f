package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. *App satisfies it.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Jobs(ctx context.Context, args []string) error
	Post(ctx context.Context) error
	Apply(ctx context.Context, args []string) error
	Mine(ctx context.Context) error
	Accept(ctx context.Context, args []string) error
}

const (
	helpGuest  = "Available commands: register, login, jobs [jid=ID|bid=ID] [page=N], exit"
	helpMember = "Available commands: jobs [jid=ID|bid=ID] [page=N], post, apply <shiftId>, mine, accept <shiftId> <workerId>, whoami, logout, exit"
)

// runREPL reads one command per line from in and dispatches it to a. The
// prompt shows statusFn's decoration. Errors returned by handlers are
// reported on out and the loop goes on. It returns on end of input or on
// "exit" / "quit".
func runREPL(ctx context.Context, a execIface, statusFn func(context.Context) string, in *bufio.Reader, out io.Writer) {
	for {
		prompt := "sb"
		if s := statusFn(ctx); s != "" {
			prompt += " " + s
		}
		fmt.Fprint(out, prompt+"> ")

		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(out, helpMember)
			} else {
				fmt.Fprintln(out, helpGuest)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.WhoAmI(ctx)

		case "jobs", "l":
			cmdErr = a.Jobs(ctx, args)

		case "post":
			cmdErr = a.Post(ctx)

		case "apply":
			cmdErr = a.Apply(ctx, args)

		case "mine":
			cmdErr = a.Mine(ctx)

		case "accept":
			cmdErr = a.Accept(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, describe(cmdErr))
		}

		if errors.Is(ctx.Err(), context.Canceled) {
			return
		}
	}
}
