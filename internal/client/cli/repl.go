package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the minimal command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	SubmitReport(ctx context.Context) error
	ListReports(ctx context.Context, args []string) error
	NearbyReports(ctx context.Context) error
	ShowReport(ctx context.Context, args []string) error
	SetReportStatus(ctx context.Context, args []string) error
	DeleteReport(ctx context.Context, args []string) error
	AddComment(ctx context.Context, args []string) error
	SetRole(ctx context.Context, args []string) error
}

// runREPL reads lines from the scanner, parses the first token as the
// command, and dispatches to methods on a. The loop exits on scanner EOF or
// when the user types "exit" or "quit".
//
// Command handlers print their own errors; the loop only reports ones they
// return, keeping it resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fw %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: report, (l)ist, nearby, show <id>, status <id> <status>, delete <id>, comment <id>, setrole <uid> <role>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, resetpw, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "resetpw":
			err = a.ResetPassword(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "report":
			err = a.SubmitReport(ctx)

		case "l", "list":
			err = a.ListReports(ctx, args)

		case "nearby":
			err = a.NearbyReports(ctx)

		case "show":
			err = a.ShowReport(ctx, args)

		case "status":
			err = a.SetReportStatus(ctx, args)

		case "delete":
			err = a.DeleteReport(ctx, args)

		case "comment":
			err = a.AddComment(ctx, args)

		case "setrole":
			err = a.SetRole(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}
