package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListVitals(ctx context.Context) error
	AddVitals(ctx context.Context) error
	DeleteVitals(ctx context.Context, args []string) error
	ListDocuments(ctx context.Context) error
	UploadDocument(ctx context.Context) error
	DeleteDocument(ctx context.Context, args []string) error
	Chat(ctx context.Context) error
	Summary(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the healthtrack CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - vitals         — list vital-sign readings
//	  - addvitals      — record a new reading
//	  - delvitals <id> — delete a reading
//	  - docs           — list uploaded documents
//	  - upload         — upload a medical document
//	  - deldoc <id>    — delete a document
//	  - chat           — ask the health assistant
//	  - summary        — show dashboard totals
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("ht %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: vitals, addvitals, delvitals, docs, upload, deldoc, chat, summary, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "vitals":
			_ = a.ListVitals(ctx)

		case "addvitals":
			_ = a.AddVitals(ctx)

		case "delvitals":
			_ = a.DeleteVitals(ctx, args)

		case "docs":
			_ = a.ListDocuments(ctx)

		case "upload":
			_ = a.UploadDocument(ctx)

		case "deldoc":
			_ = a.DeleteDocument(ctx, args)

		case "chat":
			_ = a.Chat(ctx)

		case "summary":
			_ = a.Summary(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
