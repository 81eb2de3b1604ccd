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
	Topics(ctx context.Context) error
	Subscribe(ctx context.Context, idArg string) error
	Unsubscribe(ctx context.Context, idArg string) error
	Feed(ctx context.Context, order string) error
	ShowPost(ctx context.Context, idArg string) error
	Comment(ctx context.Context, idArg string) error
	NewArticle(ctx context.Context) error
	Profile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the MDD client.
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
//	  - topics         — list topics with subscription state
//	  - sub <id>       — subscribe to a topic
//	  - unsub <id>     — unsubscribe from a topic
//	  - feed [asc]     — show the feed, newest first by default
//	  - post <id>      — show an article with its comments
//	  - comment <id>   — comment on an article
//	  - new            — publish an article
//	  - profile        — show and edit the profile
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("mdd %s> ", statusFn()))
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

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: topics, sub <id>, unsub <id>, feed [asc], post <id>, comment <id>, new, profile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "topics":
			_ = a.Topics(ctx)

		case "sub":
			if arg == "" {
				printlnFn("Usage: sub <id>")
				continue
			}
			_ = a.Subscribe(ctx, arg)

		case "unsub":
			if arg == "" {
				printlnFn("Usage: unsub <id>")
				continue
			}
			_ = a.Unsubscribe(ctx, arg)

		case "feed":
			_ = a.Feed(ctx, arg)

		case "post":
			if arg == "" {
				printlnFn("Usage: post <id>")
				continue
			}
			_ = a.ShowPost(ctx, arg)

		case "comment":
			if arg == "" {
				printlnFn("Usage: comment <id>")
				continue
			}
			_ = a.Comment(ctx, arg)

		case "new":
			_ = a.NewArticle(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
