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
	flushNotifications()
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Articles(ctx context.Context) error
	ShowArticle(ctx context.Context) error
	Submit(ctx context.Context) error
	EditArticle(ctx context.Context) error
	DeleteArticle(ctx context.Context) error
	AddComment(ctx context.Context) error
	Favorites(ctx context.Context) error
	Favorite(ctx context.Context) error
	Unfavorite(ctx context.Context) error
	Moderation(ctx context.Context) error
	Approve(ctx context.Context) error
	Reject(ctx context.Context) error
	Users(ctx context.Context) error
	DeleteUser(ctx context.Context) error
	Stats(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the RedHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Every command runs behind the session guard: protected views announce a
// redirect instead of rendering when the session does not qualify. After
// each command, pending mutation notifications are flushed.
//
// Prompt & Commands
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - articles, show, comments are public
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - articles / show / comment
//	  - submit         — author an article (enters moderation)
//	  - favorites / fav / unfav
//	  - moderation / approve / reject   (moderator)
//	  - edit / remove                   (article admin)
//	  - users / deluser                 (user admin)
//	  - stats                           (analyst)
//	  - profile, logout, exit | quit
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("redhub %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: articles, show, comment, submit, favorites, fav, unfav, moderation, approve, reject, edit, remove, users, deluser, stats, profile, logout, exit")
			} else {
				printlnFn("Available commands: articles, show, register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile", "whoami":
			_ = a.Profile(ctx)

		case "a", "articles":
			_ = a.Articles(ctx)

		case "show":
			_ = a.ShowArticle(ctx)

		case "comment":
			_ = a.AddComment(ctx)

		case "submit":
			_ = a.Submit(ctx)

		case "edit":
			_ = a.EditArticle(ctx)

		case "remove":
			_ = a.DeleteArticle(ctx)

		case "favorites":
			_ = a.Favorites(ctx)

		case "fav":
			_ = a.Favorite(ctx)

		case "unfav":
			_ = a.Unfavorite(ctx)

		case "moderation":
			_ = a.Moderation(ctx)

		case "approve":
			_ = a.Approve(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "users":
			_ = a.Users(ctx)

		case "deluser":
			_ = a.DeleteUser(ctx)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.flushNotifications()
	}
}
