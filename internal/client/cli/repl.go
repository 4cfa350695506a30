package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var replCommands = []string{"help", "profile", "avatar", "refresh", "logout", "exit", "quit"}

// maxSuggestDistance is the largest edit distance still offered as a
// "did you mean" hint.
const maxSuggestDistance = 2

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool
	ShowProfile(ctx context.Context) error
	ShowAvatar(ctx context.Context) error
	Refresh(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL serves the main screen.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on a. The loop ends when a is no longer signed in
// (after logout), returning quit=false so the caller can run sign-in again.
// It returns quit=true on end of input or when the user types "exit" or
// "quit".
//
//	help           show available commands
//	profile        show the signed-in profile
//	avatar         show the avatar URL
//	refresh        reload profile and avatar
//	logout         sign out and sign in again
//	exit | quit    leave the program
//
// Errors returned by command handlers are ignored here; handlers print and
// log their own.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) (quit bool) {
	for a.isSignedIn() {
		printlnFn(fmt.Sprintf("imagefeed %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return true
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: profile, avatar, refresh, logout, exit")

		case "profile":
			_ = a.ShowProfile(ctx)

		case "avatar":
			_ = a.ShowAvatar(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return true

		default:
			if s := suggestCommand(cmd); s != "" {
				printlnFn("Unknown command:", cmd, "(did you mean '"+s+"'?)")
			} else {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
	return false
}

// suggestCommand returns the closest known command to cmd, or "" when
// nothing is close enough.
func suggestCommand(cmd string) string {
	best, bestDist := "", maxSuggestDistance+1
	for _, c := range replCommands {
		if d := levenshtein.ComputeDistance(strings.ToLower(cmd), c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
