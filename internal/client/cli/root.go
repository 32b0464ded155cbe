package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// getStatus renders the prompt status from the current session.
func (a *App) getStatus() string {
	sess := a.session.Current()
	if !sess.Authenticated {
		return "(anonymous)"
	}
	return fmt.Sprintf("(%s %s)", sess.Claims.SubjectID, sess.Role())
}

// Root runs the interactive loop until the user exits. The session is
// already bootstrapped by NewApp, so a persisted credential shows up in the
// prompt immediately.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to RedHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
