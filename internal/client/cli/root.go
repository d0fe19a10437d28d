package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// Run greets the user and hands control to the REPL. It returns when the
// user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to healthtrack CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
