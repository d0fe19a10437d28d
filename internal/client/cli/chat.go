package cli

import (
	"context"
	"fmt"
)

func (a *App) Chat(ctx context.Context) error {
	msg, err := GetSimpleText(a.reader, "Ask the health assistant", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	ex, err := a.chat.Send(ctx, msg)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, ex.Response)
	if len(ex.Sources) > 0 {
		fmt.Fprintln(a.out, "Sources:")
		for _, s := range ex.Sources {
			fmt.Fprintf(a.out, "  - %s\n", s)
		}
	}
	return nil
}
