package cli

import (
	"context"
	"fmt"
)

func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	out, err := a.auth.SignUp(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %v\n", err)
		return err
	}

	if out.PendingVerification {
		fmt.Fprintln(a.out, "Account created. Check your email to verify it, then login.")
		return nil
	}

	fmt.Fprintf(a.out, "Registered and logged in as %s\n", out.Session.User.Email)
	a.loadCollections(ctx)
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return err
	}

	sess, err := a.auth.SignIn(ctx, email, string(password))
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %v\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Logged in as %s\n", sess.User.Email)
	a.loadCollections(ctx)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		fmt.Fprintf(a.out, "Logout failed: %v\n", err)
		return err
	}
	a.chat.Clear()
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// loadCollections mirrors the remote collections after a session is
// established. Failures are already reported through the notifier.
func (a *App) loadCollections(ctx context.Context) {
	_ = a.vitals.Refresh(ctx)
	_ = a.docs.Refresh(ctx)
}
