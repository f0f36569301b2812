package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/porterowner/internal/common"
	"github.com/dmitrijs2005/porterowner/internal/phonex"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for a mobile number and password and attempts to sign in.
//
// The backend rejects bad credentials inside a successful response, so a
// nil error only means the exchange completed: the rejection message is
// printed here, while transport failures are returned for the REPL to
// report generically. The password is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter mobile number", a.out)
	if err != nil {
		return err
	}
	if !phonex.IsValidMobile(phone) {
		fmt.Fprintln(a.out, "Please enter a 10-digit mobile number.")
		return common.ErrorInvalidPhoneFormat
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	res, err := a.gateway.Login(ctx, phonex.Normalize(phone), password)
	if err != nil {
		return err
	}

	if !res.Authenticated {
		fmt.Fprintf(a.out, "Login failed: %s\n", res.Reason)
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", res.Profile.Name)
	return nil
}

// Logout clears the persisted session. Logging out while signed out is
// harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Whoami prints the profile captured at login.
func (a *App) Whoami(ctx context.Context) error {
	p, err := a.store.Profile(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (owner id %d, %s)\n", p.Name, p.OwnerID, p.Phone)
	return nil
}
