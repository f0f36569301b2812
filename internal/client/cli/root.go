package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/porterowner/internal/client/api"
	"github.com/dmitrijs2005/porterowner/internal/common"
)

func (a *App) getStatus() string {
	p, err := a.store.Profile(context.Background())
	if err != nil {
		return "(guest)"
	}
	if p.Name != "" {
		return fmt.Sprintf("(%s)", p.Name)
	}
	return fmt.Sprintf("(owner %d)", p.OwnerID)
}

func (a *App) printHelp(ctx context.Context) {
	if a.store.IsActive(ctx) {
		fmt.Fprintln(a.out, "Available commands: fleet, vehicles, wallet, revenue, report, trips, whoami, call, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: login, isnew, exit")
	}
}

// reportError maps a command failure to the user-facing message: transport
// failures get the generic retry text, a missing session gets a login
// hint, anything else is shown as-is.
func (a *App) reportError(ctx context.Context, cmd string, err error) {
	var reqErr *api.RequestError
	switch {
	case errors.As(err, &reqErr):
		fmt.Fprintln(a.out, "Something went wrong, please try again.")
	case errors.Is(err, common.ErrNoSession):
		fmt.Fprintln(a.out, "Please login first.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
	a.log.Error(ctx, "command failed", "cmd", cmd, "error", err)
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Porter Owner CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(a.reader)

	for {
		fmt.Fprintf(a.out, "powner %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		var err error
		switch cmd {
		case "help":
			a.printHelp(ctx)
		case "login":
			err = a.Login(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "whoami":
			err = a.Whoami(ctx)
		case "isnew":
			err = a.IsNew(ctx, args)
		case "fleet":
			err = a.Fleet(ctx)
		case "vehicles":
			err = a.Vehicles(ctx, args)
		case "wallet":
			err = a.Wallet(ctx, args)
		case "revenue":
			err = a.Revenue(ctx, args)
		case "report":
			err = a.Report(ctx, args)
		case "trips":
			err = a.Trips(ctx, args)
		case "call":
			err = a.Call(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}

		if err != nil {
			a.reportError(ctx, cmd, err)
		}
	}
}
