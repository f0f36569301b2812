package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/porterowner/internal/client/api"
	"github.com/dmitrijs2005/porterowner/internal/client/fleet"
	"github.com/dmitrijs2005/porterowner/internal/client/models"
	"github.com/dmitrijs2005/porterowner/internal/client/report"
	"github.com/dmitrijs2005/porterowner/internal/common"
	"github.com/dmitrijs2005/porterowner/internal/phonex"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (want YYYY-MM-DD)", common.ErrorInvalidDateFormat, s)
	}
	return d, nil
}

// Fleet shows the aggregate vehicle counts for the signed-in owner.
func (a *App) Fleet(ctx context.Context) error {
	ownerID, err := a.store.OwnerID(ctx)
	if err != nil {
		return err
	}

	status, err := a.gateway.FleetStatus(ctx, ownerID)
	if err != nil {
		return err
	}

	a.printFleetStatus(status)
	return nil
}

// Vehicles lists the owner's vehicles, optionally narrowed to one state.
func (a *App) Vehicles(ctx context.Context, args []string) error {
	filter := api.FleetFilterAll
	if len(args) > 0 {
		filter = args[0]
	}
	switch filter {
	case api.FleetFilterAll, models.VehicleStatusOnTrip, models.VehicleStatusOnline, models.VehicleStatusOffline:
	default:
		fmt.Fprintln(a.out, "Usage: vehicles [all|onTrip|online|offline]")
		return nil
	}

	ownerID, err := a.store.OwnerID(ctx)
	if err != nil {
		return err
	}

	vehicles, err := a.gateway.FleetList(ctx, ownerID, filter)
	if err != nil {
		return err
	}

	a.printVehicles(vehicles)
	a.printFleetStatus(fleet.CountByStatus(vehicles))
	return nil
}

// Wallet shows one page of a driver's ledger.
// Usage: wallet <driverID> [page [size]]
func (a *App) Wallet(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: wallet <driverID> [page [size]]")
		return nil
	}

	driverID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: wallet <driverID> [page [size]]")
		return nil
	}

	pageNo, pageSize := 1, 10
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
			pageNo = n
		}
	}
	if len(args) > 2 {
		if n, err := strconv.Atoi(args[2]); err == nil && n > 0 {
			pageSize = n
		}
	}

	page, err := a.gateway.WalletTransactions(ctx, driverID, pageNo, pageSize)
	if err != nil {
		return err
	}

	a.printTransactions(page, pageNo, pageSize)
	return nil
}

// Revenue shows the revenue/trip-count series for a date range.
// Usage: revenue <start> <end>
func (a *App) Revenue(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: revenue <YYYY-MM-DD> <YYYY-MM-DD>")
		return nil
	}

	start, err := parseDate(args[0])
	if err != nil {
		return err
	}
	end, err := parseDate(args[1])
	if err != nil {
		return err
	}

	points, err := a.gateway.Revenue(ctx, start, end, a.config.Zones)
	if err != nil {
		return err
	}

	a.printRevenue(points)
	return nil
}

// Report shows per-driver earnings over a date range, highest earner
// first. The range is capped the same way the backend caps it.
// Usage: report <start> <end>
func (a *App) Report(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: report <YYYY-MM-DD> <YYYY-MM-DD>")
		return nil
	}

	start, err := parseDate(args[0])
	if err != nil {
		return err
	}
	end, err := parseDate(args[1])
	if err != nil {
		return err
	}
	if err := report.ValidateRange(start, end); err != nil {
		return err
	}

	ownerID, err := a.store.OwnerID(ctx)
	if err != nil {
		return err
	}

	summaries, err := a.gateway.DriverSummary(ctx, start, end, ownerID)
	if err != nil {
		return err
	}

	report.SortSummaries(summaries, report.ByAmountEarned, report.Descending)
	a.printSummaries(summaries)
	return nil
}

// Trips shows the owner's trips for one day (today by default), earliest
// first.
// Usage: trips [date]
func (a *App) Trips(ctx context.Context, args []string) error {
	date := time.Now()
	if len(args) > 0 {
		var err error
		if date, err = parseDate(args[0]); err != nil {
			return err
		}
	}

	ownerID, err := a.store.OwnerID(ctx)
	if err != nil {
		return err
	}

	rows, err := a.gateway.Trips(ctx, date, api.TripOptions{
		IncludeCancel: true,
		Include:       []string{"stats", "bill", "driver"},
	})
	if err != nil {
		return err
	}

	trips := report.MapTrips(report.ForOwner(rows, ownerID), date.Format(dateLayout))
	report.SortTrips(trips, report.ByTripTime, report.Ascending)
	a.printTrips(trips)
	return nil
}

// IsNew checks whether a phone number is registered with the platform.
// Usage: isnew <phone>
func (a *App) IsNew(ctx context.Context, args []string) error {
	if len(args) == 0 || !phonex.IsValidMobile(args[0]) {
		fmt.Fprintln(a.out, "Usage: isnew <10-digit mobile number>")
		return nil
	}

	isNew, err := a.gateway.IsNewAccount(ctx, phonex.Normalize(args[0]))
	if err != nil {
		return err
	}

	if isNew {
		fmt.Fprintln(a.out, "Number is not registered.")
	} else {
		fmt.Fprintln(a.out, "Number is already registered.")
	}
	return nil
}

// Call prints the dialer hand-off URL for a driver's number.
// Usage: call <phone>
func (a *App) Call(_ context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: call <phone>")
		return nil
	}

	url := phonex.TelURL(args[0])
	if url == "" {
		fmt.Fprintln(a.out, "No phone number provided.")
		return nil
	}
	fmt.Fprintln(a.out, url)
	return nil
}
