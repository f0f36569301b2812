package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/dmitrijs2005/porterowner/internal/client/models"
)

func (a *App) printFleetStatus(s models.FleetStatus) {
	fmt.Fprintf(a.out, "On trip: %d  Online: %d  Offline: %d  Total: %d\n",
		s.OnTrip, s.Online, s.Offline, s.Total())
}

func (a *App) printVehicles(vehicles []models.Vehicle) {
	if len(vehicles) == 0 {
		fmt.Fprintln(a.out, "No vehicles.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VEHICLE\tTYPE\tDRIVER\tSTATUS")
	for _, v := range vehicles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.VehicleNumber, v.VehicleTypeName, v.Name, v.Status)
	}
	_ = w.Flush()
}

func (a *App) printTransactions(page models.TransactionPage, pageNo, pageSize int) {
	if len(page.Transactions) == 0 {
		fmt.Fprintln(a.out, "No transactions.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTYPE\tAMOUNT\tTIME\tTRIP\tDESCRIPTION")
	for _, t := range page.Transactions {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%s\t%d\t%s\n",
			t.TransactionID, t.TransactionType, t.Amount, t.CreatedTime, t.TripID, t.Description)
	}
	_ = w.Flush()

	totalPages := (page.TotalCount + int64(pageSize) - 1) / int64(pageSize)
	fmt.Fprintf(a.out, "Page %d of %d (%d transactions)\n", pageNo, totalPages, page.TotalCount)
}

func (a *App) printRevenue(points []models.RevenuePoint) {
	if len(points) == 0 {
		fmt.Fprintln(a.out, "No data for this range.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tTRIPS")
	var total int64
	for _, p := range points {
		fmt.Fprintf(w, "%s\t%d\n", p.Date, p.Count)
		total += p.Count
	}
	_ = w.Flush()
	fmt.Fprintf(a.out, "Total trips: %d\n", total)
}

func (a *App) printSummaries(summaries []models.DriverSummary) {
	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No data for this range.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DRIVER\tPHONE\tTRIPS\tEARNED\tDISTANCE")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.2f\t%.1f km\n",
			s.DriverName, s.PhoneNumber, s.TotalTrips, s.AmountEarned, s.TotalDistance)
	}
	_ = w.Flush()
}

func (a *App) printTrips(trips []models.Trip) {
	if len(trips) == 0 {
		fmt.Fprintln(a.out, "No trips.")
		return
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "TRIP\tTIME\tPICKUP\tDROP\tDRIVER\tFARE")
	for _, t := range trips {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.2f\n",
			t.TripID, t.Time, t.Pickup, t.Drop, t.DriverName, t.Fare)
	}
	_ = w.Flush()
}
