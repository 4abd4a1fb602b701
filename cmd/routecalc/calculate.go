package main

import (
	"encoding/json"
	"fmt"
	"io"
	"route-time-service/internal/domain"
	"route-time-service/internal/services"
	"strings"
	"text/tabwriter"
)

type summaryJSON struct {
	TotalMinutes   float64  `json:"total_minutes"`
	TotalOrders    int      `json:"total_orders"`
	AverageMinutes float64  `json:"average_minutes"`
	Path           []string `json:"path"`
}

// calculate feeds each "ID[:ORDERS]" argument to a fresh calculator in order.
func calculate(table domain.PositionTable, stops []string) (domain.TripSummary, error) {
	calc := services.NewRouteCalculator(table)

	for i, arg := range stops {
		id, orders, _ := strings.Cut(arg, ":")
		if err := calc.AddStop(strings.TrimSpace(id)); err != nil {
			return domain.TripSummary{}, err
		}
		if err := calc.SetOrderCount(i, orders); err != nil {
			return domain.TripSummary{}, err
		}
	}

	return calc.Calculate()
}

func printSummary(w io.Writer, s domain.TripSummary) {
	fmt.Fprintf(w, "Time:    %g min\n", s.TotalMinutes)
	fmt.Fprintf(w, "Orders:  %d\n", s.TotalOrders)
	fmt.Fprintf(w, "Average: %g min/order\n", s.AverageMinutes)
	fmt.Fprintf(w, "Path:    %s\n", s.PathString())
}

func printJSON(w io.Writer, s domain.TripSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(summaryJSON{
		TotalMinutes:   s.TotalMinutes,
		TotalOrders:    s.TotalOrders,
		AverageMinutes: s.AverageMinutes,
		Path:           s.Path,
	})
}

func printPositions(w io.Writer, table domain.PositionTable) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLINE\tONE WAY\tROUND TRIP")
	for _, p := range table.Positions() {
		fmt.Fprintf(tw, "%s\t%s\t%gm\t%gm\n", p.ID, p.Line, p.OneWayMinutes, p.RoundTripMinutes())
	}
	tw.Flush()
}
