package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"ulascansenturk/conditions-service/internal/db/lookuplog"
	"ulascansenturk/conditions-service/internal/geo"
	"ulascansenturk/conditions-service/internal/service"
)

func lookup(ctx context.Context, out io.Writer, lat, lon, output string) error {
	coord, err := geo.ParseCoordinate(lat, lon)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, conf.HTTPTimeoutDuration())
	defer cancel()

	report := newConditionsService(conf, nil).GetConditions(ctx, coord)

	return printReport(out, report, output)
}

func printReport(out io.Writer, report service.ConditionsReport, output string) error {
	if output == "json" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	fmt.Fprintf(out, "Conditions lookup %s\n", report.RequestID)
	fmt.Fprintln(out, strings.Repeat("=", 40))

	if report.WeatherOK() {
		fmt.Fprintf(out, "Summary:     %s\n", report.ConditionSummary)
		fmt.Fprintf(out, "Temperature: %s\n", formatReading(report.Weather.TempF, "°F"))
		fmt.Fprintf(out, "Wind:        %s\n", formatReading(report.Weather.WindSpeed, " mph"))
		fmt.Fprintf(out, "Sky:         %s (%s)\n", report.Weather.SkyCondition, report.Weather.RawDescription)
	} else {
		fmt.Fprintln(out, report.WeatherUnavailable)
	}

	if report.LocationOK() {
		fmt.Fprintf(out, "Location:    %s\n", report.PrimaryLabel)
		if report.SecondaryLabel != "" {
			fmt.Fprintf(out, "             %s\n", report.SecondaryLabel)
		}
	} else {
		fmt.Fprintln(out, report.LocationUnavailable)
	}

	return nil
}

func formatReading(v *float64, unit string) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1f%s", *v, unit)
}

func history(out io.Writer, limit int) error {
	if !conf.AuditEnabled() {
		return errors.New("DATABASE_HOST is not set, no lookup history available")
	}

	db, err := initializeDatabase(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	lookups, err := lookuplog.NewRepository(db).GetRecentLookups(limit)
	if err != nil {
		return fmt.Errorf("failed to read lookups: %w", err)
	}

	printHistory(out, lookups)
	return nil
}

func printHistory(out io.Writer, lookups []lookuplog.ConditionLookup) {
	if len(lookups) == 0 {
		fmt.Fprintln(out, "No lookups recorded")
		return
	}

	for _, l := range lookups {
		fmt.Fprintf(out, "%s  %s  %9.4f %10.4f  weather=%s location=%s\n",
			l.CreatedAt.Format("2006-01-02 15:04:05"),
			l.RequestID,
			l.Latitude,
			l.Longitude,
			outcome(l.WeatherOK),
			outcome(l.LocationOK),
		)
	}
}

func outcome(ok bool) string {
	if ok {
		return "ok"
	}
	return "unavailable"
}
