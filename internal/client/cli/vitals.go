package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/healthtrack/internal/client/models"
)

func (a *App) ListVitals(ctx context.Context) error {
	if err := a.vitals.Refresh(ctx); err != nil {
		return err
	}

	items := a.vitals.List()
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No readings recorded yet")
		return nil
	}

	for _, v := range items {
		fmt.Fprintf(a.out, "[%d] %s  HR %d bpm  %.1f °C  SpO2 %d%%  BP %d/%d",
			v.ID, v.CreatedAt.Format("2006-01-02 15:04"),
			v.HeartRate, v.Temperature, v.SpO2,
			v.BloodPressureSystolic, v.BloodPressureDiastolic)
		if v.Notes != "" {
			fmt.Fprintf(a.out, "  (%s)", v.Notes)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) AddVitals(ctx context.Context) error {
	var in models.VitalsCreate
	var err error

	if in.HeartRate, err = GetInt(a.reader, "Heart rate (bpm)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if in.Temperature, err = GetFloat(a.reader, "Temperature (°C)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if in.SpO2, err = GetInt(a.reader, "SpO2 (%)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if in.BloodPressureSystolic, err = GetInt(a.reader, "Blood pressure, systolic", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if in.BloodPressureDiastolic, err = GetInt(a.reader, "Blood pressure, diastolic", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if in.Notes, err = GetSimpleText(a.reader, "Notes (optional)", a.out); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	rec, err := a.vitals.Add(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded reading %d at %s\n", rec.ID, rec.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func (a *App) DeleteVitals(ctx context.Context, args []string) error {
	id, err := a.idFromArgsOrPrompt(args, "Enter reading id to delete")
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if err := a.vitals.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted reading %d\n", id)
	return nil
}

func (a *App) idFromArgsOrPrompt(args []string, prompt string) (int64, error) {
	s := ""
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		if s, err = GetSimpleText(a.reader, prompt, a.out); err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("not a valid id: %q", s)
	}
	return id, nil
}
