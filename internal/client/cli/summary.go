package cli

import (
	"context"
	"fmt"
)

func (a *App) Summary(ctx context.Context) error {
	vs := a.vitals.Summary()
	fmt.Fprintf(a.out, "Vitals: %d readings\n", vs.TotalEntries)
	if vs.TotalEntries > 0 {
		fmt.Fprintf(a.out, "  latest: HR %d bpm, %.1f °C, SpO2 %d%%, BP %s (recorded %s)\n",
			vs.LatestHeartRate, vs.LatestTemperature, vs.LatestSpO2,
			vs.LatestBloodPressure, vs.LatestReadingRecorded.Format("2006-01-02 15:04"))
	}

	ds := a.docs.Summary()
	fmt.Fprintf(a.out, "Documents: %d files, %s total\n", ds.TotalDocuments, formatFileSize(ds.TotalSize))
	for t, n := range ds.FileTypes {
		fmt.Fprintf(a.out, "  %s: %d\n", t, n)
	}
	return nil
}
