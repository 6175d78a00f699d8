package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// ExportData is the document written by `corelab scores --json`.
type ExportData struct {
	Count   int      `json:"count"`
	Best    int      `json:"best_score"`
	Records []Record `json:"records"`
}

func ExportJSON(w io.Writer, records []Record) error {
	data := ExportData{Count: len(records), Records: records}
	for _, r := range records {
		data.Best = max(data.Best, r.Score)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteLogTable prints the CSV log in append order.
func WriteLogTable(w io.Writer, entries []LogEntry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tGAME\tOUTCOME\tATTEMPTS\tSCORE\tID")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n",
			e.Timestamp.Local().Format(time.DateTime), e.Game, e.Outcome, e.Attempts, e.Score, e.ID)
	}
	return tw.Flush()
}

// WriteTable prints records as an aligned table.
func WriteTable(w io.Writer, records []Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tGAME\tWHEN\tOUTCOME\tATTEMPTS\tSCORE")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\n",
			r.ID, r.Game, r.Timestamp.Local().Format(time.DateTime), r.Outcome, r.Attempts, r.Score)
	}
	return tw.Flush()
}
