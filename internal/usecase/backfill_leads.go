package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/StevenCC12/masterclass-webinar-api-integration-main/internal/entity"
)

// BackfillReport summarizes one CSV import run.
type BackfillReport struct {
	Rows      int
	Delivered int
	Exhausted int
	Skipped   int
}

// BackfillProcessor replays a CSV export (columns: name, email, phone)
// through the regular delivery loop, one row at a time with a pause in
// between. Used to retroactively register contacts that predate the capture
// script.
type BackfillProcessor struct {
	Dispatcher *Dispatcher
	Tags       []string
	Source     string

	// SkipPersonal drops rows with consumer mailbox addresses.
	SkipPersonal bool

	RowDelay time.Duration
	sleep    func(time.Duration)
}

func NewBackfillProcessor(dispatcher *Dispatcher, tags []string, source string) *BackfillProcessor {
	return &BackfillProcessor{
		Dispatcher: dispatcher,
		Tags:       tags,
		Source:     source,
		RowDelay:   3 * time.Second,
		sleep:      time.Sleep,
	}
}

// Run reads the CSV and dispatches one lead per row. Rows without an email
// are skipped silently, mirroring the capture gate. A malformed CSV aborts
// the run.
func (b *BackfillProcessor) Run(ctx context.Context, r io.Reader) (*BackfillReport, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	report := &BackfillReport{}

	header, err := reader.Read()
	if err == io.EOF {
		return report, nil
	}
	if err != nil {
		return report, fmt.Errorf("read csv header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["email"]; !ok {
		return report, fmt.Errorf("csv is missing the email column")
	}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, fmt.Errorf("read csv row: %w", err)
		}
		report.Rows++

		email := strings.TrimSpace(field(row, cols, "email"))
		if email == "" {
			report.Skipped++
			continue
		}
		if b.SkipPersonal && IsPersonalEmail(email) {
			log.Printf("⏭️ skipping personal mailbox %s", email)
			report.Skipped++
			continue
		}

		firstName, lastName := SplitFullName(field(row, cols, "name"))

		lead := &entity.Lead{
			Email:     email,
			FirstName: firstName,
			LastName:  lastName,
			Phone:     strings.TrimSpace(field(row, cols, "phone")),
			Tags:      b.Tags,
			Source:    b.Source,
		}

		if b.Dispatcher.Dispatch(ctx, lead) {
			report.Delivered++
		} else {
			report.Exhausted++
		}

		if b.RowDelay > 0 {
			b.sleep(b.RowDelay)
		}
	}

	return report, nil
}

func field(row []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
