package usecase

import (
	"context"
	"fmt"
	"time"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

const applicationsSheet = "Applications"

var applicationsHeaders = []string{
	"Submitted At",
	"Job Title",
	"Job Slug",
	"Name",
	"Email",
	"Cover Letter",
	"Resume URL",
}

// ExportApplicationsXLSX renders the recent applications as a workbook.
// Applications whose job was deleted keep an empty title and slug.
func (u *Applications) ExportApplicationsXLSX(ctx context.Context) ([]byte, error) {
	start := u.now()

	apps, err := u.apps.ListRecent(ctx, RecentApplicationsLimit)
	if err != nil {
		u.logger.Printf("[Applications] export list failed: %v", err)
		return nil, ErrInternal
	}

	ids := make([]uuid.UUID, 0, len(apps))
	seen := make(map[uuid.UUID]struct{}, len(apps))
	for _, a := range apps {
		if _, ok := seen[a.JobID]; ok {
			continue
		}
		seen[a.JobID] = struct{}{}
		ids = append(ids, a.JobID)
	}
	jobs, err := u.jobs.FindByIDs(ctx, ids)
	if err != nil {
		u.logger.Printf("[Applications] export job lookup failed: %v", err)
		return nil, ErrInternal
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", applicationsSheet); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	if err := writeApplicationsSheet(f, apps, jobs); err != nil {
		return nil, fmt.Errorf("xlsx rows: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	u.logger.Printf("[Applications] export rows=%d elapsed=%s", len(apps), u.now().Sub(start))
	return buf.Bytes(), nil
}

var applicationsColWidths = []struct {
	from, to string
	width    float64
}{
	{"A", "A", 22},
	{"B", "C", 28},
	{"D", "E", 26},
	{"F", "F", 60},
	{"G", "G", 52},
}

// writeApplicationsSheet fills the applications sheet, which must exist.
// It stops at the first cell that cannot be written.
func writeApplicationsSheet(f *excelize.File, apps []application.Application, jobs map[uuid.UUID]job.Job) error {
	set := func(col, row int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		return f.SetCellValue(applicationsSheet, cell, v)
	}

	for i, h := range applicationsHeaders {
		if err := set(i+1, 1, h); err != nil {
			return err
		}
	}

	for i, a := range apps {
		j := jobs[a.JobID]
		values := []any{
			a.CreatedAt.UTC().Format(time.RFC3339),
			j.Title,
			j.Slug,
			a.Name,
			a.Email,
			"",
			"",
		}
		if a.CoverLetter != nil {
			values[5] = truncate(*a.CoverLetter, 500)
		}
		if a.ResumeURL != nil {
			values[6] = *a.ResumeURL
		}
		for col, v := range values {
			if v == "" {
				continue
			}
			if err := set(col+1, i+2, v); err != nil {
				return err
			}
		}
	}

	for _, w := range applicationsColWidths {
		if err := f.SetColWidth(applicationsSheet, w.from, w.to, w.width); err != nil {
			return err
		}
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return string(r[:1])
	}
	return string(r[:n-1]) + "…"
}
