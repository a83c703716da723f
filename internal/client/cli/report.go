package cli

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/vkozyrev/floodwatch/internal/client/models"
)

// SubmitReport interactively collects a flood observation and submits it,
// uploading a photo first when a readable path is given.
func (a *App) SubmitReport(ctx context.Context) error {
	description, err := GetMultiline(a.reader, "Describe the flooding", os.Stdout)
	if err != nil {
		return err
	}

	level, err := GetFloat(a.reader, "Water level (cm)", os.Stdout)
	if err != nil {
		return err
	}

	lat, err := GetFloat(a.reader, "Latitude", os.Stdout)
	if err != nil {
		return err
	}

	lng, err := GetFloat(a.reader, "Longitude", os.Stdout)
	if err != nil {
		return err
	}

	photoPath, err := getSimpleText(a.reader, "Photo path (empty to skip)", os.Stdout)
	if err != nil {
		return err
	}

	var photo []byte
	contentType := ""
	if photoPath != "" {
		photo, err = os.ReadFile(photoPath)
		if err != nil {
			return fmt.Errorf("read photo: %w", err)
		}
		contentType = mime.TypeByExtension(filepath.Ext(photoPath))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
	}

	report, err := a.reports.Submit(ctx, description, level, lat, lng, photo, contentType)
	if err != nil {
		return err
	}

	fmt.Printf("Report %s submitted.\n", report.ID)
	return nil
}

// ListReports prints reports, optionally filtered by status:
//
//	list [submitted|verified|resolved|dismissed]
func (a *App) ListReports(ctx context.Context, args []string) error {
	status := models.ReportStatus("")
	if len(args) > 0 {
		status = models.ReportStatus(args[0])
	}

	reports, err := a.reports.List(ctx, status, 0)
	if err != nil {
		return err
	}

	printReports(reports)
	return nil
}

// NearbyReports prompts for a point and radius and prints reports within it.
func (a *App) NearbyReports(ctx context.Context) error {
	lat, err := GetFloat(a.reader, "Latitude", os.Stdout)
	if err != nil {
		return err
	}
	lng, err := GetFloat(a.reader, "Longitude", os.Stdout)
	if err != nil {
		return err
	}
	radius, err := GetFloat(a.reader, "Radius (km)", os.Stdout)
	if err != nil {
		return err
	}

	reports, err := a.reports.ListNearby(ctx, lat, lng, radius, "")
	if err != nil {
		return err
	}

	printReports(reports)
	return nil
}

// ShowReport prints one report with its discussion thread.
func (a *App) ShowReport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: show <id>")
		return nil
	}

	report, err := a.reports.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("[%s] %s by %s at %s\n", report.Status, report.ID, report.UserName,
		report.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Water level: %.0f cm at (%.4f, %.4f)\n", report.WaterLevelCM,
		report.Latitude, report.Longitude)
	if report.PhotoURL != "" {
		fmt.Println("Photo:", report.PhotoURL)
	}
	fmt.Println(report.Description)

	comments, err := a.reports.Comments(ctx, report.ID)
	if err != nil {
		return err
	}
	if len(comments) > 0 {
		fmt.Println("--- comments ---")
		for _, c := range comments {
			fmt.Printf("%s [%s]: %s\n", c.UserName, c.CreatedAt.Format("2006-01-02 15:04"), c.Body)
		}
	}
	return nil
}

// SetReportStatus moves a report through triage:
//
//	status <id> <submitted|verified|resolved|dismissed>
func (a *App) SetReportStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		fmt.Println("Usage: status <id> <submitted|verified|resolved|dismissed>")
		return nil
	}

	report, err := a.reports.SetStatus(ctx, args[0], models.ReportStatus(args[1]))
	if err != nil {
		return err
	}

	fmt.Printf("Report %s is now %s.\n", report.ID, report.Status)
	return nil
}

func (a *App) DeleteReport(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: delete <id>")
		return nil
	}

	if err := a.reports.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted.")
	return nil
}

// AddComment posts a comment on a report:
//
//	comment <id>
func (a *App) AddComment(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Println("Usage: comment <id>")
		return nil
	}

	body, err := GetMultiline(a.reader, "Comment", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.reports.Comment(ctx, args[0], body); err != nil {
		return err
	}
	fmt.Println("Comment added.")
	return nil
}

func printReports(reports []*models.Report) {
	if len(reports) == 0 {
		fmt.Println("No reports.")
		return
	}
	for _, r := range reports {
		fmt.Printf("%s  %-9s  %4.0f cm  (%.4f, %.4f)  %s  %s\n",
			r.ID, r.Status, r.WaterLevelCM, r.Latitude, r.Longitude,
			r.UserName, truncate(r.Description, 48))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
