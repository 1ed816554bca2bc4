package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"busfinder/internal/domain/models"
	"busfinder/internal/utils"

	"github.com/jszwec/csvutil"
	"github.com/phpdave11/gofpdf"
)

// ExportService renders a search result as a downloadable sheet.
type ExportService struct {
	RequestID string
	Now       func() time.Time
}

type tripCSVRow struct {
	BusName        string  `csv:"bus_name"`
	BusType        string  `csv:"bus_type"`
	DepartureTime  string  `csv:"departure_time"`
	ReachingTime   string  `csv:"reaching_time"`
	Duration       string  `csv:"duration"`
	StarRating     float64 `csv:"star_rating"`
	Price          int64   `csv:"price"`
	SeatsAvailable int64   `csv:"seats_available"`
}

// CSV writes one row per trip with a header line. An empty result still has the header.
func (s ExportService) CSV(route string, trips []models.BusTrip) ([]byte, string, error) {
	rows := make([]tripCSVRow, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, tripCSVRow{
			BusName:        t.BusName,
			BusType:        t.BusType,
			DepartureTime:  t.DepartureTime,
			ReachingTime:   t.ReachingTime,
			Duration:       t.Duration,
			StarRating:     t.StarRating,
			Price:          t.Price,
			SeatsAvailable: t.SeatsAvailable,
		})
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	enc := csvutil.NewEncoder(w)
	if len(rows) == 0 {
		if err := enc.EncodeHeader(tripCSVRow{}); err != nil {
			return nil, "", err
		}
	}
	for _, r := range rows {
		if err := enc.Encode(r); err != nil {
			return nil, "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "csv", fmt.Sprintf("route=%q rows=%d", route, len(rows)))
	return buf.Bytes(), fmt.Sprintf("BUSES_%s.csv", utils.SafeFilenamePart(route)), nil
}

// PDF lays the result out as a single printable sheet.
func (s ExportService) PDF(route string, in PageInput, trips []models.BusTrip) ([]byte, string, error) {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bus Information", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Route: "+utils.Safe(route, "-"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Departure Time Range: %s - %s", in.StartTime, in.EndTime))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Price Range: %d - %d", in.MinFare, in.MaxFare))
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated: "+utils.FormatDateTime(now()))
	pdf.Ln(10)

	if len(trips) == 0 {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, fmt.Sprintf("No bus information found for route between %s and %s, and fare between %d and %d.",
			in.StartTime, in.EndTime, in.MinFare, in.MaxFare), "", "", false)
	}

	for _, t := range trips {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, utils.Safe(t.BusName, "-"))
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 10)
		lines := []string{
			fmt.Sprintf("Bus Type        : %s", utils.Safe(t.BusType, "-")),
			fmt.Sprintf("Departure/Arrival: %s -> %s (%s)", utils.Safe(t.DepartureTime, "-"), utils.Safe(t.ReachingTime, "-"), utils.Safe(t.Duration, "-")),
			fmt.Sprintf("Rating          : %s", utils.FormatRating(t.StarRating)),
			fmt.Sprintf("Fare            : %s", utils.FormatINR(t.Price)),
			fmt.Sprintf("Seats Available : %d", t.SeatsAvailable),
		}
		for _, l := range lines {
			pdf.Cell(0, 5, l)
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	utils.LogEvent(s.RequestID, "export", "pdf", fmt.Sprintf("route=%q rows=%d", route, len(trips)))
	return buf.Bytes(), fmt.Sprintf("BUSES_%s.pdf", utils.SafeFilenamePart(route)), nil
}
