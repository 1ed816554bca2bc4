package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"busfinder/internal/domain/models"
)

func TestExportCSV(t *testing.T) {
	trips := []models.BusTrip{
		{BusName: "KPN Travels", BusType: "A/C Sleeper", DepartureTime: "21:30", ReachingTime: "03:45", Duration: "06h 15m", StarRating: 4.3, Price: 1200, SeatsAvailable: 12},
	}
	data, name, err := ExportService{}.CSV("Chennai-Bangalore", trips)
	if err != nil {
		t.Fatalf("CSV error: %v", err)
	}
	if name != "BUSES_Chennai-Bangalore.csv" {
		t.Fatalf("unexpected filename %q", name)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %q", data)
	}
	if lines[0] != "bus_name,bus_type,departure_time,reaching_time,duration,star_rating,price,seats_available" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "KPN Travels,A/C Sleeper,21:30,03:45,06h 15m,4.3,1200,12") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestExportCSVEmptyKeepsHeader(t *testing.T) {
	data, _, err := ExportService{}.CSV("", nil)
	if err != nil {
		t.Fatalf("CSV error: %v", err)
	}
	if !strings.HasPrefix(string(data), "bus_name,") {
		t.Fatalf("empty export should still carry the header, got %q", data)
	}
}

func TestExportPDF(t *testing.T) {
	svc := ExportService{Now: func() time.Time { return time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC) }}
	in := submitted("Chennai-Bangalore")

	for _, trips := range [][]models.BusTrip{nil, {{BusName: "KPN Travels", Price: 1200}}} {
		pdf, name, err := svc.PDF("Chennai-Bangalore", in, trips)
		if err != nil {
			t.Fatalf("PDF error: %v", err)
		}
		if !bytes.HasPrefix(pdf, []byte("%PDF")) || name != "BUSES_Chennai-Bangalore.pdf" {
			t.Fatalf("unexpected pdf output name=%q len=%d", name, len(pdf))
		}
	}
}
