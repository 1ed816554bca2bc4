package repositories

import (
	"context"
	"errors"
	"testing"

	"busfinder/internal/domain"
	"busfinder/internal/domain/models"
	"busfinder/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

var busColumns = []string{"bus_name", "bus_type", "departure_time", "duration", "reaching_time", "star_rating", "price", "seats_available"}

func fullFilter(link string) models.SearchFilter {
	return models.SearchFilter{RouteLink: link, StartTime: "00:00", EndTime: "23:00", MinFare: 0, MaxFare: 10000}
}

func TestSearchReturnsAllTripsInFullRange(t *testing.T) {
	opener, mock := newMockOpener(t)
	mock.ExpectQuery("FROM bus_information").
		WithArgs("link-cb", "00:00", "23:00").
		WillReturnRows(sqlmock.NewRows(busColumns).
			AddRow("KPN Travels", "A/C Sleeper (2+1)", "21:30", "06h 15m", "03:45", 4.3, "INR 1,200", 12).
			AddRow("SRS Travels", "Non A/C Seater", "06:00", "07h 00m", "13:00", nil, "850", nil))

	trips, err := BusRepository{Conn: opener}.Search(context.Background(), fullFilter("link-cb"))
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips, got %d", len(trips))
	}
	first := trips[0]
	if first.BusName != "KPN Travels" || first.Price != 1200 || first.SeatsAvailable != 12 || first.StarRating != 4.3 {
		t.Fatalf("unexpected first trip %+v", first)
	}
	if trips[1].StarRating != 0 || trips[1].SeatsAvailable != 0 || trips[1].Price != 850 {
		t.Fatalf("NULL columns should read as zero, got %+v", trips[1])
	}
	assertBalanced(t, opener, 1)
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchNeverReturnsTripsOutsideWindows(t *testing.T) {
	opener, mock := newMockOpener(t)
	// The store is expected to filter time already; rows that slip through
	// must still be dropped.
	mock.ExpectQuery("FROM bus_information").
		WithArgs("link-x", "08:00", "12:00").
		WillReturnRows(sqlmock.NewRows(busColumns).
			AddRow("Early", "Seater", "07:59", "1h", "08:59", 3.0, "1500", 5).
			AddRow("OnStart", "Seater", "08:00", "1h", "09:00", 3.0, "1000", 5).
			AddRow("OnEnd", "Seater", "12:00", "1h", "13:00", 3.0, "2000", 5).
			AddRow("Late", "Seater", "12:01", "1h", "13:01", 3.0, "1500", 5).
			AddRow("Cheap", "Seater", "09:00", "1h", "10:00", 3.0, "999", 5).
			AddRow("Pricey", "Seater", "09:00", "1h", "10:00", 3.0, "Rs. 2,001", 5).
			AddRow("NoFare", "Seater", "09:00", "1h", "10:00", 3.0, "Free", 5))

	f := models.SearchFilter{RouteLink: "link-x", StartTime: "08:00", EndTime: "12:00", MinFare: 1000, MaxFare: 2000}
	trips, err := BusRepository{Conn: opener}.Search(context.Background(), f)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}

	names := map[string]bool{}
	for _, trip := range trips {
		names[trip.BusName] = true
		dep, err := utils.ClockMinutes(trip.DepartureTime)
		if err != nil || dep < 8*60 || dep > 12*60 {
			t.Fatalf("trip %s departs outside window: %s", trip.BusName, trip.DepartureTime)
		}
		if trip.Price < f.MinFare || trip.Price > f.MaxFare {
			t.Fatalf("trip %s priced outside window: %d", trip.BusName, trip.Price)
		}
	}
	if len(trips) != 2 || !names["OnStart"] || !names["OnEnd"] {
		t.Fatalf("expected only the inclusive boundary trips, got %v", names)
	}
}

func TestSearchInvertedRangeIsEmpty(t *testing.T) {
	opener, mock := newMockOpener(t)
	mock.ExpectQuery("FROM bus_information").
		WillReturnRows(sqlmock.NewRows(busColumns).
			AddRow("Any", "Seater", "10:00", "1h", "11:00", 3.0, "1500", 5))

	f := models.SearchFilter{RouteLink: "link-x", StartTime: "00:00", EndTime: "23:00", MinFare: 5000, MaxFare: 1000}
	trips, err := BusRepository{Conn: opener}.Search(context.Background(), f)
	if err != nil {
		t.Fatalf("inverted range is not an error: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("expected no trips, got %v", trips)
	}
}

func TestSearchQueryFailure(t *testing.T) {
	opener, mock := newMockOpener(t)
	mock.ExpectQuery("FROM bus_information").WillReturnError(errors.New("syntax error"))

	trips, err := BusRepository{Conn: opener}.Search(context.Background(), fullFilter("link-cb"))
	if !domain.IsQuery(err) {
		t.Fatalf("expected QueryError, got %v", err)
	}
	if trips == nil || len(trips) != 0 {
		t.Fatalf("expected empty slice, got %#v", trips)
	}
	assertBalanced(t, opener, 1)
}

func TestSearchScanFailureClosesConnection(t *testing.T) {
	opener, mock := newMockOpener(t)
	mock.ExpectQuery("FROM bus_information").
		WillReturnRows(sqlmock.NewRows(busColumns).
			AddRow("Bad", "Seater", "10:00", "1h", "11:00", "not-a-number", "1500", 5))

	_, err := BusRepository{Conn: opener}.Search(context.Background(), fullFilter("link-cb"))
	if !domain.IsQuery(err) {
		t.Fatalf("expected QueryError on scan failure, got %v", err)
	}
	assertBalanced(t, opener, 1)
}
