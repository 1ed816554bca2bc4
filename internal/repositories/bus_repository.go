package repositories

import (
	"context"
	"database/sql"

	intdb "busfinder/internal/db"
	"busfinder/internal/domain"
	"busfinder/internal/domain/models"
	"busfinder/internal/utils"
)

// BusRepository reads bus_information. Every call opens and closes its own connection.
type BusRepository struct {
	Conn intdb.Opener
}

const searchBusesQuery = `
	SELECT COALESCE(bus_name,''), COALESCE(bus_type,''),
	       COALESCE(TIME_FORMAT(TIME(departure_time), '%H:%i'),''),
	       COALESCE(duration,''),
	       COALESCE(TIME_FORMAT(TIME(reaching_time), '%H:%i'),''),
	       star_rating, CAST(price AS CHAR), seats_available
	FROM bus_information
	WHERE route_link = ?
	  AND TIME(departure_time) BETWEEN ? AND ?
`

// Search returns the trips on f.RouteLink departing within [StartTime, EndTime]
// whose normalized fare lies within [MinFare, MaxFare].
//
// The time window is applied by the store and checked again here; the fare
// window can only be applied here because price is stored as display text.
// On failure it returns an empty slice and the error.
func (r BusRepository) Search(ctx context.Context, f models.SearchFilter) ([]models.BusTrip, error) {
	conn, err := r.Conn.Open(ctx)
	if err != nil {
		return []models.BusTrip{}, err
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, searchBusesQuery, f.RouteLink, f.StartTime, f.EndTime)
	if err != nil {
		return []models.BusTrip{}, domain.QueryError{Op: "fetch bus information", Err: err}
	}
	defer rows.Close()

	startMin, startErr := utils.ClockMinutes(f.StartTime)
	endMin, endErr := utils.ClockMinutes(f.EndTime)
	checkTime := startErr == nil && endErr == nil

	out := []models.BusTrip{}
	for rows.Next() {
		var (
			trip     models.BusTrip
			rating   sql.NullFloat64
			rawPrice sql.NullString
			seats    sql.NullInt64
		)
		if err := rows.Scan(
			&trip.BusName,
			&trip.BusType,
			&trip.DepartureTime,
			&trip.Duration,
			&trip.ReachingTime,
			&rating,
			&rawPrice,
			&seats,
		); err != nil {
			return []models.BusTrip{}, domain.QueryError{Op: "fetch bus information", Err: err}
		}
		trip.StarRating = rating.Float64
		trip.SeatsAvailable = seats.Int64
		trip.Price = utils.NormalizeFare(rawPrice.String)

		if !utils.FareInRange(trip.Price, f.MinFare, f.MaxFare) {
			continue
		}
		if checkTime {
			dep, err := utils.ClockMinutes(trip.DepartureTime)
			if err != nil || dep < startMin || dep > endMin {
				continue
			}
		}
		out = append(out, trip)
	}
	if err := rows.Err(); err != nil {
		return []models.BusTrip{}, domain.QueryError{Op: "fetch bus information", Err: err}
	}
	return out, nil
}
