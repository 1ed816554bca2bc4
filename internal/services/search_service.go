package services

import (
	"context"
	"errors"
	"fmt"

	"busfinder/internal/domain"
	"busfinder/internal/domain/models"
	"busfinder/internal/utils"
)

const RoutePlaceholder = "Choose an option"

// Page statuses, in the order BuildView checks them.
const (
	StatusPrompt    = "prompt"
	StatusFilters   = "filters"
	StatusNoLink    = "no_link"
	StatusNoTrips   = "no_trips"
	StatusResults   = "results"
	StatusConnError = "connection_error"
)

type RouteLister interface {
	ListRoutes(ctx context.Context) ([]string, error)
	ResolveLink(ctx context.Context, routeName string) (string, bool, error)
}

type BusSearcher interface {
	Search(ctx context.Context, f models.SearchFilter) ([]models.BusTrip, error)
}

// PageInput is what the visitor has selected in the sidebar.
type PageInput struct {
	Route     string
	StartTime string
	EndTime   string
	MinFare   int64
	MaxFare   int64
	Submitted bool
}

// DefaultPageInput has no route and the widest windows the selectors offer.
func DefaultPageInput() PageInput {
	slots := utils.DefaultTimeSlots()
	brackets := utils.DefaultFareBrackets()
	return PageInput{
		StartTime: slots[0],
		EndTime:   slots[len(slots)-1],
		MinFare:   brackets[0],
		MaxFare:   brackets[len(brackets)-1],
	}
}

// RouteChosen is false for an empty selection and for the placeholder entry.
func (in PageInput) RouteChosen() bool {
	r := utils.TrimOrEmpty(in.Route)
	return r != "" && r != RoutePlaceholder
}

type Message struct {
	Level string `json:"level"` // info, warning, error
	Text  string `json:"text"`
}

// SearchOutcome is the result of the database lookups for one render.
type SearchOutcome struct {
	Searched  bool
	LinkFound bool
	Link      string
	Trips     []models.BusTrip
	// QueryErr is the recovered domain.QueryError, if a lookup failed.
	QueryErr error
}

type TripRow struct {
	models.BusTrip
	Index     int
	Key       string
	FareLabel string
}

// View is everything the page template needs.
type View struct {
	Title          string
	Routes         []string
	Selected       PageInput
	RouteChosen    bool
	TimeOptions    []string
	FareOptions    []int64
	BookingSuccess bool
	Messages       []Message
	Status         string
	StatusText     string
	RouteLink      string
	Trips          []TripRow
}

// BuildView turns selections, session state and lookup results into a view.
// It does no I/O.
func BuildView(in PageInput, st models.SessionState, routes []string, out SearchOutcome, msgs []Message) View {
	v := View{
		Title:          "Book Your Bus",
		Routes:         append([]string{RoutePlaceholder}, routes...),
		Selected:       in,
		RouteChosen:    in.RouteChosen(),
		TimeOptions:    utils.DefaultTimeSlots(),
		FareOptions:    utils.DefaultFareBrackets(),
		BookingSuccess: st.BookingSuccess,
		Messages:       msgs,
	}

	switch {
	case !v.RouteChosen:
		v.Status = StatusPrompt
		v.StatusText = "Please select a valid route."
	case !in.Submitted || !out.Searched:
		v.Status = StatusFilters
	case !out.LinkFound:
		v.Status = StatusNoLink
		v.StatusText = fmt.Sprintf("No route link found for the selected route: %s.", in.Route)
	case len(out.Trips) == 0:
		v.Status = StatusNoTrips
		v.RouteLink = out.Link
		v.StatusText = fmt.Sprintf("No bus information found for route between %s and %s, and fare between %d and %d.",
			in.StartTime, in.EndTime, in.MinFare, in.MaxFare)
	default:
		v.Status = StatusResults
		v.RouteLink = out.Link
		v.Trips = make([]TripRow, 0, len(out.Trips))
		for i, trip := range out.Trips {
			v.Trips = append(v.Trips, TripRow{
				BusTrip:   trip,
				Index:     i,
				Key:       BookKey(i),
				FareLabel: utils.FormatRupee(trip.Price),
			})
		}
	}
	return v
}

// BookKey is the per-row identifier of a book action.
func BookKey(index int) string {
	return fmt.Sprintf("book_%d", index)
}

// SearchService runs the lookups behind one render. Query failures become
// error messages and empty results; only connection failures are returned.
type SearchService struct {
	Routes    RouteLister
	Buses     BusSearcher
	RequestID string
}

// Page builds the complete view for in. The returned error is always a
// domain.ConnectionError; the view is still usable to report it.
func (s SearchService) Page(ctx context.Context, in PageInput, st models.SessionState) (View, error) {
	var msgs []Message

	routes, err := s.Routes.ListRoutes(ctx)
	if err != nil {
		if domain.IsConnection(err) {
			return s.connectionView(in, st, err), err
		}
		msgs = append(msgs, Message{Level: "error", Text: fmt.Sprintf("Error fetching routes: %v", err)})
	}

	out, outMsgs, err := s.Lookup(ctx, in)
	msgs = append(msgs, outMsgs...)
	if err != nil {
		return s.connectionView(in, st, err), err
	}

	utils.LogEvent(s.RequestID, "search", "render",
		fmt.Sprintf("route=%q submitted=%t link_found=%t trips=%d phase=%s", in.Route, in.Submitted, out.LinkFound, len(out.Trips), st.Phase()))
	return BuildView(in, st, routes, out, msgs), nil
}

// Lookup resolves the selected route and searches its trips. It does nothing
// until a route is chosen and the form has been submitted.
func (s SearchService) Lookup(ctx context.Context, in PageInput) (SearchOutcome, []Message, error) {
	var out SearchOutcome
	var msgs []Message
	if !in.RouteChosen() || !in.Submitted {
		return out, nil, nil
	}
	out.Searched = true

	link, found, err := s.Routes.ResolveLink(ctx, in.Route)
	switch {
	case domain.IsConnection(err):
		return out, msgs, err
	case err != nil:
		msgs = append(msgs, Message{Level: "error", Text: fmt.Sprintf("Error fetching route link: %v", err)})
		out.QueryErr = err
		return out, msgs, nil
	case !found:
		msgs = append(msgs, Message{Level: "warning", Text: fmt.Sprintf("No route link found for route: %s.", in.Route)})
		return out, msgs, nil
	}
	out.LinkFound = true
	out.Link = link

	trips, err := s.Buses.Search(ctx, in.Filter(link))
	switch {
	case domain.IsConnection(err):
		return out, msgs, err
	case err != nil:
		msgs = append(msgs, Message{Level: "error", Text: fmt.Sprintf("Error fetching bus information: %v", err)})
		out.QueryErr = err
	}
	out.Trips = trips
	return out, msgs, nil
}

// Filter builds the search filter for link from the current selections.
func (in PageInput) Filter(link string) models.SearchFilter {
	return models.SearchFilter{
		RouteLink: link,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		MinFare:   in.MinFare,
		MaxFare:   in.MaxFare,
	}
}

func (s SearchService) connectionView(in PageInput, st models.SessionState, err error) View {
	cause := err
	var ce domain.ConnectionError
	if errors.As(err, &ce) && ce.Err != nil {
		cause = ce.Err
	}
	utils.LogEvent(s.RequestID, "search", "connection_failed", cause.Error())
	v := BuildView(in, st, nil, SearchOutcome{}, []Message{{Level: "error", Text: fmt.Sprintf("Error connecting to database: %v", cause)}})
	v.Status = StatusConnError
	v.StatusText = ""
	return v
}
