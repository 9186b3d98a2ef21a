// Package menu is the interactive console front end. It is the only layer
// that catches domain errors: every failure prints one message and the loop
// keeps going.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ykushnir/cityguide/internal/domain"
	"github.com/ykushnir/cityguide/internal/guide"
)

type Menu struct {
	guide  *guide.Guide
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

func New(g *guide.Guide, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		guide:  g,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the visitor chooses 0 or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()
		choice, ok := m.prompt("Your choice: ")
		if !ok {
			return
		}
		if choice == "0" {
			m.printf("Goodbye!\n")
			return
		}

		if err := m.dispatch(choice); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			m.logger.Debug("command failed", "choice", choice, "error", err)
			m.printf("Error: %v\n", err)
		}
	}
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.showMap()
	case "2":
		return m.selectOnMap()
	case "3":
		return m.showAttractionInfo()
	case "4":
		return m.showPhotos()
	case "5":
		return m.publishReview()
	case "6":
		return m.createRoute()
	case "7":
		return m.addStop()
	case "8":
		return m.removeStop()
	case "9":
		return m.publishRoute()
	case "10":
		return m.unpublishRoute()
	case "11":
		return m.archiveRoute()
	case "12":
		return m.listAttractions()
	case "13":
		return m.listRoutes()
	case "14":
		return m.listReviews()
	default:
		m.printf("Try again.\n")
		return nil
	}
}

func (m *Menu) printMenu() {
	m.printf("\nMenu\n")
	m.printf("1. Show the map\n")
	m.printf("2. Select an attraction on the map (by cell)\n")
	m.printf("3. About an attraction\n")
	m.printf("4. View an attraction's photos\n")
	m.printf("5. Publish a review\n")
	m.printf("6. Create a draft route\n")
	m.printf("7. Add an attraction to a draft route\n")
	m.printf("8. Remove an attraction from a draft route\n")
	m.printf("9. Publish a route\n")
	m.printf("10. Unpublish a route\n")
	m.printf("11. Archive a route\n")
	m.printf("12. List attractions\n")
	m.printf("13. List routes\n")
	m.printf("14. Reviews for an attraction\n")
	m.printf("0. Exit\n")
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// prompt prints the label and reads one trimmed line. ok is false when input
// has ended.
func (m *Menu) prompt(label string) (value string, ok bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) promptID(label string) (domain.ID, error) {
	text, ok := m.prompt(label)
	if !ok {
		return domain.ID{}, io.EOF
	}
	return domain.NewID(text)
}

func (m *Menu) showMap() error {
	m.printf("%s\n", m.guide.MapText())
	return nil
}

func (m *Menu) selectOnMap() error {
	cell, ok := m.prompt("Enter a cell (e.g. A1): ")
	if !ok {
		return io.EOF
	}
	id, err := m.guide.SelectAttractionOnMap(cell)
	if err != nil {
		return err
	}
	m.printf("You selected the attraction with id: %s\n", id.Value())
	return nil
}

func (m *Menu) showAttractionInfo() error {
	id, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	info, err := m.guide.AttractionInfo(id)
	if err != nil {
		return err
	}
	m.printf("%s", info)
	return nil
}

func (m *Menu) showPhotos() error {
	id, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	photos, err := m.guide.ListPhotosForAttraction(id)
	if err != nil {
		return err
	}
	if len(photos) == 0 {
		m.printf("No photos\n")
		return nil
	}
	m.printf("Photos:\n")
	for _, p := range photos {
		m.printf("- %s. file: %s\n", p.Title, p.FilePath)
	}
	return nil
}

func (m *Menu) publishReview() error {
	id, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	author, ok := m.prompt("Author: ")
	if !ok {
		return io.EOF
	}
	ratingText, ok := m.prompt("Rating: ")
	if !ok {
		return io.EOF
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		m.printf("Invalid number format\n")
		return nil
	}
	text, ok := m.prompt("Review text: ")
	if !ok {
		return io.EOF
	}
	reviewID, err := m.guide.PublishReview(id, author, rating, text)
	if err != nil {
		return err
	}
	m.printf("Review published. id: %s\n", reviewID.Value())
	return nil
}

func (m *Menu) createRoute() error {
	name, ok := m.prompt("Enter a route name: ")
	if !ok {
		return io.EOF
	}
	id, err := m.guide.CreateRoute(name)
	if err != nil {
		return err
	}
	m.printf("Route created (draft). id: %s\n", id.Value())
	return nil
}

func (m *Menu) addStop() error {
	routeID, err := m.promptID("Enter a route id: ")
	if err != nil {
		return err
	}
	attractionID, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	if err := m.guide.AddStopToRoute(routeID, attractionID); err != nil {
		return err
	}
	m.printf("Attraction added\n")
	return nil
}

func (m *Menu) removeStop() error {
	routeID, err := m.promptID("Enter a route id: ")
	if err != nil {
		return err
	}
	attractionID, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	if err := m.guide.RemoveStopFromRoute(routeID, attractionID); err != nil {
		return err
	}
	m.printf("Attraction removed\n")
	return nil
}

func (m *Menu) publishRoute() error {
	routeID, err := m.promptID("Enter a route id: ")
	if err != nil {
		return err
	}
	if err := m.guide.PublishRoute(routeID); err != nil {
		return err
	}
	m.printf("Route published\n")
	return nil
}

func (m *Menu) unpublishRoute() error {
	routeID, err := m.promptID("Enter a route id: ")
	if err != nil {
		return err
	}
	if err := m.guide.UnpublishRoute(routeID); err != nil {
		return err
	}
	m.printf("Route returned to draft\n")
	return nil
}

func (m *Menu) archiveRoute() error {
	routeID, err := m.promptID("Enter a route id: ")
	if err != nil {
		return err
	}
	if err := m.guide.ArchiveRoute(routeID); err != nil {
		return err
	}
	m.printf("Route archived\n")
	return nil
}

func (m *Menu) listAttractions() error {
	attractions := m.guide.ListAttractions()
	if len(attractions) == 0 {
		m.printf("No attractions yet\n")
		return nil
	}
	m.printf("Attractions:\n")
	for _, a := range attractions {
		m.printf("- %s: %s, cell: %s\n", a.ID.Value(), a.Name, a.CellID)
	}
	return nil
}

func (m *Menu) listRoutes() error {
	routes := m.guide.ListRoutes()
	if len(routes) == 0 {
		m.printf("No routes yet\n")
		return nil
	}
	m.printf("Routes:\n")
	for _, r := range routes {
		m.printf("- %s: %s, status: %s, stops: %d\n", r.ID.Value(), r.Name, r.Status, len(r.AttractionIDs))
	}
	return nil
}

func (m *Menu) listReviews() error {
	id, err := m.promptID("Enter an attraction id: ")
	if err != nil {
		return err
	}
	reviews, err := m.guide.ListReviewsForAttraction(id)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		m.printf("No reviews yet\n")
		return nil
	}
	m.printf("Reviews:\n")
	for _, r := range reviews {
		m.printf("- %s, %s, %d/5\n", r.CreatedAtISO, r.Author, r.Rating)
		m.printf("  %s\n", r.Text)
	}
	return nil
}
