// Package guide holds the in-memory application state: every attraction,
// photo, route, and review, keyed by id. It enforces cross-entity existence
// checks and converts the whole state to and from the storage document.
package guide

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ykushnir/cityguide/internal/domain"
	"github.com/ykushnir/cityguide/internal/idgen"
	"github.com/ykushnir/cityguide/internal/mapview"
	"github.com/ykushnir/cityguide/internal/storage"
)

// collection is a map that remembers insertion order. Listing, map scans, and
// export all walk entities in the order they were stored.
type collection[T any] struct {
	byID  map[string]T
	order []string
}

func newCollection[T any]() *collection[T] {
	return &collection[T]{byID: make(map[string]T)}
}

func (c *collection[T]) put(id string, v T) {
	if _, ok := c.byID[id]; !ok {
		c.order = append(c.order, id)
	}
	c.byID[id] = v
}

func (c *collection[T]) get(id string) (T, bool) {
	v, ok := c.byID[id]
	return v, ok
}

func (c *collection[T]) has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

func (c *collection[T]) values() []T {
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.byID[id])
	}
	return out
}

func (c *collection[T]) len() int { return len(c.order) }

func (c *collection[T]) clear() {
	c.byID = make(map[string]T)
	c.order = nil
}

// Guide is the aggregate root. One instance owns all entity state for the
// process lifetime; it is not safe for concurrent use.
type Guide struct {
	mapView *mapview.MapView
	ids     *idgen.Generator
	logger  *slog.Logger

	attractions *collection[*domain.Attraction]
	routes      *collection[*domain.Route]
	photos      *collection[*domain.Photo]
	reviews     *collection[*domain.Review]
}

func New(mapView *mapview.MapView, ids *idgen.Generator, logger *slog.Logger) *Guide {
	return &Guide{
		mapView:     mapView,
		ids:         ids,
		logger:      logger,
		attractions: newCollection[*domain.Attraction](),
		routes:      newCollection[*domain.Route](),
		photos:      newCollection[*domain.Photo](),
		reviews:     newCollection[*domain.Review](),
	}
}

// MapText renders the map with every attraction's cell marked.
func (g *Guide) MapText() string {
	occupied := make(map[string]string, g.attractions.len())
	for _, a := range g.attractions.values() {
		occupied[a.CellID] = a.ID.Value()
	}
	return g.mapView.Render(occupied)
}

// SelectAttractionOnMap finds the attraction on the given cell. When two
// attractions share a cell (nothing prevents it) the first stored one wins.
func (g *Guide) SelectAttractionOnMap(cellID string) (domain.ID, error) {
	normalized, err := g.mapView.NormalizeCellID(cellID)
	if err != nil {
		return domain.ID{}, err
	}
	for _, a := range g.attractions.values() {
		if a.CellID == normalized {
			return a.ID, nil
		}
	}
	return domain.ID{}, fmt.Errorf("%w: there is no attraction here", domain.ErrNotFound)
}

func (g *Guide) ListAttractions() []*domain.Attraction {
	return g.attractions.values()
}

func (g *Guide) GetAttraction(id domain.ID) (*domain.Attraction, error) {
	a, ok := g.attractions.get(id.Value())
	if !ok {
		return nil, fmt.Errorf("%w: attraction not found", domain.ErrNotFound)
	}
	return a, nil
}

// AttractionInfo returns a printable summary of one attraction.
func (g *Guide) AttractionInfo(id domain.ID) (string, error) {
	a, err := g.GetAttraction(id)
	if err != nil {
		return "", err
	}
	tags := "none"
	if len(a.Tags) > 0 {
		tags = strings.Join(a.Tags, ", ")
	}
	return fmt.Sprintf("Name: %s\nDescription: %s\nMap cell: %s\nTags: %s\n",
		a.Name, a.Description, a.CellID, tags), nil
}

// AddPhoto stores a photo. Attractions reference it by id via AddPhoto on the
// attraction itself.
func (g *Guide) AddPhoto(photo *domain.Photo) {
	g.photos.put(photo.ID.Value(), photo)
}

func (g *Guide) GetPhoto(id domain.ID) (*domain.Photo, error) {
	p, ok := g.photos.get(id.Value())
	if !ok {
		return nil, fmt.Errorf("%w: photo not found", domain.ErrNotFound)
	}
	return p, nil
}

// ListPhotosForAttraction resolves the attraction's photo references. A
// dangling reference surfaces as a not-found error rather than a crash.
func (g *Guide) ListPhotosForAttraction(attractionID domain.ID) ([]*domain.Photo, error) {
	a, err := g.GetAttraction(attractionID)
	if err != nil {
		return nil, err
	}
	photos := make([]*domain.Photo, 0, len(a.PhotoIDs))
	for _, pid := range a.PhotoIDs {
		p, err := g.GetPhoto(pid)
		if err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, nil
}

func (g *Guide) ListRoutes() []*domain.Route {
	return g.routes.values()
}

func (g *Guide) GetRoute(id domain.ID) (*domain.Route, error) {
	r, ok := g.routes.get(id.Value())
	if !ok {
		return nil, fmt.Errorf("%w: route not found", domain.ErrNotFound)
	}
	return r, nil
}

// CreateRoute stores a new empty draft route and returns its id. The id is
// date-based; when today's base id is taken, the lowest free _n suffix (n >= 2)
// is appended.
func (g *Guide) CreateRoute(name string) (domain.ID, error) {
	idText := g.ensureUniqueID(g.ids.NewID("route"), g.routes.has)
	id, err := domain.NewID(idText)
	if err != nil {
		return domain.ID{}, err
	}

	route, err := domain.NewRoute(id, name, domain.StatusDraft, nil)
	if err != nil {
		return domain.ID{}, err
	}
	g.routes.put(route.ID.Value(), route)
	g.logger.Info("route created", "id", route.ID.Value(), "name", route.Name)
	return route.ID, nil
}

func (g *Guide) ensureUniqueID(baseID string, taken func(string) bool) string {
	if !taken(baseID) {
		return baseID
	}
	for counter := 2; ; counter++ {
		candidate := fmt.Sprintf("%s_%d", baseID, counter)
		if !taken(candidate) {
			return candidate
		}
	}
}

// AddStopToRoute verifies both the route and the attraction exist, then
// delegates to the route.
func (g *Guide) AddStopToRoute(routeID, attractionID domain.ID) error {
	if _, err := g.GetAttraction(attractionID); err != nil {
		return err
	}
	route, err := g.GetRoute(routeID)
	if err != nil {
		return err
	}
	return route.AddStop(attractionID)
}

func (g *Guide) RemoveStopFromRoute(routeID, attractionID domain.ID) error {
	route, err := g.GetRoute(routeID)
	if err != nil {
		return err
	}
	return route.RemoveStop(attractionID)
}

func (g *Guide) PublishRoute(routeID domain.ID) error {
	route, err := g.GetRoute(routeID)
	if err != nil {
		return err
	}
	if err := route.Publish(); err != nil {
		return err
	}
	g.logger.Info("route published", "id", routeID.Value())
	return nil
}

func (g *Guide) UnpublishRoute(routeID domain.ID) error {
	route, err := g.GetRoute(routeID)
	if err != nil {
		return err
	}
	return route.UnpublishToDraft()
}

func (g *Guide) ArchiveRoute(routeID domain.ID) error {
	route, err := g.GetRoute(routeID)
	if err != nil {
		return err
	}
	route.Archive()
	return nil
}

// PublishReview validates, stamps, and stores a new review for an existing
// attraction. Nothing is stored when validation fails.
func (g *Guide) PublishReview(attractionID domain.ID, author string, rating int, text string) (domain.ID, error) {
	if _, err := g.GetAttraction(attractionID); err != nil {
		return domain.ID{}, err
	}

	idText := g.ensureUniqueID(g.ids.NewID("review"), g.reviews.has)
	id, err := domain.NewID(idText)
	if err != nil {
		return domain.ID{}, err
	}

	createdAt := time.Now().Format("2006-01-02T15:04:05")
	review, err := domain.NewReview(id, attractionID, author, rating, text, createdAt)
	if err != nil {
		return domain.ID{}, err
	}
	g.reviews.put(review.ID.Value(), review)
	g.logger.Info("review published", "id", review.ID.Value(), "attraction", attractionID.Value(), "rating", rating)
	return review.ID, nil
}

// ListReviewsForAttraction returns the attraction's reviews in storage order.
func (g *Guide) ListReviewsForAttraction(attractionID domain.ID) ([]*domain.Review, error) {
	if _, err := g.GetAttraction(attractionID); err != nil {
		return nil, err
	}
	reviews := make([]*domain.Review, 0)
	for _, r := range g.reviews.values() {
		if r.AttractionID == attractionID {
			reviews = append(reviews, r)
		}
	}
	return reviews, nil
}

// ExportState serializes the full state into a storage document, in insertion
// order for each entity kind.
func (g *Guide) ExportState() storage.Document {
	doc := storage.Document{
		Attractions: make([]storage.AttractionRecord, 0, g.attractions.len()),
		Routes:      make([]storage.RouteRecord, 0, g.routes.len()),
		Photos:      make([]storage.PhotoRecord, 0, g.photos.len()),
		Reviews:     make([]storage.ReviewRecord, 0, g.reviews.len()),
	}

	for _, a := range g.attractions.values() {
		doc.Attractions = append(doc.Attractions, storage.AttractionRecord{
			ID:          a.ID.Value(),
			Name:        a.Name,
			Description: a.Description,
			CellID:      a.CellID,
			Tags:        append([]string{}, a.Tags...),
			PhotoIDs:    idValues(a.PhotoIDs),
		})
	}
	for _, r := range g.routes.values() {
		doc.Routes = append(doc.Routes, storage.RouteRecord{
			ID:            r.ID.Value(),
			Name:          r.Name,
			Status:        string(r.Status),
			AttractionIDs: idValues(r.AttractionIDs),
		})
	}
	for _, p := range g.photos.values() {
		doc.Photos = append(doc.Photos, storage.PhotoRecord{
			ID:       p.ID.Value(),
			Title:    p.Title,
			FilePath: p.FilePath,
		})
	}
	for _, r := range g.reviews.values() {
		doc.Reviews = append(doc.Reviews, storage.ReviewRecord{
			ID:           r.ID.Value(),
			AttractionID: r.AttractionID.Value(),
			Author:       r.Author,
			Rating:       r.Rating,
			Text:         r.Text,
			CreatedAtISO: r.CreatedAtISO,
		})
	}
	return doc
}

// ImportState replaces the full state with the document's contents. Entities
// are rebuilt through their constructors, so a corrupted document fails with
// a validation error.
func (g *Guide) ImportState(doc storage.Document) error {
	g.attractions.clear()
	g.routes.clear()
	g.photos.clear()
	g.reviews.clear()

	for _, rec := range doc.Attractions {
		id, err := domain.NewID(rec.ID)
		if err != nil {
			return err
		}
		photoIDs, err := toIDs(rec.PhotoIDs)
		if err != nil {
			return err
		}
		a, err := domain.NewAttraction(id, rec.Name, rec.Description, rec.CellID, rec.Tags, photoIDs)
		if err != nil {
			return err
		}
		g.attractions.put(a.ID.Value(), a)
	}

	for _, rec := range doc.Photos {
		id, err := domain.NewID(rec.ID)
		if err != nil {
			return err
		}
		p, err := domain.NewPhoto(id, rec.Title, rec.FilePath)
		if err != nil {
			return err
		}
		g.photos.put(p.ID.Value(), p)
	}

	for _, rec := range doc.Routes {
		id, err := domain.NewID(rec.ID)
		if err != nil {
			return err
		}
		// A record without a status is an old draft.
		statusText := rec.Status
		if statusText == "" {
			statusText = string(domain.StatusDraft)
		}
		status, err := domain.ParseStatus(statusText)
		if err != nil {
			return err
		}
		attractionIDs, err := toIDs(rec.AttractionIDs)
		if err != nil {
			return err
		}
		r, err := domain.NewRoute(id, rec.Name, status, attractionIDs)
		if err != nil {
			return err
		}
		g.routes.put(r.ID.Value(), r)
	}

	for _, rec := range doc.Reviews {
		id, err := domain.NewID(rec.ID)
		if err != nil {
			return err
		}
		attractionID, err := domain.NewID(rec.AttractionID)
		if err != nil {
			return err
		}
		r, err := domain.NewReview(id, attractionID, rec.Author, rec.Rating, rec.Text, rec.CreatedAtISO)
		if err != nil {
			return err
		}
		g.reviews.put(r.ID.Value(), r)
	}

	g.logger.Info("state imported",
		"attractions", g.attractions.len(),
		"routes", g.routes.len(),
		"photos", g.photos.len(),
		"reviews", g.reviews.len())
	return nil
}

func idValues(ids []domain.ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Value())
	}
	return out
}

func toIDs(values []string) ([]domain.ID, error) {
	out := make([]domain.ID, 0, len(values))
	for _, v := range values {
		id, err := domain.NewID(v)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
