package guide

import (
	"fmt"

	"github.com/ykushnir/cityguide/internal/domain"
)

// seedEntry is one sample attraction with its photo.
type seedEntry struct {
	id, name, description, cell string
	tags                        []string
	photoID, photoTitle, file   string
}

var seedEntries = []seedEntry{
	{
		id: "d1", name: "Victory Square", cell: "B2",
		description: "Famous city square and memorial complex.",
		tags:        []string{"history", "walk"},
		photoID:     "p1", photoTitle: "View of the square", file: "photos/pobedy.jpg",
	},
	{
		id: "d2", name: "Trinity Suburb", cell: "C3",
		description: "Historic district for walks and photos.",
		tags:        []string{"architecture", "walk"},
		photoID:     "p2", photoTitle: "Suburb streets", file: "photos/trinity.jpg",
	},
	{
		id: "d3", name: "Station Square", cell: "D4",
		description: "The calling card of Minsk.",
		tags:        []string{"architecture", "buildings"},
		photoID:     "p3", photoTitle: "Railway station", file: "photos/station.jpg",
	},
}

// SeedIfEmpty inserts the sample attractions and photos when no attraction
// exists yet. With any attraction present it does nothing.
func (g *Guide) SeedIfEmpty() error {
	if g.attractions.len() > 0 {
		return nil
	}

	attractions := make([]*domain.Attraction, 0, len(seedEntries))
	photos := make([]*domain.Photo, 0, len(seedEntries))
	for _, e := range seedEntries {
		id, err := domain.NewID(e.id)
		if err != nil {
			return err
		}
		photoID, err := domain.NewID(e.photoID)
		if err != nil {
			return err
		}
		a, err := domain.NewAttraction(id, e.name, e.description, e.cell, e.tags, []domain.ID{photoID})
		if err != nil {
			return err
		}
		p, err := domain.NewPhoto(photoID, e.photoTitle, e.file)
		if err != nil {
			return err
		}
		attractions = append(attractions, a)
		photos = append(photos, p)
	}

	// Unreachable given the emptiness guard above; kept as a guard against a
	// corrupted precondition.
	for _, a := range attractions {
		if g.attractions.has(a.ID.Value()) {
			return fmt.Errorf("%w: seed attraction id %s already exists", domain.ErrDuplicate, a.ID.Value())
		}
	}

	for _, a := range attractions {
		g.attractions.put(a.ID.Value(), a)
	}
	for _, p := range photos {
		g.photos.put(p.ID.Value(), p)
	}
	g.logger.Info("seeded sample attractions", "count", len(attractions))
	return nil
}
