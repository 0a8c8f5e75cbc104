// Package content holds the bot's static reply content: the joke list, the
// lunch-perk menus and the known wellness activities. Defaults are embedded
// in the binary and may be replaced once at start-up from object storage.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"slices"
)

// Object names, shared by the embedded defaults and the bucket layout.
const (
	JokesFile    = "jokes.json"
	MenusFile    = "menus.json"
	WellnessFile = "wellness.json"
)

//go:embed data/*.json
var defaults embed.FS

// Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	jokes      []string
	menus      map[string]string
	activities []string
}

// Default builds a Catalog from the embedded content.
func Default() (*Catalog, error) {
	var c Catalog
	for name, dst := range map[string]any{
		JokesFile:    &c.jokes,
		MenusFile:    &c.menus,
		WellnessFile: &c.activities,
	} {
		data, err := defaults.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("content: read embedded %s: %w", name, err)
		}
		if err := json.Unmarshal(data, dst); err != nil {
			return nil, fmt.Errorf("content: decode embedded %s: %w", name, err)
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustDefault is Default for tests and package-level wiring.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	if len(c.jokes) == 0 {
		return fmt.Errorf("content: %s is empty", JokesFile)
	}
	if len(c.menus) == 0 {
		return fmt.Errorf("content: %s is empty", MenusFile)
	}
	if len(c.activities) == 0 {
		return fmt.Errorf("content: %s is empty", WellnessFile)
	}
	return nil
}

// Joke picks a joke using intn, which must return a value in [0, n).
// A nil intn uses math/rand/v2.
func (c *Catalog) Joke(intn func(n int) int) string {
	if intn == nil {
		intn = rand.IntN
	}
	return c.jokes[intn(len(c.jokes))]
}

// JokeCount returns the number of jokes.
func (c *Catalog) JokeCount() int {
	return len(c.jokes)
}

// Menu returns the stored menu text for a restaurant key.
func (c *Catalog) Menu(restaurant string) (string, bool) {
	text, ok := c.menus[restaurant]
	return text, ok
}

// IsWellnessActivity reports whether name is a known activity (exact match).
func (c *Catalog) IsWellnessActivity(name string) bool {
	return slices.Contains(c.activities, name)
}
