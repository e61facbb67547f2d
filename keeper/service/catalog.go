package service

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hostkeeper/keeper/config"
	"github.com/hostkeeper/keeper/keeper/domain"
	"github.com/hostkeeper/keeper/pkg/util"
	"github.com/pkg/errors"
)

// DefaultCategories is the cleanup catalog used when the configuration names none.
func DefaultCategories(goos string) []domain.CleanupCategory {
	if goos == "darwin" {
		return []domain.CleanupCategory{
			{Name: "user-caches", Description: "Application caches in the user library", Paths: []string{"~/Library/Caches/*"}},
			{Name: "user-logs", Description: "Application logs in the user library", Paths: []string{"~/Library/Logs/*"}},
			{Name: "trash", Description: "Files in the Trash", Paths: []string{"~/.Trash/*"}},
			{Name: "memory", Description: "Purge inactive memory", Command: []string{"purge"}, Privileged: true},
			{Name: "dns", Description: "Flush the DNS resolver cache", Command: []string{"dscacheutil", "-flushcache"}, Privileged: true},
		}
	}
	return []domain.CleanupCategory{
		{Name: "user-caches", Description: "Application caches in the user cache directory", Paths: []string{"~/.cache/*"}},
		{Name: "trash", Description: "Files in the Trash", Paths: []string{"~/.local/share/Trash/files/*", "~/.local/share/Trash/info/*"}},
		{Name: "thumbnails", Description: "Cached thumbnails", Paths: []string{"~/.cache/thumbnails/*"}},
	}
}

type Catalog struct {
	categories []domain.CleanupCategory
	byName     map[string]domain.CleanupCategory
}

func NewCatalog(configured []config.CleanupCategoryConfig, goos string) (*Catalog, error) {
	categories := DefaultCategories(goos)
	if len(configured) > 0 {
		categories = make([]domain.CleanupCategory, 0, len(configured))
		for _, c := range configured {
			categories = append(categories, domain.CleanupCategory{
				Name:        c.Name,
				Description: c.Description,
				Paths:       c.Paths,
				Command:     c.Command,
				Privileged:  c.Privileged,
			})
		}
	}
	catalog := &Catalog{byName: map[string]domain.CleanupCategory{}}
	for _, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("cleanup category without a name")
		}
		if (len(c.Paths) == 0) == (len(c.Command) == 0) {
			return nil, fmt.Errorf("cleanup category %q must set exactly one of paths or command", c.Name)
		}
		if _, dup := catalog.byName[c.Name]; dup {
			return nil, fmt.Errorf("cleanup category %q defined twice", c.Name)
		}
		catalog.byName[c.Name] = c
		catalog.categories = append(catalog.categories, c)
	}
	return catalog, nil
}

func (c *Catalog) Categories() []domain.CleanupCategory {
	out := make([]domain.CleanupCategory, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Lookup(name string) (domain.CleanupCategory, error) {
	cat, ok := c.byName[name]
	if !ok {
		return domain.CleanupCategory{}, errors.WithMessagef(domain.ErrUnknownCategory, "%q", name)
	}
	return cat, nil
}

// Expand resolves the category's globs against the file system.
func (c *Catalog) Expand(cat domain.CleanupCategory) ([]string, error) {
	seen := map[string]struct{}{}
	var items []string
	for _, pattern := range cat.Paths {
		matches, err := filepath.Glob(util.ExpandHome(pattern))
		if err != nil {
			return nil, errors.Wrapf(err, "expand %q", pattern)
		}
		for _, m := range matches {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			items = append(items, m)
		}
	}
	sort.Strings(items)
	return items, nil
}
