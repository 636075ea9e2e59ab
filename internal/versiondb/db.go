// Package versiondb keeps the set of known versions for each tracked project
// and reconciles it against a repology.Source.
package versiondb

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/blackwell-systems/repoctl/internal/repology"
	"github.com/blackwell-systems/repoctl/internal/util"
)

// ErrNoPackages is returned by Add when the source knows no packages for a name.
var ErrNoPackages = errors.New("no packages found")

// Sink receives results as they are computed.
type Sink interface {
	ListPackages(pkgs []repology.Package) error
	ListVersions(project string, versions []string) error
}

// DB is the on-disk version database. It is written only by Update with
// commit set, and by Add.
type DB struct {
	path     string
	projects projects
	log      *zap.Logger
}

// Open loads the database at path, creating an empty one if the file does
// not exist yet.
func Open(path string, log *zap.Logger) (*DB, error) {
	if log == nil {
		log = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		log.Debug("creating version database", zap.String("path", path))
		if err := util.WriteFileAtomic(path, []byte("{}\n"), 0600); err != nil {
			return nil, fmt.Errorf("creating version database: %w", err)
		}
	default:
		return nil, fmt.Errorf("reading version database: %w", err)
	}

	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	log.Debug("version database loaded", zap.String("path", path), zap.Int("projects", len(p)))

	return &DB{path: path, projects: p, log: log}, nil
}

// Path returns the file backing the database.
func (db *DB) Path() string {
	return db.path
}

// Projects returns the tracked project names, sorted.
func (db *DB) Projects() []string {
	var names []string
	for name := range db.projects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Versions returns the known versions of a project, sorted. Unknown projects
// have no versions.
func (db *DB) Versions(name string) []string {
	return sortedVersions(db.projects[name])
}

// Update fetches every tracked project from src and reports, per project,
// the packages whose version is not yet known. With commit set the fetched
// versions are merged and the database is written once, after all projects
// succeeded. The first error aborts the run and nothing is written.
func (db *DB) Update(ctx context.Context, commit bool, src repology.Source, sink Sink) error {
	names := db.Projects()
	working := db.projects.clone()

	for _, name := range names {
		known, ok := working[name]
		if !ok {
			known = mapset.NewThreadUnsafeSet[string]()
		}

		pkgs, err := src.Project(ctx, name)
		if err != nil {
			return fmt.Errorf("updating %q: %w", name, err)
		}

		fresh := lo.Filter(pkgs, func(p repology.Package, _ int) bool {
			return !known.Contains(p.Version)
		})
		db.log.Debug("project checked",
			zap.String("project", name),
			zap.Int("packages", len(pkgs)),
			zap.Int("new", len(fresh)))

		if commit {
			for _, p := range pkgs {
				known.Add(p.Version)
			}
			working[name] = known
		}

		if err := sink.ListPackages(fresh); err != nil {
			return fmt.Errorf("reporting %q: %w", name, err)
		}
	}

	if !commit {
		return nil
	}
	if err := db.save(working); err != nil {
		return err
	}
	db.projects = working
	return nil
}

// Show fetches and reports the current upstream packages of every tracked
// project, ignoring the stored versions.
func (db *DB) Show(ctx context.Context, src repology.Source, sink Sink) error {
	for _, name := range db.Projects() {
		pkgs, err := src.Project(ctx, name)
		if err != nil {
			return fmt.Errorf("fetching %q: %w", name, err)
		}
		if err := sink.ListPackages(pkgs); err != nil {
			return fmt.Errorf("reporting %q: %w", name, err)
		}
	}
	return nil
}

// ShowLocal reports the stored versions of every tracked project.
func (db *DB) ShowLocal(sink Sink) error {
	for _, name := range db.Projects() {
		if err := sink.ListVersions(name, db.Versions(name)); err != nil {
			return fmt.Errorf("reporting %q: %w", name, err)
		}
	}
	return nil
}

// Add starts tracking name with the distinct versions src currently knows,
// replacing any previous entry, and writes the database.
func (db *DB) Add(ctx context.Context, name string, src repology.Source) error {
	if name == "" {
		return errors.New("project name must not be empty")
	}

	pkgs, err := src.Project(ctx, name)
	if err != nil {
		return fmt.Errorf("fetching %q: %w", name, err)
	}
	if len(pkgs) == 0 {
		return fmt.Errorf("%w for %q", ErrNoPackages, name)
	}

	versions := lo.Uniq(lo.Map(pkgs, func(p repology.Package, _ int) string {
		return p.Version
	}))
	db.log.Debug("adding project", zap.String("project", name), zap.Strings("versions", versions))

	working := db.projects.clone()
	working[name] = mapset.NewThreadUnsafeSet(versions...)
	if err := db.save(working); err != nil {
		return err
	}
	db.projects = working
	return nil
}

func (db *DB) save(p projects) error {
	data, err := marshal(p)
	if err != nil {
		return err
	}
	if err := util.WriteFileAtomic(db.path, data, 0600); err != nil {
		return fmt.Errorf("writing version database: %w", err)
	}
	db.log.Debug("version database written", zap.String("path", db.path), zap.Int("projects", len(p)))
	return nil
}
