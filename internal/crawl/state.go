package crawl

import (
	"database/sql"

	_ "github.com/glebarez/sqlite"

	"rusearch/internal/apperr"
)

// State persists crawl progress to a SQLite database so a crawl can
// resume after being interrupted, adapted from the visited/urls table
// pattern in sqlite_index.go — repurposed here for frontier bookkeeping
// instead of TF-IDF postings.
type State struct {
	db *sql.DB
}

// OpenState opens (creating if necessary) the crawl state database at
// path.
func OpenState(path string) (*State, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperr.New(apperr.ErrIndexIO, "opening crawl state %s: %v", path, err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS visited (
			url TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS frontier (
			url   TEXT PRIMARY KEY,
			depth INTEGER NOT NULL DEFAULT 0
		);
	`)
	if err != nil {
		db.Close()
		return nil, apperr.New(apperr.ErrIndexIO, "initializing crawl state schema: %v", err)
	}

	return &State{db: db}, nil
}

// Close releases the underlying database connection.
func (s *State) Close() error {
	return s.db.Close()
}

// IsVisited reports whether url has already been fetched.
func (s *State) IsVisited(url string) (bool, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(1) FROM visited WHERE url = ?`, url).Scan(&count)
	if err != nil {
		return false, apperr.New(apperr.ErrIndexIO, "checking visited state: %v", err)
	}
	return count > 0, nil
}

// MarkVisited records url as fetched and removes it from the frontier.
func (s *State) MarkVisited(url string) error {
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO visited (url) VALUES (?)`, url); err != nil {
		return apperr.New(apperr.ErrIndexIO, "marking %s visited: %v", url, err)
	}
	if _, err := s.db.Exec(`DELETE FROM frontier WHERE url = ?`, url); err != nil {
		return apperr.New(apperr.ErrIndexIO, "clearing frontier entry for %s: %v", url, err)
	}
	return nil
}

// Enqueue adds url to the frontier at depth if it hasn't been visited
// and isn't already queued.
func (s *State) Enqueue(url string, depth int) error {
	visited, err := s.IsVisited(url)
	if err != nil {
		return err
	}
	if visited {
		return nil
	}
	_, err = s.db.Exec(`INSERT OR IGNORE INTO frontier (url, depth) VALUES (?, ?)`, url, depth)
	if err != nil {
		return apperr.New(apperr.ErrIndexIO, "enqueueing %s: %v", url, err)
	}
	return nil
}

// Dequeue pops the lowest-depth frontier entry (breadth-first order),
// reporting ok=false when the frontier is empty.
func (s *State) Dequeue() (url string, depth int, ok bool, err error) {
	row := s.db.QueryRow(`SELECT url, depth FROM frontier ORDER BY depth ASC, rowid ASC LIMIT 1`)
	if scanErr := row.Scan(&url, &depth); scanErr != nil {
		if scanErr == sql.ErrNoRows {
			return "", 0, false, nil
		}
		return "", 0, false, apperr.New(apperr.ErrIndexIO, "dequeueing frontier: %v", scanErr)
	}
	return url, depth, true, nil
}

// VisitedCount returns how many URLs have been fetched so far.
func (s *State) VisitedCount() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(1) FROM visited`).Scan(&count); err != nil {
		return 0, apperr.New(apperr.ErrIndexIO, "counting visited urls: %v", err)
	}
	return count, nil
}
