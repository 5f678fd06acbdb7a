package likes

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/lucasferri/artmood/internal/artwork"
)

// Store persists liked artworks across runs, keyed by artwork ID. The full
// record is stored so the likes view renders without touching a provider.
type Store struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating likes dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &Store{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS likes (
			id             TEXT PRIMARY KEY,
			title          TEXT NOT NULL,
			artist         TEXT NOT NULL,
			date           TEXT NOT NULL DEFAULT '',
			image_url      TEXT NOT NULL,
			detail_url     TEXT NOT NULL,
			medium         TEXT NOT NULL DEFAULT '',
			classification TEXT NOT NULL DEFAULT '',
			liked_at       DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

// Add upserts the artwork into the store.
func (s *Store) Add(it artwork.Artwork) error {
	_, err := s.writeDB.Exec(`
		INSERT INTO likes (id, title, artist, date, image_url, detail_url, medium, classification, liked_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			artist = excluded.artist,
			date = excluded.date,
			image_url = excluded.image_url,
			detail_url = excluded.detail_url,
			medium = excluded.medium,
			classification = excluded.classification
	`, it.ID, it.Title, it.Artist, it.Date, it.ImageURL, it.DetailURL, it.Medium, it.Classification, time.Now())
	if err != nil {
		return fmt.Errorf("adding like %s: %w", it.ID, err)
	}
	return nil
}

func (s *Store) Remove(id string) error {
	_, err := s.writeDB.Exec("DELETE FROM likes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("removing like %s: %w", id, err)
	}
	return nil
}

func (s *Store) Contains(id string) (bool, error) {
	var n int
	err := s.readDB.QueryRow("SELECT COUNT(*) FROM likes WHERE id = ?", id).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("checking like %s: %w", id, err)
	}
	return n > 0, nil
}

// Toggle likes the artwork if it isn't liked yet, unlikes it otherwise, and
// reports the new state.
func (s *Store) Toggle(it artwork.Artwork) (bool, error) {
	liked, err := s.Contains(it.ID)
	if err != nil {
		return false, err
	}
	if liked {
		return false, s.Remove(it.ID)
	}
	return true, s.Add(it)
}

// List returns all liked artworks ordered by ID.
func (s *Store) List() ([]artwork.Artwork, error) {
	rows, err := s.readDB.Query(`
		SELECT id, title, artist, date, image_url, detail_url, medium, classification
		FROM likes ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying likes: %w", err)
	}
	defer rows.Close()

	var items []artwork.Artwork
	for rows.Next() {
		var it artwork.Artwork
		if err := rows.Scan(&it.ID, &it.Title, &it.Artist, &it.Date, &it.ImageURL, &it.DetailURL, &it.Medium, &it.Classification); err != nil {
			return nil, fmt.Errorf("scanning like: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *Store) Count() (int, error) {
	var n int
	err := s.readDB.QueryRow("SELECT COUNT(*) FROM likes").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting likes: %w", err)
	}
	return n, nil
}

// Clear removes every like and returns how many were deleted.
func (s *Store) Clear() (int64, error) {
	res, err := s.writeDB.Exec("DELETE FROM likes")
	if err != nil {
		return 0, fmt.Errorf("clearing likes: %w", err)
	}
	return res.RowsAffected()
}

// Stats returns the row count and on-disk size of the store.
func (s *Store) Stats(dbPath string) (count int, size int64, err error) {
	count, err = s.Count()
	if err != nil {
		return 0, 0, err
	}
	info, err := os.Stat(dbPath)
	if err != nil {
		return 0, 0, fmt.Errorf("reading db file: %w", err)
	}
	return count, info.Size(), nil
}
