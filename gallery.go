package tessellate

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/mitchellh/go-homedir"
)

const (
	sqlInsertArtwork = `INSERT INTO artworks (id, name, config, tiles, thumbnail, created) VALUES (:id, :name, :config, :tiles, :thumbnail, :created);`
	sqlUpdateProps   = `INSERT INTO properties (id, data) VALUES (:id, :data) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data;`
)

// ErrNotFound is returned when a gallery has no artwork with a given id.
var ErrNotFound = errors.New("artwork not found")

// Gallery keeps saved artworks in a sqlite database.
//
// Artworks are deterministic, so only their config (plus a small preview
// image & user properties) is stored; tiles are regenerated on load.
type Gallery struct {
	filename string
	db       *sqlx.DB
}

// Artwork is a single saved entry.
type Artwork struct {
	ID        string
	Name      string
	Config    *Config
	Tiles     int
	Thumbnail []byte // png, may be empty
	Created   time.Time
}

// NewGallery creates a gallery with a random name in the os tempdir.
func NewGallery() (*Gallery, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	fname := filepath.Join(os.TempDir(), fmt.Sprintf("gallery.%d.sqlite", rng.Intn(1000000)))
	return OpenGallery(fname)
}

// OpenGallery given it's filename (database file) on disk.
// Will create if it doesn't exist.
func OpenGallery(fname string) (*Gallery, error) {
	fpath, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}
	db, err := sqlx.Open("sqlite3", fpath)
	if err != nil {
		return nil, err
	}

	g := &Gallery{db: db, filename: fpath}
	if err := g.init(); err != nil {
		db.Close()
		return nil, err
	}
	return g, nil
}

// Filename returns the path to the gallery database on disk
func (g *Gallery) Filename() string {
	return g.filename
}

// Close the underlying database.
func (g *Gallery) Close() error {
	return g.db.Close()
}

// Save stores cfg (with optional properties & png thumbnail) and returns the
// new artwork's id.
func (g *Gallery) Save(name string, cfg *Config, props *Properties, thumbnail []byte) (string, error) {
	data, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	now := time.Now()
	row := dbArtwork{
		ID:        newArtworkID(cfg, now),
		Name:      name,
		Config:    string(data),
		Tiles:     len(cfg.Generate()),
		Thumbnail: thumbnail,
		Created:   now.Unix(),
	}

	txn, err := g.db.Beginx()
	if err != nil {
		return "", err
	}

	_, err = txn.NamedExec(sqlInsertArtwork, row)
	if err != nil {
		txn.Rollback()
		return "", err
	}

	if props != nil && props.Len() > 0 {
		p, err := newDBProp(row.ID, props)
		if err != nil {
			txn.Rollback()
			return "", err
		}
		_, err = txn.NamedExec(sqlUpdateProps, p)
		if err != nil {
			txn.Rollback()
			return "", err
		}
	}

	return row.ID, txn.Commit()
}

// Load returns the artwork saved under id.
func (g *Gallery) Load(id string) (*Artwork, error) {
	row := dbArtwork{}
	err := g.db.Get(&row, "SELECT id,name,config,tiles,thumbnail,created FROM artworks WHERE id=?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	} else if err != nil {
		return nil, err
	}
	return row.artwork(true)
}

// List returns all artworks, oldest first. Thumbnails are not loaded.
func (g *Gallery) List() ([]*Artwork, error) {
	rows := []dbArtwork{}
	err := g.db.Select(&rows, "SELECT id,name,config,tiles,created FROM artworks ORDER BY created, id;")
	if err != nil {
		return nil, err
	}

	result := make([]*Artwork, 0, len(rows))
	for _, r := range rows {
		a, err := r.artwork(false)
		if err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	return result, nil
}

// Delete removes an artwork & its properties.
func (g *Gallery) Delete(id string) error {
	txn, err := g.db.Beginx()
	if err != nil {
		return err
	}

	res, err := txn.Exec("DELETE FROM artworks WHERE id=?;", id)
	if err != nil {
		txn.Rollback()
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		txn.Rollback()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	_, err = txn.Exec("DELETE FROM properties WHERE id=?;", id)
	if err != nil {
		txn.Rollback()
		return err
	}
	return txn.Commit()
}

// Properties returns properties for a given artwork.
// If no properties are set an empty properties will be returned.
func (g *Gallery) Properties(id string) (*Properties, error) {
	r := dbProp{}
	err := g.db.Get(&r, "SELECT id,data FROM properties WHERE id=?;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return NewProperties(), nil
	} else if err != nil {
		return nil, err
	}

	props := NewProperties()
	if err := json.Unmarshal([]byte(r.Data), props); err != nil {
		return nil, err
	}
	return props, nil
}

// SetProperties merges props into whatever is already saved for id.
func (g *Gallery) SetProperties(id string, props *Properties) error {
	txn, err := g.db.Beginx()
	if err != nil {
		return err
	}

	var count int
	if err := txn.Get(&count, "SELECT count(*) FROM artworks WHERE id=?;", id); err != nil {
		txn.Rollback()
		return err
	}
	if count == 0 {
		txn.Rollback()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	saved := NewProperties()
	r := dbProp{}
	err = txn.Get(&r, "SELECT id,data FROM properties WHERE id=?;", id)
	if err == nil {
		if err := json.Unmarshal([]byte(r.Data), saved); err != nil {
			txn.Rollback()
			return err
		}
	} else if !errors.Is(err, sql.ErrNoRows) {
		txn.Rollback()
		return err
	}

	p, err := newDBProp(id, saved.Merge(props))
	if err != nil {
		txn.Rollback()
		return err
	}
	_, err = txn.NamedExec(sqlUpdateProps, p)
	if err != nil {
		txn.Rollback()
		return err
	}
	return txn.Commit()
}

// init creates some DB tables for us if they don't exist
func (g *Gallery) init() error {
	createArtworks := `CREATE TABLE IF NOT EXISTS artworks(
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		config TEXT NOT NULL,
		tiles INTEGER NOT NULL,
		thumbnail BLOB,
		created INTEGER NOT NULL
	    );`
	_, err := g.db.Exec(createArtworks)
	if err != nil {
		return err
	}

	createProps := `CREATE TABLE IF NOT EXISTS properties(
		id TEXT PRIMARY KEY,
		data TEXT
	    );`

	_, err = g.db.Exec(createProps)
	return err
}

// newArtworkID is "<shape>-<seed>-<unix nanos>".
func newArtworkID(cfg *Config, at time.Time) string {
	return fmt.Sprintf("%s-%d-%d", cfg.Shape, cfg.Seed, at.UnixNano())
}

// dbArtwork is a single row of the artworks table
type dbArtwork struct {
	ID        string `db:"id"`
	Name      string `db:"name"`
	Config    string `db:"config"`
	Tiles     int    `db:"tiles"`
	Thumbnail []byte `db:"thumbnail"`
	Created   int64  `db:"created"`
}

func (r dbArtwork) artwork(withThumb bool) (*Artwork, error) {
	cfg := &Config{}
	if err := json.Unmarshal([]byte(r.Config), cfg); err != nil {
		return nil, fmt.Errorf("artwork %s: %w", r.ID, err)
	}
	a := &Artwork{
		ID:      r.ID,
		Name:    r.Name,
		Config:  cfg,
		Tiles:   r.Tiles,
		Created: time.Unix(r.Created, 0),
	}
	if withThumb {
		a.Thumbnail = r.Thumbnail
	}
	return a, nil
}

// dbProp object encodes properties for a single artwork.
type dbProp struct {
	ID   string `db:"id"`
	Data string `db:"data"`
}

// newDBProp crafts a dbProp struct given it's inputs.
// Properties are encoded into JSON.
func newDBProp(id string, props *Properties) (dbProp, error) {
	databytes, err := json.Marshal(props)
	if err != nil {
		return dbProp{}, err
	}
	return dbProp{ID: id, Data: string(databytes)}, nil
}
