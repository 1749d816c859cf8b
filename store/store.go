// Package store persists generated universes to sqlite. It implements the
// external storage collaborator boundary: the engine itself never touches
// I/O, a game server hands the finished Universe to a Store.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"

	"galaxygen/galaxy"
	"galaxygen/internal/log"
)

// Store wraps one sqlite database holding at most one universe, the way a
// game world maps to one save file.
type Store struct {
	db       *sql.DB
	dbOpen   bool
	filename string

	insSector *sql.Stmt
	insEdge   *sql.Stmt
	insPort   *sql.Stmt
}

// Open opens (or creates) a universe database and brings its schema up to
// date.
func Open(filename string) (*Store, error) {
	db, err := sql.Open("sqlite", filename+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, filename: filename}
	if err = s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	if err = s.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare statements: %w", err)
	}
	s.dbOpen = true
	log.Debug("universe database opened", "file", filename)
	return s, nil
}

func (s *Store) prepareStatements() error {
	var err error
	s.insSector, err = s.db.Prepare(`
		INSERT INTO sectors (id, zone, resource_density, reserved, port_id, warps)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	s.insEdge, err = s.db.Prepare(`
		INSERT INTO edges (from_id, to_id, kind, cost)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	s.insPort, err = s.db.Prepare(`
		INSERT INTO ports (id, sector_id, class, name, commodities)
		VALUES (?, ?, ?, ?, ?)`)
	return err
}

// Close releases prepared statements and the database handle.
func (s *Store) Close() error {
	if !s.dbOpen {
		return nil
	}
	for _, stmt := range []*sql.Stmt{s.insSector, s.insEdge, s.insPort} {
		if stmt != nil {
			stmt.Close()
		}
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.dbOpen = false
	return nil
}

// HasUniverse reports whether a universe has been saved to this store.
func (s *Store) HasUniverse() (bool, error) {
	if !s.dbOpen {
		return false, fmt.Errorf("database not open")
	}
	query, args, err := sq.Select("COUNT(*)").From("universes").ToSql()
	if err != nil {
		return false, err
	}
	var n int
	if err := s.db.QueryRow(query, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to count universes: %w", err)
	}
	return n > 0, nil
}

// SaveUniverse writes the universe in a single transaction, replacing any
// previously saved one.
func (s *Store) SaveUniverse(u *galaxy.Universe) error {
	if !s.dbOpen {
		return fmt.Errorf("database not open")
	}

	cfgJSON, err := json.Marshal(u.Config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"ports", "edges", "sectors", "universes"} {
		if _, err = tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	insUniverse := sq.Insert("universes").
		Columns("id", "seed", "config", "success", "repair_passes", "port_shortfall").
		Values(1, u.Seed, string(cfgJSON), u.Status.Success, u.Status.RepairPassesUsed, u.Status.PortShortfall)
	query, args, err := insUniverse.ToSql()
	if err != nil {
		return err
	}
	if _, err = tx.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to insert universe row: %w", err)
	}

	for id := 1; id <= u.Config.SectorCount; id++ {
		sec := u.Sectors[id]
		warpsJSON, err := json.Marshal(sec.Warps)
		if err != nil {
			return fmt.Errorf("failed to encode warps for sector %d: %w", id, err)
		}
		if _, err = tx.Stmt(s.insSector).Exec(
			sec.ID, int(sec.Zone), sec.ResourceDensity, sec.Reserved, sec.PortID, string(warpsJSON),
		); err != nil {
			return fmt.Errorf("failed to save sector %d: %w", id, err)
		}
	}

	for _, e := range u.Edges {
		if _, err = tx.Stmt(s.insEdge).Exec(e.From, e.To, int(e.Kind), e.Cost); err != nil {
			return fmt.Errorf("failed to save edge %d-%d: %w", e.From, e.To, err)
		}
	}

	for id := 1; id <= len(u.Ports); id++ {
		p := u.Ports[id]
		tableJSON, err := json.Marshal(p.Commodities)
		if err != nil {
			return fmt.Errorf("failed to encode commodities for port %d: %w", id, err)
		}
		if _, err = tx.Stmt(s.insPort).Exec(
			p.ID, p.SectorID, int(p.Class), p.Name, string(tableJSON),
		); err != nil {
			return fmt.Errorf("failed to save port %d: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit universe: %w", err)
	}
	log.Info("universe saved", "file", s.filename, "sectors", u.Config.SectorCount, "ports", len(u.Ports))
	return nil
}

// LoadUniverse reads the saved universe back and rebuilds its navigation
// indexes, yielding a structure equivalent to the one Generate returned.
func (s *Store) LoadUniverse() (*galaxy.Universe, error) {
	if !s.dbOpen {
		return nil, fmt.Errorf("database not open")
	}

	u := &galaxy.Universe{
		Sectors: make(map[int]*galaxy.Sector),
		Ports:   make(map[int]*galaxy.Port),
	}

	query, args, err := sq.Select("seed", "config", "success", "repair_passes", "port_shortfall").
		From("universes").Where(sq.Eq{"id": 1}).ToSql()
	if err != nil {
		return nil, err
	}
	var cfgJSON string
	row := s.db.QueryRow(query, args...)
	if err = row.Scan(&u.Seed, &cfgJSON, &u.Status.Success, &u.Status.RepairPassesUsed, &u.Status.PortShortfall); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no universe saved in %s", s.filename)
		}
		return nil, fmt.Errorf("failed to load universe row: %w", err)
	}
	if err = json.Unmarshal([]byte(cfgJSON), &u.Config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	query, args, err = sq.Select("id", "zone", "resource_density", "reserved", "port_id", "warps").
		From("sectors").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load sectors: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sec galaxy.Sector
		var zone int
		var warpsJSON string
		if err = rows.Scan(&sec.ID, &zone, &sec.ResourceDensity, &sec.Reserved, &sec.PortID, &warpsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan sector: %w", err)
		}
		sec.Zone = galaxy.Zone(zone)
		if err = json.Unmarshal([]byte(warpsJSON), &sec.Warps); err != nil {
			return nil, fmt.Errorf("failed to decode warps for sector %d: %w", sec.ID, err)
		}
		u.Sectors[sec.ID] = &sec
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading sectors: %w", err)
	}

	query, args, err = sq.Select("from_id", "to_id", "kind", "cost").
		From("edges").OrderBy("rowid").ToSql()
	if err != nil {
		return nil, err
	}
	edgeRows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load edges: %w", err)
	}
	defer edgeRows.Close()
	for edgeRows.Next() {
		var e galaxy.Edge
		var kind int
		if err = edgeRows.Scan(&e.From, &e.To, &kind, &e.Cost); err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		e.Kind = galaxy.EdgeKind(kind)
		u.Edges = append(u.Edges, e)
	}
	if err = edgeRows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading edges: %w", err)
	}

	query, args, err = sq.Select("id", "sector_id", "class", "name", "commodities").
		From("ports").OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}
	portRows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load ports: %w", err)
	}
	defer portRows.Close()
	for portRows.Next() {
		var p galaxy.Port
		var class int
		var tableJSON string
		if err = portRows.Scan(&p.ID, &p.SectorID, &class, &p.Name, &tableJSON); err != nil {
			return nil, fmt.Errorf("failed to scan port: %w", err)
		}
		p.Class = galaxy.PortClass(class)
		if err = json.Unmarshal([]byte(tableJSON), &p.Commodities); err != nil {
			return nil, fmt.Errorf("failed to decode commodities for port %d: %w", p.ID, err)
		}
		u.Ports[p.ID] = &p
	}
	if err = portRows.Err(); err != nil {
		return nil, fmt.Errorf("failed reading ports: %w", err)
	}

	if err = u.Reindex(); err != nil {
		return nil, fmt.Errorf("failed to rebuild universe indexes: %w", err)
	}
	log.Debug("universe loaded", "file", s.filename, "sectors", len(u.Sectors), "ports", len(u.Ports))
	return u, nil
}
