package export

import (
	"context"
	"crypto/rand"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/cognicore/wordgraph/pkg/wordgraph/graph"
	"github.com/cognicore/wordgraph/pkg/wordgraph/internalerr"
)

// Meta describes how an exported graph was produced.
type Meta struct {
	Source    string    `json:"source"`
	Config    string    `json:"config"`
	Stopwords int       `json:"stopwords"`
	CreatedAt time.Time `json:"created_at"`
}

// GraphInfo is a listing row for an exported graph.
type GraphInfo struct {
	ID        string `json:"id"`
	Meta      Meta   `json:"meta"`
	NodeCount int    `json:"node_count"`
	EdgeCount int    `json:"edge_count"`
}

// SQLiteWriter stores graphs in a SQLite file. Each graph is keyed by a
// ULID, so ids sort in export order.
type SQLiteWriter struct {
	db *sql.DB

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// OpenSQLite opens or creates a SQLite export file.
func OpenSQLite(ctx context.Context, path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteWriter{
		db:      db,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}, nil
}

// Close closes the database connection
func (s *SQLiteWriter) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS graphs (
	id TEXT PRIMARY KEY,
	source TEXT,
	config TEXT,
	stopwords INTEGER DEFAULT 0,
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS graph_nodes (
	graph_id TEXT NOT NULL,
	ord INTEGER NOT NULL,
	word TEXT NOT NULL,
	label TEXT NOT NULL,
	frequency INTEGER NOT NULL,
	PRIMARY KEY(graph_id, word),
	FOREIGN KEY(graph_id) REFERENCES graphs(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS graph_edges (
	graph_id TEXT NOT NULL,
	ord INTEGER NOT NULL,
	source TEXT NOT NULL,
	target TEXT NOT NULL,
	weight REAL NOT NULL,
	PRIMARY KEY(graph_id, source, target),
	FOREIGN KEY(graph_id) REFERENCES graphs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_graph_edges_weight ON graph_edges(graph_id, weight DESC);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

func (s *SQLiteWriter) newID(t time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(t), s.entropy).String()
}

// WriteGraph stores g with meta and returns its id. A zero CreatedAt is
// set to the current time.
func (s *SQLiteWriter) WriteGraph(ctx context.Context, g graph.Data, meta Meta) (string, error) {
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = time.Now()
	}
	id := s.newID(meta.CreatedAt)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO graphs (id, source, config, stopwords, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, meta.Source, meta.Config, meta.Stopwords, meta.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("insert graph: %w", err)
	}

	nodeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO graph_nodes (graph_id, ord, word, label, frequency) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer nodeStmt.Close()
	for i, n := range g.Nodes {
		if _, err := nodeStmt.ExecContext(ctx, id, i, n.ID, n.Label, n.Frequency); err != nil {
			return "", fmt.Errorf("insert node %q: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.PrepareContext(ctx,
		`INSERT INTO graph_edges (graph_id, ord, source, target, weight) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer edgeStmt.Close()
	for i, e := range g.Edges {
		if _, err := edgeStmt.ExecContext(ctx, id, i, e.Source, e.Target, e.Weight); err != nil {
			return "", fmt.Errorf("insert edge %s-%s: %w", e.Source, e.Target, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

// ReadGraph loads a stored graph in its original node and edge order.
func (s *SQLiteWriter) ReadGraph(ctx context.Context, id string) (graph.Data, Meta, error) {
	var (
		meta    Meta
		created string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT source, config, stopwords, created_at FROM graphs WHERE id = ?`, id,
	).Scan(&meta.Source, &meta.Config, &meta.Stopwords, &created)
	if err == sql.ErrNoRows {
		return graph.Data{}, Meta{}, fmt.Errorf("graph %s: %w", id, internalerr.ErrNotFound)
	}
	if err != nil {
		return graph.Data{}, Meta{}, err
	}
	if meta.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return graph.Data{}, Meta{}, fmt.Errorf("parse created_at: %w", err)
	}

	g := graph.Empty()

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, label, frequency FROM graph_nodes WHERE graph_id = ? ORDER BY ord`, id)
	if err != nil {
		return graph.Data{}, Meta{}, err
	}
	for rows.Next() {
		var n graph.Node
		if err := rows.Scan(&n.ID, &n.Label, &n.Frequency); err != nil {
			rows.Close()
			return graph.Data{}, Meta{}, err
		}
		g.Nodes = append(g.Nodes, n)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return graph.Data{}, Meta{}, err
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT source, target, weight FROM graph_edges WHERE graph_id = ? ORDER BY ord`, id)
	if err != nil {
		return graph.Data{}, Meta{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var e graph.Edge
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return graph.Data{}, Meta{}, err
		}
		g.Edges = append(g.Edges, e)
	}
	if err := rows.Err(); err != nil {
		return graph.Data{}, Meta{}, err
	}

	return g, meta, nil
}

// ListGraphs returns all stored graphs, oldest first.
func (s *SQLiteWriter) ListGraphs(ctx context.Context) ([]GraphInfo, error) {
	const query = `
SELECT g.id, g.source, g.config, g.stopwords, g.created_at,
	(SELECT COUNT(*) FROM graph_nodes n WHERE n.graph_id = g.id),
	(SELECT COUNT(*) FROM graph_edges e WHERE e.graph_id = g.id)
FROM graphs g
ORDER BY g.id
`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []GraphInfo
	for rows.Next() {
		var (
			info    GraphInfo
			created string
		)
		if err := rows.Scan(&info.ID, &info.Meta.Source, &info.Meta.Config, &info.Meta.Stopwords,
			&created, &info.NodeCount, &info.EdgeCount); err != nil {
			return nil, err
		}
		if info.Meta.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
