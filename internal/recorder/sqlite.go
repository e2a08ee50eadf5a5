package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists pacing history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so operator dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS pacing_ticks (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			outcome         TEXT,
			hour            INTEGER,
			slot_start      INTEGER,
			slot_end        INTEGER,
			slot_cap        REAL,
			visit_count     INTEGER,
			cart_add_count  INTEGER,
			order_count     INTEGER,
			running_revenue REAL,
			target_revenue  REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_ticks_ts ON pacing_ticks(timestamp)`,

		`CREATE TABLE IF NOT EXISTS orders (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			buyer_handle TEXT,
			reference    TEXT,
			unit_count   INTEGER,
			amount       REAL,
			accepted     INTEGER,
			note         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_ts ON orders(timestamp)`,

		`CREATE TABLE IF NOT EXISTS day_rollovers (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			date           TEXT,
			target_revenue REAL,
			prev_date      TEXT,
			prev_revenue   REAL,
			prev_orders    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rollovers_ts ON day_rollovers(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordTick(evt *TickEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO pacing_ticks
		(timestamp, outcome, hour, slot_start, slot_end, slot_cap,
		 visit_count, cart_add_count, order_count, running_revenue, target_revenue)
		VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), string(evt.Outcome), evt.Hour,
		evt.SlotStart, evt.SlotEnd, evt.SlotCap,
		evt.VisitCount, evt.CartAddCount, evt.OrderCount,
		evt.RunningRevenue, evt.TargetRevenue,
	)
	return err
}

func (r *SQLiteRecorder) RecordOrder(evt *OrderEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accepted := 0
	if evt.Accepted {
		accepted = 1
	}
	_, err := r.db.Exec(`INSERT INTO orders
		(timestamp, buyer_handle, reference, unit_count, amount, accepted, note)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.BuyerHandle, evt.Reference,
		evt.UnitCount, evt.Amount, accepted, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordRollover(evt *RolloverEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO day_rollovers
		(timestamp, date, target_revenue, prev_date, prev_revenue, prev_orders)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Date, evt.TargetRevenue,
		evt.PrevDate, evt.PrevRevenue, evt.PrevOrders,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
