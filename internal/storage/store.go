// Package storage persists finished game records under the data directory:
// one JSON document per game plus an append-only CSV log.
package storage

import (
	"cmp"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"
)

const (
	recordFile = "record.json"
	logFile    = "games.csv"
)

var ErrNotFound = errors.New("storage: record not found")

var logHeader = []string{"id", "game", "timestamp", "outcome", "attempts", "score"}

// Saver persists finished games. *Store satisfies it.
type Saver interface {
	Save(Record) (string, error)
}

type Store struct {
	baseDir string
	now     func() time.Time
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, now: time.Now}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Dir is the directory the store writes to.
func (s *Store) Dir() string {
	return s.baseDir
}

// Record is one finished game.
type Record struct {
	ID        string            `json:"id"`
	Game      string            `json:"game"`
	Timestamp time.Time         `json:"timestamp"`
	Outcome   string            `json:"outcome"`
	Attempts  int               `json:"attempts"`
	Score     int               `json:"score"`
	History   []int32           `json:"history,omitempty"`
	Details   map[string]string `json:"details,omitempty"`
}

// Save assigns rec an ID and timestamp, writes its JSON document and
// appends a summary row to the CSV log. It returns the new ID.
func (s *Store) Save(rec Record) (string, error) {
	if rec.Game == "" {
		return "", fmt.Errorf("storage: record has no game name")
	}
	if err := s.Init(); err != nil {
		return "", err
	}

	rec.Timestamp = s.now()
	base := fmt.Sprintf("%s_%d", rec.Game, rec.Timestamp.UnixNano())
	rec.ID = base
	runDir := filepath.Join(s.baseDir, rec.ID)
	for i := 1; ; i++ {
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			break
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
		rec.ID = fmt.Sprintf("%s_%d", base, i)
		runDir = filepath.Join(s.baseDir, rec.ID)
	}

	f, err := os.Create(filepath.Join(runDir, recordFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	if err := s.appendLog(rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (s *Store) appendLog(rec Record) error {
	path := filepath.Join(s.baseDir, logFile)
	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if fresh {
		if err := w.Write(logHeader); err != nil {
			return err
		}
	}
	row := []string{
		rec.ID,
		rec.Game,
		rec.Timestamp.UTC().Format(time.RFC3339),
		rec.Outcome,
		strconv.Itoa(rec.Attempts),
		strconv.Itoa(rec.Score),
	}
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// List returns every readable record, newest first. A missing data
// directory yields an empty list.
func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	records := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		rec, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		records = append(records, *rec)
	}

	slices.SortFunc(records, func(a, b Record) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return records, nil
}

func (s *Store) Load(id string) (*Record, error) {
	if id == "" || id != filepath.Base(id) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, recordFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("storage: decode %s: %w", id, err)
	}
	return &rec, nil
}

// LogEntry is one row of the CSV log.
type LogEntry struct {
	ID        string
	Game      string
	Timestamp time.Time
	Outcome   string
	Attempts  int
	Score     int
}

// ReadLog parses the CSV log in append order. Malformed rows are skipped.
func (s *Store) ReadLog() ([]LogEntry, error) {
	f, err := os.Open(filepath.Join(s.baseDir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []LogEntry{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return readLog(f)
}

func readLog(r io.Reader) ([]LogEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []LogEntry{}, nil
	}

	out := make([]LogEntry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != len(logHeader) {
			continue
		}
		ts, err := time.Parse(time.RFC3339, row[2])
		if err != nil {
			continue
		}
		attempts, err := strconv.Atoi(row[4])
		if err != nil {
			continue
		}
		score, err := strconv.Atoi(row[5])
		if err != nil {
			continue
		}
		out = append(out, LogEntry{
			ID:        row[0],
			Game:      row[1],
			Timestamp: ts,
			Outcome:   row[3],
			Attempts:  attempts,
			Score:     score,
		})
	}
	return out, nil
}
