// internal/history/store.go
package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrMatchNotFound is returned when no match has the requested id.
var ErrMatchNotFound = errors.New("match not found")

// Store — локальная история матчей в файле SQLite.
type Store struct {
	db  *gorm.DB
	log zerolog.Logger
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string, log zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, pragma := range pragmas {
		if err := db.Exec(pragma).Error; err != nil {
			return nil, fmt.Errorf("history: %s: %w", pragma, err)
		}
	}

	if err := db.AutoMigrate(models...); err != nil {
		return nil, fmt.Errorf("history: migrate: %w", err)
	}
	log.Info().Str("path", path).Msg("match history opened")
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("history: close: %w", err)
	}
	return sqlDB.Close()
}

func (s *Store) StartMatch(id string, at time.Time) error {
	return s.db.Create(&Match{ID: id, StartedAt: at}).Error
}

// FinishMatch closes a match once; later calls for the same id are ignored.
func (s *Store) FinishMatch(id string, winner int, at time.Time) error {
	return s.db.Model(&Match{}).
		Where("id = ? AND ended_at IS NULL", id).
		Updates(map[string]any{"ended_at": at, "winner": winner}).Error
}

func (s *Store) AddShots(id string, n int) error {
	return s.db.Model(&Match{}).Where("id = ?", id).
		UpdateColumn("shots", gorm.Expr("shots + ?", n)).Error
}

func (s *Store) RecordHit(h *Hit) error {
	return s.db.Create(h).Error
}

func (s *Store) RecordPickup(p *Pickup) error {
	return s.db.Create(p).Error
}

// Match loads a match with its hits and pickups.
func (s *Store) Match(id string) (*Match, error) {
	var m Match
	err := s.db.Preload("Hits").Preload("Pickups").First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("history: %s: %w", id, ErrMatchNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("history: load %s: %w", id, err)
	}
	return &m, nil
}

// Recent returns the latest matches, newest first.
func (s *Store) Recent(limit int) ([]Match, error) {
	var out []Match
	if err := s.db.Order("started_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("history: recent: %w", err)
	}
	return out, nil
}

// Wins counts finished matches per winning player.
func (s *Store) Wins() (map[int]int, error) {
	var rows []struct {
		Winner int
		N      int
	}
	err := s.db.Model(&Match{}).
		Select("winner, count(*) as n").
		Where("winner > 0").
		Group("winner").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("history: wins: %w", err)
	}
	out := make(map[int]int, len(rows))
	for _, r := range rows {
		out[r.Winner] = r.N
	}
	return out, nil
}
