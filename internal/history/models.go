// internal/history/models.go
package history

import "time"

// Match — один матч до победы или сброса.
type Match struct {
	ID        string `gorm:"primaryKey;size:36"`
	StartedAt time.Time
	EndedAt   *time.Time
	Winner    int // 0 — матч прерван сбросом
	Shots     int
	Hits      []Hit    `gorm:"constraint:OnDelete:CASCADE"`
	Pickups   []Pickup `gorm:"constraint:OnDelete:CASCADE"`
}

// Hit — попадание по танку. Absorbed: удар принял щит, очко не начислено.
type Hit struct {
	ID        uint   `gorm:"primaryKey"`
	MatchID   string `gorm:"index;size:36"`
	GameTime  float64
	Shooter   int
	Victim    int
	Explosive bool
	Absorbed  bool
}

// Pickup — подобранный бонус.
type Pickup struct {
	ID       uint   `gorm:"primaryKey"`
	MatchID  string `gorm:"index;size:36"`
	GameTime float64
	Player   int
	Kind     string
}

var models = []any{&Match{}, &Hit{}, &Pickup{}}
