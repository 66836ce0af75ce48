// Package ranking implements the score and rank computations for the quiz
// game. All functions are pure: they operate on a snapshot of user records
// and keep no state between calls, so every rank is recomputed fresh.
package ranking

import (
	"errors"
	"sort"

	"github.com/buwanikaveesha/Jungle-Banana-Backend/internal/models"
)

// Level is one of the three fixed difficulty categories.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

var (
	// ErrInvalidLevel is returned for any level outside the fixed set.
	ErrInvalidLevel = errors.New("level must be one of easy, medium, hard")

	// ErrUserNotFound is returned when the target user is not in the snapshot.
	ErrUserNotFound = errors.New("user not found in ranking snapshot")
)

// Levels returns the difficulty categories in their canonical order.
func Levels() []Level {
	return []Level{LevelEasy, LevelMedium, LevelHard}
}

// ParseLevel validates a client-supplied level string. Unknown values are
// rejected rather than silently treated as a new counter.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return Level(s), nil
	}
	return "", ErrInvalidLevel
}

// Of returns the counter for this level out of a score record.
func (l Level) Of(s models.Score) int {
	switch l {
	case LevelEasy:
		return s.Easy
	case LevelMedium:
		return s.Medium
	case LevelHard:
		return s.Hard
	}
	return 0
}

// Add returns the score record with delta applied to this level.
func (l Level) Add(s models.Score, delta int) models.Score {
	switch l {
	case LevelEasy:
		s.Easy += delta
	case LevelMedium:
		s.Medium += delta
	case LevelHard:
		s.Hard += delta
	}
	return s
}

// Entry is one row of a per-level leaderboard.
type Entry struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Score    int    `json:"score"`
	Rank     int    `json:"rank"`
}

// sortByLevel returns the indices of users ordered by the level's counter,
// highest first. The sort is stable so ties keep the snapshot order, which is
// the users' creation order.
func sortByLevel(users []models.User, level Level) []int {
	idx := make([]int, len(users))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return level.Of(users[idx[a]].Score) > level.Of(users[idx[b]].Score)
	})
	return idx
}

// Ranks computes the 1-based rank of the identified user at every level and
// returns it together with the user's own score record.
func Ranks(users []models.User, userID string) (map[Level]int, models.Score, error) {
	var score models.Score
	found := false
	for _, u := range users {
		if u.ID == userID {
			score = u.Score
			found = true
			break
		}
	}
	if !found {
		return nil, models.Score{}, ErrUserNotFound
	}

	ranks := make(map[Level]int, 3)
	for _, level := range Levels() {
		for pos, i := range sortByLevel(users, level) {
			if users[i].ID == userID {
				ranks[level] = pos + 1
				break
			}
		}
	}
	return ranks, score, nil
}

// Leaderboard orders the full snapshot at every level and emits the ranked
// entries, highest score first.
func Leaderboard(users []models.User) map[Level][]Entry {
	board := make(map[Level][]Entry, 3)
	for _, level := range Levels() {
		entries := make([]Entry, 0, len(users))
		for pos, i := range sortByLevel(users, level) {
			entries = append(entries, Entry{
				Username: users[i].Username,
				Email:    users[i].Email,
				Score:    level.Of(users[i].Score),
				Rank:     pos + 1,
			})
		}
		board[level] = entries
	}
	return board
}
