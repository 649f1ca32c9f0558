package services

import (
	"database/sql"

	"github.com/pollwise/newsvote-be/internal/models"
	"github.com/pollwise/newsvote-be/internal/websocket"
	"github.com/rs/zerolog/log"
)

// OptionServiceProvider defines the interface for option services.
type OptionServiceProvider interface {
	ListOptions() ([]models.Option, error)
	CastVote(name string) error
}

// OptionService provides business logic for the voting options and their tallies.
type OptionService struct {
	db  *sql.DB
	hub *websocket.Hub // nil when no live feed is attached
}

// NewOptionService creates a new OptionService. hub may be nil.
func NewOptionService(db *sql.DB, hub *websocket.Hub) *OptionService {
	return &OptionService{db: db, hub: hub}
}

// ListOptions returns all options with their current vote counts, in seed order.
func (s *OptionService) ListOptions() ([]models.Option, error) {
	rows, err := s.db.Query("SELECT name, votes FROM options ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var options []models.Option
	for rows.Next() {
		var option models.Option
		if err := rows.Scan(&option.Name, &option.Votes); err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, rows.Err()
}

// CastVote increments the tally for the named option. The increment is a
// single UPDATE so concurrent voters cannot lose updates; there is no
// read-modify-write window.
func (s *OptionService) CastVote(name string) error {
	res, err := s.db.Exec("UPDATE options SET votes = votes + 1 WHERE name = ?", name)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOptionNotFound
	}

	s.broadcastTally()
	return nil
}

// broadcastTally pushes the fresh counts to connected websocket clients.
func (s *OptionService) broadcastTally() {
	if s.hub == nil {
		return
	}
	options, err := s.ListOptions()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load tally for broadcast")
		return
	}
	message, err := websocket.NewTallyUpdateMessage(options)
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode tally broadcast")
		return
	}
	s.hub.Broadcast <- message
}
