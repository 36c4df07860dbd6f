package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// GameID uniquely identifies a match
type GameID string

// PlayerSession is the ephemeral state for a connected player.
// Created on registration, destroyed on disconnect.
type PlayerSession struct {
	ID              PlayerID
	Nick            string
	Level           int
	Rating          int
	PreferredLength int
	CurrentGame     GameID // empty when not in a match
	ConnectedAt     time.Time
}

// InMatch reports whether the player currently has an active match
func (p *PlayerSession) InMatch() bool {
	return p.CurrentGame != ""
}
