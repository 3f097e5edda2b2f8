package game

import "errors"

var (
	ErrPlayerNotFound        = errors.New("player not found")
	ErrNotEnoughPlayers      = errors.New("not enough players")
	ErrTooManyPlayers        = errors.New("too many players")
	ErrRoleListSize          = errors.New("role list size does not match player count")
	ErrRoleListUnsatisfiable = errors.New("role list cannot be satisfied")
)
