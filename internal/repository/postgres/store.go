package postgres

import "database/sql"

// Store implements repository.Store on top of one database handle
type Store struct {
	*UserRepo
	*ChannelRepo
	*MediaRepo
}

// NewStore creates all repositories sharing db
func NewStore(db *sql.DB) *Store {
	return &Store{
		UserRepo:    NewUserRepo(db),
		ChannelRepo: NewChannelRepo(db),
		MediaRepo:   NewMediaRepo(db),
	}
}
