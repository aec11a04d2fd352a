package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Event        EventRepo
	Config       ConfigRepo
	Registration RegistrationRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Event:        NewEventRepo(db),
		Config:       NewConfigRepo(db),
		Registration: NewRegistrationRepo(db),
		db:           db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Event:        r.Event.WithTx(tx),
		Config:       r.Config.WithTx(tx),
		Registration: r.Registration.WithTx(tx),
		db:           tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
