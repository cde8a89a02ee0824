package app

import "time"

// Repository entity
type Repository struct {
	ID       int
	Owner    string
	Name     string
	FullName string
}

// Contributor entity. Login and Contributions are the only persisted fields.
type Contributor struct {
	Login         string
	Contributions int
}

// Commit entity
type Commit struct {
	SHA  string
	Date time.Time
}

// CommitStats holds line counts of a single commit.
type CommitStats struct {
	Additions int
	Deletions int
}
