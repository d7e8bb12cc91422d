package model

import (
	"time"

	"gorm.io/datatypes"
)

// GigStatus represents the lifecycle state of a gig.
type GigStatus string

const (
	GigStatusOpen       GigStatus = "open"
	GigStatusInProgress GigStatus = "in-progress"
	GigStatusCompleted  GigStatus = "completed"
)

// Valid reports whether s is one of the known statuses.
func (s GigStatus) Valid() bool {
	switch s {
	case GigStatusOpen, GigStatusInProgress, GigStatusCompleted:
		return true
	}
	return false
}

// Gig is a posted coding problem with an attached bounty. Mentors are owned by
// the gig and persisted inline; they have no existence outside it.
//
// Bounty is a decimal amount kept as a string so the exact value survives the
// trip to the payment provider without float rounding.
type Gig struct {
	ID          string                      `json:"id" gorm:"primaryKey;size:64"`
	Title       string                      `json:"title" gorm:"size:255;not null"`
	Description string                      `json:"description" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"type:json"`
	Bounty      string                      `json:"bounty" gorm:"size:32;not null"`
	Status      GigStatus                   `json:"status" gorm:"type:varchar(20);not null;default:'open';index"`
	Author      string                      `json:"author" gorm:"size:255;not null"`
	CreatedAt   time.Time                   `json:"createdAt"`
	Mentors     datatypes.JSONSlice[Mentor] `json:"mentors" gorm:"type:json"`

	// Seq orders the collection: higher means newer, lists are served Seq DESC
	// so freshly created gigs sort first.
	Seq uint64 `json:"-" gorm:"autoIncrement;uniqueIndex"`
}

// GigUpdate carries a partial update. Nil fields are left untouched; non-nil
// fields replace the stored value wholesale (supplying Mentors swaps the whole
// list, it is never merged). ID and CreatedAt are not updatable.
type GigUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Tags        *[]string  `json:"tags,omitempty"`
	Bounty      *string    `json:"bounty,omitempty"`
	Status      *GigStatus `json:"status,omitempty"`
	Author      *string    `json:"author,omitempty"`
	Mentors     *[]Mentor  `json:"mentors,omitempty"`
}

// Apply merges the update onto g, field-by-field replace.
func (u GigUpdate) Apply(g *Gig) {
	if u.Title != nil {
		g.Title = *u.Title
	}
	if u.Description != nil {
		g.Description = *u.Description
	}
	if u.Tags != nil {
		g.Tags = datatypes.NewJSONSlice(*u.Tags)
	}
	if u.Bounty != nil {
		g.Bounty = *u.Bounty
	}
	if u.Status != nil {
		g.Status = *u.Status
	}
	if u.Author != nil {
		g.Author = *u.Author
	}
	if u.Mentors != nil {
		g.Mentors = datatypes.NewJSONSlice(*u.Mentors)
	}
}

// Empty reports whether the update names no fields at all.
func (u GigUpdate) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Tags == nil &&
		u.Bounty == nil && u.Status == nil && u.Author == nil && u.Mentors == nil
}
