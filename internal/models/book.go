package models

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const MinYearPublished = 1000

// BookFields is the order in which book field violations are reported.
var BookFields = []string{"title", "author", "genre", "yearPublished"}

type Book struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Author        string     `json:"author"`
	Genre         string     `json:"genre"`
	YearPublished int        `json:"yearPublished"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	CreatedBy     string     `json:"createdBy,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy     string     `json:"updatedBy,omitempty"`
}

// Ref is the short form used in conflict details and delete responses.
func (b Book) Ref() BookRef {
	return BookRef{ID: b.ID, Title: b.Title, Author: b.Author}
}

// SameTitleAuthor reports whether b collides with the given pair, ignoring case.
func (b Book) SameTitleAuthor(title, author string) bool {
	return strings.EqualFold(b.Title, title) && strings.EqualFold(b.Author, author)
}

type BookRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookPayload is the raw create/update body. Fields stay untyped until
// Validate has checked them so that every violation is reported at once.
type BookPayload struct {
	Title         any `json:"title"`
	Author        any `json:"author"`
	Genre         any `json:"genre"`
	YearPublished any `json:"yearPublished"`
}

// BookInput is a validated, trimmed payload.
type BookInput struct {
	Title         string
	Author        string
	Genre         string
	YearPublished int
}

// Validate checks the payload against the year range ending at now's year + 1.
func (p BookPayload) Validate(now time.Time) error {
	maxYear := now.Year() + 1
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.NotNil, isString, notBlank),
		validation.Field(&p.Author, validation.NotNil, isString, notBlank),
		validation.Field(&p.Genre, validation.NotNil, isString, notBlank),
		validation.Field(&p.YearPublished, validation.NotNil, isInteger, yearBetween(MinYearPublished, maxYear)),
	)
}

// Input converts a payload that passed Validate.
func (p BookPayload) Input() BookInput {
	title, _ := p.Title.(string)
	author, _ := p.Author.(string)
	genre, _ := p.Genre.(string)
	year, _ := p.YearPublished.(float64)
	return BookInput{
		Title:         strings.TrimSpace(title),
		Author:        strings.TrimSpace(author),
		Genre:         strings.TrimSpace(genre),
		YearPublished: int(year),
	}
}
