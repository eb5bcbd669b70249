package model

import (
	"time"

	"github.com/google/uuid"
)

type Author struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"first_name" db:"first_name"`
	LastName    string `json:"last_name" db:"last_name"`
	DateOfBirth *Date  `json:"date_of_birth" db:"date_of_birth"`
	DateOfDeath *Date  `json:"date_of_death" db:"date_of_death"`
}

type AuthorRequest struct {
	FirstName   string `json:"first_name" validate:"required,max=100"`
	LastName    string `json:"last_name" validate:"required,max=100"`
	DateOfBirth *Date  `json:"date_of_birth"`
	DateOfDeath *Date  `json:"date_of_death"`
}

func (r AuthorRequest) Author(id int64) Author {
	return Author{
		ID:          id,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		DateOfDeath: r.DateOfDeath,
	}
}

type Genre struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type Language struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
}

type LanguageRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type Book struct {
	ID         int64   `json:"id" db:"id"`
	Title      string  `json:"title" db:"title"`
	Summary    string  `json:"summary" db:"summary"`
	ISBN       string  `json:"isbn" db:"isbn"`
	LanguageID *int64  `json:"language_id" db:"language_id"`
	AuthorID   *int64  `json:"author_id" db:"author_id"`
	GenreIDs   []int64 `json:"genre_ids" db:"-"`
}

type BookRequest struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Summary    string  `json:"summary" validate:"max=1000"`
	ISBN       string  `json:"isbn" validate:"max=32"`
	LanguageID *int64  `json:"language_id"`
	AuthorID   *int64  `json:"author_id"`
	GenreIDs   []int64 `json:"genre_ids"`
}

func (r BookRequest) Book(id int64) Book {
	return Book{
		ID:         id,
		Title:      r.Title,
		Summary:    r.Summary,
		ISBN:       r.ISBN,
		LanguageID: r.LanguageID,
		AuthorID:   r.AuthorID,
	}
}

type Status string

const (
	StatusMaintenance Status = "Maintenance"
	StatusOnLoan      Status = "OnLoan"
	StatusAvailable   Status = "Available"
	StatusReserved    Status = "Reserved"
)

type BookInstance struct {
	ID         uuid.UUID `json:"id" db:"id"`
	BookID     int64     `json:"book_id" db:"book_id"`
	Imprint    string    `json:"imprint" db:"imprint"`
	DueBack    *Date     `json:"due_back" db:"due_back"`
	Status     Status    `json:"status" db:"status"`
	BorrowerID *int64    `json:"borrower_id" db:"borrower_id"`
}

type BookInstanceRequest struct {
	BookID     int64  `json:"book_id" validate:"required"`
	Imprint    string `json:"imprint" validate:"required,max=200"`
	DueBack    *Date  `json:"due_back"`
	Status     Status `json:"status" validate:"omitempty,oneof=Maintenance OnLoan Available Reserved"`
	BorrowerID *int64 `json:"borrower_id"`
}

func (r BookInstanceRequest) BookInstance(id uuid.UUID) BookInstance {
	status := r.Status
	if status == "" {
		status = StatusMaintenance
	}
	return BookInstance{
		ID:         id,
		BookID:     r.BookID,
		Imprint:    r.Imprint,
		DueBack:    r.DueBack,
		Status:     status,
		BorrowerID: r.BorrowerID,
	}
}

type MediaType string

const (
	MediaFilm         MediaType = "film"
	MediaTV           MediaType = "tv"
	MediaAudio        MediaType = "audio"
	MediaGraphicNovel MediaType = "graphic-novel"
	MediaStage        MediaType = "stage"
)

type Adaptation struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	MediaType   MediaType `json:"media_type" db:"media_type"`
	ReleaseDate Date      `json:"release_date" db:"release_date"`
	BookID      int64     `json:"book_id" db:"book_id"`
	CreatorIDs  []int64   `json:"creator_ids" db:"-"`
}

type AdaptationRequest struct {
	Title       string    `json:"title" validate:"required,max=200"`
	MediaType   MediaType `json:"media_type" validate:"required,oneof=film tv audio graphic-novel stage"`
	ReleaseDate *Date     `json:"release_date" validate:"required"`
	BookID      int64     `json:"book_id" validate:"required"`
	CreatorIDs  []int64   `json:"creator_ids"`
}

func (r AdaptationRequest) Adaptation(id int64) Adaptation {
	a := Adaptation{
		ID:        id,
		Title:     r.Title,
		MediaType: r.MediaType,
		BookID:    r.BookID,
	}
	if r.ReleaseDate != nil {
		a.ReleaseDate = *r.ReleaseDate
	}
	return a
}

type Principal struct {
	ID       int64  `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event describes one committed catalog mutation.
type Event struct {
	Entity     string    `json:"entity"`
	Action     Action    `json:"action"`
	ID         string    `json:"id"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
