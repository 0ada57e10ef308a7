package catalog

import (
	"time"

	"github.com/lib/pq"
)

// Category tags a catalog row for the sales ledger.
type Category string

const (
	CategoryMini   Category = "MINI"
	CategoryOther  Category = "OTHER"
	CategoryOnline Category = "ONLINE"
	CategoryBundle Category = "BUNDLE"
)

// MiniProgram is a short live workshop sold as a mini course.
type MiniProgram struct {
	ID             int            `db:"id" json:"id"`
	Title          string         `db:"title" json:"title"`
	Subtitle       string         `db:"subtitle" json:"subtitle,omitempty"`
	Price          string         `db:"price" json:"price"`
	Description    string         `db:"description" json:"description,omitempty"`
	VideoURL       string         `db:"video_url" json:"video_url,omitempty"`
	ImageURL       string         `db:"image_url" json:"image_url,omitempty"`
	LearnList      pq.StringArray `db:"learn_list" json:"learn_list,omitempty"`
	ReceiveList    pq.StringArray `db:"receive_list" json:"receive_list,omitempty"`
	AvailableDates pq.StringArray `db:"available_dates" json:"available_dates,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// OtherProgram is a standard or VIP live program.
type OtherProgram struct {
	ID             int            `db:"id" json:"id"`
	Title          string         `db:"title" json:"title"`
	Price          string         `db:"price" json:"price"`
	Description    string         `db:"description" json:"description,omitempty"`
	VideoURL       string         `db:"video_url" json:"video_url,omitempty"`
	ImageURL       string         `db:"image_url" json:"image_url,omitempty"`
	TrainersCount  string         `db:"trainers_count" json:"trainers_count,omitempty"`
	AvailableDates pq.StringArray `db:"available_dates" json:"available_dates,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// OnlineCourse is a self-paced paid course.
type OnlineCourse struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Price       string    `db:"price" json:"price"`
	Description string    `db:"description" json:"description,omitempty"`
	VideoURL    string    `db:"video_url" json:"video_url,omitempty"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// FreeCourse is a free video lesson.
type FreeCourse struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	TrainerName string    `db:"trainer_name" json:"trainer_name,omitempty"`
	VideoURL    string    `db:"video_url" json:"video_url"`
	ImageURL    string    `db:"image_url" json:"image_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type CreateMiniProgramRequest struct {
	Title          string   `json:"title" binding:"required"`
	Subtitle       string   `json:"subtitle"`
	Price          string   `json:"price" binding:"required"`
	Description    string   `json:"description"`
	VideoURL       string   `json:"video_url"`
	ImageURL       string   `json:"image_url"`
	LearnList      []string `json:"learn_list"`
	ReceiveList    []string `json:"receive_list"`
	AvailableDates []string `json:"available_dates"`
}

type CreateOtherProgramRequest struct {
	Title          string   `json:"title" binding:"required"`
	Price          string   `json:"price" binding:"required"`
	Description    string   `json:"description"`
	VideoURL       string   `json:"video_url"`
	ImageURL       string   `json:"image_url"`
	TrainersCount  string   `json:"trainers_count"`
	AvailableDates []string `json:"available_dates"`
}

type CreateOnlineCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description"`
	VideoURL    string `json:"video_url"`
	ImageURL    string `json:"image_url"`
}

type CreateFreeCourseRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	TrainerName string `json:"trainer_name"`
	VideoURL    string `json:"video_url" binding:"required"`
	ImageURL    string `json:"image_url"`
}
