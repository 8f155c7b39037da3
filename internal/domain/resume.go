package domain

import (
	"time"

	"github.com/google/uuid"
)

type Education struct {
	Degree        string `json:"degree"`
	Institution   string `json:"institution"`
	YearOfPassing string `json:"year_of_passing"`
}

type Experience struct {
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	Start       string `json:"exp_start"`
	End         string `json:"exp_end"`
	Description string `json:"experience_desc"`
}

// ResumeRequest is one submitted resume form after sanitization.
type ResumeRequest struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Location       string       `json:"location"`
	LinkedIn       string       `json:"linkedin"`
	Skills         string       `json:"skills"`
	Projects       string       `json:"projects"`
	Certifications string       `json:"certifications"`
	OtherDetails   string       `json:"other_details"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
}

// GeneratedDocument is a rendered PDF living in the output directory until
// the reaper removes it.
type GeneratedDocument struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	FileName  string    `json:"file_name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type SummaryQuery struct {
	Name   string `json:"name"`
	Skills string `json:"skills"`
}
