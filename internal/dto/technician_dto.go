package dto

import (
	"errors"
	"time"
)

// TechnicianInput is the typed form for the multipart technician endpoints.
type TechnicianInput struct {
	Name           string
	Surname        string
	Nationality    string
	DocumentID     string
	BirthDate      time.Time
	Region         int
	Comuna         string
	Address        string
	Email          string
	Phone          string
	AltPhone       string
	VehiclePlate   string
	Certifications string
}

// Validate checks the required fields before any entity is constructed.
func (in *TechnicianInput) Validate() error {
	if in.Name == "" || in.Surname == "" {
		return errors.New("name and surname are required")
	}
	if in.DocumentID == "" {
		return errors.New("document id is required")
	}
	if in.BirthDate.IsZero() {
		return errors.New("birth date is required")
	}
	return nil
}

// TechnicianSummary is the lightweight projection for assignment pickers.
type TechnicianSummary struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	DocumentID string `json:"document_id"`
	FullName   string `json:"full_name"`
}
