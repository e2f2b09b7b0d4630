package dto

import (
	"time"

	"github.com/fidias-dev/technician-agenda/internal/models"
	"github.com/shopspring/decimal"
)

type WorkRequest struct {
	JobCategoryID    uint                 `json:"job_category_id"`
	JobSubcategoryID uint                 `json:"job_subcategory_id"`
	Details          string               `json:"details"`
	Date             time.Time            `json:"date"`
	Completed        bool                 `json:"completed"`
	Cost             decimal.Decimal      `json:"cost"`
	AmountToCharge   decimal.Decimal      `json:"amount_to_charge"`
	PaymentStatus    models.PaymentStatus `json:"payment_status"`
	ClientID         uint                 `json:"client_id"`
	DirectionID      uint                 `json:"direction_id"`
	TechnicianID     *uint                `json:"technician_id"`
	TechnicianFee    decimal.Decimal      `json:"technician_fee"`
	TechnicianPaid   bool                 `json:"technician_paid"`
	// Version is checked on full updates when non-zero; a mismatch means a
	// concurrent edit won and the update is rejected.
	Version int `json:"version"`
}

type StatusPatch struct {
	Completed bool `json:"completed"`
}

type TechnicianPaymentPatch struct {
	Paid bool `json:"paid"`
}

// WorkResponse is the flat projection served by the work endpoints and the
// shape stored in the cache. Only forward references are included, so the
// payload is acyclic by construction.
type WorkResponse struct {
	ID               uint                 `json:"id"`
	JobCategoryID    uint                 `json:"job_category_id"`
	JobSubcategoryID uint                 `json:"job_subcategory_id"`
	Details          string               `json:"details"`
	Date             time.Time            `json:"date"`
	Completed        bool                 `json:"completed"`
	Cost             decimal.Decimal      `json:"cost"`
	AmountToCharge   decimal.Decimal      `json:"amount_to_charge"`
	PaymentStatus    models.PaymentStatus `json:"payment_status"`
	ClientID         uint                 `json:"client_id"`
	DirectionID      uint                 `json:"direction_id"`
	TechnicianID     *uint                `json:"technician_id"`
	TechnicianFee    decimal.Decimal      `json:"technician_fee"`
	TechnicianPaid   bool                 `json:"technician_paid"`
	Version          int                  `json:"version"`
	Client           *ClientRef           `json:"client,omitempty"`
	Direction        *DirectionRef        `json:"direction,omitempty"`
	JobCategory      *CategoryRef         `json:"job_category,omitempty"`
	JobSubcategory   *SubcategoryRef      `json:"job_subcategory,omitempty"`
	Technician       *TechnicianRef       `json:"technician,omitempty"`
	Files            []WorkFileRef        `json:"files"`
}

type ClientRef struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Phone   string `json:"phone"`
}

type DirectionRef struct {
	ID     uint   `json:"id"`
	Street string `json:"street"`
	Region int    `json:"region"`
	Comuna string `json:"comuna"`
}

type CategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type SubcategoryRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type TechnicianRef struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	DocumentID string `json:"document_id"`
}

type WorkFileRef struct {
	ID         uint      `json:"id"`
	FileName   string    `json:"file_name"`
	FilePath   string    `json:"file_path"`
	FileType   string    `json:"file_type"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewWorkResponse projects a loaded work row onto the response shape.
func NewWorkResponse(w *models.Work) WorkResponse {
	resp := WorkResponse{
		ID:               w.ID,
		JobCategoryID:    w.JobCategoryID,
		JobSubcategoryID: w.JobSubcategoryID,
		Details:          w.Details,
		Date:             w.Date,
		Completed:        w.Completed,
		Cost:             w.Cost,
		AmountToCharge:   w.AmountToCharge,
		PaymentStatus:    w.PaymentStatus,
		ClientID:         w.ClientID,
		DirectionID:      w.DirectionID,
		TechnicianID:     w.TechnicianID,
		TechnicianFee:    w.TechnicianFee,
		TechnicianPaid:   w.TechnicianPaid,
		Version:          w.Version,
		Files:            make([]WorkFileRef, 0, len(w.Files)),
	}

	if w.Client.ID != 0 {
		resp.Client = &ClientRef{ID: w.Client.ID, Name: w.Client.Name, Surname: w.Client.Surname, Phone: w.Client.Phone}
	}
	if w.Direction.ID != 0 {
		resp.Direction = &DirectionRef{ID: w.Direction.ID, Street: w.Direction.Street, Region: w.Direction.Region, Comuna: w.Direction.Comuna}
	}
	if w.JobCategory.ID != 0 {
		resp.JobCategory = &CategoryRef{ID: w.JobCategory.ID, Name: w.JobCategory.Name, Icon: w.JobCategory.Icon}
	}
	if w.JobSubcategory.ID != 0 {
		resp.JobSubcategory = &SubcategoryRef{ID: w.JobSubcategory.ID, Name: w.JobSubcategory.Name}
	}
	if w.Technician != nil && w.Technician.ID != 0 {
		resp.Technician = &TechnicianRef{ID: w.Technician.ID, Name: w.Technician.Name, Surname: w.Technician.Surname, DocumentID: w.Technician.DocumentID}
	}
	for _, f := range w.Files {
		resp.Files = append(resp.Files, WorkFileRef{ID: f.ID, FileName: f.FileName, FilePath: f.FilePath, FileType: f.FileType, UploadedAt: f.UploadedAt})
	}
	return resp
}
