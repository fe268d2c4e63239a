package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type BriefStatus string

const (
	BriefStatusOpen     BriefStatus = "open"
	BriefStatusAssigned BriefStatus = "assigned"
)

// ProductNotes holds the per-garment sections of a brief.
type ProductNotes struct {
	Tee         []string `json:"tee"`
	TeamJacket  []string `json:"team_jacket"`
	FounderWear []string `json:"founder_wear"`
}

// Brief is the terminal artifact of a completed interview. The json tags are
// the exact schema the LLM is instructed to emit, so gateway output parses
// straight into this struct. Content fields are immutable after creation;
// only the assignment fields change, and only through BriefRepo.Accept.
type Brief struct {
	UUID                 uuid.UUID                        `gorm:"type:uuid;primaryKey" json:"id"`
	Summary              string                           `gorm:"not null" json:"summary"`
	CoreDesignDirection  datatypes.JSONSlice[string]      `json:"core_design_direction"`
	VisualLanguage       datatypes.JSONSlice[string]      `json:"visual_language"`
	ColorAndTypography   datatypes.JSONSlice[string]      `json:"color_and_typography"`
	ProductSpecificNotes datatypes.JSONType[ProductNotes] `json:"product_specific_notes"`
	Dos                  datatypes.JSONSlice[string]      `json:"dos"`
	Donts                datatypes.JSONSlice[string]      `json:"donts"`
	ClosingToCustomer    string                           `json:"closing_to_customer"`
	CustomerEmail        string                           `json:"customerEmail,omitempty"`
	Status               BriefStatus                      `gorm:"not null;default:'open'" json:"status"`
	DesignerID           *uuid.UUID                       `gorm:"type:uuid" json:"designerId,omitempty"`
	AssignedAt           *time.Time                       `json:"assignedAt,omitempty"`
	CreatedAt            time.Time                        `json:"createdAt"`
	UpdatedAt            time.Time                        `json:"-"`
}
