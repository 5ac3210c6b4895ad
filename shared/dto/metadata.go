package dto

import (
	"tripdesk/shared/constant"
	"tripdesk/shared/model"
	"tripdesk/shared/timezone"
)

// Metadata is the audit block of every response body. Timestamps render in the application zone.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	ModifiedAt string `json:"modified_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(src model.Metadata) {
	*m = Metadata{
		CreatedAt:  timezone.Format(src.CreatedAt, constant.DateFormat),
		ModifiedAt: timezone.Format(src.ModifiedAt, constant.DateFormat),
		CreatedBy:  src.CreatedBy,
		ModifiedBy: src.ModifiedBy,
	}
}
