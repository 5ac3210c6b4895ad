package dto

import (
	"strings"
	"time"
	"tripdesk/internal/domains/approval/model"
	gDto "tripdesk/shared/dto"
	"tripdesk/shared/failure"
	gModel "tripdesk/shared/model"
	"tripdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestApprovalRequest struct {
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
	Reason             string  `json:"reason"              validate:"required,max=1000"`
}

// Check repeats the range and reason rules so callers outside the HTTP layer get the same errors.
func (r *RequestApprovalRequest) Check() error {
	if r.DiscountPercentage < model.MinDiscountPercentage || r.DiscountPercentage > model.MaxDiscountPercentage {
		return failure.BadRequestFromString("discount_percentage must be between 0 and 100")
	}

	if strings.TrimSpace(r.Reason) == "" {
		return failure.BadRequestFromString("reason is required")
	}

	return nil
}

func (r *RequestApprovalRequest) ToModel(quotationID string, actor gDto.Actor) model.ApprovalRequest {
	return model.ApprovalRequest{
		ID:                 uuid.NewString(),
		QuotationID:        quotationID,
		DiscountPercentage: decimal.NewFromFloat(r.DiscountPercentage),
		Reason:             strings.TrimSpace(r.Reason),
		RequestedBy:        actor.ID,
		RequestedByName:    actor.Name,
		Status:             model.StatusPending,
		Metadata:           gModel.NewMetadata(timezone.Now(), actor.ID),
	}
}

type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Comment  string `json:"comment"  validate:"omitempty,max=1000"`
}

type RequestApprovalResponse struct {
	ApprovalID string `json:"approval_id"`
}

type ApprovalResponse struct {
	ID                 string     `json:"id"`
	QuotationID        string     `json:"quotation_id"`
	DiscountPercentage float64    `json:"discount_percentage"`
	Reason             string     `json:"reason"`
	RequestedBy        string     `json:"requested_by"`
	RequestedByName    string     `json:"requested_by_name"`
	Status             string     `json:"status"`
	DecidedBy          string     `json:"decided_by,omitempty"`
	DecidedByName      string     `json:"decided_by_name,omitempty"`
	DecisionComment    string     `json:"decision_comment,omitempty"`
	DecidedAt          *time.Time `json:"decided_at,omitempty"`
	gDto.Metadata
}

func (r *ApprovalResponse) FromModel(model model.ApprovalRequest) {
	r.ID = model.ID
	r.QuotationID = model.QuotationID
	r.DiscountPercentage = model.DiscountPercentage.InexactFloat64()
	r.Reason = model.Reason
	r.RequestedBy = model.RequestedBy
	r.RequestedByName = model.RequestedByName
	r.Status = model.Status
	r.DecidedBy = model.DecidedBy
	r.DecidedByName = model.DecidedByName
	r.DecisionComment = model.DecisionComment
	r.DecidedAt = model.DecidedAt
	r.Metadata.FromModel(model.Metadata)
}

type DecisionResponse struct {
	Approval        ApprovalResponse `json:"approval"`
	QuotationStatus string           `json:"quotation_status"`
}
