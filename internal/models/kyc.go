package models

import "time"

const (
	KYCPending  = "pending"
	KYCApproved = "approved"
	KYCRejected = "rejected"
)

type KYCRecord struct {
	ID          int64     `json:"id" db:"id"`
	MinerID     int64     `json:"-" db:"miner_id"`
	DocumentType string   `json:"documentType" db:"document_type"`
	DocumentRef string    `json:"documentRef" db:"document_ref"`
	Status      string    `json:"status" db:"status"`
	SubmittedAt time.Time `json:"submittedAt" db:"submitted_at"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty" db:"reviewed_at"`
}
