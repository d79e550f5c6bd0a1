package entities

import "time"

// Base carries the identity and bookkeeping fields shared by every business
// record. CompanyID scopes all reads and writes to one tenant; ExternalCode
// and SyncWithERP exist for the ERP bridge and are never interpreted here.
type Base struct {
	ID           string `json:"id" dynamodbav:"id"`
	CompanyID    string `json:"company_id" dynamodbav:"company_id"`
	ExternalCode string `json:"external_code,omitempty" dynamodbav:"external_code,omitempty"`
	SyncWithERP  bool   `json:"sync_with_erp" dynamodbav:"sync_with_erp"`
}

func (b *Base) Key() string        { return b.ID }
func (b *Base) SetKey(id string)   { b.ID = id }
func (b *Base) CompanyKey() string { return b.CompanyID }

// Audit holds the lifecycle timestamps. DeletedAt is a pointer so a live
// record stores no deleted_at attribute at all, which lets list scans filter
// with attribute_not_exists.
type Audit struct {
	CreatedAt time.Time  `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" dynamodbav:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" dynamodbav:"deleted_at,omitempty"`
}

func (a *Audit) CreatedTime() time.Time { return a.CreatedAt }

func (a *Audit) Stamp(now time.Time) {
	a.CreatedAt = now
	a.UpdatedAt = now
}

func (a *Audit) Touch(now time.Time) {
	a.UpdatedAt = now
}

func (a *Audit) MarkDeleted(now time.Time) {
	a.DeletedAt = &now
	a.UpdatedAt = now
}

func (a *Audit) IsDeleted() bool { return a.DeletedAt != nil }

// Record is the contract every entity satisfies through its embedded Base and
// Audit plus its own Validate. The generic repository and use case layers are
// written once against this interface instead of once per entity.
type Record interface {
	Key() string
	SetKey(id string)
	CompanyKey() string
	CreatedTime() time.Time
	Stamp(now time.Time)
	Touch(now time.Time)
	MarkDeleted(now time.Time)
	Validate() error
}
