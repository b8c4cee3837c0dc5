// Package domain holds primitives shared across the republic: typed entity
// IDs, official numbering, Roman numerals, and the department catalog.
//
// Typed IDs prevent cross-entity assignment at compile time — a BillID can
// never be passed where a CaseID is expected.
package domain

import (
	"github.com/google/uuid"

	dErrors "republic/pkg/domain-errors"
)

// Typed UUIDs for each entity owned by the document.
type (
	ArticleID  uuid.UUID
	BillID     uuid.UUID
	CaseID     uuid.UUID
	OrderID    uuid.UUID
	PointID    uuid.UUID
	ActivityID uuid.UUID
)

func NewArticleID() ArticleID   { return ArticleID(uuid.New()) }
func NewBillID() BillID         { return BillID(uuid.New()) }
func NewCaseID() CaseID         { return CaseID(uuid.New()) }
func NewOrderID() OrderID       { return OrderID(uuid.New()) }
func NewPointID() PointID       { return PointID(uuid.New()) }
func NewActivityID() ActivityID { return ActivityID(uuid.New()) }

func (id ArticleID) String() string  { return uuid.UUID(id).String() }
func (id BillID) String() string     { return uuid.UUID(id).String() }
func (id CaseID) String() string     { return uuid.UUID(id).String() }
func (id OrderID) String() string    { return uuid.UUID(id).String() }
func (id PointID) String() string    { return uuid.UUID(id).String() }
func (id ActivityID) String() string { return uuid.UUID(id).String() }

func (id ArticleID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id BillID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id CaseID) IsZero() bool    { return uuid.UUID(id) == uuid.Nil }
func (id OrderID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id PointID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

// MarshalText/UnmarshalText keep typed IDs as plain UUID strings in JSON,
// matching the persisted document shape.

func (id ArticleID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *ArticleID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ArticleID(u)
	return nil
}

func (id BillID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *BillID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = BillID(u)
	return nil
}

func (id CaseID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *CaseID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = CaseID(u)
	return nil
}

func (id OrderID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *OrderID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = OrderID(u)
	return nil
}

func (id PointID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *PointID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = PointID(u)
	return nil
}

func (id ActivityID) MarshalText() ([]byte, error) { return []byte(id.String()), nil }
func (id *ActivityID) UnmarshalText(b []byte) error {
	u, err := uuid.Parse(string(b))
	if err != nil {
		return err
	}
	*id = ActivityID(u)
	return nil
}

// parseID validates the invariant shared by all entity IDs: a valid,
// non-nil UUID.
func parseID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.Wrap(err, dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return u, nil
}

func ParseArticleID(raw string) (ArticleID, error) {
	u, err := parseID(raw)
	if err != nil {
		return ArticleID{}, err
	}
	return ArticleID(u), nil
}

func ParseBillID(raw string) (BillID, error) {
	u, err := parseID(raw)
	if err != nil {
		return BillID{}, err
	}
	return BillID(u), nil
}

func ParseCaseID(raw string) (CaseID, error) {
	u, err := parseID(raw)
	if err != nil {
		return CaseID{}, err
	}
	return CaseID(u), nil
}

func ParseOrderID(raw string) (OrderID, error) {
	u, err := parseID(raw)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID(u), nil
}

func ParsePointID(raw string) (PointID, error) {
	u, err := parseID(raw)
	if err != nil {
		return PointID{}, err
	}
	return PointID(u), nil
}
