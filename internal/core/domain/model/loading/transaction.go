package loading

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"garment/internal/core/domain/model/kernel"
	"garment/internal/pkg/errs"
)

var ErrTransactionIsNotConstructed = errors.New("Transaction must be created via NewTransaction or RestoreTransaction")

// CategoryRef names the size-category a transaction's quantities belong to.
type CategoryRef struct {
	ID   int64
	Name string
}

// Transaction is the loading-transaction aggregate root.
type Transaction struct {
	id       kernel.UUID
	orderID  string
	styleID  string
	category CategoryRef
	lineNo   int

	// employeeID is the verified production employee who initiated the loading;
	// createdBy is the authenticated actor that submitted it.
	employeeID string
	createdBy  string

	status       Status
	approvedBy   *string
	approvedDate *time.Time

	handoverBy      *string
	handoverDate    *time.Time
	handoverStyleID *string

	quantities kernel.SizeQuantities
	createdAt  time.Time

	isConstructed bool
}

// NewTransaction creates a PENDING_APPROVAL transaction for an order's line loading.
// styleID is the order's style and is used to detect a style change on handover.
func NewTransaction(
	id kernel.UUID,
	orderID string,
	styleID string,
	category CategoryRef,
	lineNo int,
	employeeID string,
	createdBy string,
	quantities kernel.SizeQuantities,
	now time.Time,
) (*Transaction, error) {
	t := &Transaction{
		status:        PendingApproval,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setOrder(orderID, styleID),
		t.setCategory(category),
		t.setLineNo(lineNo),
		t.setPeople(employeeID, createdBy),
		t.setQuantities(quantities),
	); err != nil {
		return nil, err
	}
	return t, nil
}

// RestoreTransaction rebuilds a transaction read from storage.
func RestoreTransaction(
	id kernel.UUID,
	orderID string,
	styleID string,
	category CategoryRef,
	lineNo int,
	employeeID string,
	createdBy string,
	status Status,
	approvedBy *string,
	approvedDate *time.Time,
	handoverBy *string,
	handoverDate *time.Time,
	handoverStyleID *string,
	quantities kernel.SizeQuantities,
	createdAt time.Time,
) (*Transaction, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	t := &Transaction{
		status:          status,
		approvedBy:      approvedBy,
		approvedDate:    approvedDate,
		handoverBy:      handoverBy,
		handoverDate:    handoverDate,
		handoverStyleID: handoverStyleID,
		quantities:      quantities,
		createdAt:       createdAt,
		isConstructed:   true,
	}
	if err := errors.Join(
		t.setID(id),
		t.setOrder(orderID, styleID),
		t.setCategory(category),
		t.setLineNo(lineNo),
		t.setPeople(employeeID, createdBy),
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Transaction) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTransactionIsNotConstructed
	}
	return nil
}

func (t *Transaction) ID() kernel.UUID                   { return t.id }
func (t *Transaction) OrderID() string                   { return t.orderID }
func (t *Transaction) StyleID() string                   { return t.styleID }
func (t *Transaction) Category() CategoryRef             { return t.category }
func (t *Transaction) LineNo() int                       { return t.lineNo }
func (t *Transaction) EmployeeID() string                { return t.employeeID }
func (t *Transaction) CreatedBy() string                 { return t.createdBy }
func (t *Transaction) Status() Status                    { return t.status }
func (t *Transaction) ApprovedBy() *string               { return t.approvedBy }
func (t *Transaction) ApprovedDate() *time.Time          { return t.approvedDate }
func (t *Transaction) HandoverBy() *string               { return t.handoverBy }
func (t *Transaction) HandoverDate() *time.Time          { return t.handoverDate }
func (t *Transaction) HandoverStyleID() *string          { return t.handoverStyleID }
func (t *Transaction) Quantities() kernel.SizeQuantities { return t.quantities }
func (t *Transaction) CreatedAt() time.Time              { return t.createdAt }

// InCategory reports whether categoryName names the transaction's size-category.
func (t *Transaction) InCategory(categoryName string) bool {
	return strings.EqualFold(strings.TrimSpace(categoryName), t.category.Name)
}

// IsStyleChange reports whether a handover with variantStyleID substitutes the order's style.
func (t *Transaction) IsStyleChange(variantStyleID string) bool {
	variantStyleID = strings.TrimSpace(variantStyleID)
	return variantStyleID != "" && variantStyleID != t.styleID
}

// Approve records the approver. Only PENDING_APPROVAL transactions can be approved.
func (t *Transaction) Approve(approverID string, at time.Time) error {
	if strings.TrimSpace(approverID) == "" {
		return errs.NewValueIsRequiredError("approverId")
	}
	next, err := t.status.Approve()
	if err != nil {
		return err
	}
	t.status = next
	t.approvedBy = &approverID
	t.approvedDate = &at
	return nil
}

// Handover records the recipient at the line and completes the transaction.
// A variant style different from the order's style is kept as handoverStyleID.
func (t *Transaction) Handover(recipientID, variantStyleID string, at time.Time) error {
	if strings.TrimSpace(recipientID) == "" {
		return errs.NewValueIsRequiredError("handoverId")
	}
	next, err := t.status.Handover()
	if err != nil {
		return err
	}
	t.status = next
	t.handoverBy = &recipientID
	t.handoverDate = &at
	if t.IsStyleChange(variantStyleID) {
		style := strings.TrimSpace(variantStyleID)
		t.handoverStyleID = &style
	}
	return nil
}

// EnsureRejectable fails with InvalidState unless approval is still pending.
func (t *Transaction) EnsureRejectable() error {
	return t.status.ValidateReject()
}

func (t *Transaction) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Transaction) setOrder(orderID, styleID string) error {
	if strings.TrimSpace(orderID) == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	if strings.TrimSpace(styleID) == "" {
		return errs.NewValueIsRequiredError("styleId")
	}
	t.orderID = orderID
	t.styleID = styleID
	return nil
}

func (t *Transaction) setCategory(category CategoryRef) error {
	if category.ID <= 0 || strings.TrimSpace(category.Name) == "" {
		return errs.NewValueIsRequiredError("sizeCategory")
	}
	t.category = category
	return nil
}

func (t *Transaction) setLineNo(lineNo int) error {
	if lineNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("lineNo", fmt.Errorf("%d is not greater than 0", lineNo))
	}
	t.lineNo = lineNo
	return nil
}

func (t *Transaction) setPeople(employeeID, createdBy string) error {
	if strings.TrimSpace(employeeID) == "" {
		return errs.NewValueIsRequiredError("employeeId")
	}
	if strings.TrimSpace(createdBy) == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	t.employeeID = employeeID
	t.createdBy = createdBy
	return nil
}

func (t *Transaction) setQuantities(quantities kernel.SizeQuantities) error {
	if quantities.Total() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantities", errors.New("at least one piece must be loaded"))
	}
	t.quantities = quantities
	return nil
}
