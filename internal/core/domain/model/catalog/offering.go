// Package catalog models the services providers offer. A work item can only
// be created against an active offering.
package catalog

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	ErrOfferingIsNotConstructed = errors.New("offering must be created via NewOffering or RestoreOffering")
	ErrOfferingNotFound         = errors.New("offering not found")
	ErrOfferingNotActive        = errors.New("offering must be active to be contracted")
)

// Status is whether an offering can currently be contracted.
type Status int

const (
	UnknownStatus Status = iota
	Active
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "unknown",
		Active:        "active",
		Inactive:      "inactive",
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case "active":
		return Active, nil
	case "inactive":
		return Inactive, nil
	default:
		return UnknownStatus, errs.NewValueIsInvalidErrorWithCause("offering status", fmt.Errorf("%q is not a known status", s))
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s != Active && s != Inactive {
		return errs.NewValueIsInvalidErrorWithCause("offering status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// Offering is a service a provider sells at a fixed price.
type Offering struct {
	id          kernel.UUID
	providerID  kernel.UUID
	title       kernel.Title
	description kernel.Description
	price       kernel.Money
	status      Status

	isConstructed bool
}

// NewOffering creates an active offering.
func NewOffering(
	id, providerID kernel.UUID,
	title kernel.Title,
	description kernel.Description,
	price kernel.Money,
) (*Offering, error) {
	return RestoreOffering(id, providerID, title, description, price, Active)
}

func RestoreOffering(
	id, providerID kernel.UUID,
	title kernel.Title,
	description kernel.Description,
	price kernel.Money,
	status Status,
) (*Offering, error) {
	if err := errors.Join(
		id.Validate(),
		providerID.Validate(),
		title.Validate(),
		description.Validate(),
		price.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Offering{
		id:            id,
		providerID:    providerID,
		title:         title,
		description:   description,
		price:         price,
		status:        status,
		isConstructed: true,
	}, nil
}

func (o *Offering) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferingIsNotConstructed
	}
	return nil
}

func (o *Offering) ID() kernel.UUID                 { return o.id }
func (o *Offering) ProviderID() kernel.UUID         { return o.providerID }
func (o *Offering) Title() kernel.Title             { return o.title }
func (o *Offering) Description() kernel.Description { return o.description }
func (o *Offering) Price() kernel.Money             { return o.price }
func (o *Offering) Status() Status                  { return o.status }
func (o *Offering) IsActive() bool                  { return o.status == Active }

func (o *Offering) Activate()   { o.status = Active }
func (o *Offering) Deactivate() { o.status = Inactive }

// ChangeStatus sets the status to any valid value.
func (o *Offering) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// EnsureContractable returns ErrOfferingNotActive unless the offering is active.
func (o *Offering) EnsureContractable() error {
	if !o.IsActive() {
		return fmt.Errorf("%w: %s is %s", ErrOfferingNotActive, o.id, o.status)
	}
	return nil
}
