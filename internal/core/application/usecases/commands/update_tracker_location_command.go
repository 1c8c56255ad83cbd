package commands

import (
	"errors"
	"strings"

	"github.com/LONJEZ/Delivery-app/internal/core/domain/model/kernel"
	"github.com/LONJEZ/Delivery-app/internal/pkg/guard"
)

var ErrUpdateTrackerLocationCommandIsNotConstructed = errors.New(
	"UpdateTrackerLocationCommand must be created via NewUpdateTrackerLocationCommand constructor",
)

// UpdateTrackerLocationCommand reports a dispatched parcel's new location.
type UpdateTrackerLocationCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.ParcelID
	location string
	arrived  bool

	guard guard.ConstructorGuard
}

func NewUpdateTrackerLocationCommand(parcelID kernel.ParcelID, location string, arrived bool) (UpdateTrackerLocationCommand, error) {
	var locationErr error
	if strings.TrimSpace(location) == "" {
		locationErr = ErrLocationIsRequired
	}

	if err := errors.Join(parcelID.Validate(), locationErr); err != nil {
		return UpdateTrackerLocationCommand{}, err
	}

	return UpdateTrackerLocationCommand{
		parcelID: parcelID,
		location: location,
		arrived:  arrived,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateTrackerLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackerLocationCommandIsNotConstructed)
}

func (c UpdateTrackerLocationCommand) ParcelID() kernel.ParcelID {
	return c.parcelID
}

func (c UpdateTrackerLocationCommand) Location() string {
	return c.location
}

func (c UpdateTrackerLocationCommand) Arrived() bool {
	return c.arrived
}
