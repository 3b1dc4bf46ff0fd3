package driver

import "fmt"

// DeviceNotFoundError means no USB device matched the resolved vendor and
// product id. Raised at open time; there is nothing to recover.
type DeviceNotFoundError struct {
	Vendor  uint16
	Product uint16
}

func (e *DeviceNotFoundError) Error() string {
	return fmt.Sprintf("device %04x:%04x not found", e.Vendor, e.Product)
}

// ClaimError wraps a failure to configure or claim interface 0. Fatal: the
// controller cannot be driven without the claim.
type ClaimError struct {
	Vendor  uint16
	Product uint16
	Err     error
}

func (e *ClaimError) Error() string {
	return fmt.Sprintf("claiming interface for device %04x:%04x: %v", e.Vendor, e.Product, e.Err)
}

func (e *ClaimError) Unwrap() error { return e.Err }

// MissingEndpointError means the claimed interface did not expose the
// expected bulk endpoint. A controller without both directions is not a
// controller we can talk to, so this aborts construction.
type MissingEndpointError struct {
	Direction string // "in" or "out"
}

func (e *MissingEndpointError) Error() string {
	return fmt.Sprintf("no bulk %s endpoint on interface 0", e.Direction)
}

// TransferError wraps a failed bulk transfer.
type TransferError struct {
	Direction string
	Err       error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("bulk %s transfer: %v", e.Direction, e.Err)
}

func (e *TransferError) Unwrap() error { return e.Err }
