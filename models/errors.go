package models

import "errors"

// ErrTransactionNotFound signals that no record exists for the requested id.
// Handlers map it to 404; everything else is a storage fault.
var ErrTransactionNotFound = errors.New("transaction not found")
