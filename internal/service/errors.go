package service

import (
	"fmt"

	"habit-reminder/internal/domain"
)

// storeKind makes sure every error leaving the services carries a
// caller-facing kind; anything unclassified is a store failure.
func storeKind(err error) error {
	if err == nil || domain.IsKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %v", domain.ErrStore, err)
}

func validationError(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}
