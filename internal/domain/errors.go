package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("missing required environment variable")
	ErrInvalidDomain     = errors.New("invalid domain")
	ErrInvalidType       = errors.New("invalid type")
	ErrInvalidTTL        = errors.New("invalid TTL")
	ErrInvalidIP         = errors.New("invalid IP address")
	ErrRequired          = errors.New("required field missing")

	ErrMissingFile     = errors.New("file not found")
	ErrZoneNotFound    = errors.New("zone not found")
	ErrProviderAPI     = errors.New("provider API error")
	ErrConfigReadFail  = errors.New("config read failed")
	ErrConfigParseFail = errors.New("config parse failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func MissingCredential(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingCredential, name)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
