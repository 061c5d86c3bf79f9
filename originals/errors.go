package originals

import "github.com/onionoriginals/sdk-sub004/oerrors"

func errValidation(format string, args ...any) error {
	return oerrors.NewValidationError(format, args...)
}

func errChain(format string, args ...any) error {
	return oerrors.NewChainError(format, args...)
}

func errDeactivated(format string, args ...any) error {
	return oerrors.NewDeactivatedError(format, args...)
}

func errLayer(format string, args ...any) error {
	return oerrors.NewLayerError(format, args...)
}

func errExternal(err error, format string, args ...any) error {
	return oerrors.NewExternalError(err, format, args...)
}
