package aggregate

import "errors"

var (
	ErrUnknownSentiment = errors.New("unknown sentiment label")
	ErrUnknownAlertType = errors.New("unknown alert type")
)
