package tables

import (
	"errors"
	"fmt"
)

type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

type FormatError struct {
	Timestamp string
	Reason    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: %s", e.Timestamp, e.Reason)
}

type MissingTimestampError struct {
	StopID string
}

func (e *MissingTimestampError) Error() string {
	return fmt.Sprintf("schedule entry for stop %q has neither arrival nor departure time", e.StopID)
}

type EmptyDatasetError struct {
	Dataset string
}

func (e *EmptyDatasetError) Error() string {
	return fmt.Sprintf("no %s available", e.Dataset)
}

type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindNetwork
	KindFormat
	KindMissingTimestamp
	KindEmptyDataset
	KindInvalidRequest
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindFormat:
		return "format"
	case KindMissingTimestamp:
		return "missing_timestamp"
	case KindEmptyDataset:
		return "empty_dataset"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "internal"
	}
}

// KindOf classifies err by the first typed error found in its chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}

	var (
		networkErr *NetworkError
		formatErr  *FormatError
		missingErr *MissingTimestampError
		emptyErr   *EmptyDatasetError
		invalidErr *InvalidRequestError
	)

	switch {
	case errors.As(err, &networkErr):
		return KindNetwork
	case errors.As(err, &formatErr):
		return KindFormat
	case errors.As(err, &missingErr):
		return KindMissingTimestamp
	case errors.As(err, &emptyErr):
		return KindEmptyDataset
	case errors.As(err, &invalidErr):
		return KindInvalidRequest
	default:
		return KindInternal
	}
}
