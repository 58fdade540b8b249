package casemu

import (
	"errors"
	"fmt"
)

// ConfigError represents a configuration or parameter validation error,
// e.g. a malformed channel string or a key pair supplied without its
// partner.
type ConfigError struct {
	Field   string // the field or flag that failed validation
	Value   any    // the invalid value
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TunerError represents a failure talking to the tuner character device:
// open, ioctl, or read/poll failures that are not a property of the
// transport stream itself.
type TunerError struct {
	Operation string // "open", "tune", "poll", "read", etc.
	Device    string
	Message   string
	Err       error
}

func (e *TunerError) Error() string {
	if e.Device != "" {
		return fmt.Sprintf("tuner error: %s %s: %s", e.Operation, e.Device, e.Message)
	}
	return fmt.Sprintf("tuner error: %s: %s", e.Operation, e.Message)
}

func (e *TunerError) Unwrap() error { return e.Err }

// EngineFatalError wraps one of the engine's fatal numeric codes
// (-1..-16). A fatal code always aborts the current decode operation.
type EngineFatalError struct {
	Code    int
	Message string
}

func (e *EngineFatalError) Error() string {
	return fmt.Sprintf("descrambler engine fatal error %d: %s", e.Code, e.Message)
}

// EngineWarning wraps one of the engine's warning numeric codes (+1..+6).
// A warning never aborts the operation; callers are expected to log it
// and continue.
type EngineWarning struct {
	Code    int
	Message string
}

func (e *EngineWarning) Error() string {
	return fmt.Sprintf("descrambler engine warning %d: %s", e.Code, e.Message)
}

// AuthFailure represents an ECM or EMM authentication failure: every
// candidate key in the registry was tried and none produced a MAC that
// matched the payload's embedded tag.
type AuthFailure struct {
	Kind        string // "ecm" or "emm"
	TriedKeys   int
	PayloadSize int
}

func (e *AuthFailure) Error() string {
	return fmt.Sprintf("%s authentication failed: %d candidate key(s) tried against a %d-byte payload",
		e.Kind, e.TriedKeys, e.PayloadSize)
}

// Sentinel errors for conditions that don't carry enough interesting
// structured data to deserve their own type.
var (
	ErrNoCandidateKeys = errors.New("key registry has no candidate working keys")
	ErrSessionClosed   = errors.New("decoder session is already closed")
)

// NewConfigError creates a new configuration error.
func NewConfigError(field string, value any, message string) error {
	return &ConfigError{Field: field, Value: value, Message: message}
}

// NewTunerError creates a new tuner error.
func NewTunerError(operation, device string, err error) error {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return &TunerError{Operation: operation, Device: device, Message: msg, Err: err}
}

// ClassifyEngineCode turns one of the engine's raw numeric return codes
// into either a structured fatal error, a structured warning, or nil for
// success (code 0). Negative codes in -1..-16 are fatal; positive codes
// in +1..+6 are warnings; any other value is treated as fatal with a
// generic message, since the engine contract promises only those two
// ranges plus zero.
func ClassifyEngineCode(code int) error {
	if code == 0 {
		return nil
	}
	if msg, ok := fatalMessages[code]; ok {
		return &EngineFatalError{Code: code, Message: msg}
	}
	if msg, ok := warningMessages[code]; ok {
		return &EngineWarning{Code: code, Message: msg}
	}
	return &EngineFatalError{Code: code, Message: "unrecognized engine return code"}
}

var fatalMessages = map[int]string{
	-1:  "invalid parameter",
	-2:  "not enough memory",
	-3:  "input stream is not a transport stream",
	-4:  "no PAT found in the first 16 MB",
	-5:  "no PMT found in the first 32 MB",
	-6:  "no ECM found in the first 32 MB",
	-7:  "B-CAS card is empty",
	-8:  "invalid B-CAS card status",
	-9:  "ECM processing failed",
	-10: "decrypt failed",
	-11: "PAT parse failure",
	-12: "PMT parse failure",
	-13: "ECM parse failure",
	-14: "CAT parse failure",
	-15: "EMM parse failure",
	-16: "EMM processing failed",
}

var warningMessages = map[int]string{
	1: "unpurchased ECM",
	2: "TS section id mismatch",
	3: "broken TS section",
	4: "PAT not complete",
	5: "PMT not complete",
	6: "ECM not complete",
}

// IsConfigError reports whether err is (or wraps) a *ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

// IsTunerError reports whether err is (or wraps) a *TunerError.
func IsTunerError(err error) bool {
	var e *TunerError
	return errors.As(err, &e)
}

// IsEngineFatal reports whether err is (or wraps) a *EngineFatalError.
func IsEngineFatal(err error) bool {
	var e *EngineFatalError
	return errors.As(err, &e)
}

// IsEngineWarning reports whether err is (or wraps) a *EngineWarning.
func IsEngineWarning(err error) bool {
	var e *EngineWarning
	return errors.As(err, &e)
}

// IsAuthFailure reports whether err is (or wraps) a *AuthFailure.
func IsAuthFailure(err error) bool {
	var e *AuthFailure
	return errors.As(err, &e)
}
