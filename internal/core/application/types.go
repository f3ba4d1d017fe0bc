package application

import (
	"fmt"
)

const (
	StageReadSecret   = "read_secret"
	StageReadPassword = "read_password"
	StageReadMnemonic = "read_mnemonic"
	StageDerive       = "derive"
	StageEncode       = "encode"
	StageDecode       = "decode"

	CommandGenerate = "generate"
	CommandVerify   = "verify"
)

var stageDescriptions = map[string]string{
	StageReadSecret:   "failed to read secret",
	StageReadPassword: "failed to read password",
	StageReadMnemonic: "failed to read mnemonic",
	StageDerive:       "failed to derive entropy",
	StageEncode:       "failed to encode mnemonic",
	StageDecode:       "invalid mnemonic",
}

// StageError reports the pipeline stage at which a run failed. The wrapped
// error keeps its kind, use errors.Is to match it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	desc, ok := stageDescriptions[e.Stage]
	if !ok {
		desc = e.Stage
	}
	return fmt.Sprintf("%s: %s", desc, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{stage, err}
}
