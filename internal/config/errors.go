package config

import "errors"

var (
	ErrDecodeFile    = errors.New("config: failed to decode file")
	ErrEnv           = errors.New("config: failed to apply environment")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
