package vault

import "github.com/izm4457/password-manager/internal/common"

var (
	ErrWrongPassword      = common.ErrorWrongPassword
	ErrNotInitialized     = common.ErrorNotInitialized
	ErrAlreadyInitialized = common.ErrorAlreadyInitialized
	ErrLocked             = common.ErrorLocked
)
