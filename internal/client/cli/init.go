package cli

import (
	"bytes"
	"context"
	"errors"

	"github.com/izm4457/password-manager/internal/common"
)

var errPasswordMismatch = errors.New("passwords do not match")

// Init creates an empty store protected by a new master password.
func (a *App) Init(ctx context.Context) error {
	pw, err := GetPassword(a.in, a.inFd, "New master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return errEmptyPassword
	}

	again, err := GetPassword(a.in, a.inFd, "Repeat master password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(again)
	if !bytes.Equal(pw, again) {
		return errPasswordMismatch
	}

	ctx, cancel := a.storeContext(ctx)
	defer cancel()

	st, err := a.initStore(ctx, a.config, pw)
	if err != nil {
		return err
	}
	defer st.Close()

	a.log.Info(ctx, "store initialized", "store", st.Kind)
	a.println("Empty password store created.")
	return nil
}
