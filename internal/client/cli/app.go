package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/izm4457/password-manager/internal/client/config"
	"github.com/izm4457/password-manager/internal/client/storage"
	"github.com/izm4457/password-manager/internal/common"
	"github.com/izm4457/password-manager/internal/logging"
)

var errEmptyPassword = errors.New("master password must not be empty")

// App carries what every command needs: configuration, logger and the
// command's standard streams.
type App struct {
	config *config.Config
	log    logging.Logger
	in     *bufio.Reader
	inFd   int
	out    io.Writer

	openStore func(ctx context.Context, cfg *config.Config, password []byte) (*storage.Store, error)
	initStore func(ctx context.Context, cfg *config.Config, password []byte) (*storage.Store, error)
}

func NewApp(cfg *config.Config, log logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		config:    cfg,
		log:       log,
		in:        bufio.NewReader(in),
		inFd:      TerminalFd(in),
		out:       out,
		openStore: storage.Open,
		initStore: storage.Init,
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// storeContext bounds a single store operation by the configured timeout.
func (a *App) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.StoreTimeout)
}

// unlock prompts for the master password and opens the configured store.
func (a *App) unlock(ctx context.Context) (*storage.Store, error) {
	pw, err := GetPassword(a.in, a.inFd, "Master password", a.out)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(pw)
	if len(pw) == 0 {
		return nil, errEmptyPassword
	}

	ctx, cancel := a.storeContext(ctx)
	defer cancel()

	st, err := a.openStore(ctx, a.config, pw)
	if err != nil {
		a.log.Warn(ctx, "unlock failed", "store", a.config.Store, "error", err)
		return nil, err
	}
	a.log.Debug(ctx, "store unlocked", "store", st.Kind)
	return st, nil
}
