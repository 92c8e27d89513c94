package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/godigest/internal/digest"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.digest.enabled") {
		if err := digest.New(digest.Dependency{
			Router:     a.router,
			Instrument: a.ins,
			Validator:  a.validator,
			Salt:       a.salt,
			Hashers:    a.hashers,
		}); err != nil {
			slog.Error("failed to init module digest", "error", err)
			os.Exit(1)
		}
	}
}
