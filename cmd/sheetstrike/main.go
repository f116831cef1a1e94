// Command sheetstrike injects an external image reference into an XLSX
// workbook.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driven/archive"
	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driven/config/file"
	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driven/entropy"
	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driven/scratch"
	"github.com/sheetstrike/sheetstrike-cli/internal/adapters/driving/cli"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/domain"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driven"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/ports/driving"
	"github.com/sheetstrike/sheetstrike-cli/internal/core/services"
)

func main() {
	fsys := afero.NewOsFs()

	cli.Configure(
		func(catalog domain.Catalog) driving.Patcher {
			return services.NewPatchService(
				archive.NewZip(fsys),
				scratch.NewProvider(fsys, ""),
				entropy.New(),
				catalog,
			)
		},
		func(path string) (driven.ProfileStore, error) {
			return file.NewProfileStore(fsys, path)
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, cli.ErrorStyle(err))
		os.Exit(1)
	}
}
