package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/gallery-cli/internal/core/domain"
	"github.com/kamal-hamza/gallery-cli/internal/core/services"
	"github.com/kamal-hamza/gallery-cli/pkg/ui"
)

var (
	downloadDir   string
	downloadForce bool
)

var downloadCmd = &cobra.Command{
	Use:     "download <file-id>...",
	Aliases: []string{"dl"},
	Short:   "Download asset images",
	Long: `Download one or more asset images by file id.

Files are saved under their CMS file id in the download directory
(download_dir in the config, or the data directory's downloads/).
Existing files are kept unless --force is given.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDownload,
}

func init() {
	downloadCmd.Flags().StringVarP(&downloadDir, "dir", "o", "", "Directory to save into")
	downloadCmd.Flags().BoolVarP(&downloadForce, "force", "f", false, "Overwrite existing files")
}

func runDownload(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := loadGallery(ctx)
	if err != nil {
		return fmt.Errorf("failed to load gallery: %w", err)
	}

	dir := downloadDir
	if dir == "" {
		dir = appDirs.DownloadDir(appConfig.DownloadDir)
	}

	var failed int
	for _, id := range args {
		asset, err := galleryService.Find(resp.Assets, id)
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			failed++
			continue
		}

		result, err := downloadService.Execute(ctx, services.DownloadRequest{
			Asset:     asset,
			Dir:       dir,
			Overwrite: downloadForce,
		})
		if errors.Is(err, domain.ErrFileExists) {
			fmt.Println(ui.FormatWarning(err.Error() + " (use --force to overwrite)"))
			continue
		}
		if err != nil {
			fmt.Println(ui.FormatError(err.Error()))
			failed++
			continue
		}

		fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s → %s (%s)", id, shortenHome(result.Path), formatBytes(result.Bytes))))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d downloads failed", failed, len(args))
	}
	return nil
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
