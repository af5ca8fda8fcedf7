package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wa-desk/models"
)

func newMediaCommand(rt *deps) *cobra.Command {
	media := &cobra.Command{
		Use:   "media",
		Short: "Manage media referenced by messages",
	}

	var mediaType string
	upload := &cobra.Command{
		Use:   "upload FILE",
		Short: "Upload a file and print its media id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open media file: %w", err)
			}
			defer file.Close()

			resp, err := rt.services.MessageService.UploadMedia(cmd.Context(), models.MediaUpload{
				FileName:  filepath.Base(args[0]),
				Content:   file,
				MediaType: models.MessageType(mediaType),
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), resp.ID)
			return nil
		},
	}
	upload.Flags().StringVar(&mediaType, "type", "", "image, audio, document, sticker or video")
	_ = upload.MarkFlagRequired("type")

	media.AddCommand(upload)
	return media
}
