package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-wa-desk/models"
)

func newSendCommand(rt *deps) *cobra.Command {
	var msg models.OutboundMessage
	var msgType string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a text or media message",
		Example: `  wactl send --to 15555550100 --text "Your order is ready"
  wactl send --to 15555550100 --type image --media-id 1234 --caption "Menu"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			msg.Type = models.MessageType(msgType)

			result, err := rt.services.MessageService.Send(cmd.Context(), msg)
			if err != nil {
				return err
			}

			if id, ok := result.MessageID(); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "sent (id: %s)\n", id)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&msg.To, "to", "", "recipient phone number")
	f.StringVar(&msgType, "type", string(models.MessageTypeText), "text, image, audio, document, sticker or video")
	f.StringVar(&msg.Text, "text", "", "body of a text message")
	f.StringVar(&msg.MediaID, "media-id", "", "id returned by 'wactl media upload'")
	f.StringVar(&msg.MediaLink, "media-link", "", "public URL of the media")
	f.StringVar(&msg.Caption, "caption", "", "caption of an image, video or document")
	_ = cmd.MarkFlagRequired("to")
	cmd.MarkFlagsMutuallyExclusive("media-id", "media-link")

	return cmd
}
