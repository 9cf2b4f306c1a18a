package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abdulachik/fbpost/internal/graph"
	"github.com/spf13/cobra"
)

var (
	postMessage string
	postLink    string
	postPhotos  []string
	postVideo   string
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Publish a post",
	Long: `Publish a text post, a set of photos or a video.

Examples:
  fbpost post -m "Hello"                          # as the token owner
  fbpost post -p Shop -m "New in" --link URL      # as the page "Shop"
  fbpost post -p Shop -m "Look" --photo a.jpg --photo b.jpg
  fbpost post -p Shop -m "Watch" --video clip.mp4`,
	Args: cobra.NoArgs,
	RunE: runPost,
}

func init() {
	postCmd.Flags().StringVarP(&postMessage, "message", "m", "", "post message, photo caption or video description")
	postCmd.Flags().StringVar(&postLink, "link", "", "link to attach to a text post")
	postCmd.Flags().StringArrayVar(&postPhotos, "photo", nil, "photo file to upload (repeatable)")
	postCmd.Flags().StringVar(&postVideo, "video", "", "video file to upload")
	postCmd.MarkFlagsMutuallyExclusive("photo", "video")
	postCmd.MarkFlagsMutuallyExclusive("link", "photo")
	postCmd.MarkFlagsMutuallyExclusive("link", "video")
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	a, err := openApp(ctx, true)
	if err != nil {
		return err
	}
	defer a.Close()

	var res graph.Result
	switch {
	case len(postPhotos) > 0:
		photos := make([]graph.Media, len(postPhotos))
		for i, path := range postPhotos {
			photos[i] = graph.File(path)
		}
		res = a.Client.PostTextWithImages(ctx, pageName, postMessage, photos)
	case postVideo != "":
		res = a.Client.PostTextWithVideo(ctx, pageName, postMessage, graph.File(postVideo))
	default:
		if postMessage == "" && postLink == "" {
			return fmt.Errorf("a message or a link is required")
		}
		res = a.Client.PostText(ctx, pageName, postMessage, postLink)
	}

	recorded := a.Record(ctx, res)
	slog.Debug("recorded posts", "count", recorded)

	failed, err := printResults(cmd.OutOrStdout(), res)
	if err != nil {
		return err
	}
	if failed {
		return fmt.Errorf("post failed")
	}
	return nil
}
