package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"autostream/internal/content"
)

var (
	draftPlatform string
	draftTopic    string
	draftType     string
)

// draftCmd renders a platform content template. This is formatting glue
// outside the dialogue flow, exposed for convenience.
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft social content from a platform template",
	Example: `  autostream draft --platform twitter --topic "video marketing"
  autostream draft --topic captions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := content.NewRegistry().Dispatch("draft", content.Params{
			ContentType: draftType,
			Topic:       draftTopic,
			Platform:    draftPlatform,
		})
		if err != nil {
			return err
		}

		fmt.Println(res.Content)
		fmt.Printf("\n[%s %s, %d characters]\n", res.Platform, res.ContentType, res.CharacterCount)
		return nil
	},
}

func init() {
	draftCmd.Flags().StringVar(&draftPlatform, "platform", "linkedin", "target platform (twitter, linkedin, facebook)")
	draftCmd.Flags().StringVar(&draftTopic, "topic", "", "content topic (required)")
	draftCmd.Flags().StringVar(&draftType, "type", "post", "content type")
	_ = draftCmd.MarkFlagRequired("topic")
}
