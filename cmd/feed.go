package cmd

import (
	"context"
	"fmt"

	feedrender "github.com/cadrebook/cadrebook-cli/internal/adapters/render/feed"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newFeedCmd(app *app) *cobra.Command {
	var skip int
	var limit int
	var followingOnly bool
	var username string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Show the post feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				if username != "" {
					return app.feed.LoadUser(ctx, username, skip, limit)
				}
				return app.feed.Load(ctx, ports.FeedQuery{Skip: skip, Limit: limit, FollowingOnly: followingOnly})
			}
			if err := runWithSpinner(cmd, "Loading feed...", fetch); err != nil {
				return err
			}

			output, err := feedrender.RenderFeed(app.feed.Posts().Snapshot(), app.renderOptions())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "Number of posts to skip")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of posts")
	cmd.Flags().BoolVar(&followingOnly, "following", false, "Only posts from followed users")
	cmd.Flags().StringVar(&username, "user", "", "Show a single user's posts instead of the feed")

	return cmd
}
