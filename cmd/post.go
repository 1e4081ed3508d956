package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/cadrebook/cadrebook-cli/internal/ports"
	"github.com/spf13/cobra"
)

func newPostCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, edit, and delete posts",
	}

	cmd.AddCommand(newPostCreateCmd(app), newPostEditCmd(app), newPostDeleteCmd(app))

	return cmd
}

func newPostCreateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <content>",
		Short: "Publish a new post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			pending, err := app.feed.CreatePost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			posts := app.feed.Posts().Snapshot()
			if len(posts) > 0 {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Posted #%d\n", posts[0].ID)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Posted.")
			return err
		},
	}
}

func newPostEditCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <post-id> <content>",
		Short: "Replace a post's content",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			if err := loadOwnPosts(cmd, app); err != nil {
				return err
			}

			pending, err := app.feed.EditPost(cmd.Context(), id, args[1])
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Updated #%d\n", id)
			return err
		},
	}
}

func newPostDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			if err := loadOwnPosts(cmd, app); err != nil {
				return err
			}

			pending, err := app.feed.DeletePost(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted #%d\n", id)
			return err
		},
	}
}

func newLikeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "like <post-id>",
		Short: "Toggle your like on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			id, err := parsePostID(args[0])
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return app.feed.Load(ctx, ports.FeedQuery{Limit: mutationPageSize})
			}
			if err := runWithSpinner(cmd, "Loading feed...", fetch); err != nil {
				return err
			}

			pending, err := app.feed.ToggleLike(cmd.Context(), id)
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			post, ok := app.feed.Posts().Get(int64(id))
			if !ok {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Toggled like on #%d\n", id)
				return err
			}
			verb := "Unliked"
			if post.LikedByMe {
				verb = "Liked"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s #%d (%d likes)\n", verb, id, post.LikesCount)
			return err
		},
	}
}

// loadOwnPosts fills the feed service's collection with the caller's posts
// so a targeted mutation can find its entity.
func loadOwnPosts(cmd *cobra.Command, app *app) error {
	user, ok := app.session.User()
	if !ok {
		return fmt.Errorf("session has no user: %w", domain.ErrUnauthorized)
	}

	return runWithSpinner(cmd, "Loading posts...", func(ctx context.Context) error {
		return app.feed.LoadUser(ctx, user.Username, 0, mutationPageSize)
	})
}

func parsePostID(raw string) (domain.PostID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid post id %q", raw)
	}
	return domain.PostID(id), nil
}
