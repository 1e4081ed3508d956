package cmd

import (
	"context"
	"fmt"
	"strconv"

	feedrender "github.com/cadrebook/cadrebook-cli/internal/adapters/render/feed"
	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newCommentCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Read and write comments on a post",
	}

	cmd.AddCommand(newCommentListCmd(app), newCommentAddCmd(app), newCommentDeleteCmd(app))

	return cmd
}

func newCommentListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list <post-id>",
		Short: "Show a post's comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return app.comments.Load(ctx, postID)
			}
			if err := runWithSpinner(cmd, "Loading comments...", fetch); err != nil {
				return err
			}

			output, err := feedrender.RenderThread(app.comments.Thread().Snapshot(), app.renderOptions())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newCommentAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <post-id> <content>",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}

			pending, err := app.comments.Add(cmd.Context(), postID, args[1])
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Commented on #%d\n", postID)
			return err
		},
	}
}

func newCommentDeleteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <post-id> <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			postID, err := parsePostID(args[0])
			if err != nil {
				return err
			}
			commentID, err := parseCommentID(args[1])
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return app.comments.Load(ctx, postID)
			}
			if err := runWithSpinner(cmd, "Loading comments...", fetch); err != nil {
				return err
			}

			pending, err := app.comments.Delete(cmd.Context(), commentID)
			if err != nil {
				return err
			}
			if err := pending.Wait(cmd.Context()); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Deleted comment #%d\n", commentID)
			return err
		},
	}
}

func parseCommentID(raw string) (domain.CommentID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid comment id %q", raw)
	}
	return domain.CommentID(id), nil
}
