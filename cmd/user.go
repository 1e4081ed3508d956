package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	feedrender "github.com/cadrebook/cadrebook-cli/internal/adapters/render/feed"
	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newFollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "follow <username>",
		Short: "Follow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFollowToggle(cmd, app, args[0], true)
		},
	}
}

func newUnfollowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow <username>",
		Short: "Unfollow a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFollowToggle(cmd, app, args[0], false)
		},
	}
}

func runFollowToggle(cmd *cobra.Command, app *app, username string, follow bool) error {
	if err := ensureAuthorized(cmd, app); err != nil {
		return err
	}
	username = strings.ToLower(strings.TrimSpace(username))

	var profile domain.Profile
	fetch := func(ctx context.Context) error {
		var err error
		profile, err = app.directory.Profile(ctx, username)
		return err
	}
	if err := runWithSpinner(cmd, "Loading profile...", fetch); err != nil {
		return err
	}

	if profile.IsFollowing == follow {
		state := "not following"
		if follow {
			state = "already following"
		}
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "You are %s @%s.\n", state, username)
		return err
	}

	var final domain.Profile
	pending, err := app.directory.ToggleFollowProfile(cmd.Context(), profile, func(p domain.Profile) {
		final = p
	})
	if err != nil {
		return err
	}
	if err := pending.Wait(cmd.Context()); err != nil {
		return err
	}

	verb := "Unfollowed"
	if final.IsFollowing {
		verb = "Now following"
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s @%s (%d followers)\n", verb, username, final.FollowersCount)
	return err
}

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit profiles",
	}

	cmd.AddCommand(newProfileViewCmd(app), newProfileEditCmd(app))

	return cmd
}

func newProfileViewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "view <username>",
		Short: "Show a user's profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			var profile domain.Profile
			fetch := func(ctx context.Context) error {
				var err error
				profile, err = app.directory.Profile(ctx, strings.ToLower(strings.TrimSpace(args[0])))
				return err
			}
			if err := runWithSpinner(cmd, "Loading profile...", fetch); err != nil {
				return err
			}

			output, err := feedrender.RenderProfile(profile, app.renderOptions())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}

func newProfileEditCmd(app *app) *cobra.Command {
	var displayName string
	var bio string
	var sex string
	var birthday string
	var relationshipStatus string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Update your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			update, err := buildProfileUpdate(cmd, displayName, bio, sex, birthday, relationshipStatus)
			if err != nil {
				return err
			}

			profile, err := app.directory.UpdateProfile(cmd.Context(), update)
			if err != nil {
				return err
			}

			output, err := feedrender.RenderProfile(profile, app.renderOptions())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().StringVar(&displayName, "display-name", "", "Display name")
	cmd.Flags().StringVar(&bio, "bio", "", "Short bio")
	cmd.Flags().StringVar(&sex, "sex", "", "Sex")
	cmd.Flags().StringVar(&birthday, "birthday", "", "Birthday (YYYY-MM-DD)")
	cmd.Flags().StringVar(&relationshipStatus, "status", "", "Relationship status")

	return cmd
}

// buildProfileUpdate maps only the flags the user actually set, so unset
// fields stay untouched on the server.
func buildProfileUpdate(cmd *cobra.Command, displayName, bio, sex, birthday, relationshipStatus string) (domain.ProfileUpdate, error) {
	var update domain.ProfileUpdate
	changed := false

	if cmd.Flags().Changed("display-name") {
		update.DisplayName = &displayName
		changed = true
	}
	if cmd.Flags().Changed("bio") {
		update.Bio = &bio
		changed = true
	}
	if cmd.Flags().Changed("sex") {
		update.Sex = &sex
		changed = true
	}
	if cmd.Flags().Changed("status") {
		update.RelationshipStatus = &relationshipStatus
		changed = true
	}
	if cmd.Flags().Changed("birthday") {
		parsed, err := time.Parse("2006-01-02", birthday)
		if err != nil {
			return domain.ProfileUpdate{}, fmt.Errorf("invalid birthday %q: expected YYYY-MM-DD", birthday)
		}
		update.Birthday = &parsed
		changed = true
	}

	if !changed {
		return domain.ProfileUpdate{}, fmt.Errorf("nothing to update: set at least one flag")
	}
	return update, nil
}

func newSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search users by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ensureAuthorized(cmd, app); err != nil {
				return err
			}

			fetch := func(ctx context.Context) error {
				return app.directory.Search(ctx, args[0])
			}
			if err := runWithSpinner(cmd, "Searching...", fetch); err != nil {
				return err
			}

			output, err := feedrender.RenderUsers(app.directory.Results().Snapshot(), app.renderOptions())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}
}
