package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cb",
		Short:         "CadreBook CLI (cb): read the feed, post, and follow people from the terminal",
		Long:          "cb (CadreBook CLI) is a terminal client for a CadreBook server. It keeps your session in a local file, applies likes, posts, comments, and follows optimistically, and rolls back anything the server rejects.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newFeedCmd(app),
		newPostCmd(app),
		newLikeCmd(app),
		newCommentCmd(app),
		newFollowCmd(app),
		newUnfollowCmd(app),
		newProfileCmd(app),
		newSearchCmd(app),
	)

	return rootCmd
}
