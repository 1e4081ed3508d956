package feed

import (
	"fmt"
	"time"

	"github.com/cadrebook/cadrebook-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// Now anchors relative timestamps. Zero means absolute formatting.
	Now time.Time
	// Viewer marks the authenticated user's own entities.
	Viewer domain.UserID
}

func renderFeedView(posts []domain.Post, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Feed"),
		s.header.Render(fmt.Sprintf("posts: %d", len(posts))),
	}

	if len(posts) == 0 {
		lines = append(lines, s.empty.Render("Nothing here yet. Follow people or post something."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range posts {
		lines = append(lines, s.section.Render(renderPost(post, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPost(post domain.Post, opts RenderOptions, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(authorName(post.Author)),
		" ",
		s.handle.Render(authorHandle(post.Author, post.UserID, opts.Viewer)),
		" ",
		s.meta.Render(timeAgo(post.CreatedAt, opts.Now)),
	)

	counter := fmt.Sprintf("%s %d", likeMarker(post.LikedByMe, s), post.LikesCount)
	footer := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.counter.Render(counter),
		"  ",
		s.meta.Render(fmt.Sprintf("#%s", postID(post))),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		s.content.Render(post.Content),
		footer,
	)
}

func renderThreadView(comments []domain.Comment, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Comments"),
		s.header.Render(fmt.Sprintf("comments: %d", len(comments))),
	}

	if len(comments) == 0 {
		lines = append(lines, s.empty.Render("No comments yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, comment := range comments {
		header := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.author.Render(authorName(comment.Author)),
			" ",
			s.handle.Render(authorHandle(comment.Author, comment.UserID, opts.Viewer)),
			" ",
			s.meta.Render(timeAgo(comment.CreatedAt, opts.Now)),
		)
		body := lipgloss.JoinVertical(lipgloss.Left, header, s.content.Render(comment.Content))
		lines = append(lines, s.section.Render(body))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderProfileView(profile domain.Profile, opts RenderOptions, s styles) string {
	name := profile.DisplayName
	if name == "" {
		name = profile.Username
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(name),
		" ",
		s.handle.Render("@"+profile.Username),
	)
	if profile.IsFollowing {
		header += " " + s.following.Render("[following]")
	}

	lines := []string{header}
	if profile.Bio != "" {
		lines = append(lines, s.content.Render(profile.Bio))
	}

	lines = append(lines, s.counter.Render(fmt.Sprintf(
		"%d followers · %d following", profile.FollowersCount, profile.FollowingCount,
	)))

	for _, field := range profileFields(profile) {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.fieldKey.Render(field.key+": "),
			s.fieldVal.Render(field.value),
		))
	}

	if !profile.CreatedAt.IsZero() {
		lines = append(lines, s.meta.Render("joined "+profile.CreatedAt.Format("Jan 2006")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderUsersView(users []domain.UserSummary, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Users"),
		s.header.Render(fmt.Sprintf("results: %d", len(users))),
	}

	if len(users) == 0 {
		lines = append(lines, s.empty.Render("No users found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, user := range users {
		name := user.DisplayName
		if name == "" {
			name = user.Username
		}
		line := lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.author.Render(name),
			" ",
			s.handle.Render("@"+user.Username),
		)
		if user.IsFollowing {
			line += " " + s.following.Render("[following]")
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

type profileField struct {
	key   string
	value string
}

func profileFields(profile domain.Profile) []profileField {
	fields := make([]profileField, 0, 3)
	if profile.Sex != "" {
		fields = append(fields, profileField{key: "sex", value: profile.Sex})
	}
	if profile.Birthday != nil {
		fields = append(fields, profileField{key: "birthday", value: profile.Birthday.Format("2 Jan 2006")})
	}
	if profile.RelationshipStatus != "" {
		fields = append(fields, profileField{key: "status", value: profile.RelationshipStatus})
	}
	return fields
}

func likeMarker(liked bool, s styles) string {
	if liked {
		return s.liked.Render("♥")
	}
	return "♡"
}

func authorName(author *domain.UserSummary) string {
	if author == nil {
		return "unknown"
	}
	if author.DisplayName != "" {
		return author.DisplayName
	}
	return author.Username
}

func authorHandle(author *domain.UserSummary, userID, viewer domain.UserID) string {
	handle := ""
	if author != nil {
		handle = "@" + author.Username
	}
	if viewer != 0 && userID == viewer {
		if handle == "" {
			return "(you)"
		}
		return handle + " (you)"
	}
	return handle
}

func postID(post domain.Post) string {
	if post.ID < 0 {
		// Provisional entities have no server id yet.
		return "pending"
	}
	return fmt.Sprintf("%d", post.ID)
}

func timeAgo(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if now.IsZero() {
		return t.Format(time.RFC3339)
	}

	diff := now.Sub(t)
	switch {
	case diff < time.Minute:
		seconds := int(diff.Seconds())
		if seconds < 0 {
			seconds = 0
		}
		return fmt.Sprintf("%ds ago", seconds)
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return t.Format("Jan 2, 2006")
	}
}
