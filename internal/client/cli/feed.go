package cli

import (
	"context"
	"fmt"
)

// Feed shows the posts from the user's subscribed topics. The default order
// is newest first; "asc" flips it to oldest first.
func (a *App) Feed(ctx context.Context, order string) error {
	if !a.navigate(RouteFeed) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	if order != "" && order != "asc" && order != "desc" {
		fmt.Fprintln(a.out, "Usage: feed [asc|desc]")
		return nil
	}

	posts, err := a.posts.Feed(ctx, order == "asc")
	if err != nil {
		a.showErr(err)
		return err
	}

	if len(posts) == 0 {
		fmt.Fprintln(a.out, "Votre fil est vide. Abonnez-vous à des thèmes pour voir des articles.")
		return nil
	}

	for _, p := range posts {
		fmt.Fprintf(a.out, "[%d] %s — %s dans %s (%s)\n",
			p.ID, p.Title, p.AuthorUsername, p.TopicName, p.CreatedAt)
	}
	return nil
}
