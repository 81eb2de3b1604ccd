package cli

import (
	"context"
	"fmt"
)

// ShowPost prints an article with its comments, oldest comment first.
func (a *App) ShowPost(ctx context.Context, idArg string) error {
	if !a.navigate(RoutePost) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	id, err := parseID(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: post <id>")
		return err
	}

	post, err := a.posts.Post(ctx, id)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "%s\n%s dans %s, le %s\n\n%s\n",
		post.Title, post.AuthorUsername, post.TopicName, post.CreatedAt, post.Content)

	comments, err := a.comments.ForPost(ctx, id)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "\nCommentaires (%d)\n", len(comments))
	for _, c := range comments {
		fmt.Fprintf(a.out, "- %s : %s\n", c.AuthorUsername, c.Content)
	}
	return nil
}

// Comment prompts for a comment body and attaches it to the article named
// by idArg.
func (a *App) Comment(ctx context.Context, idArg string) error {
	if !a.navigate(RoutePost) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	id, err := parseID(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: comment <id>")
		return err
	}

	content, err := getSimpleText(a.reader, "Votre commentaire", a.out)
	if err != nil {
		return err
	}

	comment, err := a.comments.Add(ctx, id, content)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Commentaire publié par %s.\n", comment.AuthorUsername)
	return nil
}
