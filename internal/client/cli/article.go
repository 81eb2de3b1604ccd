package cli

import (
	"context"
	"fmt"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/models"
)

// NewArticle prompts for a topic, a title and a multi-line body, then
// publishes the article.
func (a *App) NewArticle(ctx context.Context) error {
	if !a.navigate(RouteArticle) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	topicArg, err := getSimpleText(a.reader, "Identifiant du thème", a.out)
	if err != nil {
		return err
	}
	topicID, err := parseID(topicArg)
	if err != nil {
		fmt.Fprintln(a.out, "L'identifiant du thème doit être un nombre.")
		return err
	}

	title, err := getSimpleText(a.reader, "Titre", a.out)
	if err != nil {
		return err
	}

	content, err := getMultiline(a.reader, "Contenu de l'article", a.out)
	if err != nil {
		return err
	}

	post, err := a.posts.Create(ctx, models.CreatePostRequest{
		TopicID: topicID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Article publié : [%d] %s\n", post.ID, post.Title)
	return nil
}
