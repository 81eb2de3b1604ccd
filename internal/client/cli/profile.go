package cli

import (
	"context"
	"fmt"

	"github.com/thibautlfr-studylab/mdd-cli/internal/client/services"
)

// Profile shows the current user and their subscriptions, then offers to
// change the username, the email or the password. An empty answer leaves a
// field untouched; when nothing changes, no request is sent.
func (a *App) Profile(ctx context.Context) error {
	if !a.navigate(RouteProfile) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	user := a.session.Current()
	fmt.Fprintf(a.out, "Profil de %s <%s>\n", user.Username, user.Email)

	subs, err := a.subs.List(ctx)
	if err != nil {
		a.showErr(err)
		return err
	}
	fmt.Fprintf(a.out, "Abonnements (%d)\n", len(subs))
	for _, s := range subs {
		fmt.Fprintf(a.out, "- [%d] %s\n", s.TopicID, s.TopicName)
	}

	username, err := getSimpleText(a.reader, "Nouveau nom d'utilisateur (vide pour conserver)", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Nouvel e-mail (vide pour conserver)", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword("Nouveau mot de passe (vide pour conserver)", a.out)
	if err != nil {
		return err
	}

	update := services.ProfileUpdate{}
	if username != "" {
		update.Username = &username
	}
	if email != "" {
		update.Email = &email
	}
	if password != "" {
		update.Password = &password
	}
	if update.Username == nil && update.Email == nil && update.Password == nil {
		fmt.Fprintln(a.out, "Aucune modification.")
		return nil
	}

	updated, err := a.users.UpdateProfile(ctx, update)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Profil mis à jour : %s <%s>\n", updated.Username, updated.Email)
	return nil
}
