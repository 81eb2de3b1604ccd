package cli

import (
	"context"
	"fmt"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// Register prompts for a username, an email and a password and attempts to
// create an account. On success the session is established from the returned
// token and the user lands on the topics screen.
func (a *App) Register(ctx context.Context) error {
	if !a.navigate(RouteRegister) {
		fmt.Fprintln(a.out, "Vous êtes déjà connecté.")
		return nil
	}

	username, err := getSimpleText(a.reader, "Nom d'utilisateur", a.out)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "E-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Mot de passe", a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Register(ctx, username, email, password)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Bienvenue, %s !\n", user.Username)
	a.route = RouteTopics
	return nil
}

// Login prompts for an identifier (username or email) and a password and
// tries to authenticate. On success the user lands on the topics screen.
func (a *App) Login(ctx context.Context) error {
	if !a.navigate(RouteLogin) {
		fmt.Fprintln(a.out, "Vous êtes déjà connecté.")
		return nil
	}

	identifier, err := getSimpleText(a.reader, "Nom d'utilisateur ou e-mail", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Mot de passe", a.out)
	if err != nil {
		return err
	}

	user, err := a.auth.Login(ctx, identifier, password)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Bonjour, %s !\n", user.Username)
	a.route = RouteTopics
	return nil
}
