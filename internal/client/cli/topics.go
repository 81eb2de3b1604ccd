package cli

import (
	"context"
	"fmt"
	"strconv"
)

// Topics lists every topic with the current user's subscription state.
func (a *App) Topics(ctx context.Context) error {
	if !a.navigate(RouteTopics) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	topics, err := a.topics.Topics(ctx)
	if err != nil {
		a.showErr(err)
		return err
	}

	if len(topics) == 0 {
		fmt.Fprintln(a.out, "Aucun thème pour le moment.")
		return nil
	}

	for _, t := range topics {
		marker := " "
		if t.Subscribed {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s [%d] %s — %s\n", marker, t.ID, t.Name, t.Description)
	}
	return nil
}

// Subscribe subscribes the current user to the topic named by idArg.
func (a *App) Subscribe(ctx context.Context, idArg string) error {
	if !a.navigate(RouteTopics) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	id, err := parseID(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: sub <id>")
		return err
	}

	sub, err := a.subs.Subscribe(ctx, id)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintf(a.out, "Abonné à %s.\n", sub.TopicName)
	return nil
}

// Unsubscribe removes the current user's subscription to the topic named by
// idArg.
func (a *App) Unsubscribe(ctx context.Context, idArg string) error {
	if !a.navigate(RouteTopics) {
		fmt.Fprintln(a.out, "Veuillez vous connecter.")
		return nil
	}

	id, err := parseID(idArg)
	if err != nil {
		fmt.Fprintln(a.out, "Usage: unsub <id>")
		return err
	}

	resp, err := a.subs.Unsubscribe(ctx, id)
	if err != nil {
		a.showErr(err)
		return err
	}

	fmt.Fprintln(a.out, resp.Message)
	return nil
}

func parseID(arg string) (int64, error) {
	return strconv.ParseInt(arg, 10, 64)
}
