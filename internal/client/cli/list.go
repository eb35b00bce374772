package cli

import "context"

// ListAll fetches and prints every user.
func (a *App) ListAll(ctx context.Context) error {
	env, status, err := a.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
