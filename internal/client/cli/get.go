package cli

import "context"

// GetByID prompts for a user id and prints the matching user.
func (a *App) GetByID(ctx context.Context) error {
	id, err := GetInteger(a.reader, "Ingrese el ID del usuario", a.out)
	if err != nil {
		return err
	}

	env, status, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return printEnvelope(env, status)
}
